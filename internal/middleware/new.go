package middleware

import (
	"smart-todo/config"
	"smart-todo/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares shared by all
// domain routes.
type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
