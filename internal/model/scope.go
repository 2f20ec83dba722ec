package model

// Scope identifies the user on whose behalf an operation runs.
// Every entity belongs to exactly one user; nothing reads or writes
// across scopes.
type Scope struct {
	UserID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
