package openai

import "time"

const (
	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Chat roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ResponseFormatJSONObject forces the model to emit a single JSON object.
const ResponseFormatJSONObject = "json_object"
