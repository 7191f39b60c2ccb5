package sonar

import "fmt"

// ConfigurationError reports a misconfigured client detected at construction
// time. It is never produced once a client has been built.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sonar client configuration: %q is required", e.Field)
}

// NewConfigurationError creates a ConfigurationError for the given field.
func NewConfigurationError(field string) error {
	return &ConfigurationError{Field: field}
}

// TransportError wraps a failure to reach the upstream API at all:
// connection refused, DNS failure, or a request timing out.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %q failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a non-2xx response. The body is carried verbatim so
// callers can diagnose the failure without re-querying the API.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API request to %q failed with status code %d and response: %s", e.Endpoint, e.StatusCode, e.Body)
}

// SchemaError reports a successful response missing a field the client
// requires. It signals upstream contract drift, not a client bug.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("upstream response is missing required field %q", e.Field)
}
