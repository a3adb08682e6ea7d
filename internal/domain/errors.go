package domain

import "fmt"

// UpstreamError carries a non-success status from a provider API. The body is
// kept verbatim so callers can log it; display formatting happens in the tool
// layer.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}

// ConfigError reports a missing credential or setting for one provider domain.
// It is raised at call time so an unconfigured domain never prevents the other
// from serving.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Key)
}

// ValidationError is caller input that violates a tool's declared constraints.
// It must never reach an upstream provider.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
