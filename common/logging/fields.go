package logging

import "log/slog"

// Common field names for consistent logging across generator commands.
const (
	FieldService  = "service"
	FieldTenant   = "tenant"
	FieldCycle    = "cycle"
	FieldCount    = "count"
	FieldFailures = "failures"
	FieldSamples  = "samples"
	FieldJob      = "job"
	FieldError    = "error"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// Tenant returns a slog attribute for the tenant name.
func Tenant(name string) slog.Attr {
	return slog.String(FieldTenant, name)
}

// Cycle returns a slog attribute for the generation cycle number.
func Cycle(n int) slog.Attr {
	return slog.Int(FieldCycle, n)
}

// Count returns a slog attribute for a generated item count.
func Count(n int) slog.Attr {
	return slog.Int(FieldCount, n)
}

// Failures returns a slog attribute for a failure count.
func Failures(n int) slog.Attr {
	return slog.Int(FieldFailures, n)
}

// Samples returns a slog attribute for an emitted sample count.
func Samples(n int) slog.Attr {
	return slog.Int(FieldSamples, n)
}

// Job returns a slog attribute for the push job name.
func Job(name string) slog.Attr {
	return slog.String(FieldJob, name)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
