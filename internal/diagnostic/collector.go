package diagnostic

import (
	"fmt"
	"log/slog"
)

// Collector records diagnostics for one source and logs them as they
// arrive. A Collector is not safe for concurrent use.
type Collector struct {
	diags  Diagnostics
	logger *slog.Logger
	source string
}

// NewCollector returns a Collector tagging diagnostics with source.
// A nil logger means slog.Default().
func NewCollector(logger *slog.Logger, source string) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	return &Collector{logger: logger, source: source}
}

// Warnf records and logs a warning.
func (c *Collector) Warnf(code, subject, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.diags.AddWarning(code, msg, c.source, subject)
	c.logger.Warn(msg,
		slog.String("code", code),
		slog.String("source", c.source),
		slog.String("subject", subject),
	)
}

// Infof records an info diagnostic and logs it at debug level.
func (c *Collector) Infof(code, subject, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.diags.AddInfo(code, msg, c.source, subject)
	c.logger.Debug(msg,
		slog.String("code", code),
		slog.String("source", c.source),
		slog.String("subject", subject),
	)
}

// Errorf records and logs an error diagnostic.
func (c *Collector) Errorf(code, subject, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.diags.AddError(code, msg, c.source, subject)
	c.logger.Error(msg,
		slog.String("code", code),
		slog.String("source", c.source),
		slog.String("subject", subject),
	)
}

// Absorb merges diagnostics collected elsewhere without logging them again.
func (c *Collector) Absorb(other Diagnostics) {
	c.diags.Merge(other)
}

// Logger returns the logger diagnostics are written to.
func (c *Collector) Logger() *slog.Logger {
	return c.logger
}

// Diagnostics returns everything recorded so far.
func (c *Collector) Diagnostics() Diagnostics {
	return c.diags
}
