// Package activity writes module activity entries through zerolog. Every
// entry carries the component tag as a prefix so the billing host's log
// viewer can group related lines.
package activity

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/scp-tools/billing-bridge/internal/ports"
)

const defaultComponentTag = "Control Panel Bridge"

type Log struct {
	tag    string
	logger zerolog.Logger
}

var _ ports.ActivityLog = (*Log)(nil)

func NewLog(logger zerolog.Logger, tag string) *Log {
	if tag == "" {
		tag = defaultComponentTag
	}

	return &Log{tag: tag, logger: logger}
}

func (l *Log) Activity(format string, args ...any) {
	l.logger.Info().
		Str("component", l.tag).
		Msg(l.tag + ": " + fmt.Sprintf(format, args...))
}
