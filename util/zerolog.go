package util

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologAdapter routes SDK log output into a host-provided zerolog logger,
// for applications that already run zerolog and want a single log stream.
type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerologAdapter(logger zerolog.Logger) ZerologAdapter {
	return ZerologAdapter{logger: logger}
}

func (z ZerologAdapter) Printf(format string, a ...any) {
	z.logger.Printf(format, a...)
}

func (z ZerologAdapter) Infof(format string, a ...any) {
	z.logger.Info().Msgf(format, a...)
}

func (z ZerologAdapter) Debugf(format string, a ...any) {
	z.logger.Debug().Msgf(format, a...)
}

func (z ZerologAdapter) Warnf(format string, a ...any) {
	z.logger.Warn().Msgf(format, a...)
}

func (z ZerologAdapter) Errorf(format string, a ...any) error {
	z.logger.Error().Msgf(format, a...)
	return fmt.Errorf(format, a...)
}
