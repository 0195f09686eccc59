package commands

import (
	"os"

	"code.cloudfoundry.org/lager"
)

// newLogger writes to stderr so that stdout only carries results.
func newLogger(component string, debug bool) lager.Logger {
	logger := lager.NewLogger(component)

	if debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))
	}

	return logger
}
