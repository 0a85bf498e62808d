package main

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "clf",
	Level:  log.WarnLevel,
})

// configureLogger applies --verbose and --quiet to the logger.
func configureLogger() {
	switch {
	case getBool("quiet", false):
		logger.SetLevel(log.ErrorLevel)
	case getBool("verbose", false):
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
}
