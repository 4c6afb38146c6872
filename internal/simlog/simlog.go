// Package simlog configures the logrus logger the CLI harness writes
// diagnostics through. It has no dependents outside cmd/netsim-test;
// the routing, topology, and validate packages stay log-free so a
// caller embedding them keeps full control over their own output.
package simlog

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the package-level logrus logger. When logFile is
// non-empty, output is duplicated to stdout and a rotated log file;
// otherwise it goes to stdout alone.
func Setup(logFile string, verbose bool) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(os.Stdout)
		return
	}

	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotating))
}
