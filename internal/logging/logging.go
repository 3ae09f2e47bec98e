// Package logging routes the standard logger to stderr and, when a file is
// configured, to a size-rotated log file.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"nicspectra/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Writer builds the log destination for cfg. Close the returned closer on
// shutdown to release the file.
func Writer(cfg config.LogConfig, stderr io.Writer) (io.Writer, io.Closer) {
	if cfg.File == "" {
		return stderr, nopCloser{}
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	return io.MultiWriter(stderr, rotator), rotator
}

// Setup points the standard logger at the configured destination.
func Setup(cfg config.LogConfig) io.Closer {
	w, closer := Writer(cfg, os.Stderr)
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return closer
}
