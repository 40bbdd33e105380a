package logging

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB = 10
	logFileName      = "panes.log"
)

// newFileWriter returns the size-rotated writer for LogDir/panes.log.
// Rotated files keep a timestamp in their name and are gzipped when
// Compress is set.
func newFileWriter(fileCfg FileConfig) *lumberjack.Logger {
	maxSize := fileCfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(fileCfg.LogDir, logFileName),
		MaxSize:    maxSize,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
		LocalTime:  true,
	}
}
