package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = logrus.New()

// Init routes log output to stderr and a size-rotated file. Called once from
// main before anything else logs.
func Init(path string) {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.InfoLevel)

	if len(path) == 0 {
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	Log.SetOutput(io.MultiWriter(os.Stderr, rotated))
}
