package utils

import "github.com/sirupsen/logrus"

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"
)

// Log is usable before InitLogger so library code and tests never hit a nil
// logger; InitLogger reconfigures it from the application config.
var Log = logrus.New()

func InitLogger(logLevel string) *logrus.Logger {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	switch logLevel {
	case debug:
		Log.SetLevel(logrus.DebugLevel)
	case warning:
		Log.SetLevel(logrus.WarnLevel)
	case info:
		Log.SetLevel(logrus.InfoLevel)
	case error_:
		Log.SetLevel(logrus.ErrorLevel)
	case fatal:
		Log.SetLevel(logrus.FatalLevel)
	default:
		Log.SetLevel(logrus.ErrorLevel)
	}

	return Log
}
