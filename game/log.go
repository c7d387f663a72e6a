package game

import "github.com/sirupsen/logrus"

// Log receives the engine's structured log entries. It only reports warnings
// until a caller raises its level.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}
