package mediainfo

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logger atomic.Pointer[logrus.FieldLogger]

// SetLogger sets the logger used for library loading and handle lifecycle
// messages. Everything is logged at debug level. Passing nil restores the
// logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&l)
}

func log() logrus.FieldLogger {
	if l := logger.Load(); l != nil {
		return *l
	}
	return logrus.StandardLogger()
}
