package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NullLogger discards everything logged to it.
var NullLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// NewNullEntry returns an entry that discards everything; useful in tests.
func NewNullEntry() *logrus.Entry {
	return logrus.NewEntry(NullLogger)
}
