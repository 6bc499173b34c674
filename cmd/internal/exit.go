package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fatal will log the error with the message and os.Exit with code 1.
func Fatal(err error, msg string) {
	logrus.WithError(err).Fatal(msg)
}

// Echo will emit the given message to w without any logging formatting.
func Echo(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}
