// SPDX-License-Identifier: MIT

// Package logging configures the process-wide logrus logger. Packages log
// through their own `log = logrus.WithField("prefix", ...)` entries, so
// everything here applies to them too.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Formats understood by Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup sets level and formatter on the standard logger and directs output to w
// (stderr when nil).
func Setup(level, format string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var f logrus.Formatter
	switch format {
	case "", FormatText:
		f = &logrus.TextFormatter{FullTimestamp: true, DisableQuote: true}
	case FormatJSON:
		f = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	if w == nil {
		w = os.Stderr
	}
	logrus.SetOutput(w)
	logrus.SetFormatter(f)
	logrus.SetLevel(lvl)

	return nil
}
