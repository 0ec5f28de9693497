// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

package log

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

// TextFormatter renders entries as a short colored level tag, the message,
// and trailing key=value fields.
type TextFormatter struct {
	// ForceColors renders ANSI colors even when the output is not a TTY.
	ForceColors bool

	// DisableColors strips all ANSI colors from the output.
	DisableColors bool

	// FullTimestamp prepends the entry time to every line.
	FullTimestamp bool

	// TimestampFormat overrides the default time layout.
	TimestampFormat string
}

var levelColors = map[logrus.Level]string{
	logrus.TraceLevel: ansi.ColorCode("white"),
	logrus.DebugLevel: ansi.ColorCode("cyan"),
	logrus.InfoLevel:  ansi.ColorCode("green"),
	logrus.WarnLevel:  ansi.ColorCode("yellow"),
	logrus.ErrorLevel: ansi.ColorCode("red"),
	logrus.FatalLevel: ansi.ColorCode("red+b"),
	logrus.PanicLevel: ansi.ColorCode("red+b"),
}

var levelTags = map[logrus.Level]string{
	logrus.TraceLevel: "TRC",
	logrus.DebugLevel: "DBG",
	logrus.InfoLevel:  " i ",
	logrus.WarnLevel:  " W ",
	logrus.ErrorLevel: " E ",
	logrus.FatalLevel: " ! ",
	logrus.PanicLevel: " ! ",
}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	colorize := func(color, s string) string {
		if color == "" || (f.DisableColors && !f.ForceColors) {
			return s
		}

		return color + s + ansi.Reset
	}

	if f.FullTimestamp {
		layout := f.TimestampFormat
		if layout == "" {
			layout = "15:04:05"
		}

		fmt.Fprintf(&b, "%s ", entry.Time.Format(layout))
	}

	fmt.Fprintf(&b, "%s %s", colorize(levelColors[entry.Level], levelTags[entry.Level]), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		v := fmt.Sprintf("%v", entry.Data[k])
		if strings.ContainsAny(v, " \t") {
			v = fmt.Sprintf("%q", v)
		}

		fmt.Fprintf(&b, " %s=%s", colorize(levelColors[entry.Level], k), v)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}
