// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog.Logger] used by the
// voxel packages, with a user-settable level and colored
// level names on terminals that support them.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically be
// set through [SetDefaultLogger] or the application config.
var UserLevel = defaultUserLevel

// Short names for the standard levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the following order:
//   - If debug is true, it returns [slog.LevelDebug].
//   - If verbose is true, it returns [slog.LevelInfo].
//   - If quiet is true, it returns [slog.LevelError].
//   - Otherwise, it returns [slog.LevelWarn].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a case insensitive level name
// ("debug", "info", "warn" or "error").
func LevelFromString(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return UserLevel, fmt.Errorf("logx: invalid level %q: %w", s, err)
	}
	return l, nil
}

// NewHandler returns a text handler writing to w at [UserLevel].
// Level names are colored when w is a terminal with color support.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	profile := out.ColorProfile()
	opts := &slog.HandlerOptions{Level: &levelVar}
	if profile != termenv.Ascii {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			l, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(l.String()).Foreground(profile.Color(levelColor(l))).String())
			return a
		}
	}
	return slog.NewTextHandler(w, opts)
}

// levelVar tracks [UserLevel] for every handler made by [NewHandler].
var levelVar slog.LevelVar

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "#ff5555"
	case l >= slog.LevelWarn:
		return "#f1fa8c"
	case l >= slog.LevelInfo:
		return "#8be9fd"
	default:
		return "#6272a4"
	}
}

// SetDefaultLogger sets the default logger to one writing to
// [os.Stderr] at [UserLevel]. It should be called again after
// [UserLevel] changes.
func SetDefaultLogger() {
	levelVar.Set(UserLevel)
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
