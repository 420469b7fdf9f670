// SPDX-License-Identifier: MIT

// Package prettylog is a human-oriented slog.Handler for the algomap command:
// one line per record with a timestamp, a coloured level, the message and
// the attributes as indented JSON.
package prettylog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/fatih/color"
)

// PrettyHandlerOptions configures NewPrettyHandler.
type PrettyHandlerOptions struct {
	SlogOpts slog.HandlerOptions
}

// PrettyHandler formats records for a terminal. Level filtering follows
// SlogOpts.Level through the embedded JSON handler.
type PrettyHandler struct {
	slog.Handler
	l     *log.Logger
	attrs []slog.Attr
}

// NewPrettyHandler returns a handler writing to out.
func NewPrettyHandler(out io.Writer, opts PrettyHandlerOptions) *PrettyHandler {
	return &PrettyHandler{
		Handler: slog.NewJSONHandler(out, &opts.SlogOpts),
		l:       log.New(out, "", 0),
	}
}

// Handle writes r as "[15:04:05.000] LEVEL: message {attrs}".
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	switch {
	case r.Level >= slog.LevelError:
		level = color.RedString(level)
	case r.Level >= slog.LevelWarn:
		level = color.YellowString(level)
	case r.Level >= slog.LevelInfo:
		level = color.BlueString(level)
	default:
		level = color.MagentaString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	b, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("prettylog: marshal attrs: %w", err)
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	h.l.Println(timeStr, level, color.New(color.FgCyan).Sprint(r.Message), color.New(color.FgWhite).Sprint(string(b)))
	return nil
}

// WithAttrs returns a PrettyHandler that prints attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PrettyHandler{Handler: h.Handler.WithAttrs(attrs), l: h.l, attrs: merged}
}

// WithGroup keeps pretty output; group names are not printed.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{Handler: h.Handler.WithGroup(name), l: h.l, attrs: h.attrs}
}
