package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	level log.Level
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = []levelStyle{
	{log.ErrorLevel, "❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
	{log.WarnLevel, "⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	{log.InfoLevel, "ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	{log.DebugLevel, "🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	accent := levelStyles[len(levelStyles)-1].color
	for _, ls := range levelStyles {
		s.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(ls.color)
	}
	s.Keys["error"] = lipgloss.NewStyle().Foreground(levelStyles[0].color)
	s.Values["error"] = lipgloss.NewStyle().Bold(true)
	for _, key := range []string{"context", "userID", "transactionID"} {
		s.Keys[key] = lipgloss.NewStyle().Foreground(accent)
		s.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return s
}

// NewLogger builds a slog.Logger backed by a charmbracelet handler writing
// to w.
func NewLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level < int(log.InfoLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles())
	return slog.New(handler)
}

// setupLogger installs the process logger as slog's default.
func setupLogger(cfg *config.Log) *slog.Logger {
	logger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}
