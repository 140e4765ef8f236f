package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

const (
	fileTimeLayout = "[" + time.DateTime + "]"
	fileMode       = 0o644
	dirMode        = 0o755
)

// DailyFileHandler appends "[YYYY-MM-DD HH:MM:SS] message" lines to
// <dir>/<prefix><YYYY-MM-DD>.txt. Attributes are not written. The file is
// opened in append mode for every record, so several processes may write
// to the same day file.
type DailyFileHandler struct {
	fs     afero.Fs
	dir    string
	prefix string
	level  slog.Leveler
	now    func() time.Time
}

type FileOption func(*DailyFileHandler)

func WithClock(now func() time.Time) FileOption {
	return func(h *DailyFileHandler) {
		h.now = now
	}
}

func WithLevel(level slog.Leveler) FileOption {
	return func(h *DailyFileHandler) {
		h.level = level
	}
}

func NewDailyFileHandler(fs afero.Fs, dir, prefix string, opts ...FileOption) *DailyFileHandler {
	h := &DailyFileHandler{
		fs:     fs,
		dir:    dir,
		prefix: prefix,
		level:  slog.LevelInfo,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Path returns the file the handler writes to at t.
func (h *DailyFileHandler) Path(t time.Time) string {
	return filepath.Join(h.dir, h.prefix+t.Format(time.DateOnly)+".txt")
}

func (h *DailyFileHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *DailyFileHandler) Handle(_ context.Context, record slog.Record) error {
	now := h.now()

	err := h.fs.MkdirAll(h.dir, dirMode)
	if err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	f, err := h.fs.OpenFile(h.Path(now), os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %s\n", now.Format(fileTimeLayout), record.Message)
	if err != nil {
		return fmt.Errorf("write log file: %w", err)
	}

	return nil
}

func (h *DailyFileHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *DailyFileHandler) WithGroup(_ string) slog.Handler {
	return h
}
