package logger

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/dpotapov/slogpfx"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var handler = sync.OnceValue(func() slog.Handler {
	w := os.Stderr
	var h slog.Handler = tint.NewHandler(w, &tint.Options{
		Level:      config.LogLevel,
		NoColor:    !isatty.IsTerminal(w.Fd()),
		TimeFormat: time.DateTime,
	})
	h = slogpfx.NewHandler(h, &slogpfx.HandlerOptions{
		PrefixKeys: []string{"scope"},
	})
	return h
})

func Scoped(scope string) *slog.Logger {
	return slog.New(handler()).With("scope", scope)
}
