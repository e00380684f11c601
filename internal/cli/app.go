package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/demo/internal/config"
	"github.com/idilsaglam/demo/internal/logger"
	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/store"
	"github.com/idilsaglam/demo/internal/store/jsonstore"
)

// app is everything a command needs once configuration is resolved.
type app struct {
	cfg    config.Config
	log    *logger.Logger
	store  *store.Store
	closer io.Closer
}

func openApp(cfg config.Config) (*app, error) {
	a := &app{cfg: cfg}

	var logOut io.Writer
	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closer = f
		logOut = f
	}
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: cfg.LogHuman, Writer: logOut})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	a.log = log

	st, err := openStorage(cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	a.store = store.New(st,
		store.WithLogger(log),
		store.WithDefaultTheme(model.ParseTheme(cfg.DefaultTheme)),
	)
	return a, nil
}

func openStorage(cfg config.Config) (store.Storage, error) {
	if cfg.Ephemeral {
		return store.NewMemory(), nil
	}
	f, err := jsonstore.Open(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return f, nil
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && termCheck(int(f.Fd()))
}
