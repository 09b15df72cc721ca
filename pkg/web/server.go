package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AreebaxIrfan/translation-buddy/pkg/models/chat"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/stores"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/translate"
)

type Service interface {
	Serve(ctx context.Context) error
	Stop(ctx context.Context) error
}

type Config struct {
	Addr  string
	Debug bool

	DocHandler http.Handler

	// optional backends, process defaults when nil
	Prober  translate.Prober
	History stores.HistoryStore
	NewPair func() (*translate.Pair, error)
}

type server struct {
	Addr string
	cfg  Config

	ar *chi.Mux     // app router
	hs *http.Server // http server

	hist    stores.HistoryStore
	prober  translate.Prober
	newPair func() (*translate.Pair, error)
	preset  chat.Preset

	sessions *sessionRegistry
}

// New return new web server
func New(cfg Config) Service {
	ar := chi.NewMux()
	if cfg.Debug {
		ar.Use(middleware.Logger)
	}
	ar.Use(middleware.Recoverer, middleware.RealIP)

	s := &server{
		Addr: cfg.Addr, ar: ar,
		cfg:      cfg,
		hist:     cfg.History,
		prober:   cfg.Prober,
		newPair:  cfg.NewPair,
		sessions: newSessionRegistry(),
	}
	if s.hist == nil {
		s.hist = stores.SgtHistory()
	}
	if s.prober == nil {
		s.prober = translate.NewProber()
	}
	if s.newPair == nil {
		s.newPair = translate.NewPair
	}

	var err error
	s.preset, err = stores.LoadPreset()
	if err == nil && s.preset.Welcome != nil {
		logger().Infow("loaded preset", "welcome", true)
	}
	s.strapRouter()

	s.hs = &http.Server{
		Addr:    s.Addr,
		Handler: s.ar,
	}

	if cfg.Debug {
		logger().Infow("routes:")
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			route = strings.Replace(route, "/*/", "/", -1)
			fmt.Fprintf(os.Stderr, "DEBUG: %-6s %-24s --> %s (%d mw)\n", method, route, nameOfFunction(handler), len(middlewares))
			return nil
		}

		if err := chi.Walk(ar, walkFunc); err != nil {
			logger().Infow("router walk fail", "err", err)
		}
	}
	return s
}

func (s *server) Serve(ctx context.Context) error {
	// Run HTTP server
	runErrChan := make(chan error)
	t := time.AfterFunc(time.Millisecond*200, func() {
		runErrChan <- s.hs.ListenAndServe()
	})

	defer t.Stop()
	logger().Infow("Listen on", "addr", s.hs.Addr)

	// Wait
	for {
		select {
		case runErr := <-runErrChan:
			if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
				logger().Infow("run http server failed",
					"err", runErr,
				)
				return runErr
			}
			return nil
		case <-ctx.Done():
			sctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			if err := s.Stop(sctx); err != nil {
				return err
			}
			logger().Info("http server has been stopped")
			return ctx.Err()
		}
	}
}

func (s *server) Stop(ctx context.Context) error {
	if err := s.hs.Shutdown(ctx); err != nil {
		logger().Infow("server shutdown fail", "err", err)
		return err
	}
	return nil
}
