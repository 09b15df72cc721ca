package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ulule/limiter/v3"
	limitermw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

type M = render.M

func (s *server) strapRouter() {

	s.ar.Get("/ping", handlerPing)
	s.ar.Get("/ws", s.chatSocket)

	s.ar.Route("/api", func(r chi.Router) {
		r.Use(s.limitMw())
		r.Get("/welcome", s.getWelcome)
		r.Get("/history/{sid}", s.getHistory)
		r.Post("/chat", s.postChat)
		r.Post("/chat-{suffix}", s.postChat)
	})

	if s.cfg.DocHandler != nil {
		s.ar.Get("/", s.cfg.DocHandler.ServeHTTP)
		s.ar.NotFound(s.cfg.DocHandler.ServeHTTP)
	}
}

// limitMw guards the API with a per-client rate from the settings.
func (s *server) limitMw() func(next http.Handler) http.Handler {
	rate, err := limiter.NewRateFromFormatted(settings.Current.APIRate)
	if err != nil {
		logger().Infow("bad api rate, limiter disabled", "rate", settings.Current.APIRate, "err", err)
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return limitermw.NewMiddleware(limiter.New(memory.NewStore(), rate)).Handler
}

func handlerPing(w http.ResponseWriter, r *http.Request) {
	render.Data(w, r, []byte("Pong\n"))
}

func apiFail(w http.ResponseWriter, r *http.Request, status int, err interface{}) {
	res := M{
		"status": status,
		"error":  err,
	}
	switch ret := err.(type) {
	case error:
		res["message"] = ret.Error()
	case fmt.Stringer:
		res["message"] = ret.String()
	case string, *string, []byte:
		res["message"] = ret
	}
	render.Status(r, status)
	render.JSON(w, r, res)
}

type RespDone struct {
	Status int `json:"status"`
	Data   any `json:"data,omitempty"`
	Count  int `json:"count,omitempty"`
}

func apiOk(w http.ResponseWriter, r *http.Request, args ...any) {
	res := &RespDone{}
	if len(args) > 0 && args[0] != nil {
		res.Data = args[0]
		if len(args) > 1 {
			if c, ok := args[1].(int); ok {
				res.Count = c
			}
		}
	}

	render.JSON(w, r, res)
}
