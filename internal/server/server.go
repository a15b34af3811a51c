package server

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/midbel/pareto"
	"github.com/midbel/pareto/internal/logger"
	"github.com/midbel/pareto/load"
)

const (
	maxBody   = 1 << 20
	maxLength = 10000
)

type Config struct {
	Addr   string
	Width  float64
	Height float64
	Chart  pareto.Chart
}

type Server struct {
	config Config
	router *mux.Router
	http   *http.Server
}

func NewServer(cfg Config) *Server {
	s := &Server{
		config: cfg,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(requestID)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/pareto", s.handlePareto).Methods(http.MethodPost)
}

// Start listens until ctx is cancelled, then shuts the server down.
func (s *Server) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", s.config.Addr)
		errc <- s.http.ListenAndServe()
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(sctx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) handlePareto(w http.ResponseWriter, r *http.Request) {
	log := logger.WithField("request", w.Header().Get(requestHeader))

	width, err := dimension(r, "width", s.config.Width)
	if err != nil {
		log.Warn(err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := dimension(r, "height", s.config.Height)
	if err != nil {
		log.Warn(err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	items, err := load.JSON(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		log.Warn(err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	surface := pareto.NewSurface(width, height)
	s.config.Chart.Render(surface, items)

	var buf bytes.Buffer
	if _, err := surface.WriteTo(&buf); err != nil {
		log.Error(err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	log.Debugf("pareto chart with %d items (%gx%g)", len(items), width, height)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func dimension(r *http.Request, name string, def float64) (float64, error) {
	str := r.URL.Query().Get(name)
	if str == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", name)
	}
	if v <= 0 || v > maxLength {
		return 0, errors.Errorf("%s: %g out of range", name, v)
	}
	return v, nil
}

const requestHeader = "X-Request-Id"

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestHeader, id)
		logger.WithField("request", id).Debugf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
