package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/far4599/yt-trim/internal/config"
	"github.com/far4599/yt-trim/internal/models"
	"github.com/far4599/yt-trim/internal/pkg/log"
	"github.com/far4599/yt-trim/internal/repository"
	"github.com/pkg/errors"
)

const (
	sessionCookie = "yt_trim_session"

	progressInterval = 500 * time.Millisecond
	shutdownTimeout  = 10 * time.Second
)

//go:embed templates/*.html
var templatesFS embed.FS

// VideoService is what the web UI needs from the service layer.
type VideoService interface {
	GetVideoInfo(ctx context.Context, url string) (*models.VideoInfo, error)
	Clip(ctx context.Context, req models.DownloadRequest, onProgress models.ProgressFunc) (*models.Clip, error)
}

type Server struct {
	conf     *config.Config
	vs       VideoService
	sessions *repository.SessionRepository
	tmpl     *template.Template

	// progress streams of sessions that never start a download end after this
	idleTimeout time.Duration
}

func NewServer(conf *config.Config, vs VideoService) *Server {
	return &Server{
		conf:        conf,
		vs:          vs,
		sessions:    repository.NewSessionRepository(conf.HTTP.SessionTTL),
		tmpl:        template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		idleTimeout: 10 * time.Second,
	}
}

// Handler returns the routes wrapped with the global middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("POST /video", s.LoadVideo)
	mux.HandleFunc("POST /range", s.UpdateRange)
	mux.HandleFunc("POST /download", s.Download)
	mux.HandleFunc("GET /progress", s.Progress)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return RecoverMiddleware(LoggingMiddleware(LimitBodyMiddleware(mux)))
}

// Run listens until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.conf.HTTP.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Logger.Infow("web ui listening", "addr", s.conf.HTTP.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "web server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down web server")
	}

	return nil
}

// session returns the caller's session and refreshes its cookie.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *models.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}

	sess, _ := s.sessions.Get(id)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(s.conf.HTTP.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}
