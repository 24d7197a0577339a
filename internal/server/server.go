package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/assets"
)

// Sentinel errors for server operations.
var (
	ErrNilRenderer  = errors.New("renderer cannot be nil")
	ErrPageTemplate = errors.New("failed to load preview page")
)

// MaxBodySize caps request bodies.
const MaxBodySize = 1 << 20

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Renderer is the conversion surface the server exposes.
type Renderer interface {
	Preview(ctx context.Context, markdown string) string
	ClipboardHTML(ctx context.Context, input md2word.Input) (string, error)
	Convert(ctx context.Context, input md2word.Input) (*md2word.Result, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*md2word.Converter)(nil)

// Options configures a Server.
type Options struct {
	Addr     string             // listen address, host:port
	CacheTTL time.Duration      // preview cache TTL (0 = no cache)
	Title    string             // default document title
	Style    md2word.Style      // default style for requests without one
	Logger   logrus.FieldLogger // nil = discard
	Assets   assets.AssetLoader // nil = embedded templates
}

// Server serves the preview page and the conversion endpoints.
type Server struct {
	renderer Renderer
	opts     Options
	log      logrus.FieldLogger
	cache    *previewCache
	page     *template.Template
	router   chi.Router
}

// New builds a Server. The preview page template is loaded and parsed once.
func New(renderer Renderer, opts Options) (*Server, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.Assets == nil {
		opts.Assets = assets.NewEmbeddedLoader()
	}

	src, err := opts.Assets.LoadTemplate(assets.PreviewPage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}
	page, err := template.New(assets.PreviewPage).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}

	s := &Server{
		renderer: renderer,
		opts:     opts,
		log:      opts.Logger.WithField("component", "server"),
		cache:    newPreviewCache(opts.CacheTTL),
		page:     page,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/", s.handlePage)
	r.Get("/healthz", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/preview", s.handlePreview)
		r.Post("/clipboard", s.handleClipboard)
		r.Post("/docx", s.handleDocx)
	})

	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe listens on Options.Addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully, letting in-flight requests finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.WithField("addr", ln.Addr().String()).Info("preview server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("preview server stopped")
	return nil
}
