package gallery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/renderprop/internal/config"
	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/internal/fixture"
	"github.com/vango-dev/renderprop/pkg/slot"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// Options configures a gallery Server.
type Options struct {
	// Config supplies the fixture directory, gallery, merge, metrics, and
	// tracing settings. Default: config.Default().
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics defaults to NewMetrics with the configured namespace.
	Metrics *Metrics
}

// entry is the last render of one fixture.
type entry struct {
	fixture *fixture.Fixture
	tree    *vdom.VNode
	err     error
}

// Server serves rendered fixtures and pushes reloads when they change.
type Server struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *Metrics
	tracer  tracer
	reload  *ReloadServer
	router  chi.Router

	mu      sync.RWMutex
	entries map[string]*entry
	names   map[string]string // file path -> fixture name

	httpServer *http.Server
}

// New loads every fixture in the configured directory, renders it, and
// builds the gallery routes.
func New(ctx context.Context, opts Options) (*Server, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics(MetricsConfig{Namespace: opts.Config.Metrics.Namespace})
	}

	s := &Server{
		config:  opts.Config,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		tracer:  newTracer(opts.Config.Tracing.TracerName),
		entries: make(map[string]*entry),
		names:   make(map[string]string),
	}
	s.reload = NewReloadServer(s.logger, s.metrics)

	fixtures, err := fixture.LoadDir(s.config.FixturesPath())
	if err != nil {
		return nil, err
	}
	for _, f := range fixtures {
		tree, err := s.render(ctx, f, "load")
		if err != nil {
			s.logger.Warn("fixture failed to render", "fixture", f.Name, "error", err)
		}
		s.entries[f.Name] = &entry{fixture: f, tree: tree, err: err}
		s.names[f.Path] = f.Name
	}
	s.logger.Info("fixtures loaded", "count", len(fixtures), "dir", s.config.FixturesPath())

	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/fixtures/{name}", s.handleFixture)
	r.Get("/_gallery/reload", s.reload.HandleWebSocket)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// Handler returns the gallery's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reloads returns the reload socket server.
func (s *Server) Reloads() *ReloadServer {
	return s.reload
}

// Names returns the loaded fixture names in order.
func (s *Server) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) lookup(name string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[name]
	return e, ok
}

// resolveOptions are the resolver options every gallery render uses.
func (s *Server) resolveOptions() []slot.Option {
	return []slot.Option{
		slot.WithLogger(s.logger),
		slot.WithStrict(s.config.Merge.Strict),
		slot.WithMerger(s.config.Merger(s.logger, nil)),
	}
}

// render resolves f inside a span and records its metrics.
func (s *Server) render(ctx context.Context, f *fixture.Fixture, reason string) (*vdom.VNode, error) {
	_, span := s.tracer.start(ctx, f, reason)
	start := time.Now()
	tree, err := f.Render(s.resolveOptions()...)
	s.metrics.observeRender(f.Variant, start, err)
	end(span, err, reason != "load")
	return tree, err
}

// Reload re-reads the fixture file named by change and reports whether
// its rendered tree changed. Pages are told to reload only when it did.
func (s *Server) Reload(ctx context.Context, change Change) (bool, error) {
	if change.Removed {
		return s.removePath(change.Path), nil
	}

	f, err := fixture.Load(change.Path)
	if err != nil {
		s.logger.Warn("fixture failed to load", "path", change.Path, "error", err)
		s.reload.NotifyError(strings.TrimSuffix(filepath.Base(change.Path), filepath.Ext(change.Path)), err.Error())
		return false, err
	}
	tree, renderErr := s.render(ctx, f, "change")

	s.mu.Lock()
	if old, ok := s.names[f.Path]; ok && old != f.Name {
		delete(s.entries, old)
	}
	prev := s.entries[f.Name]
	s.entries[f.Name] = &entry{fixture: f, tree: tree, err: renderErr}
	s.names[f.Path] = f.Name
	s.mu.Unlock()

	if renderErr != nil {
		s.logger.Warn("fixture failed to render", "fixture", f.Name, "error", renderErr)
		s.reload.NotifyError(f.Name, renderErr.Error())
		return false, renderErr
	}
	if prev != nil && prev.err != nil {
		s.reload.ClearError()
	}

	changed := prev == nil || prev.err != nil || !vdom.Equal(prev.tree, tree)
	if !changed {
		s.logger.Debug("fixture unchanged", "fixture", f.Name)
		return false, nil
	}
	s.logger.Info("fixture changed", "fixture", f.Name, "clients", s.reload.ClientCount())
	s.reload.NotifyReload(f.Name)
	return true, nil
}

func (s *Server) removePath(path string) bool {
	s.mu.Lock()
	name, ok := s.names[path]
	if ok {
		delete(s.names, path)
		delete(s.entries, name)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.logger.Info("fixture removed", "fixture", name)
	s.reload.NotifyReload(name)
	return true
}

// ListenAndServe listens on the configured address and serves until ctx
// is done. With gallery.watch set it also watches the fixture directory.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := s.config.GalleryAddress()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.New("E040").WithDetailf("listen on %s", addr).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.config.Gallery.Watch {
		watcher := NewWatcher(WatcherConfig{Dir: s.config.FixturesPath(), Logger: s.logger})
		watcher.OnChange(func(c Change) {
			s.Reload(ctx, c)
		})
		go func() {
			if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("fixture watcher stopped", "error", err)
			}
		}()
	}

	s.logger.Info("gallery running", "url", "http://"+ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		if err != nil {
			return errors.New("E040").Wrap(err)
		}
		return nil
	}
}

// Stop closes reload connections and shuts the HTTP server down.
func (s *Server) Stop() {
	s.reload.Close()
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// logRequests logs each request once it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
