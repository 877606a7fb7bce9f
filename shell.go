package pageshell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/jackielii/pageshell"

// DocumentFunc wraps the shell in a complete HTML document.
type DocumentFunc func(title string, body templ.Component) templ.Component

// Observer is told about every shell render. route is empty when no route matched.
type Observer interface {
	ObserveRender(route string, elapsed time.Duration, err error)
}

// Shell composes the header with the page selected for the current path.
type Shell struct {
	table       *RouteTable
	header      templ.Component
	document    DocumentFunc
	siteTitle   string
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []func(http.Handler) http.Handler
	logger      *slog.Logger
	observer    Observer
	tracer      trace.Tracer
	handler     http.Handler
}

type Option func(*Shell)

func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(s *Shell) {
		s.onError = onError
	}
}

// WithMiddlewares wraps ServeHTTP. The first middleware is the outermost.
func WithMiddlewares(middlewares ...func(http.Handler) http.Handler) Option {
	return func(s *Shell) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

func WithObserver(o Observer) Option {
	return func(s *Shell) {
		s.observer = o
	}
}

// WithDocument replaces the default HTML document used by ServeHTTP.
func WithDocument(doc DocumentFunc) Option {
	return func(s *Shell) {
		s.document = doc
	}
}

// WithSiteTitle sets the document title. A selected route's title is prepended to it.
func WithSiteTitle(title string) Option {
	return func(s *Shell) {
		s.siteTitle = title
	}
}

// New builds a shell over table. A nil header renders nothing.
func New(table *RouteTable, header templ.Component, options ...Option) (*Shell, error) {
	if table == nil {
		return nil, errors.New("pageshell: nil route table")
	}
	if header == nil {
		header = templ.NopComponent
	}
	s := &Shell{
		table:    table,
		header:   header,
		document: defaultDocument,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.onError == nil {
		s.onError = s.defaultErrorHandler
	}
	for _, sh := range table.Shadowed() {
		s.logger.Warn("unreachable route", "route", sh.Entry.Name, "pattern", sh.Entry.Pattern,
			"shadowed_by", sh.By.Name)
	}

	var h http.Handler = http.HandlerFunc(s.serve)
	for _, mw := range slices.Backward(s.middlewares) {
		h = mw(h)
	}
	s.handler = h
	return s, nil
}

// Routes returns the shell's route table.
func (s *Shell) Routes() *RouteTable {
	return s.table
}

// Select returns the route chosen for path.
func (s *Shell) Select(path string) (RouteEntry, bool) {
	return s.table.Select(path)
}

// Component renders the header followed by the page region for path.
// The region is present but empty when no route matches.
func (s *Shell) Component(path string) templ.Component {
	return s.withState(path, func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="App">`); err != nil {
			return err
		}
		if err := s.header.Render(ctx, w); err != nil {
			return fmt.Errorf("render header: %w", err)
		}
		if err := renderRegion(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Region renders the page region element for path, without the header. It replaces
// the whole region on htmx navigation, so its attributes follow the selected route.
func (s *Shell) Region(path string) templ.Component {
	return s.withState(path, renderRegion)
}

// Document renders Component wrapped in the HTML document.
func (s *Shell) Document(path string) templ.Component {
	return s.document(s.Title(path), s.Component(path))
}

// Title is the document title for path.
func (s *Shell) Title(path string) string {
	title := s.siteTitle
	if e, ok := s.table.Select(path); ok && e.Title != "" {
		title = e.Title
		if s.siteTitle != "" {
			title += " | " + s.siteTitle
		}
	}
	return title
}

// Render writes Component(path) to w.
func (s *Shell) Render(ctx context.Context, w io.Writer, path string) error {
	return s.render(ctx, w, path, s.Component(path))
}

// Mount registers the shell for every GET path on router.
func (s *Shell) Mount(router Router) {
	router.HandleMethod(http.MethodGet, "/", s)
}

func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Shell) serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	var comp templ.Component
	if isPartial(r) {
		comp = s.partial(path)
	} else {
		comp = s.Document(path)
	}
	bw := newBuffered(w)
	if err := s.render(r.Context(), bw, path, comp); err != nil {
		bw.reset()
		s.onError(bw, r, err)
	} else {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Add("Vary", "HX-Request")
	}
	if err := bw.close(); err != nil {
		s.logger.DebugContext(r.Context(), "write response", "path", path, "error", err)
	}
}

// partial is the htmx response for a region swap. htmx takes the title from it.
func (s *Shell) partial(path string) templ.Component {
	region := s.Region(path)
	title := s.Title(path)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<title>`+templ.EscapeString(title)+`</title>`); err != nil {
			return err
		}
		return region.Render(ctx, w)
	})
}

func (s *Shell) render(ctx context.Context, w io.Writer, path string, comp templ.Component) error {
	start := time.Now()
	entry, ok := s.table.Select(path)
	var route string
	if ok {
		route = entry.Name
	}
	ctx, span := s.tracer.Start(ctx, "pageshell.render", trace.WithAttributes(
		attribute.String("pageshell.path", path),
		attribute.String("pageshell.route", route),
	))
	defer span.End()

	err := comp.Render(ctx, w)
	if err != nil {
		err = fmt.Errorf("render %s: %w", path, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	elapsed := time.Since(start)
	if s.observer != nil {
		s.observer.ObserveRender(route, elapsed, err)
	}
	s.logger.DebugContext(ctx, "render", "path", path, "route", route, "matched", ok, "elapsed", elapsed)
	return err
}

func (s *Shell) withState(path string, fn func(context.Context, io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(withRenderState(ctx, s.table, path), w)
	})
}

func (s *Shell) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func renderRegion(ctx context.Context, w io.Writer) error {
	entry, ok := CurrentRoute(ctx)
	open := `<main id="` + PageRegionID + `">`
	if ok {
		open = `<main id="` + PageRegionID + `" data-route="` + templ.EscapeString(entry.Name) + `">`
	}
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}
	if ok {
		if err := entry.Component().Render(ctx, w); err != nil {
			return fmt.Errorf("render page %s: %w", entry.Name, err)
		}
	}
	_, err := io.WriteString(w, `</main>`)
	return err
}

func defaultDocument(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html><head><meta charset="utf-8"><title>` +
			templ.EscapeString(title) + `</title></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
