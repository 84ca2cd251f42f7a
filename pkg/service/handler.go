package service

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName is the tracer used when none is configured.
const defaultTracerName = "panekit/service"

// Observer is called once per served request.
type Observer func(id string, status int, elapsed time.Duration)

type handler struct {
	registry *Registry
	tracer   trace.Tracer
	observer Observer
	logger   *slog.Logger
	maxAge   time.Duration
}

// HandlerOption configures the service handler.
type HandlerOption func(*handler)

// WithTracer sets the tracer used for request spans.
func WithTracer(tracer trace.Tracer) HandlerOption {
	return func(h *handler) {
		h.tracer = tracer
	}
}

// WithObserver sets a callback for request metrics.
func WithObserver(observer Observer) HandlerOption {
	return func(h *handler) {
		h.observer = observer
	}
}

// WithHandlerLogger sets the handler logger.
func WithHandlerLogger(logger *slog.Logger) HandlerOption {
	return func(h *handler) {
		h.logger = logger
	}
}

// WithMaxAge sets the Cache-Control max-age. Zero means "no-cache",
// which makes clients revalidate with If-None-Match.
func WithMaxAge(d time.Duration) HandlerOption {
	return func(h *handler) {
		h.maxAge = d
	}
}

// Handler returns an http.Handler serving GET /{id} from reg.
// Mount it under a prefix with chi's Mount.
func Handler(reg *Registry, opts ...HandlerOption) http.Handler {
	h := &handler{
		registry: reg,
		tracer:   otel.Tracer(defaultTracerName),
		logger:   slog.Default().With("component", "service-handler"),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Get("/{id}", h.serve)
	r.Head("/{id}", h.serve)
	return r
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	ctx, span := h.tracer.Start(r.Context(), "panekit.service",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("panekit.service.id", id)),
	)
	defer span.End()

	status := h.write(w, r.WithContext(ctx), id, span)
	span.SetAttributes(attribute.Int("http.status_code", status))

	if h.observer != nil {
		h.observer(id, status, time.Since(start))
	}
}

func (h *handler) write(w http.ResponseWriter, r *http.Request, id string, span trace.Span) int {
	svc, ok := h.registry.Get(id)
	if !ok {
		http.NotFound(w, r)
		return http.StatusNotFound
	}

	data, err := svc.Load(r.Context())
	if err != nil {
		h.logger.Error("service load failed", "id", id, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "service unavailable", http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	etag := contentETag(data)
	w.Header().Set("ETag", etag)
	if h.maxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(h.maxAge.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return http.StatusNotModified
	}

	w.Header().Set("Content-Type", svc.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(data)
	}
	return http.StatusOK
}

// contentETag returns a strong ETag derived from the payload.
func contentETag(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}

// etagMatches reports whether an If-None-Match header matches etag.
// The header may be "*" or a comma-separated list; If-None-Match uses weak
// comparison, so W/ prefixes are ignored.
func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}

// ContentVersion returns a short content hash suitable for cache-busting URLs.
func ContentVersion(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:4])
}
