// Package kernel assembles the HTTP surface: the global middleware stack,
// the operational endpoints and the application routes.
package kernel

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/kusina/app/routes"
	"github.com/shashiranjanraj/kusina/config"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/metrics"
	"github.com/shashiranjanraj/kusina/pkg/middleware"
	"github.com/shashiranjanraj/kusina/pkg/reqid"
	"github.com/shashiranjanraj/kusina/pkg/response"
	"github.com/shashiranjanraj/kusina/pkg/router"
	"github.com/shashiranjanraj/kusina/pkg/session"
	"github.com/shashiranjanraj/kusina/pkg/storage"
)

type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel builds the router with the full middleware stack and all
// routes mounted. Metrics wraps everything so even panics show up in the
// request counters; recovery sits right underneath it.
func NewHTTPKernel(c routes.Controllers) *HTTPKernel {
	r := router.New()

	sessOpts := session.DefaultOptions()
	sessOpts.TTL = config.CartTTL()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		session.Middleware(sessOpts),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.Get("/", "root", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"app": "kusina", "status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())
	r.HandleFunc("/uploads/*", serveUpload)

	routes.RegisterAPI(r, c)

	return &HTTPKernel{router: r}
}

// Handler returns the composed http.Handler.
func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Routes lists the mounted routes, for the route:list command.
func (k *HTTPKernel) Routes() []router.RouteInfo {
	return k.router.Routes()
}

// serveUpload streams a stored file. Image paths are written by the
// catalogue service as content-hash names, so aggressive caching is safe.
func serveUpload(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if path == "" || strings.Contains(path, "..") {
		response.NotFound(w)
		return
	}

	stream, err := storage.GetStream(path)
	if err != nil {
		response.NotFound(w)
		return
	}
	defer stream.Close() //nolint:errcheck

	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := io.Copy(w, stream); err != nil {
		logger.WithCtx(r.Context()).Warn("upload stream interrupted", "path", path, "error", err)
	}
}
