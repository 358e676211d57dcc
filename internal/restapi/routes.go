package restapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/julienschmidt/httprouter"

	"bmiguide.healthguide.org/internal/logging"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// keyed wraps an API endpoint: metrics, then rate limiting, then the key check.
func (api *RestAPI) keyed(route string, h handlerFunc) http.Handler {
	var handler http.Handler = validateAPIKey(api, h)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	return api.Metrics.Middleware(route, handler)
}

// SetRoutes registers every endpoint on the router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/v1/bmi.json", api.keyed("bmi", api.bmiHandler))
	router.Handler(http.MethodPost, "/api/v1/bmi.json", api.keyed("bmi", api.bmiPostHandler))
	router.Handler(http.MethodGet, "/api/v1/categories.json", api.keyed("categories", api.categoriesHandler))
	router.Handler(http.MethodGet, "/api/v1/category/:id", api.keyed("category", api.categoryHandler))
	router.Handler(http.MethodGet, "/api/v1/healthy-range.json", api.keyed("healthy_range", api.healthyRangeHandler))
	router.Handler(http.MethodGet, "/api/v1/scale.json", api.keyed("scale", api.scaleHandler))
	router.Handler(http.MethodGet, "/api/v1/guide.json", api.keyed("guide", api.guideHandler))
	router.Handler(http.MethodGet, "/api/v1/current-time.json", api.keyed("current_time", api.currentTimeHandler))

	router.HandlerFunc(http.MethodGet, "/healthz", api.healthzHandler)
	if api.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())
	}

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.sendMethodNotAllowed)
	router.PanicHandler = api.recoverPanic
}

func (api *RestAPI) recoverPanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	logging.LogError(api.logger(r), "panic while serving request", nil,
		slog.String("panic", fmt.Sprint(recovered)),
		slog.String("path", r.URL.Path))
	api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", recovered))
}

// Handler builds the router wrapped in the server-wide middleware chain.
// extra registers additional routes, such as the debug pages.
func (api *RestAPI) Handler(extra ...func(*httprouter.Router)) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	for _, register := range extra {
		register(router)
	}

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.logger(nil))(handler)
	handler = RequestIDMiddleware(handler)
	// Trust X-Forwarded-For and X-Real-IP so logs carry the client address behind a proxy.
	handler = handlers.ProxyHeaders(handler)
	return handler
}
