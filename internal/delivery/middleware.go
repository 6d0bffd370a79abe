package delivery

import (
	"net/http"

	"github.com/Vovarama1992/museo/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestMetrics counts requests by matched route pattern, so path
// parameters do not explode label cardinality.
func RequestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		metrics.RecordRequest(r.Method, route, ww.Status())
	})
}

// RecoverJSON is middleware.Recoverer with a JSON body, so a panicking
// handler still answers with the usual failure envelope.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			middleware.PrintPrettyStack(rvr)
			writeFail(w, http.StatusInternalServerError, "Error interno del servidor")
		}()
		next.ServeHTTP(w, r)
	})
}
