// Package handler adapts typed handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already populated by
// binders, and returns a Response. Wrap glues the two together:
//
//	r.Get("/panels/{id}", handler.Wrap(s.showPanel,
//		handler.WithBinders[handler.Context, PanelRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, PanelRequest](s.errorHandler),
//	))
//
// Responses:
//
//   - Templ / TemplPartial render templ components, as DataStar SSE element
//     patches for DataStar requests and as HTML otherwise.
//   - JSON / JSONError write the {"data"} / {"error"} envelope.
//   - Empty writes a bare status, 204 by default.
//   - Error defers to the route's error handler.
//
// Errors carry their status through HTTPError and ValidationError;
// NewErrorHandler classifies them, logs with slog, and renders an error page
// or a toast.
package handler
