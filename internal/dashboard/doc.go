// Package dashboard serves chart panels from a YAML catalog together with the
// user form.
//
// Routes:
//
//	GET  /                     every panel
//	GET  /panels/{id}          one panel (DataStar patch or full page)
//	GET  /panels/{id}/config   derived Chart.js config as JSON
//	POST /panels/{id}/events   click and double-click events from the browser
//	GET  /users/new            empty user form
//	POST /users                validate the user form, re-render with messages
//	GET  /health               readiness probe
//	GET  /metrics              Prometheus metrics
package dashboard
