// Package requestid tags every HTTP request with a correlation id.
//
// The middleware reuses a valid incoming X-Request-ID header or generates a
// UUIDv4, stores it in the request context and echoes it back in the response.
// LoggerExtractor plugs the id into pkg/logger so every record logged with the
// request context carries "request_id".
package requestid
