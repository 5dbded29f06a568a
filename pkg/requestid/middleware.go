package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures the middleware.
type Option func(*options)

type options struct {
	generate func() string
	trust    bool
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.generate = gen
		}
	}
}

// WithTrustHeader controls whether a valid incoming X-Request-ID is reused.
// Enabled by default.
func WithTrustHeader(trust bool) Option {
	return func(o *options) { o.trust = trust }
}

// Middleware attaches a request id with the default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// New returns middleware that stores a request id in the request context and
// echoes it in the X-Request-ID response header.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := &options{generate: uuid.NewString, trust: true}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if !o.trust || !IsValid(id) {
				id = o.generate()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// IsValid reports whether id is a non-empty token of at most 128 characters
// from [A-Za-z0-9_-].
func IsValid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
