package thumborurl

import "strings"

// Endpoint is a thumbor server plus the credentials needed to address
// it. Both are fixed at construction; an Endpoint is immutable and safe
// to share across goroutines.
type Endpoint struct {
	serverURL   string
	securityKey []byte
}

// Option is a functional option for configuring an Endpoint
type Option func(*Endpoint)

// WithSecurityKey sets the shared secret used to sign generated URLs.
// Without it every URL carries the "unsafe" signature segment and the
// server must allow unsigned requests.
func WithSecurityKey(key string) Option {
	return func(e *Endpoint) {
		e.securityKey = []byte(key)
	}
}

// New creates an Endpoint for the given server root URL. A trailing
// slash on the URL is trimmed so path segments join cleanly.
func New(serverURL string, opts ...Option) *Endpoint {
	e := &Endpoint{
		serverURL: strings.TrimSuffix(serverURL, "/"),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ServerURL returns the normalized server root.
func (e *Endpoint) ServerURL() string { return e.serverURL }

// IsSigned returns true if URLs from this endpoint carry a real
// signature (a security key is configured).
func (e *Endpoint) IsSigned() bool { return len(e.securityKey) > 0 }

// Image starts a Builder for the given source image path. A single
// leading slash is stripped; no other escaping is applied, the path is
// embedded in the URL as given.
func (e *Endpoint) Image(path string) *Builder {
	return &Builder{
		endpoint:  e,
		imagePath: strings.TrimPrefix(path, "/"),
	}
}
