// Package thumborurl builds URLs for a thumbor-compatible image server.
//
// A thumbor URL encodes the requested transformations (resize, crop,
// flip, filters, output format) as path segments in a fixed canonical
// order, optionally authenticated with an HMAC-SHA1 signature derived
// from a shared security key.
//
// # Basic Usage
//
// Create an endpoint once, then build URLs from it:
//
//	ep := thumborurl.New("http://thumbor.example.com",
//	    thumborurl.WithSecurityKey("my-security-key"))
//
//	url, err := ep.Image("/path/to/image.jpg").
//	    Resize(300, 200).
//	    SmartCrop(true).
//	    Filter(thumborurl.Quality(80)).
//	    URL()
//
// Without a security key the signature segment is the literal "unsafe"
// and the server must be configured to accept unsigned requests:
//
//	ep := thumborurl.New("http://thumbor.example.com")
//	url, _ := ep.Image("image.jpg").Resize(300, 200).URL()
//	// http://thumbor.example.com/unsafe/300x200/image.jpg
//
// # Builder Semantics
//
// Setters mutate the builder and return it for chaining. URL renders
// the current state; calling it repeatedly without intervening setter
// calls yields identical URLs. The builder performs no validation of
// alignment, format, or filter tokens - it serializes whatever it is
// given. The single build-time failure is an unset image path, reported
// as ErrEmptyImagePath.
//
// A builder instance is not safe for concurrent mutation; build one per
// URL or guard it externally.
package thumborurl
