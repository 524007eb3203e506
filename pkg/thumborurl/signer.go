package thumborurl

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// signatureUnsafe is the sentinel signature segment for unsigned URLs.
const signatureUnsafe = "unsafe"

// sign computes the signature segment for operationPath+imagePath.
// With no security key the segment is the literal "unsafe". Otherwise
// it is the HMAC-SHA1 digest of the message keyed by the security key,
// encoded as URL-safe base64 ("+"/"/" become "-"/"_", "=" padding
// kept), matching thumbor's own signer.
func (e *Endpoint) sign(message string) string {
	if len(e.securityKey) == 0 {
		return signatureUnsafe
	}

	mac := hmac.New(sha1.New, e.securityKey)
	mac.Write([]byte(message))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
