package thumborurl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-thumbor/pkg/thumborurl"
)

func TestUnsignedEndpointUsesUnsafeSegment(t *testing.T) {
	ep := thumborurl.New("http://example.com")
	assert.False(t, ep.IsSigned())

	url, err := ep.Image("image.jpg").URL()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/unsafe/image.jpg", url)
}

// Tokens below were generated with thumbor's reference signer:
// HMAC-SHA1 over operationPath+imagePath, URL-safe base64 with padding.
func TestSignedURLs(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		configure func(*thumborurl.Builder) *thumborurl.Builder
		image     string
		expected  string
	}{
		{
			name: "resize",
			key:  "my-security-key",
			configure: func(b *thumborurl.Builder) *thumborurl.Builder {
				return b.Resize(300, 200)
			},
			image:    "image.jpg",
			expected: "http://example.com/qjXs3_UNvhoXhEYcQzf0hy8tIek=/300x200/image.jpg",
		},
		{
			name:      "no directives signs the bare image path",
			key:       "my-security-key",
			configure: func(b *thumborurl.Builder) *thumborurl.Builder { return b },
			image:     "image.jpg",
			expected:  "http://example.com/1HXN_3z4i5w9z31NMX9OyEqYda8=/image.jpg",
		},
		{
			name: "all directives",
			key:  "my-security-key",
			configure: func(b *thumborurl.Builder) *thumborurl.Builder {
				return b.MetaDataOnly().
					Crop(10, 20, 30, 40).
					FitIn(300, 200).
					FlipHorizontally().
					FlipVertically().
					WithHAlign(thumborurl.HAlignLeft).
					WithVAlign(thumborurl.VAlignTop).
					SmartCrop(true).
					Filter(thumborurl.Quality(80)).
					Format(thumborurl.FormatWebP)
			},
			image:    "some/path/img.png",
			expected: "http://example.com/fGVYXAdEX1yotetSGfekZWX3mGk=/meta/10x20:30x40/fit-in/-300x-200/left/top/smart/filters:quality(80):format(webp)/some/path/img.png",
		},
		{
			name: "fit-in with alignment",
			key:  "secret",
			configure: func(b *thumborurl.Builder) *thumborurl.Builder {
				return b.FitIn(100, 0).
					WithHAlign(thumborurl.HAlignLeft).
					WithVAlign(thumborurl.VAlignTop)
			},
			image:    "a.png",
			expected: "http://example.com/u2llNOC9uqgA3pKZ1vlfIdSVPV0=/fit-in/100x0/left/top/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := thumborurl.New("http://example.com",
				thumborurl.WithSecurityKey(tt.key))
			require.True(t, ep.IsSigned())

			url, err := tt.configure(ep.Image(tt.image)).URL()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestSignatureSensitivity(t *testing.T) {
	baseline := thumborurl.New("http://example.com",
		thumborurl.WithSecurityKey("my-security-key")).
		Image("image.jpg").Resize(300, 200).MustURL()

	t.Run("different key changes the token", func(t *testing.T) {
		url := thumborurl.New("http://example.com",
			thumborurl.WithSecurityKey("another-key")).
			Image("image.jpg").Resize(300, 200).MustURL()
		assert.Equal(t, "http://example.com/OSeMD6zzZpJ73MtoQbVAME4kR_U=/300x200/image.jpg", url)
		assert.NotEqual(t, baseline, url)
	})

	t.Run("different configuration changes the token", func(t *testing.T) {
		url := thumborurl.New("http://example.com",
			thumborurl.WithSecurityKey("my-security-key")).
			Image("image.jpg").Resize(301, 200).MustURL()
		assert.Equal(t, "http://example.com/m0U51Mhie5j6TCs7R3F2K48b4hY=/301x200/image.jpg", url)
	})
}

// The raw digest alphabet must stay inside a single path segment.
func TestSignatureTokenIsPathSafe(t *testing.T) {
	ep := thumborurl.New("http://example.com",
		thumborurl.WithSecurityKey("my-security-key"))

	for _, image := range []string{"a.jpg", "b.jpg", "deep/nested/c.png"} {
		url, err := ep.Image(image).Resize(10, 10).URL()
		require.NoError(t, err)

		token := strings.Split(strings.TrimPrefix(url, "http://example.com/"), "/")[0]
		assert.NotEmpty(t, token)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
	}
}
