package presets

import "github.com/tendant/simple-thumbor/pkg/thumborurl"

// Transformation Presets
//
// This package provides reusable configuration bundles for common URL
// shapes. Presets eliminate boilerplate while staying composable: they
// are plain builder transforms, applied with Builder.Apply, and later
// setters can still override anything a preset configured.

// Preset is a reusable builder transform.
type Preset = func(*thumborurl.Builder) *thumborurl.Builder

// Thumbnail produces a size x size square, smart-cropped so the
// interesting region of the image survives the crop.
//
// Example:
//
//	url, err := ep.Image("photo.jpg").Apply(presets.Thumbnail(256)).URL()
func Thumbnail(size int) Preset {
	return func(b *thumborurl.Builder) *thumborurl.Builder {
		return b.
			Resize(thumborurl.Dimension(size), thumborurl.Dimension(size)).
			SmartCrop(true)
	}
}

// Avatar is Thumbnail tuned for profile images: square smart crop at a
// quality suitable for small rendering sizes.
func Avatar(size int) Preset {
	return func(b *thumborurl.Builder) *thumborurl.Builder {
		return b.
			Apply(Thumbnail(size)).
			Filter(thumborurl.Quality(85))
	}
}

// WebOptimized re-encodes as WebP at the given quality and strips any
// embedded color profile, the usual setup for page-embedded images.
func WebOptimized(quality int) Preset {
	return func(b *thumborurl.Builder) *thumborurl.Builder {
		return b.
			Filter(thumborurl.StripICC(), thumborurl.Quality(quality)).
			Format(thumborurl.FormatWebP)
	}
}

// MetaProbe requests the metadata document instead of image bytes,
// useful for probing source dimensions before choosing a transform.
func MetaProbe() Preset {
	return func(b *thumborurl.Builder) *thumborurl.Builder {
		return b.MetaDataOnly()
	}
}
