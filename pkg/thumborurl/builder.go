package thumborurl

import "strings"

// Builder accumulates transformation directives for one image and
// renders them into a signed (or unsafe) URL. Setters return the
// builder itself for chaining; none of them fail. The zero-value
// builder is not usable - obtain one from Endpoint.Image.
type Builder struct {
	endpoint *Endpoint

	imagePath string
	width     Dimension
	height    Dimension
	smart     bool
	fitIn     bool
	flipH     bool
	flipV     bool
	hAlign    HAlign
	vAlign    VAlign
	crop      CropWindow
	hasCrop   bool
	metaOnly  bool
	filters   []Filter
}

// SetImagePath replaces the source image path, stripping a single
// leading slash. No other escaping is applied.
func (b *Builder) SetImagePath(path string) *Builder {
	b.imagePath = strings.TrimPrefix(path, "/")
	return b
}

// Resize requests the image be scaled to width x height. Zero on
// either axis means proportional; DimensionOriginal keeps that axis
// unchanged. Overwrites dimensions from any earlier Resize or FitIn
// call. It does not clear the fit-in flag - FitIn is sticky once set.
func (b *Builder) Resize(width, height Dimension) *Builder {
	b.width = width
	b.height = height
	return b
}

// FitIn requests the image be scaled to fit inside a width x height
// bounding box, preserving aspect ratio without exceeding either
// dimension. Dimension semantics match Resize.
func (b *Builder) FitIn(width, height Dimension) *Builder {
	b.fitIn = true
	return b.Resize(width, height)
}

// SmartCrop toggles content-aware cropping, letting the server pick
// the crop region with its detection heuristics.
func (b *Builder) SmartCrop(enabled bool) *Builder {
	b.smart = enabled
	return b
}

// FlipHorizontally mirrors the image on its vertical axis.
func (b *Builder) FlipHorizontally() *Builder {
	b.flipH = true
	return b
}

// FlipVertically mirrors the image on its horizontal axis.
func (b *Builder) FlipVertically() *Builder {
	b.flipV = true
	return b
}

// WithHAlign sets the horizontal crop alignment. The token is
// serialized as given, without membership validation.
func (b *Builder) WithHAlign(align HAlign) *Builder {
	b.hAlign = align
	return b
}

// WithVAlign sets the vertical crop alignment.
func (b *Builder) WithVAlign(align VAlign) *Builder {
	b.vAlign = align
	return b
}

// MetaDataOnly asks the server for the image's metadata document
// instead of the transformed image bytes.
func (b *Builder) MetaDataOnly() *Builder {
	b.metaOnly = true
	return b
}

// Crop sets a manual crop window. A window with any non-positive
// coordinate is silently ignored and the builder is left unchanged;
// thumbor treats such windows as absent rather than invalid.
func (b *Builder) Crop(left, top, right, bottom int) *Builder {
	if w, ok := NewCropWindow(left, top, right, bottom); ok {
		b.crop = w
		b.hasCrop = true
	}
	return b
}

// Filter appends filter calls in order. Calls accumulate across
// invocations, duplicates included; there is no way to remove one.
// The builder does not check filter syntax - use the typed
// constructors (Quality, Fill, ...) or pass well-formed "name(args)"
// strings.
func (b *Builder) Filter(filters ...Filter) *Builder {
	b.filters = append(b.filters, filters...)
	return b
}

// Format is shorthand for Filter(FormatFilter(format)).
func (b *Builder) Format(format ImageFormat) *Builder {
	return b.Filter(FormatFilter(format))
}

// Apply runs preset transform functions over the builder, enabling
// reusable configuration bundles (see the presets package).
func (b *Builder) Apply(presets ...func(*Builder) *Builder) *Builder {
	for _, p := range presets {
		if p == nil {
			continue
		}
		b = p(b)
	}
	return b
}

// operationPath renders the accumulated directives as "/"-joined
// segments with a trailing slash, or "" when nothing is set. Segment
// order is the canonical thumbor order and is independent of the
// order setters were called in:
// meta, crop, fit-in, size, halign, valign, smart, filters.
func (b *Builder) operationPath() string {
	var segments []string

	if b.metaOnly {
		segments = append(segments, "meta")
	}
	if b.hasCrop {
		segments = append(segments, b.crop.segment())
	}
	if b.fitIn {
		segments = append(segments, "fit-in")
	}
	if b.width != 0 || b.height != 0 || b.flipH || b.flipV {
		var size strings.Builder
		if b.flipH {
			size.WriteByte('-')
		}
		size.WriteString(b.width.String())
		size.WriteByte('x')
		if b.flipV {
			size.WriteByte('-')
		}
		size.WriteString(b.height.String())
		segments = append(segments, size.String())
	}
	if b.hAlign != "" {
		segments = append(segments, string(b.hAlign))
	}
	if b.vAlign != "" {
		segments = append(segments, string(b.vAlign))
	}
	if b.smart {
		segments = append(segments, "smart")
	}
	if len(b.filters) > 0 {
		parts := make([]string, 0, len(b.filters)+1)
		parts = append(parts, "filters")
		for _, f := range b.filters {
			parts = append(parts, string(f))
		}
		segments = append(segments, strings.Join(parts, ":"))
	}

	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, "/") + "/"
}

// URL renders the final URL: server root, signature segment, operation
// path, then the image path. It fails only when the image path is
// empty. URL is a pure function of the current state, so repeated
// calls without intervening setters return identical strings.
func (b *Builder) URL() (string, error) {
	if b.imagePath == "" {
		return "", ErrEmptyImagePath
	}

	op := b.operationPath()
	token := b.endpoint.sign(op + b.imagePath)

	return b.endpoint.serverURL + "/" + token + "/" + op + b.imagePath, nil
}

// MustURL is URL but panics on error. Intended for statically-known
// configurations such as presets and tests.
func (b *Builder) MustURL() string {
	u, err := b.URL()
	if err != nil {
		panic(err)
	}
	return u
}
