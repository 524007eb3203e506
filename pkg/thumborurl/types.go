package thumborurl

import "strconv"

// HAlign is the domain type for horizontal crop alignment.
type HAlign string

// Horizontal alignment constants (typed).
const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

// VAlign is the domain type for vertical crop alignment.
type VAlign string

// Vertical alignment constants (typed).
const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// ImageFormat identifies an output encoding understood by the server.
// The builder serializes the token opaquely; it does not validate
// membership, so any format the server supports can be passed through.
type ImageFormat string

// Common output formats (typed).
const (
	FormatWebP ImageFormat = "webp"
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatGIF  ImageFormat = "gif"
	FormatAVIF ImageFormat = "avif"
)

// Dimension is one axis of a resize request, in pixels. Zero means
// proportional (the server derives it from the other axis); the
// DimensionOriginal sentinel keeps the source dimension unchanged.
type Dimension int

// DimensionOriginal renders as the literal "orig" token.
const DimensionOriginal Dimension = -1

func (d Dimension) String() string {
	if d == DimensionOriginal {
		return "orig"
	}
	return strconv.Itoa(int(d))
}

// CropWindow is a manual crop region in source-image pixel coordinates,
// (Left, Top) inclusive top-left corner to (Right, Bottom) corner.
type CropWindow struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewCropWindow validates a crop region. All four coordinates must be
// strictly positive; anything else returns ok=false and the zero
// window. Callers that receive ok=false are expected to skip cropping
// rather than fail - an out-of-range window is not an error.
func NewCropWindow(left, top, right, bottom int) (CropWindow, bool) {
	if left <= 0 || top <= 0 || right <= 0 || bottom <= 0 {
		return CropWindow{}, false
	}
	return CropWindow{Left: left, Top: top, Right: right, Bottom: bottom}, true
}

func (w CropWindow) segment() string {
	return strconv.Itoa(w.Left) + "x" + strconv.Itoa(w.Top) + ":" +
		strconv.Itoa(w.Right) + "x" + strconv.Itoa(w.Bottom)
}
