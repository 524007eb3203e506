package thumborurl

import (
	"fmt"
	"strconv"
)

// Filter is a single pre-formatted filter invocation, e.g.
// "quality(80)". The builder serializes filters verbatim; the typed
// constructors below cover the common thumbor filter vocabulary, and a
// raw Filter("name(args)") works for anything they do not.
type Filter string

// Quality sets JPEG/WebP output quality, 0-100.
func Quality(percent int) Filter {
	return Filter("quality(" + strconv.Itoa(percent) + ")")
}

// Brightness shifts pixel brightness by a -100..100 percentage.
func Brightness(amount int) Filter {
	return Filter("brightness(" + strconv.Itoa(amount) + ")")
}

// Contrast shifts contrast by a -100..100 percentage.
func Contrast(amount int) Filter {
	return Filter("contrast(" + strconv.Itoa(amount) + ")")
}

// Noise adds the given percentage of random noise.
func Noise(amount int) Filter {
	return Filter("noise(" + strconv.Itoa(amount) + ")")
}

// RGB shifts each channel by a -100..100 percentage.
func RGB(r, g, b int) Filter {
	return Filter(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

// RoundCorner rounds the image corners with the given radius, filling
// the cut corners with the given background color.
func RoundCorner(radius, r, g, b int) Filter {
	return Filter(fmt.Sprintf("round_corner(%d,%d,%d,%d)", radius, r, g, b))
}

// Watermark overlays another image at (x, y) with the given
// transparency percentage. The image argument is a URL or path the
// server can fetch.
func Watermark(image string, x, y, transparency int) Filter {
	return Filter(fmt.Sprintf("watermark(%s,%d,%d,%d)", image, x, y, transparency))
}

// Sharpen applies an unsharp mask. amount is the sharpen strength,
// radius the detection radius in pixels; luminanceOnly restricts the
// effect to the luminance channel.
func Sharpen(amount, radius float64, luminanceOnly bool) Filter {
	return Filter(fmt.Sprintf("sharpen(%s,%s,%t)",
		formatFloat(amount), formatFloat(radius), luminanceOnly))
}

// Fill sets the background color used when the transform leaves empty
// space (fit-in letterboxing, transparent sources). color is a hex
// value without "#", or "auto"/"blur".
func Fill(color string) Filter {
	return Filter("fill(" + color + ")")
}

// Blur applies gaussian blur with the given radius in pixels.
func Blur(radius int) Filter {
	return Filter("blur(" + strconv.Itoa(radius) + ")")
}

// Grayscale converts the image to grayscale.
func Grayscale() Filter { return "grayscale()" }

// Equalize normalizes the image histogram.
func Equalize() Filter { return "equalize()" }

// StripICC removes any embedded ICC color profile.
func StripICC() Filter { return "strip_icc()" }

// NoUpscale prevents the server from scaling the image above its
// source dimensions.
func NoUpscale() Filter { return "no_upscale()" }

// Rotate rotates the image by the given angle in degrees, which
// thumbor requires to be a multiple of 90.
func Rotate(degrees int) Filter {
	return Filter("rotate(" + strconv.Itoa(degrees) + ")")
}

// Proportion scales the output by a 0..1 factor of the computed size.
func Proportion(factor float64) Filter {
	return Filter("proportion(" + formatFloat(factor) + ")")
}

// FormatFilter sets the output encoding. Builder.Format is the usual
// entry point; this exists for composing filter lists directly.
func FormatFilter(format ImageFormat) Filter {
	return Filter("format(" + string(format) + ")")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
