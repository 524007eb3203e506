package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/simple-thumbor/pkg/thumborurl"
)

type Config struct {
	ServerURL   string `env:"THUMBOR_SERVER" env-default:"http://localhost:8888"`
	SecurityKey string `env:"THUMBOR_SECURITY_KEY" env-default:""`
}

func main() {
	var (
		width   = flag.Int("width", 0, "target width in pixels (0 = proportional)")
		height  = flag.Int("height", 0, "target height in pixels (0 = proportional)")
		fitIn   = flag.Bool("fit-in", false, "fit inside the bounding box instead of cropping")
		smart   = flag.Bool("smart", false, "use content-aware smart cropping")
		flipH   = flag.Bool("flip-h", false, "flip horizontally")
		flipV   = flag.Bool("flip-v", false, "flip vertically")
		hAlign  = flag.String("halign", "", "horizontal crop alignment (left, center, right)")
		vAlign  = flag.String("valign", "", "vertical crop alignment (top, middle, bottom)")
		meta    = flag.Bool("meta", false, "request metadata instead of image bytes")
		format  = flag.String("format", "", "output format (webp, jpeg, png, gif, avif)")
		quality = flag.Int("quality", 0, "output quality 1-100 (0 = server default)")
		crop    = flag.String("crop", "", "manual crop window as left,top,right,bottom")
	)
	var filters multiFlag
	flag.Var(&filters, "filter", "raw filter call, e.g. 'blur(7)' (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <image-path>\n\nComposes a thumbor URL for the given image.\n"+
				"Server and security key come from THUMBOR_SERVER and THUMBOR_SECURITY_KEY.\n\nFlags:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read environment", "err", err)
		os.Exit(1)
	}

	var opts []thumborurl.Option
	if config.SecurityKey != "" {
		opts = append(opts, thumborurl.WithSecurityKey(config.SecurityKey))
	}
	ep := thumborurl.New(config.ServerURL, opts...)

	b := ep.Image(flag.Arg(0))
	if *meta {
		b.MetaDataOnly()
	}
	if *crop != "" {
		var l, t, r, bt int
		if _, err := fmt.Sscanf(*crop, "%d,%d,%d,%d", &l, &t, &r, &bt); err != nil {
			slog.Error("Invalid -crop value, want left,top,right,bottom", "crop", *crop)
			os.Exit(2)
		}
		b.Crop(l, t, r, bt)
	}
	if *fitIn {
		b.FitIn(thumborurl.Dimension(*width), thumborurl.Dimension(*height))
	} else if *width != 0 || *height != 0 {
		b.Resize(thumborurl.Dimension(*width), thumborurl.Dimension(*height))
	}
	if *flipH {
		b.FlipHorizontally()
	}
	if *flipV {
		b.FlipVertically()
	}
	if *hAlign != "" {
		b.WithHAlign(thumborurl.HAlign(*hAlign))
	}
	if *vAlign != "" {
		b.WithVAlign(thumborurl.VAlign(*vAlign))
	}
	b.SmartCrop(*smart)
	if *quality > 0 {
		b.Filter(thumborurl.Quality(*quality))
	}
	for _, f := range filters {
		b.Filter(thumborurl.Filter(f))
	}
	if *format != "" {
		b.Format(thumborurl.ImageFormat(*format))
	}

	url, err := b.URL()
	if err != nil {
		slog.Error("Failed to build URL", "err", err)
		os.Exit(1)
	}

	fmt.Println(url)
}

// multiFlag collects repeated -filter values in order.
type multiFlag []string

func (m *multiFlag) String() string { return fmt.Sprint([]string(*m)) }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
