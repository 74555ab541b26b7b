// Command saiscale doubles a palette-indexed image with one of the
// edge-adaptive scalers and writes the result as PNG or BMP.
//
//	saiscale -in pic.png -out big.bmp -g supereagle -format rgb555
//	saiscale -in screen.raw -raw 320x200x4 -palette ega -out big.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/32bitkid/sai"
	"github.com/32bitkid/sai/bitmap"
	saiimage "github.com/32bitkid/sai/image"
	"github.com/32bitkid/sai/pixfmt"
	"github.com/32bitkid/sai/screen"
)

func main() {
	in := flag.String("in", "", "input image (png, gif, bmp) or raw index dump")
	out := flag.String("out", "", "output image (png or bmp)")
	param := flag.String("g", screen.ParamName(screen.DefaultID), "scaler: "+paramNames())
	index := flag.Int("index", -1, "scaler by hotkey index 0-9, overrides -g")
	formatName := flag.String("format", pixfmt.RGB565.String(), "intermediate pixel format, e.g. rgb555, rgb565-pc, argb8888")
	raw := flag.String("raw", "", "read -in as packed indices of WxHxDEPTH, e.g. 320x200x4")
	paletteName := flag.String("palette", "ega", "palette for raw and truecolor input: ega or db32")
	verbose := flag.Bool("v", false, "log scaler activity")
	list := flag.Bool("list", false, "list scalers and exit")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	screen.SetLogger(logger)

	if *list {
		for i, info := range screen.Scalers() {
			fmt.Printf("%d  %-10s -g %s\n", i, info.Name, info.Param)
		}
		return
	}

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	id := selectScaler(logger, *param, *index)

	format, err := pixfmt.ParseFormat(*formatName)
	if err != nil {
		log.Fatal(err)
	}

	pal, err := namedPalette(*paletteName)
	if err != nil {
		log.Fatal(err)
	}

	var img *image.RGBA
	if *raw != "" {
		img, err = upscaleRaw(*in, *raw, pal, id, format)
	} else {
		img, err = upscaleImage(*in, pal, id, format)
	}
	if err != nil {
		log.Fatalf("%s: %v", *in, err)
	}

	if err := saiimage.SaveFile(*out, img); err != nil {
		log.Fatal(err)
	}
	logger.Debug("wrote image", "path", *out, "scaler", id.String(), "width", img.Rect.Dx(), "height", img.Rect.Dy())
}

func paramNames() string {
	var names []string
	for _, info := range screen.Scalers() {
		names = append(names, info.Param)
	}
	return strings.Join(names, ", ")
}

// selectScaler resolves the scaler flags. Unknown selections fall back
// to the default scaler.
func selectScaler(logger *slog.Logger, param string, index int) screen.ID {
	var (
		id  screen.ID
		err error
	)
	if index >= 0 {
		id, err = screen.FindByIndex(index)
	} else if id, err = screen.FindByParam(param); err != nil {
		id, err = screen.FindByName(param)
	}
	if err != nil {
		logger.Warn("unknown scaler, using default", "err", err, "default", screen.DefaultID.String())
		return screen.DefaultID
	}
	return id
}

func namedPalette(name string) (color.Palette, error) {
	switch strings.ToLower(name) {
	case "ega":
		return screen.DefaultPalettes.EGA, nil
	case "db32":
		return screen.DefaultPalettes.DB32EGA, nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

func upscaleImage(path string, pal color.Palette, id screen.ID, format pixfmt.Format) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := saiimage.Decode(f)
	if err != nil {
		return nil, err
	}
	return sai.Upscale(saiimage.ToPaletted(img, pal), id, format)
}

func upscaleRaw(path, dims string, pal color.Palette, id screen.ID, format pixfmt.Format) (*image.RGBA, error) {
	var (
		w, h  int
		depth uint
	)
	if _, err := fmt.Sscanf(dims, "%dx%dx%d", &w, &h, &depth); err != nil {
		return nil, fmt.Errorf("bad -raw %q: %w", dims, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bm, err := bitmap.Decode(f, w, h, depth)
	if err != nil {
		return nil, err
	}

	p := screen.NewPalette(screen.Packed565)
	p.SetColors(pal)
	return sai.UpscaleBitmap(bm, p, id, format)
}
