// Command surfdemo samples a composed surface over a pixel grid and
// writes the result as a grayscale image. It is a consumer of the surf
// library: all sampling and encoding lives here, not in the package.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/surf"
)

func main() {
	var (
		width   = flag.Int("width", 512, "image width in pixels")
		height  = flag.Int("height", 512, "image height in pixels")
		output  = flag.String("output", "surface.png", "output file (.png or .bmp)")
		pattern = flag.String("pattern", "demo", "pattern: plain, slope, steps, stripes, checker, rings, ellipse, rectangle, waves, demo")
		period  = flag.Float64("period", 1, "pattern period")
		rotate  = flag.Float64("rotate", 0, "rotation in degrees")
		zoom    = flag.Float64("zoom", 40, "pixels per plane unit")
	)
	flag.Parse()

	s, ok := buildPattern(*pattern, *period)
	if !ok {
		log.Fatalf("unknown pattern %q", *pattern)
	}
	if *rotate != 0 {
		s = surf.Rotate(s, *rotate)
	}

	img := sample(s, *width, *height, *zoom)

	if err := save(img, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s pattern to %s (%dx%d)", *pattern, *output, *width, *height)
}

func buildPattern(name string, period float64) (surf.Surface, bool) {
	switch name {
	case "plain":
		return surf.Plain(), true
	case "slope":
		return surf.Slope(), true
	case "steps":
		return surf.Steps(period), true
	case "stripes":
		return surf.Stripes(period), true
	case "checker":
		return surf.Checker(period), true
	case "rings":
		return surf.Rings(period), true
	case "ellipse":
		return surf.Ellipse(2*period, period), true
	case "rectangle":
		return surf.Rectangle(2*period, period), true
	case "waves":
		// sin(x) lifted into [0, 1].
		return surf.Mul(surf.Add(surf.SinWave(), 1), 0.5), true
	case "demo":
		// Rings masked by a rotated checker, windowed by an ellipse.
		mask := surf.Rotate(surf.Checker(period), 30)
		window := surf.Ellipse(5*period, 3*period)
		return surf.Evaluate(func(vs ...surf.Real) surf.Real {
			return vs[0] * vs[1] * vs[2]
		}, surf.Rings(period), mask, window), true
	}
	return nil, false
}

// sample evaluates the surface at every pixel center, mapping the image
// center to the plane origin, and normalizes the values to 8-bit gray.
func sample(s surf.Surface, width, height int, zoom float64) *image.Gray {
	values := make([]float64, width*height)
	lo, hi := math.Inf(1), math.Inf(-1)

	cx, cy := float64(width)/2, float64(height)/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Image y grows downward; plane y grows upward.
			p := surf.Pt((float64(x)+0.5-cx)/zoom, (cy-float64(y)-0.5)/zoom)
			v := s(p)
			values[y*width+x] = v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	span := hi - lo
	for i, v := range values {
		var g uint8
		switch {
		case math.IsNaN(v):
			g = 0
		case span == 0 || math.IsInf(span, 0):
			if v > 0 {
				g = 255
			}
		default:
			g = uint8(math.Round((v - lo) / span * 255))
		}
		// Gray.Pix is tightly packed for a rectangle anchored at the
		// origin, so the direct index is valid.
		img.Pix[i] = g
	}
	return img
}

func save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.HasSuffix(strings.ToLower(path), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
