package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// logoFraction is the logo footprint relative to the rendered side.
const logoFraction = 0.20

// Renderer rasterizes a QR payload under a given style.
type Renderer interface {
	Render(content string, style Style) (image.Image, error)
}

// PNGRenderer draws module-by-module so a gradient can tint each module
// individually instead of recoloring a finished bitmap.
type PNGRenderer struct{}

func NewPNGRenderer() *PNGRenderer { return &PNGRenderer{} }

func (r *PNGRenderer) Render(content string, style Style) (image.Image, error) {
	code, err := qrcode.New(content, qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("encoding qr payload: %w", err)
	}
	code.DisableBorder = !style.IncludeMargin

	bg, err := parseHexColor(style.BgColor)
	if err != nil {
		return nil, err
	}
	fg, err := parseHexColor(style.FgColor)
	if err != nil {
		return nil, err
	}
	var gradStart, gradEnd color.NRGBA
	if style.Gradient.Enabled {
		gradStart, err = parseHexColor(style.Gradient.StartColor)
		if err != nil {
			return nil, err
		}
		gradEnd, err = parseHexColor(style.Gradient.EndColor)
		if err != nil {
			return nil, err
		}
	}

	bitmap := code.Bitmap()
	modules := len(bitmap)
	if modules == 0 {
		return nil, fmt.Errorf("encoding qr payload: empty matrix")
	}

	size := clampSize(style.Size)
	scale := size / modules
	if scale < 1 {
		scale = 1
	}
	side := modules * scale

	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for y := 0; y < modules; y++ {
		for x := 0; x < modules; x++ {
			if !bitmap[y][x] {
				continue
			}
			c := fg
			if style.Gradient.Enabled {
				c = lerpColor(gradStart, gradEnd, gradientPos(style.Gradient.Direction, x, y, modules))
			}
			rect := image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
			draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	if style.LogoPath != "" {
		if err := overlayLogo(img, style.LogoPath); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// gradientPos maps a module coordinate to the interpolation parameter.
func gradientPos(dir GradientDirection, x, y, modules int) float64 {
	span := float64(modules - 1)
	if span <= 0 {
		return 0
	}
	switch dir {
	case GradientVertical:
		return float64(y) / span
	case GradientDiagonal:
		return float64(x+y) / (2 * span)
	default:
		return float64(x) / span
	}
}

// overlayLogo scales the logo to a fixed fraction of the code and draws
// it centered. Modules underneath stay readable because the error
// correction level is High.
func overlayLogo(dst *image.NRGBA, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening logo: %w", err)
	}
	defer f.Close()

	logo, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding logo %s: %w", path, err)
	}

	side := dst.Bounds().Dx()
	target := int(float64(side) * logoFraction)
	if target < 1 {
		target = 1
	}
	lb := logo.Bounds()
	w, h := target, target
	if lb.Dx() > lb.Dy() {
		h = target * lb.Dy() / lb.Dx()
	} else if lb.Dy() > lb.Dx() {
		w = target * lb.Dx() / lb.Dy()
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	x0 := (side - w) / 2
	y0 := (side - h) / 2
	rect := image.Rect(x0, y0, x0+w, y0+h)
	xdraw.ApproxBiLinear.Scale(dst, rect, logo, lb, xdraw.Over, nil)
	return nil
}

// encodePNG writes img to path, creating or truncating the file.
func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
