package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"
)

// customPadding frames a customized export with the style's background.
const customPadding = 16

// Exporter builds the scan URL for a record and writes QR images to disk.
type Exporter struct {
	renderer Renderer
	baseURL  string
}

func NewExporter(renderer Renderer, baseURL string) *Exporter {
	return &Exporter{
		renderer: renderer,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// TargetURL is the link a scanned code resolves to.
func (e *Exporter) TargetURL(refID string) string {
	return e.baseURL + "/ar/" + refID
}

// Download writes the default-style code for refID into dir and returns
// the file path. This is the quick per-card action.
func (e *Exporter) Download(refID, dir string) (string, error) {
	img, err := e.renderer.Render(e.TargetURL(refID), DefaultStyle())
	if err != nil {
		return "", fmt.Errorf("rendering qr for %s: %w", refID, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("qr-%s.png", refID))
	if err := encodePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// Export writes a customized code for refID into dir. The image is
// wrapped in a padded frame of the style's background color so prints
// keep a quiet zone even when the style disables the built-in margin.
func (e *Exporter) Export(refID string, style Style, dir string) (string, error) {
	img, err := e.renderer.Render(e.TargetURL(refID), style)
	if err != nil {
		return "", fmt.Errorf("rendering qr for %s: %w", refID, err)
	}

	bg, err := parseHexColor(style.BgColor)
	if err != nil {
		return "", err
	}
	framed := frame(img, bg, customPadding)

	path := filepath.Join(dir, fmt.Sprintf("qr-%s-custom.png", refID))
	if err := encodePNG(path, framed); err != nil {
		return "", err
	}
	return path, nil
}

// frame copies img onto a larger canvas filled with c.
func frame(img image.Image, c color.NRGBA, pad int) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad))
	draw.Draw(out, out.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(pad, pad, pad+b.Dx(), pad+b.Dy()), img, b.Min, draw.Src)
	return out
}
