package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"mrconsole/internal/config"

	"mrconsole/internal/qr"
)

type qrCmd struct{}

func (qrCmd) Name() string        { return "qr" }
func (qrCmd) Description() string { return "Export the QR code of a content record" }
func (qrCmd) Usage() string {
	return "qr <ref_id> [--preset Standard|Branded|Dark] [--fg #hex] [--bg #hex] [--size N] [--no-margin] [--logo <file>] [--gradient start,end[,direction]] [--out dir]"
}

func (qrCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	refID := args[0]

	fs := flag.NewFlagSet("qr", flag.ContinueOnError)
	fs.SetOutput(Out)
	preset := fs.String("preset", "", "named style: Standard, Branded, Dark")
	fg := fs.String("fg", "", "foreground color")
	bg := fs.String("bg", "", "background color")
	size := fs.Int("size", 0, "rendered size in pixels")
	noMargin := fs.Bool("no-margin", false, "drop the quiet-zone margin")
	logo := fs.String("logo", "", "logo image overlaid at the center")
	gradient := fs.String("gradient", "", "foreground gradient start,end[,direction]")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	style, custom, err := buildStyle(*preset, *fg, *bg, *size, *noMargin, *logo, *gradient)
	if err != nil {
		return err
	}

	exporter := qr.NewExporter(qr.NewPNGRenderer(), cfg.ARLinkBase)
	var path string
	if custom {
		path, err = exporter.Export(refID, style, *out)
	} else {
		path, err = exporter.Download(refID, *out)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %s (%s)\n", path, exporter.TargetURL(refID))
	return nil
}

// buildStyle resolves the preset, then layers explicit flags on top. Any
// deviation from the plain Standard style switches to the custom export.
func buildStyle(preset, fg, bg string, size int, noMargin bool, logo, gradient string) (qr.Style, bool, error) {
	style := qr.DefaultStyle()
	custom := false

	if preset != "" {
		found := false
		for _, p := range qr.Presets() {
			if strings.EqualFold(p.Name, preset) {
				style = p.Style
				found = true
				break
			}
		}
		if !found {
			return qr.Style{}, false, fmt.Errorf("unknown preset %q", preset)
		}
		custom = !strings.EqualFold(preset, "Standard")
	}

	if fg != "" {
		style.FgColor = fg
		custom = true
	}
	if bg != "" {
		style.BgColor = bg
		custom = true
	}
	if size > 0 {
		style.Size = size
		custom = true
	}
	if noMargin {
		style.IncludeMargin = false
		custom = true
	}
	if logo != "" {
		style.LogoPath = logo
		custom = true
	}
	if gradient != "" {
		parts := strings.Split(gradient, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return qr.Style{}, false, fmt.Errorf("gradient must be start,end[,direction]")
		}
		g := qr.Gradient{
			Enabled:    true,
			StartColor: strings.TrimSpace(parts[0]),
			EndColor:   strings.TrimSpace(parts[1]),
			Direction:  qr.GradientHorizontal,
		}
		if len(parts) == 3 {
			switch qr.GradientDirection(strings.TrimSpace(parts[2])) {
			case qr.GradientHorizontal:
				g.Direction = qr.GradientHorizontal
			case qr.GradientVertical:
				g.Direction = qr.GradientVertical
			case qr.GradientDiagonal:
				g.Direction = qr.GradientDiagonal
			default:
				return qr.Style{}, false, fmt.Errorf("unknown gradient direction %q", parts[2])
			}
		}
		style.Gradient = g
		custom = true
	}
	return style, custom, nil
}

func init() { RegisterCmd(qrCmd{}) }
