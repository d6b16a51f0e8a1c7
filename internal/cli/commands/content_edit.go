package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/list"
	"mrconsole/internal/cli/model"
	"mrconsole/internal/cli/upload"
	"mrconsole/internal/cli/wizard"
)

type contentEditCmd struct{}

func (contentEditCmd) Name() string        { return "edit" }
func (contentEditCmd) Description() string { return "Update a content record" }
func (contentEditCmd) Usage() string {
	return "edit <id> [--name <name>] [--type IMAGE|GROUND] [--scale N] [--height N] [--image <file>|-] [--video <file>] [--mask <file>|-]"
}

func (contentEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "content name")
	typ := fs.String("type", "", "render type, IMAGE or GROUND")
	scale := fs.Float64("scale", 0, "scale factor")
	height := fs.Float64("height", -1, "height offset")
	image := fs.String("image", "", "marker image file, or - to remove")
	video := fs.String("video", "", "replacement original video file")
	mask := fs.String("mask", "", "alpha mask video file, or - to remove")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}
	// same bounds as the create flow
	if *scale != 0 && (*scale < wizard.ScaleMin || *scale > wizard.ScaleMax) {
		return fmt.Errorf("scale must be between %.1f and %.0f", wizard.ScaleMin, wizard.ScaleMax)
	}
	if *height > wizard.HeightMax {
		return fmt.Errorf("height must be between %.0f and %.0f", wizard.HeightMin, wizard.HeightMax)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	current, err := a.content.Get(ctx, id)
	if err != nil {
		return err
	}

	form := list.NewEditForm(current)
	if *name != "" {
		form.Name = *name
	}
	if *typ != "" {
		rt := model.RenderType(strings.ToUpper(*typ))
		if rt != model.RenderTypeImage && rt != model.RenderTypeGround {
			return fmt.Errorf("unknown render type %q", *typ)
		}
		form.RenderType = rt
	}
	if *scale > 0 {
		form.Scale = *scale
	}
	if *height >= 0 {
		form.Height = *height
	}

	up := upload.New(a.uploads)
	resolve := func(value, prefix string) (string, error) {
		if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
			return value, nil
		}
		return up.Upload(ctx, value, prefix, upload.EditExpirationMinutes)
	}

	switch *image {
	case "":
	case "-":
		form.RemoveImage()
	default:
		url, err := resolve(*image, upload.PrefixImage)
		if err != nil {
			return err
		}
		form.SetImageURL(url)
	}
	if *video != "" {
		url, err := resolve(*video, upload.PrefixOriginalVideo)
		if err != nil {
			return err
		}
		form.SetOriginalVideoURL(url)
	}
	switch *mask {
	case "":
	case "-":
		form.RemoveMaskVideo()
	default:
		url, err := resolve(*mask, upload.PrefixMaskVideo)
		if err != nil {
			return err
		}
		form.SetMaskVideoURL(url)
	}

	c, err := a.openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	ctrl := list.NewController(a.content, c, a.log)
	it, err := ctrl.SubmitEdit(ctx, form)
	if err != nil {
		a.notifier(ctx).Error("Failed to update content")
		return err
	}

	a.notifier(ctx).Success("Content updated successfully")
	fmt.Fprintf(Out, "Updated %s, status %s\n", it.ID, it.Status)
	return nil
}

func init() { RegisterCmd(contentEditCmd{}) }
