package commands

import (
	"context"
	"flag"
	"fmt"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/model"
	"mrconsole/internal/cli/upload"
	"mrconsole/internal/cli/wizard"
	"mrconsole/internal/media"
)

type contentCreateCmd struct{}

func (contentCreateCmd) Name() string        { return "create" }
func (contentCreateCmd) Description() string { return "Create a content record from local assets" }
func (contentCreateCmd) Usage() string {
	return "create --name <name> --video <file> [--type IMAGE|GROUND] [--scale N] [--height N] [--image <file>] [--mask <file>]"
}

func (contentCreateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "content name")
	typ := fs.String("type", string(model.RenderTypeGround), "render type, IMAGE or GROUND")
	scale := fs.Float64("scale", 1.0, "scale factor")
	height := fs.Float64("height", 0, "height offset, GROUND only")
	video := fs.String("video", "", "original video file")
	mask := fs.String("mask", "", "alpha mask video file, must match the original")
	image := fs.String("image", "", "marker image file")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 || *name == "" || *video == "" {
		return ErrUsage
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	validator := media.NewValidator(media.NewProbe(cfg.FFProbePath))
	form := wizard.New(validator)

	form.SetName(*name)
	if err := form.SetRenderType(model.RenderType(*typ)); err != nil {
		return err
	}
	if !form.SetScale(*scale) {
		return fmt.Errorf("scale must be between %.1f and %.0f", wizard.ScaleMin, wizard.ScaleMax)
	}
	if !form.SetHeight(*height) {
		return fmt.Errorf("height must be between %.0f and %.0f", wizard.HeightMin, wizard.HeightMax)
	}
	if err := form.Next(); err != nil {
		return err
	}

	if err := validator.CheckFormat(*video); err != nil {
		return fmt.Errorf("original video: %w", err)
	}
	form.SetOriginalVideo(*video)
	if *image != "" {
		form.SetImage(*image)
	}
	if *mask != "" {
		if err := form.SetMaskVideo(ctx, *mask); err != nil {
			return fmt.Errorf("mask video: %w", err)
		}
	}
	if err := form.Next(); err != nil {
		return err
	}

	it, err := wizard.NewSubmitter(upload.New(a.uploads), a.content).Submit(ctx, form)
	if err != nil {
		return err
	}

	a.notifier(ctx).Success("Content created successfully")
	fmt.Fprintf(Out, "Created %s (ref %s), status %s\n", it.ID, it.RefID, it.Status)
	return nil
}

func init() { RegisterCmd(contentCreateCmd{}) }
