package commands

import (
	"context"
	"fmt"

	"mrconsole/internal/config"
)

type contentGetCmd struct{}

func (contentGetCmd) Name() string        { return "get" }
func (contentGetCmd) Description() string { return "Show one content record" }
func (contentGetCmd) Usage() string       { return "get <id>" }

func (contentGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	it, err := a.content.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "ID:       %s\n", it.ID)
	fmt.Fprintf(Out, "Name:     %s\n", it.Name)
	fmt.Fprintf(Out, "Ref:      %s\n", it.RefID)
	fmt.Fprintf(Out, "Type:     %s\n", it.TypeLabel())
	fmt.Fprintf(Out, "Status:   %s\n", it.Status)
	fmt.Fprintf(Out, "Scale:    %.2f\n", it.Scale)
	fmt.Fprintf(Out, "Height:   %.2f\n", it.Height)
	if it.ImagesOriginal != "" {
		fmt.Fprintf(Out, "Image:    %s\n", it.ImagesOriginal)
	}
	if it.VideosOriginal != "" {
		fmt.Fprintf(Out, "Video:    %s\n", it.VideosOriginal)
	}
	if it.VideosMask != "" {
		fmt.Fprintf(Out, "Mask:     %s\n", it.VideosMask)
	}
	if it.UpdatedAt != "" {
		fmt.Fprintf(Out, "Updated:  %s\n", it.UpdatedAt)
	}
	return nil
}

func init() { RegisterCmd(contentGetCmd{}) }
