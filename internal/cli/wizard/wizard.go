// Package wizard models the three-step content-creation flow as an
// explicit state machine: named steps, forward gates, and a submission
// that drives the validator and the upload pipeline in sequence. The
// rendering surface (prompts, flags) lives elsewhere.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"math"

	"mrconsole/internal/cli/model"
	"mrconsole/internal/cli/upload"
	"mrconsole/internal/media"
)

// Step identifies one wizard step.
type Step int

const (
	StepBasicInfo Step = iota
	StepUploadMedia
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Information"
	case StepUploadMedia:
		return "Upload Media"
	case StepReview:
		return "Review & Create"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Bounds for the scale and height inputs. Values are kept at 0.01
// granularity; out-of-range manual entries are ignored.
const (
	ScaleMin  = 0.1
	ScaleMax  = 10.0
	HeightMin = 0.0
	HeightMax = 10.0
)

var (
	// ErrStepGated is returned by Next when the current step's forward
	// gate is not satisfied.
	ErrStepGated = errors.New("step requirements not met")

	// ErrNoOriginalVideo guards mask selection and submission.
	ErrNoOriginalVideo = errors.New("select an original video first")
)

// Form is the wizard's mutable state.
type Form struct {
	validator *media.Validator

	step       Step
	name       string
	renderType model.RenderType
	scale      float64
	height     float64

	imagePath         string
	originalVideoPath string
	maskVideoPath     string
}

func New(validator *media.Validator) *Form {
	return &Form{
		validator:  validator,
		renderType: model.RenderTypeGround,
		scale:      1.00,
		height:     0.00,
	}
}

func (f *Form) Step() Step                   { return f.step }
func (f *Form) Name() string                 { return f.name }
func (f *Form) RenderType() model.RenderType { return f.renderType }
func (f *Form) Scale() float64               { return f.scale }
func (f *Form) Height() float64              { return f.height }
func (f *Form) ImagePath() string            { return f.imagePath }
func (f *Form) OriginalVideoPath() string    { return f.originalVideoPath }
func (f *Form) MaskVideoPath() string        { return f.maskVideoPath }

func (f *Form) SetName(name string) { f.name = name }

func (f *Form) SetRenderType(rt model.RenderType) error {
	if rt != model.RenderTypeImage && rt != model.RenderTypeGround {
		return fmt.Errorf("unknown render type %q", rt)
	}
	f.renderType = rt
	return nil
}

// SetScale accepts a new scale value. Out-of-range entries are ignored and
// the previous value is retained; accepted values are rounded to 0.01.
func (f *Form) SetScale(v float64) bool {
	if v < ScaleMin || v > ScaleMax {
		return false
	}
	f.scale = round2(v)
	return true
}

// SetHeight mirrors SetScale for the height input.
func (f *Form) SetHeight(v float64) bool {
	if v < HeightMin || v > HeightMax {
		return false
	}
	f.height = round2(v)
	return true
}

func (f *Form) SetImage(path string)    { f.imagePath = path }
func (f *Form) RemoveImage()            { f.imagePath = "" }
func (f *Form) RemoveOriginalVideo()    { f.originalVideoPath = "" }
func (f *Form) RemoveMaskVideo()        { f.maskVideoPath = "" }
func (f *Form) SetOriginalVideo(p string) { f.originalVideoPath = p }

// SetMaskVideo routes the candidate through the compatibility validator.
// Every failure path leaves the mask selection empty.
func (f *Form) SetMaskVideo(ctx context.Context, path string) error {
	f.maskVideoPath = ""
	if f.originalVideoPath == "" {
		return ErrNoOriginalVideo
	}
	if err := f.validator.ValidateMask(ctx, f.originalVideoPath, path); err != nil {
		return err
	}
	f.maskVideoPath = path
	return nil
}

// CanNext reports whether the current step's forward gate is satisfied.
// Backward movement is never gated.
func (f *Form) CanNext() bool {
	switch f.step {
	case StepBasicInfo:
		return f.name != ""
	case StepUploadMedia:
		return f.originalVideoPath != ""
	}
	return false
}

func (f *Form) Next() error {
	if !f.CanNext() {
		return fmt.Errorf("%w: %s", ErrStepGated, f.gateMessage())
	}
	f.step++
	return nil
}

func (f *Form) Back() {
	if f.step > StepBasicInfo {
		f.step--
	}
}

func (f *Form) gateMessage() string {
	switch f.step {
	case StepBasicInfo:
		return "name is required"
	case StepUploadMedia:
		return "original video is required"
	}
	return "already at the review step"
}

// BuildRequest assembles the creation payload from the collected state.
// Asset URLs are supplied by the submitter after the uploads complete.
func (f *Form) BuildRequest(videoURL, imageURL, maskURL string) model.CreateContentRequest {
	req := model.CreateContentRequest{
		Name:       f.name,
		RenderType: f.renderType,
		Scale:      round2(f.scale),
		Height:     round2(f.height),
		Images:     []model.KV{},
		Videos:     []model.KV{{K: "original", V: videoURL}},
	}
	if imageURL != "" {
		req.Images = []model.KV{{K: "original", V: imageURL}}
	}
	if maskURL != "" {
		req.Videos = append(req.Videos, model.KV{K: "mask", V: maskURL})
	}
	return req
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AssetUploader is the slice of the upload pipeline the submitter needs.
type AssetUploader interface {
	Upload(ctx context.Context, filePath, prefix string, expirationMinutes int) (string, error)
}

// ContentCreator is the slice of the content client the submitter needs.
type ContentCreator interface {
	Create(ctx context.Context, req model.CreateContentRequest) (model.ContentItem, error)
}

// Submitter executes the review step: uploads strictly in original video,
// image, mask order, then creates the record. Completed uploads are not
// rolled back when a later step fails; the form stays on the review step
// so the user can retry.
type Submitter struct {
	uploads AssetUploader
	content ContentCreator
}

func NewSubmitter(uploads AssetUploader, content ContentCreator) *Submitter {
	return &Submitter{uploads: uploads, content: content}
}

func (s *Submitter) Submit(ctx context.Context, f *Form) (model.ContentItem, error) {
	if f.originalVideoPath == "" {
		return model.ContentItem{}, ErrNoOriginalVideo
	}

	videoURL, err := s.uploads.Upload(ctx, f.originalVideoPath, upload.PrefixOriginalVideo, upload.CreateExpirationMinutes)
	if err != nil {
		return model.ContentItem{}, err
	}

	var imageURL string
	if f.imagePath != "" {
		imageURL, err = s.uploads.Upload(ctx, f.imagePath, upload.PrefixImage, upload.CreateExpirationMinutes)
		if err != nil {
			return model.ContentItem{}, err
		}
	}

	var maskURL string
	if f.maskVideoPath != "" {
		maskURL, err = s.uploads.Upload(ctx, f.maskVideoPath, upload.PrefixMaskVideo, upload.CreateExpirationMinutes)
		if err != nil {
			return model.ContentItem{}, err
		}
	}

	return s.content.Create(ctx, f.BuildRequest(videoURL, imageURL, maskURL))
}
