package imaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"photostudio-backend/internal/objectstore"
)

// Uploader is the slice of the object store the processor needs.
type Uploader interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Processor turns an uploaded original into its stored derivatives.
type Processor struct {
	uploader Uploader
}

func NewProcessor(uploader Uploader) *Processor {
	return &Processor{uploader: uploader}
}

// ProjectImageResult reports the keys and measurements of one processed
// project upload.
type ProjectImageResult struct {
	ImageID             uuid.UUID
	OriginalKey         string
	CompressedKey       string
	ThumbnailKey        string
	WatermarkedKey      string
	Width               int
	Height              int
	SizeBytes           int64
	CompressedSizeBytes int64
}

// Stage names reported when processing fails partway. Uploads already made
// are left in place; the sweep that deletes a project prefix cleans them up.
const (
	StageDecode      = "decode"
	StageOriginal    = "original"
	StageCompressed  = "compressed"
	StageThumbnail   = "thumbnail"
	StageWatermarked = "watermarked"
)

// StageError wraps a processing failure with the pipeline stage it died in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ProcessProjectImage stores the original and generates the compressed,
// thumbnail and watermarked renditions. The watermarked rendition is built
// from the compressed one so the mark scales with what clients actually see.
func (p *Processor) ProcessProjectImage(ctx context.Context, projectID uuid.UUID, original []byte, contentType string) (*ProjectImageResult, error) {
	img, _, err := Decode(original)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Err: err}
	}

	imageID := uuid.New()
	result := &ProjectImageResult{
		ImageID:        imageID,
		OriginalKey:    objectstore.OriginalKey(projectID, imageID),
		CompressedKey:  objectstore.CompressedKey(projectID, imageID),
		ThumbnailKey:   objectstore.ThumbnailKey(projectID, imageID),
		WatermarkedKey: objectstore.WatermarkedKey(projectID, imageID),
		Width:          img.Bounds().Dx(),
		Height:         img.Bounds().Dy(),
		SizeBytes:      int64(len(original)),
	}

	if err := p.uploader.Put(ctx, result.OriginalKey, original, contentType); err != nil {
		return nil, &StageError{Stage: StageOriginal, Err: err}
	}

	compressed := Scale(img, CompressedMaxDim)
	compressedJPEG, err := EncodeJPEG(compressed, CompressedQuality)
	if err != nil {
		return nil, &StageError{Stage: StageCompressed, Err: err}
	}
	if err := p.uploader.Put(ctx, result.CompressedKey, compressedJPEG, "image/jpeg"); err != nil {
		return nil, &StageError{Stage: StageCompressed, Err: err}
	}
	result.CompressedSizeBytes = int64(len(compressedJPEG))

	thumbJPEG, err := EncodeJPEG(Scale(img, ThumbnailMaxDim), ThumbnailQuality)
	if err != nil {
		return nil, &StageError{Stage: StageThumbnail, Err: err}
	}
	if err := p.uploader.Put(ctx, result.ThumbnailKey, thumbJPEG, "image/jpeg"); err != nil {
		return nil, &StageError{Stage: StageThumbnail, Err: err}
	}

	marked, err := Watermark(compressed)
	if err != nil {
		return nil, &StageError{Stage: StageWatermarked, Err: err}
	}
	markedJPEG, err := EncodeJPEG(marked, WatermarkQuality)
	if err != nil {
		return nil, &StageError{Stage: StageWatermarked, Err: err}
	}
	if err := p.uploader.Put(ctx, result.WatermarkedKey, markedJPEG, "image/jpeg"); err != nil {
		return nil, &StageError{Stage: StageWatermarked, Err: err}
	}

	return result, nil
}

// PortfolioImageResult reports the keys of one processed portfolio upload.
type PortfolioImageResult struct {
	ImageID      uuid.UUID
	ImageKey     string
	ThumbnailKey string
}

// ProcessPortfolioImage stores the display rendition and its thumbnail for
// the public site. Portfolio images are not watermarked.
func (p *Processor) ProcessPortfolioImage(ctx context.Context, original []byte) (*PortfolioImageResult, error) {
	img, _, err := Decode(original)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Err: err}
	}

	imageID := uuid.New()
	result := &PortfolioImageResult{
		ImageID:      imageID,
		ImageKey:     objectstore.PortfolioKey(imageID),
		ThumbnailKey: objectstore.PortfolioThumbnailKey(imageID),
	}

	displayJPEG, err := EncodeJPEG(Scale(img, CompressedMaxDim), CompressedQuality)
	if err != nil {
		return nil, &StageError{Stage: StageCompressed, Err: err}
	}
	if err := p.uploader.Put(ctx, result.ImageKey, displayJPEG, "image/jpeg"); err != nil {
		return nil, &StageError{Stage: StageCompressed, Err: err}
	}

	thumbJPEG, err := EncodeJPEG(Scale(img, ThumbnailMaxDim), ThumbnailQuality)
	if err != nil {
		return nil, &StageError{Stage: StageThumbnail, Err: err}
	}
	if err := p.uploader.Put(ctx, result.ThumbnailKey, thumbJPEG, "image/jpeg"); err != nil {
		return nil, &StageError{Stage: StageThumbnail, Err: err}
	}

	return result, nil
}
