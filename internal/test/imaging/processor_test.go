package imaging_test

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/internal/imaging"
)

type recordingUploader struct {
	keys    []string
	failKey string
}

func (u *recordingUploader) Put(_ context.Context, key string, data []byte, contentType string) error {
	if u.failKey != "" && strings.Contains(key, u.failKey) {
		return errors.New("storage unavailable")
	}
	u.keys = append(u.keys, key)
	return nil
}

func TestProcessProjectImage_UploadsAllVariants(t *testing.T) {
	uploader := &recordingUploader{}
	processor := imaging.NewProcessor(uploader)
	projectID := uuid.New()

	original := encodeJPEGBytes(t, solidImage(100, 80, color.NRGBA{R: 40, G: 40, B: 40, A: 255}))
	result, err := processor.ProcessProjectImage(context.Background(), projectID, original, "image/jpeg")
	require.NoError(t, err)

	require.Len(t, uploader.keys, 4)
	prefix := "projects/" + projectID.String() + "/"
	for _, key := range uploader.keys {
		assert.True(t, strings.HasPrefix(key, prefix), key)
	}
	assert.Contains(t, uploader.keys, result.OriginalKey)
	assert.Contains(t, uploader.keys, result.CompressedKey)
	assert.Contains(t, uploader.keys, result.ThumbnailKey)
	assert.Contains(t, uploader.keys, result.WatermarkedKey)

	assert.Equal(t, 100, result.Width)
	assert.Equal(t, 80, result.Height)
	assert.Equal(t, int64(len(original)), result.SizeBytes)
	assert.Greater(t, result.CompressedSizeBytes, int64(0))
}

func TestProcessProjectImage_UndecodableInput(t *testing.T) {
	processor := imaging.NewProcessor(&recordingUploader{})

	_, err := processor.ProcessProjectImage(context.Background(), uuid.New(), []byte("not an image"), "text/plain")
	require.Error(t, err)

	var stageErr *imaging.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, imaging.StageDecode, stageErr.Stage)
}

func TestProcessProjectImage_PartialFailureLeavesEarlierUploads(t *testing.T) {
	uploader := &recordingUploader{failKey: "/thumbnails/"}
	processor := imaging.NewProcessor(uploader)

	original := encodeJPEGBytes(t, solidImage(50, 50, color.White))
	_, err := processor.ProcessProjectImage(context.Background(), uuid.New(), original, "image/jpeg")
	require.Error(t, err)

	var stageErr *imaging.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, imaging.StageThumbnail, stageErr.Stage)
	// original and compressed already landed; no rollback happens
	assert.Len(t, uploader.keys, 2)
}

func TestProcessPortfolioImage_UploadsDisplayAndThumbnail(t *testing.T) {
	uploader := &recordingUploader{}
	processor := imaging.NewProcessor(uploader)

	original := encodeJPEGBytes(t, solidImage(60, 40, color.White))
	result, err := processor.ProcessPortfolioImage(context.Background(), original)
	require.NoError(t, err)

	require.Len(t, uploader.keys, 2)
	assert.True(t, strings.HasPrefix(result.ImageKey, "portfolio/"))
	assert.True(t, strings.HasPrefix(result.ThumbnailKey, "portfolio/thumbnails/"))
}
