package objectstore_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"photostudio-backend/internal/objectstore"
)

func TestProjectKeys_ShareProjectPrefix(t *testing.T) {
	projectID := uuid.New()
	imageID := uuid.New()

	prefix := objectstore.ProjectPrefix(projectID)
	assert.Equal(t, fmt.Sprintf("projects/%s/", projectID), prefix)

	keys := []string{
		objectstore.OriginalKey(projectID, imageID),
		objectstore.CompressedKey(projectID, imageID),
		objectstore.ThumbnailKey(projectID, imageID),
		objectstore.WatermarkedKey(projectID, imageID),
	}
	for _, key := range keys {
		assert.True(t, strings.HasPrefix(key, prefix), key)
		assert.True(t, strings.HasSuffix(key, imageID.String()+".jpg"), key)
	}
}

func TestProjectKeys_VariantFolders(t *testing.T) {
	projectID := uuid.New()
	imageID := uuid.New()

	assert.Contains(t, objectstore.OriginalKey(projectID, imageID), "/originals/")
	assert.Contains(t, objectstore.CompressedKey(projectID, imageID), "/compressed/")
	assert.Contains(t, objectstore.ThumbnailKey(projectID, imageID), "/thumbnails/")
	assert.Contains(t, objectstore.WatermarkedKey(projectID, imageID), "/watermarked/")
}

func TestPortfolioKeys(t *testing.T) {
	imageID := uuid.New()

	assert.Equal(t, "portfolio/"+imageID.String()+".jpg", objectstore.PortfolioKey(imageID))
	assert.Equal(t, "portfolio/thumbnails/"+imageID.String()+".jpg", objectstore.PortfolioThumbnailKey(imageID))
}
