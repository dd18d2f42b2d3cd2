package objectstore

import (
	"fmt"

	"github.com/google/uuid"
)

// Key builders for the bucket layout. Every derivative of a project image
// shares the image's UUID so a single asset row maps to all of its variants.

func ProjectPrefix(projectID uuid.UUID) string {
	return fmt.Sprintf("projects/%s/", projectID)
}

func OriginalKey(projectID, imageID uuid.UUID) string {
	return fmt.Sprintf("projects/%s/originals/%s.jpg", projectID, imageID)
}

func CompressedKey(projectID, imageID uuid.UUID) string {
	return fmt.Sprintf("projects/%s/compressed/%s.jpg", projectID, imageID)
}

func ThumbnailKey(projectID, imageID uuid.UUID) string {
	return fmt.Sprintf("projects/%s/thumbnails/%s.jpg", projectID, imageID)
}

func WatermarkedKey(projectID, imageID uuid.UUID) string {
	return fmt.Sprintf("projects/%s/watermarked/%s.jpg", projectID, imageID)
}

func PortfolioKey(imageID uuid.UUID) string {
	return fmt.Sprintf("portfolio/%s.jpg", imageID)
}

func PortfolioThumbnailKey(imageID uuid.UUID) string {
	return fmt.Sprintf("portfolio/thumbnails/%s.jpg", imageID)
}
