package zipstream

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"photostudio-backend/internal/apperr"
)

// Item names one object to pack: the storage key to fetch and the filename
// it gets inside the archive.
type Item struct {
	Key      string
	Filename string
}

// FetchFunc opens one object for reading. The streamer closes the reader.
type FetchFunc func(ctx context.Context, key string) (io.ReadCloser, error)

// Stream writes a ZIP of the items to w, one entry at a time. Entries are
// stored uncompressed since JPEGs do not deflate, which keeps the archive a
// straight concatenation and memory bounded to the copy buffer plus one open
// object. A failed fetch or a cancelled context aborts the stream; bytes
// already written cannot be unwritten, so callers must not have promised a
// trailer by then.
func Stream(ctx context.Context, w io.Writer, items []Item, fetch FetchFunc) error {
	if len(items) == 0 {
		return apperr.Validation("no images to download")
	}

	zw := zip.NewWriter(w)
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return err
		}

		// Filenames pass through verbatim. Duplicates are legal in a ZIP;
		// readers that flatten them keep the last entry.
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:   item.Filename,
			Method: zip.Store,
		})
		if err != nil {
			zw.Close()
			return fmt.Errorf("create zip entry %s: %w", item.Filename, err)
		}

		if err := copyObject(ctx, entry, item.Key, fetch); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func copyObject(ctx context.Context, dst io.Writer, key string, fetch FetchFunc) error {
	rc, err := fetch(ctx, key)
	if err != nil {
		return apperr.Upstream(fmt.Sprintf("fetch %s", key), err)
	}
	defer rc.Close()
	if _, err := io.Copy(dst, rc); err != nil {
		return apperr.Upstream(fmt.Sprintf("stream %s", key), err)
	}
	return nil
}
