package zipstream_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/internal/apperr"
	"photostudio-backend/internal/zipstream"
)

func mapFetcher(objects map[string][]byte) zipstream.FetchFunc {
	return func(_ context.Context, key string) (io.ReadCloser, error) {
		data, ok := objects[key]
		if !ok {
			return nil, fmt.Errorf("no such key %s", key)
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

func TestStream_PacksAllItems(t *testing.T) {
	objects := map[string][]byte{
		"projects/p1/originals/a.jpg": []byte("first image bytes"),
		"projects/p1/originals/b.jpg": []byte("second image bytes"),
	}
	items := []zipstream.Item{
		{Key: "projects/p1/originals/a.jpg", Filename: "beach.jpg"},
		{Key: "projects/p1/originals/b.jpg", Filename: "sunset.jpg"},
	}

	var buf bytes.Buffer
	err := zipstream.Stream(context.Background(), &buf, items, mapFetcher(objects))
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	assert.Equal(t, "beach.jpg", reader.File[0].Name)
	assert.Equal(t, "sunset.jpg", reader.File[1].Name)

	rc, err := reader.File[0].Open()
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, []byte("first image bytes"), content)
}

func TestStream_EntriesAreStored(t *testing.T) {
	objects := map[string][]byte{"k": []byte("jpeg data does not deflate")}
	items := []zipstream.Item{{Key: "k", Filename: "photo.jpg"}}

	var buf bytes.Buffer
	require.NoError(t, zipstream.Stream(context.Background(), &buf, items, mapFetcher(objects)))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, zip.Store, reader.File[0].Method)
}

func TestStream_EmptyItemsIsValidationError(t *testing.T) {
	var buf bytes.Buffer
	err := zipstream.Stream(context.Background(), &buf, nil, mapFetcher(nil))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Zero(t, buf.Len(), "no bytes should be written before validation")
}

func TestStream_DuplicateFilenamesPassThroughVerbatim(t *testing.T) {
	objects := map[string][]byte{
		"k1": []byte("one"),
		"k2": []byte("two"),
	}
	items := []zipstream.Item{
		{Key: "k1", Filename: "IMG_0001.jpg"},
		{Key: "k2", Filename: "IMG_0001.jpg"},
	}

	var buf bytes.Buffer
	require.NoError(t, zipstream.Stream(context.Background(), &buf, items, mapFetcher(objects)))

	reader, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)
	assert.Equal(t, "IMG_0001.jpg", reader.File[0].Name)
	assert.Equal(t, "IMG_0001.jpg", reader.File[1].Name)
}

func TestStream_WritesEachEntryBeforeNextFetch(t *testing.T) {
	big := bytes.Repeat([]byte("x"), 1<<20)
	objects := map[string][]byte{
		"big":   big,
		"small": []byte("tiny"),
	}
	items := []zipstream.Item{
		{Key: "big", Filename: "big.jpg"},
		{Key: "small", Filename: "small.jpg"},
	}

	var buf bytes.Buffer
	inner := mapFetcher(objects)
	var writtenAtFetch []int
	fetch := func(ctx context.Context, key string) (io.ReadCloser, error) {
		writtenAtFetch = append(writtenAtFetch, buf.Len())
		return inner(ctx, key)
	}

	require.NoError(t, zipstream.Stream(context.Background(), &buf, items, fetch))

	require.Len(t, writtenAtFetch, 2)
	assert.GreaterOrEqual(t, writtenAtFetch[1], len(big),
		"the first object's bytes should reach the writer before the second fetch")
}

func TestStream_FetchFailureIsUpstream(t *testing.T) {
	items := []zipstream.Item{{Key: "missing", Filename: "gone.jpg"}}

	var buf bytes.Buffer
	err := zipstream.Stream(context.Background(), &buf, items, mapFetcher(nil))
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestStream_CancelledContextStopsFetches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetched := 0
	fetch := func(_ context.Context, key string) (io.ReadCloser, error) {
		fetched++
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	items := []zipstream.Item{
		{Key: "k1", Filename: "a.jpg"},
		{Key: "k2", Filename: "b.jpg"},
	}

	var buf bytes.Buffer
	err := zipstream.Stream(ctx, &buf, items, fetch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, fetched, "no fetch should run after cancellation")
}
