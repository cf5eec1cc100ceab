package archive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-match/internal/core/domain"
)

func testRun() domain.RunRecord {
	return domain.RunRecord{
		ID:        uuid.MustParse("7a4d7c36-4a6e-4f57-9b0e-0f7c8f1b2a11"),
		Name:      "pixel_match",
		StartedAt: time.Date(2019, 4, 15, 5, 0, 7, 0, time.UTC),
		Results: []domain.PixelResult{
			{PixelID: "4711", Outcome: domain.Calculate(domain.RawCounts{0, 0, 0, 0, 4, 1})},
		},
	}
}

const expectedDocument = `{
    "4711": {
        "hashed_chpck": 0,
        "hashed_hhid": 0,
        "unhashed_chpck": 0,
        "unhashed_hhid": 0,
        "cookie_chpck": 4,
        "cookie_hhid": 1,
        "total_chpck": 4,
        "total_hhid": 1,
        "match_rate_hashes": null,
        "match_rate_cookies": 0.25,
        "match_rate_full": null
    }
}
`

func TestName(t *testing.T) {
	assert.Equal(t, "pixel_match_20190415-050007.json", Name("pixel_match", testRun()))
}

func TestEncode(t *testing.T) {
	b, err := Encode(testRun())
	require.NoError(t, err)
	assert.Equal(t, expectedDocument, string(b))
}

func TestFileArchive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	a := NewFileArchive(dir, "pixel_match")

	require.NoError(t, a.Save(context.Background(), testRun()))

	path := filepath.Join(dir, "pixel_match_20190415-050007.json")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expectedDocument, string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

type fakeStore struct {
	exists    bool
	existsErr error
	putErr    error

	made    []string
	objects map[string]string
	checks  int
}

func (f *fakeStore) BucketExists(context.Context, string) (bool, error) {
	f.checks++
	return f.exists, f.existsErr
}

func (f *fakeStore) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.made = append(f.made, bucket)
	f.exists = true
	return nil
}

func (f *fakeStore) PutObject(_ context.Context, bucket, object string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	if int64(len(b)) != size || opts.ContentType != "application/json" {
		return minio.UploadInfo{}, errors.New("bad upload")
	}
	if f.objects == nil {
		f.objects = map[string]string{}
	}
	f.objects[bucket+"/"+object] = string(b)
	return minio.UploadInfo{Bucket: bucket, Key: object, Size: size}, nil
}

func TestObjectArchive(t *testing.T) {
	store := &fakeStore{}
	a := newObjectArchive(store, "pixel-match", "pixel_match")

	require.NoError(t, a.Save(context.Background(), testRun()))
	require.NoError(t, a.Save(context.Background(), testRun()))

	assert.Equal(t, []string{"pixel-match"}, store.made)
	assert.Equal(t, 1, store.checks)
	assert.Equal(t, expectedDocument, store.objects["pixel-match/pixel_match_20190415-050007.json"])
}

func TestObjectArchiveErrors(t *testing.T) {
	store := &fakeStore{existsErr: errors.New("access denied")}
	a := newObjectArchive(store, "pixel-match", "pixel_match")
	assert.ErrorContains(t, a.Save(context.Background(), testRun()), "check bucket pixel-match")

	store = &fakeStore{exists: true, putErr: errors.New("timeout")}
	a = newObjectArchive(store, "pixel-match", "pixel_match")
	assert.ErrorContains(t, a.Save(context.Background(), testRun()), "upload pixel-match/pixel_match_20190415-050007.json")
}
