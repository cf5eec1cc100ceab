package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"pixel-match/internal/config/configs"
	"pixel-match/internal/core/domain"
)

// objectStore is the subset of *minio.Client used by ObjectArchive.
type objectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, object string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// ObjectArchive uploads run documents to an S3 compatible bucket. The
// bucket is created on first use.
type ObjectArchive struct {
	store  objectStore
	bucket string
	app    string

	mu       sync.Mutex
	bucketOK bool
}

// NewObjectArchive connects to the MinIO endpoint in cfg. The endpoint may
// be a bare host:port or a URL; an https scheme forces TLS.
func NewObjectArchive(cfg configs.Archive, app string) (*ObjectArchive, error) {
	endpoint, secure := cfg.MinioEndpoint, cfg.MinioUseSSL
	if u, err := url.Parse(cfg.MinioEndpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		secure = secure || u.Scheme == "https"
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return newObjectArchive(client, cfg.MinioBucket, app), nil
}

func newObjectArchive(store objectStore, bucket, app string) *ObjectArchive {
	return &ObjectArchive{store: store, bucket: bucket, app: app}
}

// Save implements port.RunArchive.
func (a *ObjectArchive) Save(ctx context.Context, run domain.RunRecord) error {
	b, err := Encode(run)
	if err != nil {
		return err
	}
	if err = a.ensureBucket(ctx); err != nil {
		return err
	}
	name := Name(a.app, run)
	_, err = a.store.PutObject(ctx, a.bucket, name, bytes.NewReader(b), int64(len(b)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", a.bucket, name, err)
	}
	return nil
}

func (a *ObjectArchive) ensureBucket(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.bucketOK {
		return nil
	}
	exists, err := a.store.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", a.bucket, err)
	}
	if !exists {
		if err = a.store.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", a.bucket, err)
		}
	}
	a.bucketOK = true
	return nil
}
