package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/config"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3StorePut(t *testing.T) {
	fake := &fakeS3{}
	s := &S3Store{client: fake, bucket: "barbermatch", region: "ap-southeast-1"}

	url, err := s.Put(context.Background(), "profile-photos/u-1/a.webp", "image/webp", []byte("webp"))
	require.NoError(t, err)

	assert.Equal(t, "https://barbermatch.s3.ap-southeast-1.amazonaws.com/profile-photos/u-1/a.webp", url)
	assert.Equal(t, "barbermatch", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "image/webp", aws.ToString(fake.in.ContentType))
	assert.Equal(t, []byte("webp"), fake.body)

	fake.err = errors.New("denied")
	_, err = s.Put(context.Background(), "k", "image/webp", nil)
	assert.Error(t, err)
}

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir, "http://localhost:8080/")

	url, err := s.Put(context.Background(), "profile-photos/u-1/a.webp", "image/webp", []byte("webp"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/profile-photos/u-1/a.webp", url)

	data, err := os.ReadFile(filepath.Join(dir, "profile-photos", "u-1", "a.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte("webp"), data)
}

func TestLocalStoreStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir, "http://localhost:8080")

	_, err := s.Put(context.Background(), "../../escape.webp", "image/webp", []byte("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "escape.webp"))
	assert.NoError(t, err)
}

func TestNewPicksBackend(t *testing.T) {
	cfg := &config.Config{UploadDir: t.TempDir(), PublicBaseURL: "http://localhost:8080"}
	assert.IsType(t, &LocalStore{}, New(cfg))

	cfg.AWSRegion, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.S3Bucket = "ap-southeast-1", "k", "s", "b"
	assert.IsType(t, &S3Store{}, New(cfg))
}
