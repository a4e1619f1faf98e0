package downloader

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tanq16/rws-scrape/internal/deck"
	"github.com/tanq16/rws-scrape/internal/utils"
)

const s3Scheme = "s3://"

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Sink uploads images to s3://Bucket/Prefix/<name>.jpg.
type S3Sink struct {
	Bucket   string
	Prefix   string
	uploader uploader
}

func IsS3Target(target string) bool {
	return strings.HasPrefix(target, s3Scheme)
}

// ParseS3Target splits s3://bucket/some/prefix into bucket and prefix.
func ParseS3Target(target string) (string, string, error) {
	if !IsS3Target(target) {
		return "", "", fmt.Errorf("not an s3 target: %s", target)
	}
	bucket, prefix, _ := strings.Cut(strings.TrimPrefix(target, s3Scheme), "/")
	if bucket == "" {
		return "", "", fmt.Errorf("missing bucket in %s", target)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

func NewS3Sink(target string) (*S3Sink, error) {
	bucket, prefix, err := ParseS3Target(target)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return &S3Sink{
		Bucket:   bucket,
		Prefix:   prefix,
		uploader: manager.NewUploader(s3.NewFromConfig(cfg)),
	}, nil
}

func (s *S3Sink) key(name string) string {
	return path.Join(s.Prefix, name+deck.ImageExt)
}

func (s *S3Sink) Destination(name string) string {
	return s3Scheme + s.Bucket + "/" + s.key(name)
}

func (s *S3Sink) Write(name string, body io.Reader) (int64, error) {
	counter := &utils.CountingReader{R: body}
	_, err := s.uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(s.key(name)),
		Body:        counter,
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return counter.N, fmt.Errorf("error uploading to S3: %w", err)
	}
	return counter.N, nil
}
