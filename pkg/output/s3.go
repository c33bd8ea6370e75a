package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/fluxt/star-wars/pkg/logger"
)

// DefaultUploadTimeout bounds a single upload
const DefaultUploadTimeout = 30 * time.Second

// S3Config describes an S3 compatible bucket
type S3Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string // Empty for AWS; set for other S3 compatible stores
	AccessKey string
	SecretKey string
}

// S3Sink uploads the image as a PNG object
type S3Sink struct {
	client  s3iface.S3API
	bucket  string
	key     string
	timeout time.Duration
}

// NewS3Sink creates a session from the config. Static credentials are used when
// an access key is given, otherwise the default AWS credential chain applies.
func NewS3Sink(cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3 output needs a bucket and key")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewS3SinkWithClient(s3.New(sess), cfg.Bucket, cfg.Key), nil
}

// NewS3SinkWithClient creates a sink around an existing client
func NewS3SinkWithClient(client s3iface.S3API, bucket, key string) *S3Sink {
	return &S3Sink{
		client:  client,
		bucket:  bucket,
		key:     key,
		timeout: DefaultUploadTimeout,
	}
}

// Name returns the object URL
func (s *S3Sink) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

// Write encodes the image as PNG and uploads it
func (s *S3Sink) Write(ctx context.Context, img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	size := int64(buf.Len())
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.Name(), err)
	}

	logger.Info("Uploaded image", zap.String("object", s.Name()), zap.Int64("bytes", size))
	return nil
}
