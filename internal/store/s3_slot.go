package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

// ObjectAPI is the part of the S3 client the slot uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string // set for S3-compatible stores such as R2 or MinIO
	AccessKeyID     string
	SecretAccessKey string
}

// S3Slot keeps the value as a single JSON object in a bucket.
type S3Slot struct {
	api    ObjectAPI
	bucket string
	key    string
}

func NewS3Slot(api ObjectAPI, bucket, key string) *S3Slot {
	return &S3Slot{api: api, bucket: bucket, key: slotFileName(key)}
}

// NewS3Client builds an S3 client from static credentials when given, or
// from the default AWS credential chain otherwise.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 slot: bucket is required")
	}
	region := opts.Region
	if region == "" {
		region = "auto"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	log.Info().Str("bucket", opts.Bucket).Str("endpoint", opts.Endpoint).Msg("S3 slot client initialized")
	return client, nil
}

func (s *S3Slot) Load(ctx context.Context) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("get slot object (key: %s): %w", s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read slot object (key: %s): %w", s.key, err)
	}
	return data, nil
}

func (s *S3Slot) Save(ctx context.Context, data []byte) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put slot object (key: %s): %w", s.key, err)
	}
	return nil
}
