package service

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/panekit/panekit/internal/errors"
)

// maxS3Object bounds the size of a library fetched from S3.
const maxS3Object = 8 << 20

// GetObjectAPI is the subset of *s3.Client used by S3Source.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads payloads from an S3 bucket.
//
// Example usage:
//
//	client := s3.New(s3.Options{Region: "eu-west-1", Credentials: aws.AnonymousCredentials{}})
//	src := service.NewS3Source(client, "my-cdn", "libs/")
//	reg.Add(service.ForResource("Vendor.Chart", "chart.js", src))
type S3Source struct {
	client GetObjectAPI
	bucket string
	prefix string
}

// NewS3Source creates a Source that maps a location to prefix+location in bucket.
func NewS3Source(client GetObjectAPI, bucket, prefix string) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Key returns the object key for a location.
func (s *S3Source) Key(location string) string {
	return s.prefix + strings.TrimPrefix(location, "/")
}

func (s *S3Source) Open(ctx context.Context, location string) ([]byte, error) {
	key := s.Key(location)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.New("E104").WithDetailf("s3://%s/%s", s.bucket, key).Wrap(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxS3Object+1))
	if err != nil {
		return nil, errors.New("E104").WithDetailf("s3://%s/%s", s.bucket, key).Wrap(err)
	}
	if len(data) > maxS3Object {
		return nil, errors.New("E104").WithDetailf("s3://%s/%s exceeds %d bytes", s.bucket, key, maxS3Object)
	}
	return data, nil
}
