package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the slice of the S3 client the gateway calls.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Gateway stores each collection as <prefix><name>.json in one bucket.
// Works against AWS S3 or an S3-compatible endpoint such as MinIO.
type S3Gateway struct {
	client s3API
	bucket string
	prefix string
}

// NewS3Gateway builds a client from the default AWS credential chain.
func NewS3Gateway(ctx context.Context, cfg config.S3Config) (*S3Gateway, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3Gateway(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3Gateway(client s3API, bucket, prefix string) *S3Gateway {
	return &S3Gateway{client: client, bucket: bucket, prefix: prefix}
}

func (g *S3Gateway) key(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return g.prefix + name + ".json", nil
}

func (g *S3Gateway) Load(ctx context.Context, name string) ([]byte, error) {
	key, err := g.key(name)
	if err != nil {
		return nil, err
	}
	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &g.bucket, Key: &key})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, nil
		}
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (g *S3Gateway) Save(ctx context.Context, name string, doc []byte) error {
	key, err := g.key(name)
	if err != nil {
		return err
	}
	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &g.bucket,
		Key:         &key,
		Body:        bytes.NewReader(doc),
		ContentType: aws.String("application/json"),
	})
	return err
}
