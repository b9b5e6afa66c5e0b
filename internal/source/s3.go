package source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// getObjectAPI is the part of the S3 client the fetcher needs
type getObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 reads a deck object from an S3 bucket
type S3 struct {
	Bucket string
	Key    string
	client getObjectAPI
}

// NewS3 creates an S3 fetcher using the default AWS credential chain
func NewS3(ctx context.Context, region, bucket, key string) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3{
		Bucket: bucket,
		Key:    key,
		client: s3.NewFromConfig(cfg),
	}, nil
}

func (f *S3) Fetch(ctx context.Context) (string, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.Bucket),
		Key:    aws.String(f.Key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get deck object: %w", err)
	}
	defer out.Body.Close()

	text, err := readDeck(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read deck object: %w", err)
	}
	return text, nil
}

func (f *S3) String() string {
	return "s3://" + f.Bucket + "/" + f.Key
}
