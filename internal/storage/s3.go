package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Options struct {
	Region        string
	Endpoint      string
	PathStyle     bool
	PresignExpiry time.Duration
}

func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	}), nil
}

// SDKTransport uploads through the S3 API client.
type SDKTransport struct {
	client *s3.Client
}

func NewSDKTransport(client *s3.Client) *SDKTransport {
	return &SDKTransport{client: client}
}

func (t *SDKTransport) Name() string { return "s3-sdk" }

func (t *SDKTransport) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// PresignedTransport signs a PUT URL and sends the raw body over plain HTTP, which
// survives proxies that break the SDK's chunked signing.
type PresignedTransport struct {
	presigner *s3.PresignClient
	http      *http.Client
	expiry    time.Duration
}

func NewPresignedTransport(client *s3.Client, expiry time.Duration) *PresignedTransport {
	return &PresignedTransport{
		presigner: s3.NewPresignClient(client),
		http:      &http.Client{Timeout: 30 * time.Second},
		expiry:    expiry,
	}
}

func (t *PresignedTransport) Name() string { return "s3-presigned" }

func (t *PresignedTransport) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	signed, err := t.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(t.expiry))
	if err != nil {
		return fmt.Errorf("presign put: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, signed.Method, signed.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if signed.SignedHeader != nil {
		req.Header = signed.SignedHeader.Clone()
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("presigned put: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("presigned put: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}
