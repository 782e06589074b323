package s3kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"pingate/internal/domain/pin"
)

// ObjectAPI - методы клиента S3, которые использует хранилище
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Storage хранит каждый ключ отдельным объектом <prefix><key>
type Storage struct {
	client ObjectAPI
	bucket string
	prefix string
}

// New создает клиента S3. Если endpoint не пустой, включается path-style
// адресация (для MinIO и похожих).
func New(ctx context.Context, bucket, prefix, region, endpoint string) (*Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return NewWithClient(s3.NewFromConfig(cfg, s3opts...), bucket, prefix), nil
}

func NewWithClient(client ObjectAPI, bucket, prefix string) *Storage {
	return &Storage{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return "", pin.ErrNotFound
		}
		return "", fmt.Errorf("s3 get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("s3 read body: %w", err)
	}

	return string(data), nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader([]byte(value)),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return fmt.Errorf("s3 put object: %w", err)
	}
	return nil
}

func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.Get(ctx, key)
	if errors.Is(err, pin.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) objectKey(key string) string {
	if s.prefix == "" || strings.HasSuffix(s.prefix, "/") {
		return s.prefix + key
	}
	return s.prefix + "/" + key
}
