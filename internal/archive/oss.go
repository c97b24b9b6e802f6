package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aiguidebook/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossArchive struct {
	bucket *oss.Bucket
	prefix string
}

func NewOSSArchive(cfg config.Config) (Archive, error) {
	endpoint := strings.TrimSpace(cfg.ArchiveOSSEndpoint)
	if endpoint == "" {
		return nil, errors.New("archive: missing OSS endpoint")
	}
	bucketName := strings.TrimSpace(cfg.ArchiveOSSBucket)
	if bucketName == "" {
		return nil, errors.New("archive: missing OSS bucket")
	}
	accessKey := strings.TrimSpace(cfg.ArchiveOSSAccessKeyID)
	secretKey := strings.TrimSpace(cfg.ArchiveOSSAccessKeySecret)
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("archive: missing OSS credentials")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("archive: create OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("archive: open OSS bucket: %w", err)
	}

	return &ossArchive{
		bucket: bucket,
		prefix: trimPrefix(cfg.ArchiveOSSPrefix),
	}, nil
}

func (a *ossArchive) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty document")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	key := buildObjectKey(opts.BaseName, opts.Extension, time.Now().UTC())
	if a.prefix != "" {
		key = joinPrefix(a.prefix, key)
	}

	options := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType("text/plain; charset=utf-8"),
	}

	if err := a.bucket.PutObject(key, bytes.NewReader(data), options...); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

var _ Archive = (*ossArchive)(nil)
