package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aiguidebook/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3ClientOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ForcePathStyle  bool
}

type s3Archive struct {
	client *s3.Client
	bucket string
	prefix string
}

func (a *s3Archive) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
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

	input := &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("text/plain; charset=utf-8"),
	}

	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

var _ Archive = (*s3Archive)(nil)

func NewS3Archive(cfg config.Config) (Archive, error) {
	bucket := strings.TrimSpace(cfg.ArchiveS3Bucket)
	if bucket == "" {
		return nil, errors.New("archive: missing S3 bucket")
	}
	region := strings.TrimSpace(cfg.ArchiveS3Region)
	if region == "" {
		return nil, errors.New("archive: missing S3 region")
	}
	accessKey := strings.TrimSpace(cfg.ArchiveS3AccessKeyID)
	secretKey := strings.TrimSpace(cfg.ArchiveS3SecretAccessKey)
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("archive: missing S3 credentials")
	}

	client, err := newS3Client(s3ClientOptions{
		Region:          region,
		Endpoint:        strings.TrimSpace(cfg.ArchiveS3Endpoint),
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		SessionToken:    strings.TrimSpace(cfg.ArchiveS3SessionToken),
		ForcePathStyle:  cfg.ArchiveS3ForcePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("archive: create S3 client: %w", err)
	}

	return &s3Archive{
		client: client,
		bucket: bucket,
		prefix: trimPrefix(cfg.ArchiveS3Prefix),
	}, nil
}

// NewR2Archive 通过 S3 兼容接口访问 Cloudflare R2。
func NewR2Archive(cfg config.Config) (Archive, error) {
	bucket := strings.TrimSpace(cfg.ArchiveR2Bucket)
	if bucket == "" {
		return nil, errors.New("archive: missing R2 bucket")
	}
	accessKey := strings.TrimSpace(cfg.ArchiveR2AccessKeyID)
	secretKey := strings.TrimSpace(cfg.ArchiveR2SecretAccessKey)
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("archive: missing R2 credentials")
	}

	endpoint := strings.TrimSpace(cfg.ArchiveR2Endpoint)
	accountID := strings.TrimSpace(cfg.ArchiveR2AccountID)
	if endpoint == "" {
		if accountID == "" {
			return nil, errors.New("archive: missing R2 endpoint or account id")
		}
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	}

	region := strings.TrimSpace(cfg.ArchiveR2Region)
	if region == "" {
		region = "auto"
	}

	client, err := newS3Client(s3ClientOptions{
		Region:          region,
		Endpoint:        endpoint,
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		ForcePathStyle:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("archive: create R2 client: %w", err)
	}

	return &s3Archive{
		client: client,
		bucket: bucket,
		prefix: trimPrefix(cfg.ArchiveR2Prefix),
	}, nil
}

func newS3Client(opts s3ClientOptions) (*s3.Client, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		return nil, errors.New("archive: missing S3 region")
	}
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("archive: missing S3 credentials")
	}

	credentialsProvider := aws.NewCredentialsCache(
		credentials.NewStaticCredentialsProvider(accessKey, secretKey, strings.TrimSpace(opts.SessionToken)),
	)

	awsCfg := aws.Config{
		Region:      region,
		Credentials: credentialsProvider,
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		awsCfg.EndpointResolverWithOptions = aws.EndpointResolverWithOptionsFunc(func(service, _ string, _ ...interface{}) (aws.Endpoint, error) {
			if service == s3.ServiceID {
				return aws.Endpoint{
					URL:           endpoint,
					SigningRegion: region,
				}, nil
			}
			return aws.Endpoint{}, fmt.Errorf("archive: no endpoint for service %s", service)
		})
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.ForcePathStyle
	})

	return client, nil
}
