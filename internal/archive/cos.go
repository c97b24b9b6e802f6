package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aiguidebook/internal/config"

	"github.com/tencentyun/cos-go-sdk-v5"
)

type cosArchive struct {
	client *cos.Client
	prefix string
}

func NewCOSArchive(cfg config.Config) (Archive, error) {
	baseURL := strings.TrimSpace(cfg.ArchiveCOSBucketURL)
	if baseURL == "" {
		return nil, errors.New("archive: missing COS bucket URL")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("archive: parse COS bucket URL: %w", err)
	}

	secretID := strings.TrimSpace(cfg.ArchiveCOSSecretID)
	secretKey := strings.TrimSpace(cfg.ArchiveCOSSecretKey)
	if secretID == "" || secretKey == "" {
		return nil, errors.New("archive: missing COS credentials")
	}

	transport := &cos.AuthorizationTransport{
		SecretID:  secretID,
		SecretKey: secretKey,
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: parsedURL}, &http.Client{Transport: transport})

	return &cosArchive{
		client: client,
		prefix: trimPrefix(cfg.ArchiveCOSPrefix),
	}, nil
}

func (a *cosArchive) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
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

	options := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType: "text/plain; charset=utf-8",
		},
	}

	resp, err := a.client.Object.Put(ctx, key, bytes.NewReader(data), options)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

var _ Archive = (*cosArchive)(nil)
