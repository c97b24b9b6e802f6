package archive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"aiguidebook/internal/config"
)

const (
	// TypeLocal 表示本地文件系统归档。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的归档后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 归档。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 归档。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 归档。
	TypeR2 = "r2"
)

// SaveOptions 控制归档后端如何持久化声明文档。
// BaseName 不含扩展名，Extension 不含前导点。
type SaveOptions struct {
	BaseName  string
	Extension string
}

// Archive 持久化生成的声明文档并返回后端相关的标识符
// （本地归档为相对路径，对象存储为对象 key）。
type Archive interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
}

// NewArchive 根据配置实例化归档后端。
func NewArchive(cfg config.Config) (Archive, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.ArchiveType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalArchive(cfg.ArchiveLocalDir)
	case TypeS3:
		return NewS3Archive(cfg)
	case TypeOSS:
		return NewOSSArchive(cfg)
	case TypeCOS:
		return NewCOSArchive(cfg)
	case TypeR2:
		return NewR2Archive(cfg)
	default:
		return nil, fmt.Errorf("unsupported archive type: %s", cfg.ArchiveType)
	}
}

// buildObjectKey 生成形如 declarations/YYYY/MM/DD/<base>.<ext> 的对象路径。
func buildObjectKey(baseName, ext string, now time.Time) string {
	base := sanitizeFileBase(baseName)
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixNano())
	}
	normalizedExt := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if normalizedExt == "" {
		normalizedExt = "txt"
	}
	datedir := fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	return path.Join("declarations", datedir, fmt.Sprintf("%s.%s", base, normalizedExt))
}

func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

func sanitizeFileBase(value string) string {
	replaced := strings.ReplaceAll(strings.TrimSpace(value), " ", "-")
	sanitized := sanitizePathSegment(replaced)
	return strings.Trim(sanitized, "-_")
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}
