package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBType     string `env:"DBType" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"aiguidebook"`
	DBPath     string `env:"DBPath" envDefault:"data/aiguidebook.db"`
	DBPort     string `env:"DBPort" envDefault:"3306"`

	// 声明文档归档配置
	ArchiveType     string `env:"ARCHIVE_TYPE" envDefault:"local"`
	ArchiveLocalDir string `env:"ARCHIVE_LOCAL_DIR" envDefault:"data/declarations"`

	// S3 兼容归档配置
	ArchiveS3Region          string `env:"ARCHIVE_S3_REGION"`
	ArchiveS3Bucket          string `env:"ARCHIVE_S3_BUCKET"`
	ArchiveS3Prefix          string `env:"ARCHIVE_S3_PREFIX"`
	ArchiveS3Endpoint        string `env:"ARCHIVE_S3_ENDPOINT"`
	ArchiveS3AccessKeyID     string `env:"ARCHIVE_S3_ACCESS_KEY_ID"`
	ArchiveS3SecretAccessKey string `env:"ARCHIVE_S3_SECRET_ACCESS_KEY"`
	ArchiveS3SessionToken    string `env:"ARCHIVE_S3_SESSION_TOKEN"`
	ArchiveS3ForcePathStyle  bool   `env:"ARCHIVE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// 阿里云 OSS 归档配置
	ArchiveOSSEndpoint        string `env:"ARCHIVE_OSS_ENDPOINT"`
	ArchiveOSSBucket          string `env:"ARCHIVE_OSS_BUCKET"`
	ArchiveOSSPrefix          string `env:"ARCHIVE_OSS_PREFIX"`
	ArchiveOSSAccessKeyID     string `env:"ARCHIVE_OSS_ACCESS_KEY_ID"`
	ArchiveOSSAccessKeySecret string `env:"ARCHIVE_OSS_ACCESS_KEY_SECRET"`

	// 腾讯云 COS 归档配置
	ArchiveCOSBucketURL string `env:"ARCHIVE_COS_BUCKET_URL"`
	ArchiveCOSPrefix    string `env:"ARCHIVE_COS_PREFIX"`
	ArchiveCOSSecretID  string `env:"ARCHIVE_COS_SECRET_ID"`
	ArchiveCOSSecretKey string `env:"ARCHIVE_COS_SECRET_KEY"`

	// Cloudflare R2 归档配置
	ArchiveR2AccountID       string `env:"ARCHIVE_R2_ACCOUNT_ID"`
	ArchiveR2Endpoint        string `env:"ARCHIVE_R2_ENDPOINT"`
	ArchiveR2Region          string `env:"ARCHIVE_R2_REGION" envDefault:"auto"`
	ArchiveR2Bucket          string `env:"ARCHIVE_R2_BUCKET"`
	ArchiveR2Prefix          string `env:"ARCHIVE_R2_PREFIX"`
	ArchiveR2AccessKeyID     string `env:"ARCHIVE_R2_ACCESS_KEY_ID"`
	ArchiveR2SecretAccessKey string `env:"ARCHIVE_R2_SECRET_ACCESS_KEY"`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.Debugf("%#v\n", Conf)
	return Conf, nil
}
