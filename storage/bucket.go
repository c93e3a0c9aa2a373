package storage

import (
	"cloudbox/db"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

type Bucket struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int
	UpdatedAt   int
	Name        string `gorm:"type:varchar(200)"`
	StorageType StorageType
	Path        string // Directory on a drive or a key prefix in a S3 bucket
	Region      string `gorm:"type:varchar(30)"`
	Endpoint    string `gorm:"type:varchar(200)"` // For S3-compatible stores
	S3Key       string `gorm:"type:varchar(100)"`
	S3Secret    string `gorm:"type:varchar(100)"`
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		return os.MkdirAll(b.Path, 0777)
	}
	return nil
}

// CreateSVC returns a S3 client for the bucket
func (b *Bucket) CreateSVC() *s3.S3 {
	cfg := aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(b.S3Key, b.S3Secret, ""),
	}
	if b.Endpoint != "" {
		cfg.Endpoint = aws.String(b.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&cfg)))
}

// GetRemotePath prefixes the object key with the bucket path (if any)
func (b *Bucket) GetRemotePath(key string) string {
	if b.Path == "" {
		return key
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + key
}
