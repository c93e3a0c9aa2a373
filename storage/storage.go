package storage

import (
	"cloudbox/config"
	"cloudbox/db"
	"fmt"
	"io"
	"log"
	"time"
)

// FileObject is a single entry in a bucket listing
type FileObject struct {
	Key      string
	Size     int64
	Uploaded time.Time
	ETag     string
}

// StorageAPI is the blob store contract: a flat, key-addressed object space.
// Open returns (nil, nil, nil) when the key does not exist.
type StorageAPI interface {
	List() ([]FileObject, error)
	Put(key string, reader io.Reader) (int64, error)
	Open(key string) (io.ReadCloser, *FileObject, error)
	Delete(key string) error
	GetBucket() *Bucket
}

var (
	cachedStorage []StorageAPI
)

func Init() {
	if err := db.Instance.AutoMigrate(&Bucket{}); err != nil {
		panic(err)
	}

	cachedStorage = []StorageAPI{}
	var buckets []Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		panic(err)
	}
	if len(buckets) == 0 {
		bucket := defaultBucket()
		if err := bucket.Create(); err != nil {
			panic(err)
		}
		buckets = append(buckets, bucket)
	}
	log.Printf("Storage Buckets found: %d\n", len(buckets))
	for _, bucket := range buckets {
		cachedStorage = append(cachedStorage, NewStorage(&bucket))
	}
}

func NewStorage(bucket *Bucket) StorageAPI {
	switch bucket.StorageType {
	case StorageTypeFile:
		return NewDiskStorage(bucket)
	case StorageTypeS3:
		return NewS3Storage(bucket)
	}
	panic(fmt.Sprintf("Storage type unavailable for Bucket %d", bucket.ID))
}

// defaultBucket builds the initial bucket from the environment: S3 if
// S3_BUCKET is configured, a local directory otherwise.
func defaultBucket() Bucket {
	if config.S3_BUCKET != "" {
		return Bucket{
			Name:        config.S3_BUCKET,
			StorageType: StorageTypeS3,
			Region:      config.S3_REGION,
			Endpoint:    config.S3_ENDPOINT,
			S3Key:       config.S3_KEY,
			S3Secret:    config.S3_SECRET,
		}
	}
	return Bucket{
		Name:        "local",
		StorageType: StorageTypeFile,
		Path:        config.DEFAULT_BUCKET_DIR,
	}
}

func StorageFrom(bucket *Bucket) StorageAPI {
	for _, s := range cachedStorage {
		if s.GetBucket().ID == bucket.ID {
			return s
		}
	}
	return nil
}

func GetDefaultStorage() StorageAPI {
	if len(cachedStorage) == 0 {
		panic("no storage available")
	}
	return cachedStorage[0]
}
