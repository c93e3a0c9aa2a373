package storage

import (
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   Bucket
	s3Client *s3.S3
}

func NewS3Storage(bucket *Bucket) StorageAPI {
	return &S3Storage{
		bucket:   *bucket,
		s3Client: bucket.CreateSVC(),
	}
}

func (s *S3Storage) List() ([]FileObject, error) {
	result := []FileObject{}
	prefix := ""
	if s.bucket.Path != "" {
		prefix = strings.TrimSuffix(s.bucket.Path, "/") + "/"
	}
	err := s.s3Client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: &s.bucket.Name,
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			key := strings.TrimPrefix(aws.StringValue(obj.Key), prefix)
			if key == "" {
				continue
			}
			result = append(result, FileObject{
				Key:      key,
				Size:     aws.Int64Value(obj.Size),
				Uploaded: aws.TimeValue(obj.LastModified),
				ETag:     strings.Trim(aws.StringValue(obj.ETag), `"`),
			})
		}
		return true
	})
	return result, err
}

func (s *S3Storage) Put(key string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(key)),
		Body:   reader,
	})
	if err != nil {
		return 0, err
	}
	// The uploader consumes the reader in parts; report the stored size
	head, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(key)),
	})
	if err != nil {
		return 0, nil
	}
	return aws.Int64Value(head.ContentLength), nil
}

func (s *S3Storage) Open(key string) (io.ReadCloser, *FileObject, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(key)),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound") {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	object := &FileObject{
		Key:      key,
		Size:     aws.Int64Value(resp.ContentLength),
		Uploaded: aws.TimeValue(resp.LastModified),
		ETag:     strings.Trim(aws.StringValue(resp.ETag), `"`),
	}
	if object.Uploaded.IsZero() {
		object.Uploaded = time.Now()
	}
	return resp.Body, object, nil
}

func (s *S3Storage) Delete(key string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(key)),
	})
	return err
}

func (s *S3Storage) GetBucket() *Bucket {
	return &s.bucket
}
