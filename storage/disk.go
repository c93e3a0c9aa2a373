package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type DiskStorage struct {
	// BasePath is a directory (usually mount point of a disk) that is writable by the current process
	BasePath  string
	bucket    Bucket
	dirs      map[string]bool
	dirsMutex sync.Mutex
}

func NewDiskStorage(bucket *Bucket) StorageAPI {
	return &DiskStorage{
		BasePath: bucket.Path,
		bucket:   *bucket,
		dirs:     make(map[string]bool, 10),
	}
}

var ErrBadKey = errors.New("invalid object key")

func (s *DiskStorage) createDir(dir string) error {
	s.dirsMutex.Lock()
	defer s.dirsMutex.Unlock()

	if ok := s.dirs[dir]; ok {
		return nil
	}
	s.dirs[dir] = true
	return os.MkdirAll(dir, 0777)
}

// getFullPath maps a key onto the base directory, refusing path escapes
func (s *DiskStorage) getFullPath(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", ErrBadKey
	}
	return filepath.Join(s.BasePath, filepath.FromSlash(key)), nil
}

func (s *DiskStorage) List() ([]FileObject, error) {
	result := []FileObject{}
	err := filepath.WalkDir(s.BasePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.BasePath, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		result = append(result, FileObject{
			Key:      filepath.ToSlash(rel),
			Size:     info.Size(),
			Uploaded: info.ModTime(),
		})
		return nil
	})
	if os.IsNotExist(err) {
		return result, nil
	}
	return result, err
}

func (s *DiskStorage) Put(key string, reader io.Reader) (int64, error) {
	fileName, err := s.getFullPath(key)
	if err != nil {
		return 0, err
	}
	if err := s.createDir(filepath.Dir(fileName)); err != nil {
		return 0, err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

func (s *DiskStorage) Open(key string) (io.ReadCloser, *FileObject, error) {
	fileName, err := s.getFullPath(key)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return file, &FileObject{
		Key:      key,
		Size:     info.Size(),
		Uploaded: info.ModTime(),
	}, nil
}

func (s *DiskStorage) Delete(key string) error {
	fileName, err := s.getFullPath(key)
	if err != nil {
		return err
	}
	return os.Remove(fileName)
}

func (s *DiskStorage) GetBucket() *Bucket {
	return &s.bucket
}
