package web

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sync"

	"cloudbox/config"
	"cloudbox/storage"
	"cloudbox/utils"

	"github.com/gin-gonic/gin"
)

type UploadResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type DeleteResult struct {
	Key     string `json:"key"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// FileUpload stores every file from the multipart `file` field. Objects are
// keyed by their original name, so a repeated name overwrites silently.
// Per-file failures end up in the result array instead of aborting the batch.
func FileUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, err)
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未选择文件"})
		return
	}
	results := uploadFiles(storage.GetDefaultStorage(), files)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// FileDelete removes every key from the repeated `fileKey` form field, with
// the same per-item semantics as FileUpload.
func FileDelete(c *gin.Context) {
	keys := c.PostFormArray("fileKey")
	if len(keys) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未选择文件"})
		return
	}
	results := deleteKeys(storage.GetDefaultStorage(), keys)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func uploadFiles(store storage.StorageAPI, files []*multipart.FileHeader) []UploadResult {
	results := make([]UploadResult, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()
			results[i] = saveOne(store, file)
		}(i, file)
	}
	wg.Wait()
	return results
}

func saveOne(store storage.StorageAPI, file *multipart.FileHeader) UploadResult {
	result := UploadResult{Name: file.Filename}
	if config.MAX_UPLOAD_SIZE > 0 && file.Size > config.MAX_UPLOAD_SIZE {
		result.Error = "文件超过大小限制 " + utils.FormatFileSize(config.MAX_UPLOAD_SIZE)
		return result
	}
	reader, err := file.Open()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer reader.Close()
	if _, err := store.Put(filepath.Base(file.Filename), reader); err != nil {
		result.Error = err.Error()
		return result
	}
	result.Success = true
	return result
}

func deleteKeys(store storage.StorageAPI, keys []string) []DeleteResult {
	results := make([]DeleteResult, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			results[i] = DeleteResult{Key: key}
			if err := store.Delete(key); err != nil {
				results[i].Error = err.Error()
				return
			}
			results[i].Success = true
		}(i, key)
	}
	wg.Wait()
	return results
}
