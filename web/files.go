package web

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"cloudbox/storage"
	"cloudbox/utils"

	"github.com/gin-gonic/gin"
)

type fileEntry struct {
	Key        string
	EncodedKey string
	SizeText   string
	Uploaded   string
	IsImage    bool
	Icon       string
}

// FileList renders the main page: full listing with substring search and
// key/size/date sorting. There is no server-side pagination.
func FileList(c *gin.Context) {
	objects, err := storage.GetDefaultStorage().List()
	if err != nil {
		fail(c, err)
		return
	}
	objects = normalizeObjects(objects)

	search := c.Query("search")
	sortBy := c.DefaultQuery("sort", "name")
	order := c.DefaultQuery("order", "asc")
	objects = filterObjects(objects, search)
	sortObjects(objects, sortBy, order)

	entries := make([]fileEntry, 0, len(objects))
	var totalSize int64
	for _, obj := range objects {
		totalSize += obj.Size
		entries = append(entries, fileEntry{
			Key:        obj.Key,
			EncodedKey: url.PathEscape(obj.Key),
			SizeText:   utils.FormatFileSize(obj.Size),
			Uploaded:   obj.Uploaded.Format("2006-01-02 15:04"),
			IsImage:    utils.KindOf(obj.Key) == utils.KindImage,
			Icon:       iconFor(obj.Key),
		})
	}

	c.HTML(http.StatusOK, "files.tmpl", gin.H{
		"Files":     entries,
		"Search":    search,
		"Sort":      sortBy,
		"Order":     order,
		"Count":     len(entries),
		"TotalSize": utils.FormatFileSize(totalSize),
	})
}

// normalizeObjects substitutes zero values for entries the store reports
// without size or upload time, and drops entries without a key.
func normalizeObjects(objects []storage.FileObject) []storage.FileObject {
	result := objects[:0]
	for _, obj := range objects {
		if obj.Key == "" {
			continue
		}
		if obj.Size < 0 {
			obj.Size = 0
		}
		if obj.Uploaded.IsZero() {
			obj.Uploaded = time.Now()
		}
		result = append(result, obj)
	}
	return result
}

func filterObjects(objects []storage.FileObject, search string) []storage.FileObject {
	if search == "" {
		return objects
	}
	needle := strings.ToLower(search)
	result := []storage.FileObject{}
	for _, obj := range objects {
		if strings.Contains(strings.ToLower(obj.Key), needle) {
			result = append(result, obj)
		}
	}
	return result
}

// sortObjects orders the listing in place. Ties keep their source order.
func sortObjects(objects []storage.FileObject, sortBy, order string) {
	var less func(a, b storage.FileObject) bool
	switch sortBy {
	case "size":
		less = func(a, b storage.FileObject) bool { return a.Size < b.Size }
	case "date":
		less = func(a, b storage.FileObject) bool { return a.Uploaded.Before(b.Uploaded) }
	default: // name
		less = func(a, b storage.FileObject) bool {
			return strings.ToLower(a.Key) < strings.ToLower(b.Key)
		}
	}
	sort.SliceStable(objects, func(i, j int) bool {
		if order == "desc" {
			return less(objects[j], objects[i])
		}
		return less(objects[i], objects[j])
	})
}

func iconFor(key string) string {
	if strings.HasSuffix(key, "/") {
		return "fa-folder"
	}
	switch utils.KindOf(key) {
	case utils.KindImage:
		return "fa-image"
	case utils.KindText:
		return "fa-file-lines"
	case utils.KindPDF:
		return "fa-file-pdf"
	}
	return "fa-file"
}
