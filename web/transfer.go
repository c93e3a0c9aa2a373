package web

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"cloudbox/storage"
	"cloudbox/utils"

	"github.com/gin-gonic/gin"
)

// FileDownload serves GET /<key> as an attachment. It is mounted as the
// catch-all route, so anything but GET falls through to a plain 404.
func FileDownload(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	key, err := url.PathUnescape(strings.TrimPrefix(c.Request.URL.Path, "/"))
	if err != nil || key == "" {
		c.String(http.StatusNotFound, "文件不存在")
		return
	}
	serveObject(c, key, "attachment")
}

// FilePreview serves GET /preview/<key> inline. Text files come back as
// UTF-8 plain text; everything else is the raw stream and the browser
// decides what to do with it.
func FilePreview(c *gin.Context) {
	key, ok := paramKey(c)
	if !ok {
		return
	}
	if utils.KindOf(key) != utils.KindText {
		serveObject(c, key, "inline")
		return
	}
	body, _, err := storage.GetDefaultStorage().Open(key)
	if err != nil {
		fail(c, err)
		return
	}
	if body == nil {
		c.String(http.StatusNotFound, "文件不存在")
		return
	}
	defer body.Close()
	text, err := io.ReadAll(body)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename*=UTF-8''"+url.PathEscape(key))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", text)
}

// FileThumb serves GET /thumb/<key>: a JPEG thumbnail for image keys, a
// redirect to the raw object for anything else.
func FileThumb(c *gin.Context) {
	key, ok := paramKey(c)
	if !ok {
		return
	}
	if utils.KindOf(key) != utils.KindImage {
		c.Redirect(http.StatusFound, "/"+url.PathEscape(key))
		return
	}
	body, _, err := storage.GetDefaultStorage().Open(key)
	if err != nil {
		fail(c, err)
		return
	}
	if body == nil {
		c.String(http.StatusNotFound, "文件不存在")
		return
	}
	defer body.Close()
	var buf bytes.Buffer
	if _, err := utils.CreateThumb(320, body, &buf); err != nil {
		// Formats the decoder doesn't know (webp, svg) fall back to the raw file
		c.Redirect(http.StatusFound, "/"+url.PathEscape(key))
		return
	}
	c.Header("cache-control", "private, max-age=86400")
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}

func paramKey(c *gin.Context) (string, bool) {
	key, err := url.PathUnescape(strings.TrimPrefix(c.Param("key"), "/"))
	if err != nil || key == "" {
		c.String(http.StatusNotFound, "文件不存在")
		return "", false
	}
	return key, true
}

func serveObject(c *gin.Context, key, disposition string) {
	body, object, err := storage.GetDefaultStorage().Open(key)
	if err != nil {
		fail(c, err)
		return
	}
	if body == nil {
		c.String(http.StatusNotFound, "文件不存在")
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if object.ETag != "" {
		c.Header("ETag", `"`+object.ETag+`"`)
	}
	c.Header("Content-Disposition", disposition+"; filename*=UTF-8''"+url.PathEscape(key))
	c.DataFromReader(http.StatusOK, object.Size, contentType, body, nil)
}
