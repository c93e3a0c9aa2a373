package utils

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nfnt/resize"
)

// Sha512String hashes and encodes in hex the result
func Sha512String(s string) string {
	hash := sha512.New()
	hash.Write([]byte(s))
	return hex.EncodeToString(hash.Sum(nil))
}

// FormatFileSize renders a byte count for humans, e.g. 0 -> "0 B",
// 1024 -> "1 KB", 1536 -> "1.5 KB". Values are rounded to two decimals
// with trailing zeroes dropped.
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	v := float64(size) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}

type FileKind int

const (
	KindOther FileKind = iota
	KindImage
	KindText
	KindPDF
)

var (
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".svg": true, ".webp": true, ".bmp": true}
	textExts  = map[string]bool{".txt": true, ".md": true, ".json": true, ".xml": true, ".html": true, ".css": true, ".js": true}
)

// KindOf classifies a file name by its extension. Unknown extensions are
// KindOther and get served as a raw stream.
func KindOf(name string) FileKind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExts[ext]:
		return KindImage
	case textExts[ext]:
		return KindText
	case ext == ".pdf":
		return KindPDF
	}
	return KindOther
}

// CreateThumb decodes an image, fits it into size x size and writes it out
// as JPEG. Returns the number of bytes written.
func CreateThumb(size uint, reader io.Reader, writer io.Writer) (int64, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 90}); err != nil {
		return 0, err
	}
	return io.Copy(writer, &buf)
}
