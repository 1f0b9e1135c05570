package s3

import (
	"fmt"
	"io"
	"net/http"
)

// imageExtensions 是允許上傳的圖片類型與副檔名，svg 可能夾帶腳本所以不在其中
var imageExtensions = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
	"image/webp": "webp",
}

type InsecureImageError struct {
	MimeType string
}

func (e *InsecureImageError) Error() string {
	return fmt.Sprintf("invalid image type: %s", e.MimeType)
}

// ImageTooLargeError 表示上傳內容超過 Limit 位元組
type ImageTooLargeError struct {
	Limit int64
}

func (e *ImageTooLargeError) Error() string {
	return fmt.Sprintf("image is larger than %s", formatBytes(e.Limit))
}

// DetectImage 偵測內容的 MIME 類型並回傳副檔名，只接受 imageExtensions 中的類型
func DetectImage(content []byte) (mimeType, ext string, err error) {
	mimeType = http.DetectContentType(content)
	ext, ok := imageExtensions[mimeType]
	if !ok {
		return "", "", &InsecureImageError{MimeType: mimeType}
	}
	return mimeType, ext, nil
}

// readImage 讀出整個內容，多讀一個位元組用來判斷是否超過 limit
func readImage(body io.Reader, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, &ImageTooLargeError{Limit: limit}
	}
	return content, nil
}

var byteUnits = []string{"KB", "MB", "GB", "TB"}

func formatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d bytes", n)
	}
	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}
