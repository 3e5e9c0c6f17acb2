package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize caps document uploads at 10 MiB.
const MaxUploadSize = 10 << 20

var ErrDocumentNotFound = errors.New("document not found")
var ErrFileTooLarge = errors.New("file exceeds the 10 MiB upload limit")
var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// AllowedUpload reports whether both the file extension and the declared MIME
// type are on the upload allowlist. Both must match: an allowed extension with
// a mismatched declared type is rejected.
func AllowedUpload(originalName, mimeType string) bool {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return false
	}
	_, ok := allowedMimeTypes[strings.ToLower(mimeType)]
	return ok
}

// Document is a file attached to a person. FileName is the storage-internal
// name (unique per upload); OriginalName is what the uploader called it.
type Document struct {
	ID           string    `json:"id"`
	PersonID     string    `json:"personId"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
