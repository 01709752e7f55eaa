package admin

import (
	"fmt"
	"io"
	"log"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/id"
)

// maxImageBytes caps uploads at 5 MB, matching the bucket's limit so the
// failure happens before any bytes leave the machine.
const maxImageBytes = 5 << 20

// BlobStore is the slice of the file API the image workflow needs.
// *appwrite.Client satisfies it.
type BlobStore interface {
	CreateFile(bucket, fileID, name, mimeType string, r io.Reader) (*appwrite.File, error)
	DeleteFile(bucket, fileID string) error
	FileViewURL(bucket, fileID string) string
}

// FileIDFromRef extracts the stored file ID from an image reference, which
// is either a bare ID or a full view URL ending in /files/{id}/view. Returns
// "" when nothing can be extracted.
func FileIDFromRef(ref string) string {
	if ref == "" {
		return ""
	}
	if !strings.Contains(ref, "/") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "files" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func validateImage(path string, size int64) (string, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s is not an image file", filepath.Base(path))
	}
	if size > maxImageBytes {
		return "", fmt.Errorf("%s is %.1f MB, the limit is 5 MB", filepath.Base(path), float64(size)/(1<<20))
	}
	return mimeType, nil
}

// UploadImage replaces an entity's stored image: the previous file (if any)
// is deleted first, then the new one uploaded. Returns the view URL of the
// new file. Deleting the old file is best-effort; losing the swap after a
// successful delete leaves the entity without an image, which the caller's
// save overwrites anyway.
func (f *Forms) UploadImage(path, oldRef string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	mimeType, err := validateImage(path, info.Size())
	if err != nil {
		return "", err
	}

	if oldID := FileIDFromRef(oldRef); oldID != "" {
		if err := f.blobs.DeleteFile(f.bucket, oldID); err != nil {
			log.Printf("warning: deleting previous image %s: %v", oldID, err)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	defer file.Close()

	fileID, err := id.Unique()
	if err != nil {
		return "", err
	}
	uploaded, err := f.blobs.CreateFile(f.bucket, fileID, filepath.Base(path), mimeType, file)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	return f.blobs.FileViewURL(f.bucket, uploaded.ID), nil
}

// deleteImage removes an entity's stored image when its reference yields a
// file ID. Failures are logged, never fatal: a dangling blob is preferable
// to a delete that half-succeeds.
func (f *Forms) deleteImage(ref string) {
	fileID := FileIDFromRef(ref)
	if fileID == "" {
		return
	}
	if err := f.blobs.DeleteFile(f.bucket, fileID); err != nil {
		log.Printf("warning: deleting image %s: %v", fileID, err)
	}
}
