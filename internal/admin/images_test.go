package admin

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinali45213/folio/internal/appwrite"
)

type fakeBlobs struct {
	created []string
	deleted []string
	fail    bool
}

func (b *fakeBlobs) CreateFile(bucket, fileID, name, mimeType string, r io.Reader) (*appwrite.File, error) {
	if b.fail {
		return nil, assert.AnError
	}
	io.Copy(io.Discard, r)
	b.created = append(b.created, fileID)
	return &appwrite.File{ID: fileID, Bucket: bucket, Name: name, MimeType: mimeType}, nil
}

func (b *fakeBlobs) DeleteFile(bucket, fileID string) error {
	b.deleted = append(b.deleted, fileID)
	if b.fail {
		return assert.AnError
	}
	return nil
}

func (b *fakeBlobs) FileViewURL(bucket, fileID string) string {
	return "https://cloud.example.com/v1/storage/buckets/" + bucket + "/files/" + fileID + "/view?project=test"
}

func TestFileIDFromRef(t *testing.T) {
	cases := []struct {
		ref  string
		want string
	}{
		{"", ""},
		{"68a1b2c3d4e5f6a7b8c9", "68a1b2c3d4e5f6a7b8c9"},
		{"https://cloud.example.com/v1/storage/buckets/portfolio-images/files/abc123/view?project=p", "abc123"},
		{"https://cloud.example.com/v1/storage/buckets/portfolio-images/files/abc123/view", "abc123"},
		{"https://example.com/some/other/path", ""},
		{"https://example.com/files/", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FileIDFromRef(c.ref), "ref %q", c.ref)
	}
}

func writeTempImage(t *testing.T, name string, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0o644))
	if size > 0 {
		require.NoError(t, os.Truncate(path, size))
	}
	return path
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	blobs := &fakeBlobs{}
	f := &Forms{blobs: blobs, bucket: "portfolio-images"}

	_, err := f.UploadImage(writeTempImage(t, "resume.pdf", 0), "")
	assert.ErrorContains(t, err, "not an image")
	assert.Empty(t, blobs.created)
}

func TestUploadImageRejectsOversize(t *testing.T) {
	blobs := &fakeBlobs{}
	f := &Forms{blobs: blobs, bucket: "portfolio-images"}

	_, err := f.UploadImage(writeTempImage(t, "huge.png", maxImageBytes+1), "")
	assert.ErrorContains(t, err, "5 MB")
	assert.Empty(t, blobs.created)
}

func TestUploadImageReplacesOldFile(t *testing.T) {
	blobs := &fakeBlobs{}
	f := &Forms{blobs: blobs, bucket: "portfolio-images"}

	url, err := f.UploadImage(writeTempImage(t, "avatar.png", 0), "oldfile123")
	require.NoError(t, err)
	assert.Contains(t, url, "/view?project=")
	require.Len(t, blobs.created, 1)
	assert.Equal(t, []string{"oldfile123"}, blobs.deleted, "exactly one delete, before the upload")
}

func TestUploadImageExtractsOldIDFromURL(t *testing.T) {
	blobs := &fakeBlobs{}
	f := &Forms{blobs: blobs, bucket: "portfolio-images"}

	old := blobs.FileViewURL("portfolio-images", "prev456")
	_, err := f.UploadImage(writeTempImage(t, "avatar.jpg", 0), old)
	require.NoError(t, err)
	assert.Equal(t, []string{"prev456"}, blobs.deleted)
}

func TestUploadImageSkipsUnextractableOldRef(t *testing.T) {
	blobs := &fakeBlobs{}
	f := &Forms{blobs: blobs, bucket: "portfolio-images"}

	_, err := f.UploadImage(writeTempImage(t, "avatar.png", 0), "https://example.com/not/a/storage/url")
	require.NoError(t, err)
	assert.Empty(t, blobs.deleted)
}
