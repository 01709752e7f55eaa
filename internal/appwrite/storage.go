package appwrite

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
)

// File is the descriptor the blob store returns for an uploaded file.
type File struct {
	ID       string `json:"$id"`
	Bucket   string `json:"bucketId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// CreateFile uploads r as a new file in the bucket under fileID.
func (c *Client) CreateFile(bucket, fileID, name, mimeType string, r io.Reader) (*File, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("fileId", fileID); err != nil {
		return nil, fmt.Errorf("writing fileId field: %w", err)
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	if mimeType != "" {
		hdr.Set("Content-Type", mimeType)
	}
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copying file contents: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	resp, err := c.do("POST", "/storage/buckets/"+url.PathEscape(bucket)+"/files", &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	f, err := decodeResponse[File](resp)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) DeleteFile(bucket, fileID string) error {
	resp, err := c.doJSON("DELETE", "/storage/buckets/"+url.PathEscape(bucket)+"/files/"+url.PathEscape(fileID), nil)
	if err != nil {
		return err
	}
	return drainResponse(resp)
}

// FileViewURL builds the fetchable URL for a stored file.
func (c *Client) FileViewURL(bucket, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.endpoint, url.PathEscape(bucket), url.PathEscape(fileID), url.QueryEscape(c.project))
}
