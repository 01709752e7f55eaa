package appwrite

import "net/url"

// UniqueID asks the server to assign the document ID.
const UniqueID = "unique()"

// DocumentMeta holds the bookkeeping fields the store attaches to every
// document. Wire structs embed it; write payloads never include it, so a
// previously read document can be fed back into a create without colliding
// on identifier.
type DocumentMeta struct {
	ID          string   `json:"$id,omitempty"`
	Collection  string   `json:"$collectionId,omitempty"`
	Database    string   `json:"$databaseId,omitempty"`
	CreatedAt   string   `json:"$createdAt,omitempty"`
	UpdatedAt   string   `json:"$updatedAt,omitempty"`
	Permissions []string `json:"$permissions,omitempty"`
}

type documentList[T any] struct {
	Total     int `json:"total"`
	Documents []T `json:"documents"`
}

func collectionPath(db, col string) string {
	return "/databases/" + url.PathEscape(db) + "/collections/" + url.PathEscape(col) + "/documents"
}

func documentPath(db, col, id string) string {
	return collectionPath(db, col) + "/" + url.PathEscape(id)
}

// CreateDocument submits data as a new document in the collection. Pass
// UniqueID to let the store assign the identifier.
func CreateDocument[T any](c *Client, db, col, docID string, data any) (T, error) {
	var zero T
	resp, err := c.doJSON("POST", collectionPath(db, col), map[string]any{
		"documentId": docID,
		"data":       data,
	})
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](resp)
}

// ListDocuments returns all documents in the collection in storage order.
func ListDocuments[T any](c *Client, db, col string) ([]T, error) {
	resp, err := c.doJSON("GET", collectionPath(db, col), nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeResponse[documentList[T]](resp)
	if err != nil {
		return nil, err
	}
	return list.Documents, nil
}

func GetDocument[T any](c *Client, db, col, id string) (T, error) {
	var zero T
	resp, err := c.doJSON("GET", documentPath(db, col, id), nil)
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](resp)
}

// UpdateDocument applies a partial update. Fields absent from data are left
// unchanged; there is no version precondition, so the last writer wins.
func UpdateDocument[T any](c *Client, db, col, id string, data any) (T, error) {
	var zero T
	resp, err := c.doJSON("PATCH", documentPath(db, col, id), map[string]any{
		"data": data,
	})
	if err != nil {
		return zero, err
	}
	return decodeResponse[T](resp)
}

func (c *Client) DeleteDocument(db, col, id string) error {
	resp, err := c.doJSON("DELETE", documentPath(db, col, id), nil)
	if err != nil {
		return err
	}
	return drainResponse(resp)
}
