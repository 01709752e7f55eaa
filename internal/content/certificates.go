package content

import (
	"errors"
	"fmt"
	"log"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/model"
)

type certificateDoc struct {
	appwrite.DocumentMeta
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	Skills       string `json:"skills"`
	Verified     bool   `json:"verified"`
	Link         string `json:"link"`
}

func (d *certificateDoc) toModel() model.Certificate {
	return model.Certificate{
		ID:           d.ID,
		Title:        d.Title,
		Issuer:       d.Issuer,
		Date:         d.Date,
		CredentialID: d.CredentialID,
		Image:        d.Image,
		Description:  d.Description,
		Skills:       d.Skills,
		Verified:     d.Verified,
		Link:         d.Link,
	}
}

type certificateData struct {
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	Skills       string `json:"skills"`
	Verified     bool   `json:"verified"`
	Link         string `json:"link"`
}

// CreateCertificate stores a new certificate. The input's ID is ignored.
func (s *Services) CreateCertificate(in model.Certificate) (*model.Certificate, error) {
	doc, err := appwrite.CreateDocument[certificateDoc](s.client, s.db, s.cols.Certificates, appwrite.UniqueID, certificateData{
		Title:        in.Title,
		Issuer:       in.Issuer,
		Date:         in.Date,
		CredentialID: in.CredentialID,
		Image:        in.Image,
		Description:  in.Description,
		Skills:       in.Skills,
		Verified:     in.Verified,
		Link:         in.Link,
	})
	if err != nil {
		return nil, writeErr("creating", s.cols.Certificates, err)
	}
	out := doc.toModel()
	return &out, nil
}

// Certificates returns all certificates in storage order, empty on read
// failure.
func (s *Services) Certificates() []model.Certificate {
	docs, err := appwrite.ListDocuments[certificateDoc](s.client, s.db, s.cols.Certificates)
	if err != nil {
		log.Printf("warning: listing certificates: %v", err)
		return []model.Certificate{}
	}
	certificates := make([]model.Certificate, len(docs))
	for i := range docs {
		certificates[i] = docs[i].toModel()
	}
	return certificates
}

func (s *Services) Certificate(id string) (*model.Certificate, error) {
	doc, err := appwrite.GetDocument[certificateDoc](s.client, s.db, s.cols.Certificates, id)
	if err != nil {
		if errors.Is(err, appwrite.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching certificate %s: %w", id, err)
	}
	out := doc.toModel()
	return &out, nil
}

// CertificatePatch lists the mutable certificate fields.
type CertificatePatch struct {
	Title        *string
	Issuer       *string
	Date         *string
	CredentialID *string
	Image        *string
	Description  *string
	Skills       *string
	Verified     *bool
	Link         *string
}

func (s *Services) UpdateCertificate(id string, p CertificatePatch) (*model.Certificate, error) {
	data := map[string]any{}
	if p.Title != nil {
		data["title"] = *p.Title
	}
	if p.Issuer != nil {
		data["issuer"] = *p.Issuer
	}
	if p.Date != nil {
		data["date"] = *p.Date
	}
	if p.CredentialID != nil {
		data["credentialId"] = *p.CredentialID
	}
	if p.Image != nil {
		data["image"] = *p.Image
	}
	if p.Description != nil {
		data["description"] = *p.Description
	}
	if p.Skills != nil {
		data["skills"] = *p.Skills
	}
	if p.Verified != nil {
		data["verified"] = *p.Verified
	}
	if p.Link != nil {
		data["link"] = *p.Link
	}

	doc, err := appwrite.UpdateDocument[certificateDoc](s.client, s.db, s.cols.Certificates, id, data)
	if err != nil {
		return nil, writeErr("updating", s.cols.Certificates, err)
	}
	out := doc.toModel()
	return &out, nil
}

func (s *Services) DeleteCertificate(id string) error {
	if err := s.client.DeleteDocument(s.db, s.cols.Certificates, id); err != nil {
		return writeErr("deleting", s.cols.Certificates, err)
	}
	return nil
}
