package content

import (
	"errors"
	"fmt"
	"log"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/model"
)

type experienceDoc struct {
	appwrite.DocumentMeta
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Duration     string `json:"duration"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

func (d *experienceDoc) toModel() model.Experience {
	return model.Experience{
		ID:           d.ID,
		Title:        d.Title,
		Company:      d.Company,
		Location:     d.Location,
		Duration:     d.Duration,
		Type:         model.ExperienceType(d.Type),
		Description:  d.Description,
		Technologies: d.Technologies,
	}
}

type experienceData struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Duration     string `json:"duration"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// CreateExperience stores a new experience entry. The input's ID is ignored.
func (s *Services) CreateExperience(in model.Experience) (*model.Experience, error) {
	doc, err := appwrite.CreateDocument[experienceDoc](s.client, s.db, s.cols.Experiences, appwrite.UniqueID, experienceData{
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		Duration:     in.Duration,
		Type:         string(in.Type),
		Description:  in.Description,
		Technologies: in.Technologies,
	})
	if err != nil {
		return nil, writeErr("creating", s.cols.Experiences, err)
	}
	out := doc.toModel()
	return &out, nil
}

// Experiences returns all entries in storage order, empty on read failure.
func (s *Services) Experiences() []model.Experience {
	docs, err := appwrite.ListDocuments[experienceDoc](s.client, s.db, s.cols.Experiences)
	if err != nil {
		log.Printf("warning: listing experiences: %v", err)
		return []model.Experience{}
	}
	experiences := make([]model.Experience, len(docs))
	for i := range docs {
		experiences[i] = docs[i].toModel()
	}
	return experiences
}

func (s *Services) Experience(id string) (*model.Experience, error) {
	doc, err := appwrite.GetDocument[experienceDoc](s.client, s.db, s.cols.Experiences, id)
	if err != nil {
		if errors.Is(err, appwrite.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching experience %s: %w", id, err)
	}
	out := doc.toModel()
	return &out, nil
}

// ExperiencePatch lists the mutable experience fields.
type ExperiencePatch struct {
	Title        *string
	Company      *string
	Location     *string
	Duration     *string
	Type         *model.ExperienceType
	Description  *string
	Technologies *string
}

func (s *Services) UpdateExperience(id string, p ExperiencePatch) (*model.Experience, error) {
	data := map[string]any{}
	if p.Title != nil {
		data["title"] = *p.Title
	}
	if p.Company != nil {
		data["company"] = *p.Company
	}
	if p.Location != nil {
		data["location"] = *p.Location
	}
	if p.Duration != nil {
		data["duration"] = *p.Duration
	}
	if p.Type != nil {
		data["type"] = string(*p.Type)
	}
	if p.Description != nil {
		data["description"] = *p.Description
	}
	if p.Technologies != nil {
		data["technologies"] = *p.Technologies
	}

	doc, err := appwrite.UpdateDocument[experienceDoc](s.client, s.db, s.cols.Experiences, id, data)
	if err != nil {
		return nil, writeErr("updating", s.cols.Experiences, err)
	}
	out := doc.toModel()
	return &out, nil
}

func (s *Services) DeleteExperience(id string) error {
	if err := s.client.DeleteDocument(s.db, s.cols.Experiences, id); err != nil {
		return writeErr("deleting", s.cols.Experiences, err)
	}
	return nil
}
