package content

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/model"
)

type projectDoc struct {
	appwrite.DocumentMeta
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Tech        string `json:"tech"`
	LiveURL     string `json:"liveUrl"`
	GithubURL   string `json:"githubUrl"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status"`
}

func (d *projectDoc) toModel() model.Project {
	return model.Project{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Tech:        d.Tech,
		LiveURL:     d.LiveURL,
		GithubURL:   d.GithubURL,
		Featured:    d.Featured,
		Status:      model.ProjectStatus(d.Status),
	}
}

type projectData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Tech        string `json:"tech"`
	LiveURL     string `json:"liveUrl"`
	GithubURL   string `json:"githubUrl"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status"`
}

// CreateProject stores a new project. The input's ID is ignored; the store
// assigns one.
func (s *Services) CreateProject(in model.Project) (*model.Project, error) {
	doc, err := appwrite.CreateDocument[projectDoc](s.client, s.db, s.cols.Projects, appwrite.UniqueID, projectData{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Tech:        in.Tech,
		LiveURL:     in.LiveURL,
		GithubURL:   in.GithubURL,
		Featured:    in.Featured,
		Status:      string(in.Status),
	})
	if err != nil {
		return nil, writeErr("creating", s.cols.Projects, err)
	}
	out := doc.toModel()
	return &out, nil
}

// Projects returns all projects in storage order, empty on read failure.
func (s *Services) Projects() []model.Project {
	docs, err := appwrite.ListDocuments[projectDoc](s.client, s.db, s.cols.Projects)
	if err != nil {
		log.Printf("warning: listing projects: %v", err)
		return []model.Project{}
	}
	projects := make([]model.Project, len(docs))
	for i := range docs {
		projects[i] = docs[i].toModel()
	}
	return projects
}

func (s *Services) Project(id string) (*model.Project, error) {
	doc, err := appwrite.GetDocument[projectDoc](s.client, s.db, s.cols.Projects, id)
	if err != nil {
		if errors.Is(err, appwrite.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching project %s: %w", id, err)
	}
	out := doc.toModel()
	return &out, nil
}

// ProjectPatch lists the mutable project fields.
type ProjectPatch struct {
	Title       *string
	Description *string
	Image       *string
	Tech        *string
	LiveURL     *string
	GithubURL   *string
	Featured    *bool
	Status      *model.ProjectStatus
}

func (s *Services) UpdateProject(id string, p ProjectPatch) (*model.Project, error) {
	data := map[string]any{}
	if p.Title != nil {
		data["title"] = *p.Title
	}
	if p.Description != nil {
		data["description"] = *p.Description
	}
	if p.Image != nil {
		data["image"] = *p.Image
	}
	if p.Tech != nil {
		data["tech"] = *p.Tech
	}
	if p.LiveURL != nil {
		data["liveUrl"] = *p.LiveURL
	}
	if p.GithubURL != nil {
		data["githubUrl"] = *p.GithubURL
	}
	if p.Featured != nil {
		data["featured"] = *p.Featured
	}
	if p.Status != nil {
		data["status"] = string(*p.Status)
	}

	doc, err := appwrite.UpdateDocument[projectDoc](s.client, s.db, s.cols.Projects, id, data)
	if err != nil {
		return nil, writeErr("updating", s.cols.Projects, err)
	}
	out := doc.toModel()
	return &out, nil
}

func (s *Services) DeleteProject(id string) error {
	if err := s.client.DeleteDocument(s.db, s.cols.Projects, id); err != nil {
		return writeErr("deleting", s.cols.Projects, err)
	}
	return nil
}

// FeaturedProjects filters the full list client-side.
func (s *Services) FeaturedProjects() []model.Project {
	var out []model.Project
	for _, p := range s.Projects() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsByStatus filters the full list client-side.
func (s *Services) ProjectsByStatus(status model.ProjectStatus) []model.Project {
	var out []model.Project
	for _, p := range s.Projects() {
		if strings.EqualFold(string(p.Status), string(status)) {
			out = append(out, p)
		}
	}
	return out
}
