package model

import "fmt"

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

var projectStatuses = []ProjectStatus{StatusCompleted, StatusInProgress, StatusPlanned}

func ValidateProjectStatus(s ProjectStatus) error {
	for _, v := range projectStatuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid project status %q: must be one of completed, in-progress, planned", s)
}

// Project is a portfolio entry. Image holds either a full URL or a bare blob
// store file ID; Tech is comma-separated free text.
type Project struct {
	ID          string        `yaml:"id,omitempty" json:"id,omitempty"`
	Title       string        `yaml:"title" json:"title"`
	Description string        `yaml:"description" json:"description"`
	Image       string        `yaml:"image,omitempty" json:"image"`
	Tech        string        `yaml:"tech,omitempty" json:"tech"`
	LiveURL     string        `yaml:"live_url,omitempty" json:"liveUrl"`
	GithubURL   string        `yaml:"github_url,omitempty" json:"githubUrl"`
	Featured    bool          `yaml:"featured,omitempty" json:"featured"`
	Status      ProjectStatus `yaml:"status" json:"status"`
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	if p.Description == "" {
		return fmt.Errorf("project description is required")
	}
	return ValidateProjectStatus(p.Status)
}
