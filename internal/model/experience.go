package model

import "fmt"

type ExperienceType string

const (
	TypeFullTime   ExperienceType = "Full-time"
	TypePartTime   ExperienceType = "Part-time"
	TypeContract   ExperienceType = "Contract"
	TypeFreelance  ExperienceType = "Freelance"
	TypeInternship ExperienceType = "Internship"
)

var experienceTypes = []ExperienceType{TypeFullTime, TypePartTime, TypeContract, TypeFreelance, TypeInternship}

func ValidateExperienceType(t ExperienceType) error {
	for _, v := range experienceTypes {
		if t == v {
			return nil
		}
	}
	return fmt.Errorf("invalid experience type %q: must be one of Full-time, Part-time, Contract, Freelance, Internship", t)
}

// Experience is one work-history entry. Technologies is comma-separated free
// text, not a structured list; display order is storage order.
type Experience struct {
	ID           string         `yaml:"id,omitempty" json:"id,omitempty"`
	Title        string         `yaml:"title" json:"title"`
	Company      string         `yaml:"company" json:"company"`
	Location     string         `yaml:"location,omitempty" json:"location"`
	Duration     string         `yaml:"duration" json:"duration"`
	Type         ExperienceType `yaml:"type" json:"type"`
	Description  string         `yaml:"description,omitempty" json:"description"`
	Technologies string         `yaml:"technologies,omitempty" json:"technologies"`
}

func (e *Experience) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("experience title is required")
	}
	if e.Company == "" {
		return fmt.Errorf("experience company is required")
	}
	if e.Duration == "" {
		return fmt.Errorf("experience duration is required")
	}
	return ValidateExperienceType(e.Type)
}
