package model

import "fmt"

// PersonalInfo is the profile singleton. At most one document is expected to
// exist; it is created on first save and updated in place thereafter.
type PersonalInfo struct {
	ID         string `yaml:"id,omitempty" json:"id,omitempty"`
	Name       string `yaml:"name" json:"name"`
	Title      string `yaml:"title" json:"title"`
	Email      string `yaml:"email" json:"email"`
	Phone      string `yaml:"phone" json:"phone"`
	Website    string `yaml:"website,omitempty" json:"website"`
	Location   string `yaml:"location" json:"location"`
	Bio        string `yaml:"bio,omitempty" json:"bio"`
	ProfileImg string `yaml:"profile_img,omitempty" json:"profile_img"`
	GitHub     string `yaml:"github,omitempty" json:"github"`
	LinkedIn   string `yaml:"linkedin,omitempty" json:"linkedin"`
}

func (p *PersonalInfo) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// DefaultPersonalInfo is the fallback profile used when the remote singleton
// does not exist yet, so the public pages never render an empty hero.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:     "Mohsin Ali",
		Title:    "Data scientist & ML Engineer",
		Email:    "mohsinaliabidali320@gmail.com",
		Phone:    "9327900855",
		Location: "Patan Gujarat, 384265",
		GitHub:   "http://github.com/mohsinali45213",
		LinkedIn: "https://www.linkedin.com/in/mohsinaliaghariya/",
	}
}
