package model

import "fmt"

// Certificate is a credential entry. Image holds either a full URL or a bare
// blob store file ID; Skills is comma-separated free text.
type Certificate struct {
	ID           string `yaml:"id,omitempty" json:"id,omitempty"`
	Title        string `yaml:"title" json:"title"`
	Issuer       string `yaml:"issuer" json:"issuer"`
	Date         string `yaml:"date,omitempty" json:"date"`
	CredentialID string `yaml:"credential_id,omitempty" json:"credentialId"`
	Image        string `yaml:"image,omitempty" json:"image"`
	Description  string `yaml:"description,omitempty" json:"description"`
	Skills       string `yaml:"skills,omitempty" json:"skills"`
	Verified     bool   `yaml:"verified,omitempty" json:"verified"`
	Link         string `yaml:"link,omitempty" json:"link"`
}

func (c *Certificate) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("certificate title is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("certificate issuer is required")
	}
	return nil
}
