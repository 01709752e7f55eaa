// Package export reads and writes a content snapshot as a directory of
// markdown files with YAML frontmatter: info.md for the profile plus one
// file per entity, long text (bio, descriptions) as the markdown body.
// The bundle doubles as a backup format and a seed for a fresh deployment.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohsinali45213/folio/internal/model"
)

// Bundle is the on-disk content snapshot.
type Bundle struct {
	PersonalInfo *model.PersonalInfo
	Experiences  []model.Experience
	Projects     []model.Project
	Skills       []model.Skill
	Certificates []model.Certificate
}

type infoMeta struct {
	ID         string `yaml:"id,omitempty"`
	Name       string `yaml:"name"`
	Title      string `yaml:"title"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone,omitempty"`
	Website    string `yaml:"website,omitempty"`
	Location   string `yaml:"location,omitempty"`
	ProfileImg string `yaml:"profile_img,omitempty"`
	GitHub     string `yaml:"github,omitempty"`
	LinkedIn   string `yaml:"linkedin,omitempty"`
}

type experienceMeta struct {
	ID           string `yaml:"id,omitempty"`
	Title        string `yaml:"title"`
	Company      string `yaml:"company"`
	Location     string `yaml:"location,omitempty"`
	Duration     string `yaml:"duration"`
	Type         string `yaml:"type"`
	Technologies string `yaml:"technologies,omitempty"`
}

type projectMeta struct {
	ID        string `yaml:"id,omitempty"`
	Title     string `yaml:"title"`
	Image     string `yaml:"image,omitempty"`
	Tech      string `yaml:"tech,omitempty"`
	LiveURL   string `yaml:"live_url,omitempty"`
	GithubURL string `yaml:"github_url,omitempty"`
	Featured  bool   `yaml:"featured,omitempty"`
	Status    string `yaml:"status"`
}

type skillMeta struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	Proficiency string `yaml:"proficiency,omitempty"`
	Category    string `yaml:"category"`
	Color       string `yaml:"color,omitempty"`
}

type certificateMeta struct {
	ID           string `yaml:"id,omitempty"`
	Title        string `yaml:"title"`
	Issuer       string `yaml:"issuer"`
	Date         string `yaml:"date,omitempty"`
	CredentialID string `yaml:"credential_id,omitempty"`
	Image        string `yaml:"image,omitempty"`
	Skills       string `yaml:"skills,omitempty"`
	Verified     bool   `yaml:"verified,omitempty"`
	Link         string `yaml:"link,omitempty"`
}

// MarshalInfo renders the profile as a frontmatter document with the bio as
// the markdown body, the format `folio info edit` opens in the editor.
func MarshalInfo(p model.PersonalInfo) ([]byte, error) {
	return marshalDoc(infoMeta{
		ID: p.ID, Name: p.Name, Title: p.Title, Email: p.Email,
		Phone: p.Phone, Website: p.Website, Location: p.Location,
		ProfileImg: p.ProfileImg, GitHub: p.GitHub, LinkedIn: p.LinkedIn,
	}, p.Bio)
}

// ParseInfo is the inverse of MarshalInfo.
func ParseInfo(r io.Reader) (model.PersonalInfo, error) {
	meta, body, err := parseDoc[infoMeta](r)
	if err != nil {
		return model.PersonalInfo{}, err
	}
	return model.PersonalInfo{
		ID: meta.ID, Name: meta.Name, Title: meta.Title, Email: meta.Email,
		Phone: meta.Phone, Website: meta.Website, Location: meta.Location,
		Bio: body, ProfileImg: meta.ProfileImg, GitHub: meta.GitHub,
		LinkedIn: meta.LinkedIn,
	}, nil
}

// fileSlug derives a stable filename from the entity's ID, falling back to a
// slug of the name for bundles written by hand.
func fileSlug(id, name string) string {
	if id != "" {
		return id
	}
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	return strings.Trim(slug, "-")
}

func writeDoc[T any](dir, name string, meta T, body string) error {
	data, err := marshalDoc(meta, body)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name+".md"), data, 0o644)
}

// Write lays the bundle out under dir, one subdirectory per collection.
func Write(dir string, b Bundle) error {
	for _, sub := range []string{"experiences", "projects", "skills", "certificates"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("creating bundle directory: %w", err)
		}
	}

	if b.PersonalInfo != nil {
		data, err := MarshalInfo(*b.PersonalInfo)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "info.md"), data, 0o644); err != nil {
			return fmt.Errorf("writing info.md: %w", err)
		}
	}
	for _, e := range b.Experiences {
		err := writeDoc(filepath.Join(dir, "experiences"), fileSlug(e.ID, e.Title), experienceMeta{
			ID: e.ID, Title: e.Title, Company: e.Company, Location: e.Location,
			Duration: e.Duration, Type: string(e.Type), Technologies: e.Technologies,
		}, e.Description)
		if err != nil {
			return err
		}
	}
	for _, p := range b.Projects {
		err := writeDoc(filepath.Join(dir, "projects"), fileSlug(p.ID, p.Title), projectMeta{
			ID: p.ID, Title: p.Title, Image: p.Image, Tech: p.Tech,
			LiveURL: p.LiveURL, GithubURL: p.GithubURL, Featured: p.Featured,
			Status: string(p.Status),
		}, p.Description)
		if err != nil {
			return err
		}
	}
	for _, s := range b.Skills {
		err := writeDoc(filepath.Join(dir, "skills"), fileSlug(s.ID, s.Name), skillMeta{
			ID: s.ID, Name: s.Name, Level: s.Level,
			Proficiency: string(s.Proficiency), Category: s.Category, Color: s.Color,
		}, "")
		if err != nil {
			return err
		}
	}
	for _, c := range b.Certificates {
		err := writeDoc(filepath.Join(dir, "certificates"), fileSlug(c.ID, c.Title), certificateMeta{
			ID: c.ID, Title: c.Title, Issuer: c.Issuer, Date: c.Date,
			CredentialID: c.CredentialID, Image: c.Image, Skills: c.Skills,
			Verified: c.Verified, Link: c.Link,
		}, c.Description)
		if err != nil {
			return err
		}
	}
	return nil
}

func readDir[M any](dir string) ([]M, []string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading bundle directory: %w", err)
	}
	var metas []M
	var bodies []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		meta, body, err := parseDoc[M](f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		metas = append(metas, meta)
		bodies = append(bodies, body)
	}
	return metas, bodies, nil
}

// Read assembles a bundle from dir. Missing files and subdirectories are
// simply absent from the result, so partial bundles import cleanly.
func Read(dir string) (*Bundle, error) {
	var b Bundle

	if f, err := os.Open(filepath.Join(dir, "info.md")); err == nil {
		info, perr := ParseInfo(f)
		f.Close()
		if perr != nil {
			return nil, fmt.Errorf("parsing info.md: %w", perr)
		}
		b.PersonalInfo = &info
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading info.md: %w", err)
	}

	expMetas, expBodies, err := readDir[experienceMeta](filepath.Join(dir, "experiences"))
	if err != nil {
		return nil, err
	}
	for i, m := range expMetas {
		b.Experiences = append(b.Experiences, model.Experience{
			ID: m.ID, Title: m.Title, Company: m.Company, Location: m.Location,
			Duration: m.Duration, Type: model.ExperienceType(m.Type),
			Description: expBodies[i], Technologies: m.Technologies,
		})
	}

	projMetas, projBodies, err := readDir[projectMeta](filepath.Join(dir, "projects"))
	if err != nil {
		return nil, err
	}
	for i, m := range projMetas {
		b.Projects = append(b.Projects, model.Project{
			ID: m.ID, Title: m.Title, Description: projBodies[i], Image: m.Image,
			Tech: m.Tech, LiveURL: m.LiveURL, GithubURL: m.GithubURL,
			Featured: m.Featured, Status: model.ProjectStatus(m.Status),
		})
	}

	skillMetas, _, err := readDir[skillMeta](filepath.Join(dir, "skills"))
	if err != nil {
		return nil, err
	}
	for _, m := range skillMetas {
		b.Skills = append(b.Skills, model.Skill{
			ID: m.ID, Name: m.Name, Level: m.Level,
			Proficiency: model.Proficiency(m.Proficiency),
			Category:    m.Category, Color: m.Color,
		})
	}

	certMetas, certBodies, err := readDir[certificateMeta](filepath.Join(dir, "certificates"))
	if err != nil {
		return nil, err
	}
	for i, m := range certMetas {
		b.Certificates = append(b.Certificates, model.Certificate{
			ID: m.ID, Title: m.Title, Issuer: m.Issuer, Date: m.Date,
			CredentialID: m.CredentialID, Image: m.Image,
			Description: certBodies[i], Skills: m.Skills,
			Verified: m.Verified, Link: m.Link,
		})
	}

	return &b, nil
}
