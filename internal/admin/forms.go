// Package admin implements the save and delete workflows behind the CLI's
// management commands: validation, the optional image step, create-vs-update
// dispatch, and the cache re-load that follows every successful write.
package admin

import (
	"context"
	"fmt"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/store"
)

// ConfirmFunc asks the user to approve a destructive action. Wire a prompt
// in for interactive use or a constant for --force and tests.
type ConfirmFunc func(prompt string) (bool, error)

// ErrAborted reports that the user declined a confirmation prompt.
var ErrAborted = fmt.Errorf("aborted")

// Forms drives the admin workflows over the content services and the
// aggregate cache.
type Forms struct {
	services *content.Services
	cache    *store.Content
	blobs    BlobStore
	bucket   string
	confirm  ConfirmFunc
}

func New(services *content.Services, cache *store.Content, blobs BlobStore, bucket string, confirm ConfirmFunc) *Forms {
	return &Forms{services: services, cache: cache, blobs: blobs, bucket: bucket, confirm: confirm}
}

// SavePersonalInfo persists the profile, uploading a new image first when
// imagePath is set. Create vs update follows the identifier.
func (f *Forms) SavePersonalInfo(info model.PersonalInfo, imagePath string) (*model.PersonalInfo, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if imagePath != "" {
		ref, err := f.UploadImage(imagePath, info.ProfileImg)
		if err != nil {
			return nil, err
		}
		info.ProfileImg = ref
	}
	saved, err := f.services.SavePersonalInfo(info)
	if err != nil {
		return nil, err
	}
	if err := f.cache.LoadPersonalInfo(); err != nil {
		return nil, err
	}
	return saved, nil
}

func (f *Forms) SaveExperience(exp model.Experience) (*model.Experience, error) {
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	var saved *model.Experience
	var err error
	if exp.ID == "" {
		saved, err = f.services.CreateExperience(exp)
	} else {
		saved, err = f.services.UpdateExperience(exp.ID, content.ExperiencePatch{
			Title:        &exp.Title,
			Company:      &exp.Company,
			Location:     &exp.Location,
			Duration:     &exp.Duration,
			Type:         &exp.Type,
			Description:  &exp.Description,
			Technologies: &exp.Technologies,
		})
	}
	if err != nil {
		return nil, err
	}
	f.cache.LoadExperiences()
	return saved, nil
}

func (f *Forms) DeleteExperience(exp model.Experience) error {
	ok, err := f.confirm(fmt.Sprintf("Delete experience %q at %s?", exp.Title, exp.Company))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	if err := f.services.DeleteExperience(exp.ID); err != nil {
		return err
	}
	f.cache.LoadExperiences()
	return nil
}

func (f *Forms) SaveProject(proj model.Project, imagePath string) (*model.Project, error) {
	if err := proj.Validate(); err != nil {
		return nil, err
	}
	if imagePath != "" {
		ref, err := f.UploadImage(imagePath, proj.Image)
		if err != nil {
			return nil, err
		}
		proj.Image = ref
	}
	var saved *model.Project
	var err error
	if proj.ID == "" {
		saved, err = f.services.CreateProject(proj)
	} else {
		saved, err = f.services.UpdateProject(proj.ID, content.ProjectPatch{
			Title:       &proj.Title,
			Description: &proj.Description,
			Image:       &proj.Image,
			Tech:        &proj.Tech,
			LiveURL:     &proj.LiveURL,
			GithubURL:   &proj.GithubURL,
			Featured:    &proj.Featured,
			Status:      &proj.Status,
		})
	}
	if err != nil {
		return nil, err
	}
	f.cache.LoadProjects()
	return saved, nil
}

// DeleteProject removes the project and, best-effort, its stored image.
func (f *Forms) DeleteProject(proj model.Project) error {
	ok, err := f.confirm(fmt.Sprintf("Delete project %q?", proj.Title))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	if err := f.services.DeleteProject(proj.ID); err != nil {
		return err
	}
	f.deleteImage(proj.Image)
	f.cache.LoadProjects()
	return nil
}

func (f *Forms) SaveSkill(skill model.Skill) (*model.Skill, error) {
	if err := skill.Validate(); err != nil {
		return nil, err
	}
	var saved *model.Skill
	var err error
	if skill.ID == "" {
		saved, err = f.services.CreateSkill(skill)
	} else {
		saved, err = f.services.UpdateSkill(skill.ID, content.SkillPatch{
			Name:        &skill.Name,
			Level:       &skill.Level,
			Proficiency: &skill.Proficiency,
			Category:    &skill.Category,
			Color:       &skill.Color,
		})
	}
	if err != nil {
		return nil, err
	}
	f.cache.LoadSkills()
	return saved, nil
}

func (f *Forms) DeleteSkill(skill model.Skill) error {
	ok, err := f.confirm(fmt.Sprintf("Delete skill %q?", skill.Name))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	if err := f.services.DeleteSkill(skill.ID); err != nil {
		return err
	}
	f.cache.LoadSkills()
	return nil
}

func (f *Forms) SaveCertificate(cert model.Certificate, imagePath string) (*model.Certificate, error) {
	if err := cert.Validate(); err != nil {
		return nil, err
	}
	if imagePath != "" {
		ref, err := f.UploadImage(imagePath, cert.Image)
		if err != nil {
			return nil, err
		}
		cert.Image = ref
	}
	var saved *model.Certificate
	var err error
	if cert.ID == "" {
		saved, err = f.services.CreateCertificate(cert)
	} else {
		saved, err = f.services.UpdateCertificate(cert.ID, content.CertificatePatch{
			Title:        &cert.Title,
			Issuer:       &cert.Issuer,
			Date:         &cert.Date,
			CredentialID: &cert.CredentialID,
			Image:        &cert.Image,
			Description:  &cert.Description,
			Skills:       &cert.Skills,
			Verified:     &cert.Verified,
			Link:         &cert.Link,
		})
	}
	if err != nil {
		return nil, err
	}
	f.cache.LoadCertificates()
	return saved, nil
}

// DeleteCertificate removes the certificate and, best-effort, its stored
// image.
func (f *Forms) DeleteCertificate(cert model.Certificate) error {
	ok, err := f.confirm(fmt.Sprintf("Delete certificate %q?", cert.Title))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	if err := f.services.DeleteCertificate(cert.ID); err != nil {
		return err
	}
	f.deleteImage(cert.Image)
	f.cache.LoadCertificates()
	return nil
}

// MarkMessage moves a message to the given status and refreshes the inbox.
func (f *Forms) MarkMessage(id string, status model.MessageStatus) (*model.ContactMessage, error) {
	updated, err := f.services.UpdateMessageStatus(id, status)
	if err != nil {
		return nil, err
	}
	f.cache.LoadMessages()
	return updated, nil
}

func (f *Forms) DeleteMessage(msg model.ContactMessage) error {
	ok, err := f.confirm(fmt.Sprintf("Delete message from %s <%s>?", msg.Name, msg.Email))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	if err := f.services.DeleteMessage(msg.ID); err != nil {
		return err
	}
	f.cache.LoadMessages()
	return nil
}

// Refresh re-loads every collection, used after import and by serve's cron.
func (f *Forms) Refresh(ctx context.Context) error {
	return f.cache.LoadAll(ctx)
}
