package content

import (
	"fmt"
	"log"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/model"
)

type personalInfoDoc struct {
	appwrite.DocumentMeta
	Name       string `json:"name"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	Location   string `json:"location"`
	Bio        string `json:"bio"`
	ProfileImg string `json:"profile_img"`
	GitHub     string `json:"github"`
	LinkedIn   string `json:"linkedin"`
}

func (d *personalInfoDoc) toModel() model.PersonalInfo {
	return model.PersonalInfo{
		ID:         d.ID,
		Name:       d.Name,
		Title:      d.Title,
		Email:      d.Email,
		Phone:      d.Phone,
		Website:    d.Website,
		Location:   d.Location,
		Bio:        d.Bio,
		ProfileImg: d.ProfileImg,
		GitHub:     d.GitHub,
		LinkedIn:   d.LinkedIn,
	}
}

type personalInfoData struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	Location   string `json:"location"`
	Bio        string `json:"bio"`
	ProfileImg string `json:"profile_img"`
	GitHub     string `json:"github"`
	LinkedIn   string `json:"linkedin"`
}

func personalInfoPayload(in model.PersonalInfo) personalInfoData {
	return personalInfoData{
		Name:       in.Name,
		Title:      in.Title,
		Email:      in.Email,
		Phone:      in.Phone,
		Website:    in.Website,
		Location:   in.Location,
		Bio:        in.Bio,
		ProfileImg: in.ProfileImg,
		GitHub:     in.GitHub,
		LinkedIn:   in.LinkedIn,
	}
}

// PersonalInfo returns the profile singleton. The collection is expected to
// hold at most one document; when several exist the first wins. ErrNotFound
// means the profile has never been created.
func (s *Services) PersonalInfo() (*model.PersonalInfo, error) {
	docs, err := appwrite.ListDocuments[personalInfoDoc](s.client, s.db, s.cols.PersonalInfo)
	if err != nil {
		return nil, fmt.Errorf("fetching personal info: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	if len(docs) > 1 {
		log.Printf("warning: %d personal info documents found, using the first", len(docs))
	}
	out := docs[0].toModel()
	return &out, nil
}

func (s *Services) CreatePersonalInfo(in model.PersonalInfo) (*model.PersonalInfo, error) {
	doc, err := appwrite.CreateDocument[personalInfoDoc](s.client, s.db, s.cols.PersonalInfo, appwrite.UniqueID, personalInfoPayload(in))
	if err != nil {
		return nil, writeErr("creating", s.cols.PersonalInfo, err)
	}
	out := doc.toModel()
	return &out, nil
}

// PersonalInfoPatch lists the mutable profile fields.
type PersonalInfoPatch struct {
	Name       *string
	Title      *string
	Email      *string
	Phone      *string
	Website    *string
	Location   *string
	Bio        *string
	ProfileImg *string
	GitHub     *string
	LinkedIn   *string
}

func (s *Services) UpdatePersonalInfo(id string, p PersonalInfoPatch) (*model.PersonalInfo, error) {
	data := map[string]any{}
	if p.Name != nil {
		data["name"] = *p.Name
	}
	if p.Title != nil {
		data["title"] = *p.Title
	}
	if p.Email != nil {
		data["email"] = *p.Email
	}
	if p.Phone != nil {
		data["phone"] = *p.Phone
	}
	if p.Website != nil {
		data["website"] = *p.Website
	}
	if p.Location != nil {
		data["location"] = *p.Location
	}
	if p.Bio != nil {
		data["bio"] = *p.Bio
	}
	if p.ProfileImg != nil {
		data["profile_img"] = *p.ProfileImg
	}
	if p.GitHub != nil {
		data["github"] = *p.GitHub
	}
	if p.LinkedIn != nil {
		data["linkedin"] = *p.LinkedIn
	}

	doc, err := appwrite.UpdateDocument[personalInfoDoc](s.client, s.db, s.cols.PersonalInfo, id, data)
	if err != nil {
		return nil, writeErr("updating", s.cols.PersonalInfo, err)
	}
	out := doc.toModel()
	return &out, nil
}

// SavePersonalInfo creates the profile when no ID is set and replaces every
// field otherwise.
func (s *Services) SavePersonalInfo(in model.PersonalInfo) (*model.PersonalInfo, error) {
	if in.ID == "" {
		return s.CreatePersonalInfo(in)
	}
	doc, err := appwrite.UpdateDocument[personalInfoDoc](s.client, s.db, s.cols.PersonalInfo, in.ID, personalInfoPayload(in))
	if err != nil {
		return nil, writeErr("updating", s.cols.PersonalInfo, err)
	}
	out := doc.toModel()
	return &out, nil
}
