package content

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/model"
)

type skillDoc struct {
	appwrite.DocumentMeta
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Proficiency string `json:"proficiency"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

func (d *skillDoc) toModel() model.Skill {
	return model.Skill{
		ID:          d.ID,
		Name:        d.Name,
		Level:       d.Level,
		Proficiency: model.Proficiency(d.Proficiency),
		Category:    d.Category,
		Color:       d.Color,
	}
}

// skillData is the write payload: user fields only, no storage metadata.
type skillData struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Proficiency string `json:"proficiency"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

// CreateSkill stores a new skill. The input's ID is ignored; the store
// assigns one. Proficiency is derived from the level when omitted.
func (s *Services) CreateSkill(in model.Skill) (*model.Skill, error) {
	if in.Proficiency == "" {
		in.Proficiency = model.ProficiencyForLevel(in.Level)
	}
	doc, err := appwrite.CreateDocument[skillDoc](s.client, s.db, s.cols.Skills, appwrite.UniqueID, skillData{
		Name:        in.Name,
		Level:       in.Level,
		Proficiency: string(in.Proficiency),
		Category:    in.Category,
		Color:       in.Color,
	})
	if err != nil {
		return nil, writeErr("creating", s.cols.Skills, err)
	}
	out := doc.toModel()
	return &out, nil
}

// Skills returns all skills in storage order. Read failures degrade to an
// empty list.
func (s *Services) Skills() []model.Skill {
	docs, err := appwrite.ListDocuments[skillDoc](s.client, s.db, s.cols.Skills)
	if err != nil {
		log.Printf("warning: listing skills: %v", err)
		return []model.Skill{}
	}
	skills := make([]model.Skill, len(docs))
	for i := range docs {
		skills[i] = docs[i].toModel()
	}
	return skills
}

func (s *Services) Skill(id string) (*model.Skill, error) {
	doc, err := appwrite.GetDocument[skillDoc](s.client, s.db, s.cols.Skills, id)
	if err != nil {
		if errors.Is(err, appwrite.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching skill %s: %w", id, err)
	}
	out := doc.toModel()
	return &out, nil
}

// SkillPatch lists the mutable skill fields. Unset fields are left unchanged.
type SkillPatch struct {
	Name        *string
	Level       *int
	Proficiency *model.Proficiency
	Category    *string
	Color       *string
}

// UpdateSkill applies the patch, keeping level and proficiency consistent:
// a level change without an explicit proficiency re-derives it, and a
// proficiency change without a level snaps the level to 30/60/90.
func (s *Services) UpdateSkill(id string, p SkillPatch) (*model.Skill, error) {
	if p.Level != nil && p.Proficiency == nil {
		pr := model.ProficiencyForLevel(*p.Level)
		p.Proficiency = &pr
	} else if p.Proficiency != nil && p.Level == nil {
		lv, err := model.LevelForProficiency(*p.Proficiency)
		if err != nil {
			return nil, err
		}
		p.Level = &lv
	}

	data := map[string]any{}
	if p.Name != nil {
		data["name"] = *p.Name
	}
	if p.Level != nil {
		data["level"] = *p.Level
	}
	if p.Proficiency != nil {
		data["proficiency"] = string(*p.Proficiency)
	}
	if p.Category != nil {
		data["category"] = *p.Category
	}
	if p.Color != nil {
		data["color"] = *p.Color
	}

	doc, err := appwrite.UpdateDocument[skillDoc](s.client, s.db, s.cols.Skills, id, data)
	if err != nil {
		return nil, writeErr("updating", s.cols.Skills, err)
	}
	out := doc.toModel()
	return &out, nil
}

func (s *Services) DeleteSkill(id string) error {
	if err := s.client.DeleteDocument(s.db, s.cols.Skills, id); err != nil {
		return writeErr("deleting", s.cols.Skills, err)
	}
	return nil
}

// SkillsByCategory filters the full list client-side, inheriting the
// fail-open behavior of Skills.
func (s *Services) SkillsByCategory(category string) []model.Skill {
	var out []model.Skill
	for _, sk := range s.Skills() {
		if strings.EqualFold(sk.Category, category) {
			out = append(out, sk)
		}
	}
	return out
}
