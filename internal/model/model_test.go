package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProficiencyForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  Proficiency
	}{
		{0, Beginner},
		{40, Beginner},
		{41, Intermediate},
		{75, Intermediate},
		{76, Advanced},
		{100, Advanced},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ProficiencyForLevel(c.level), "level %d", c.level)
	}
}

func TestLevelForProficiency(t *testing.T) {
	for p, want := range map[Proficiency]int{Beginner: 30, Intermediate: 60, Advanced: 90} {
		got, err := LevelForProficiency(p)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := LevelForProficiency("Expert")
	assert.Error(t, err)
}

func TestProficiencyDerivationIsStable(t *testing.T) {
	// Snapping a proficiency to its level and deriving it back must not
	// change the band.
	for _, p := range []Proficiency{Beginner, Intermediate, Advanced} {
		level, err := LevelForProficiency(p)
		require.NoError(t, err)
		assert.Equal(t, p, ProficiencyForLevel(level))
	}
}

func TestSkillValidate(t *testing.T) {
	s := Skill{Name: "Go", Level: 80, Category: "Backend"}
	require.NoError(t, s.Validate())

	s.Level = 101
	assert.Error(t, s.Validate())
	s.Level = -1
	assert.Error(t, s.Validate())

	s = Skill{Level: 50, Category: "Backend"}
	assert.Error(t, s.Validate(), "name is required")

	s = Skill{Name: "Go", Level: 50, Category: "Backend", Color: "hotpink"}
	assert.Error(t, s.Validate(), "color must come from the palette")

	s.Color = SkillColors[0]
	assert.NoError(t, s.Validate())
}

func TestValidateSkillColorAllowsEmpty(t *testing.T) {
	assert.NoError(t, ValidateSkillColor(""))
}

func TestValidateExperienceType(t *testing.T) {
	for _, typ := range []ExperienceType{TypeFullTime, TypePartTime, TypeContract, TypeFreelance, TypeInternship} {
		assert.NoError(t, ValidateExperienceType(typ))
	}
	assert.Error(t, ValidateExperienceType("Casual"))
	assert.Error(t, ValidateExperienceType("full-time"), "types are case sensitive")
}

func TestExperienceValidate(t *testing.T) {
	e := Experience{Title: "Engineer", Company: "Acme", Duration: "2022", Type: TypeFullTime}
	require.NoError(t, e.Validate())

	e.Duration = ""
	assert.Error(t, e.Validate())
}

func TestProjectValidate(t *testing.T) {
	p := Project{Title: "Folio", Description: "Site", Status: StatusCompleted}
	require.NoError(t, p.Validate())

	p.Status = "done"
	assert.Error(t, p.Validate())
}

func TestValidateMessageStatus(t *testing.T) {
	for _, s := range []MessageStatus{MessageUnread, MessageRead, MessageReplied} {
		assert.NoError(t, ValidateMessageStatus(s))
	}
	assert.Error(t, ValidateMessageStatus("archived"))
}

func TestDefaultPersonalInfoIsValid(t *testing.T) {
	info := DefaultPersonalInfo()
	assert.NoError(t, info.Validate())
	assert.Empty(t, info.ID, "the default profile is never a stored document")
}
