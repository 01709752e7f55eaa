package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
)

type stubSource struct {
	info    *model.PersonalInfo
	infoErr error

	experiences  []model.Experience
	projects     []model.Project
	skills       []model.Skill
	certificates []model.Certificate
	messages     []model.ContactMessage
}

func (s *stubSource) PersonalInfo() (*model.PersonalInfo, error) { return s.info, s.infoErr }
func (s *stubSource) Experiences() []model.Experience            { return s.experiences }
func (s *stubSource) Projects() []model.Project                  { return s.projects }
func (s *stubSource) Skills() []model.Skill                      { return s.skills }
func (s *stubSource) Certificates() []model.Certificate          { return s.certificates }
func (s *stubSource) Messages() []model.ContactMessage           { return s.messages }

func TestLoadAllCommitsEverything(t *testing.T) {
	src := &stubSource{
		info:        &model.PersonalInfo{ID: "p1", Name: "Mohsin Ali", Title: "ML Engineer", Email: "m@example.com"},
		experiences: []model.Experience{{ID: "e1", Title: "Engineer", Company: "Acme", Duration: "2022", Type: model.TypeFullTime}},
		projects:    []model.Project{{ID: "pr1", Title: "Folio", Description: "site", Status: model.StatusCompleted}},
		skills:      []model.Skill{{ID: "s1", Name: "Go", Level: 80, Category: "Backend"}},
		messages:    []model.ContactMessage{{ID: "m1", Name: "Visitor", Email: "v@example.com", Message: "hi"}},
	}
	c := New(src)

	require.NoError(t, c.LoadAll(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, "Mohsin Ali", snap.PersonalInfo.Name)
	assert.Len(t, snap.Experiences, 1)
	assert.Len(t, snap.Projects, 1)
	assert.Len(t, snap.Skills, 1)
	assert.Empty(t, snap.Certificates)
	assert.Len(t, snap.Messages, 1)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
}

func TestLoadAllFallsBackToDefaultProfile(t *testing.T) {
	c := New(&stubSource{infoErr: content.ErrNotFound})

	require.NoError(t, c.LoadAll(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, model.DefaultPersonalInfo().Name, snap.PersonalInfo.Name)
	assert.NoError(t, snap.Err)
}

func TestLoadPersonalInfoKeepsPreviousValueOnFailure(t *testing.T) {
	src := &stubSource{info: &model.PersonalInfo{ID: "p1", Name: "Mohsin Ali", Title: "ML Engineer", Email: "m@example.com"}}
	c := New(src)
	require.NoError(t, c.LoadPersonalInfo())

	src.info = nil
	src.infoErr = errors.New("store unreachable")
	err := c.LoadPersonalInfo()
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, "Mohsin Ali", snap.PersonalInfo.Name, "failed refresh keeps the last good value")
	assert.Error(t, snap.Err)
	assert.False(t, snap.Loading, "loading clears even on failure")
}

func TestLoadClearsPreviousError(t *testing.T) {
	src := &stubSource{infoErr: errors.New("store unreachable")}
	c := New(src)
	require.Error(t, c.LoadPersonalInfo())

	src.infoErr = nil
	src.info = &model.PersonalInfo{Name: "Mohsin Ali", Title: "ML Engineer", Email: "m@example.com"}
	require.NoError(t, c.LoadPersonalInfo())
	assert.NoError(t, c.Snapshot().Err)
}

func TestSettersAreLocalOnly(t *testing.T) {
	src := &stubSource{skills: []model.Skill{{ID: "s1", Name: "Go", Level: 80, Category: "Backend"}}}
	c := New(src)
	c.LoadSkills()

	c.SetSkills([]model.Skill{})
	assert.Empty(t, c.Snapshot().Skills)
	assert.Len(t, src.skills, 1, "setter must not write through to the source")

	c.LoadSkills()
	assert.Len(t, c.Snapshot().Skills, 1, "re-load restores the source's view")
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New(&stubSource{skills: []model.Skill{{ID: "s1", Name: "Go", Level: 80, Category: "Backend"}}})
	c.LoadSkills()

	snap := c.Snapshot()
	snap.Skills[0].Name = "Rust"
	assert.Equal(t, "Go", c.Snapshot().Skills[0].Name)
}

func TestLoadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(&stubSource{info: &model.PersonalInfo{Name: "x", Title: "y", Email: "z"}})

	// A cancelled context may still lose the race to six instant fetches;
	// either outcome must leave the store consistent.
	_ = c.LoadAll(ctx)
	assert.False(t, c.Snapshot().Loading)
}
