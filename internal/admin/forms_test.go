package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/config"
	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/store"
)

// docBackend is a minimal in-memory document API for workflow tests.
type docBackend struct {
	docs     map[string]map[string]map[string]any
	next     int
	requests int
}

func (b *docBackend) col(name string) map[string]map[string]any {
	if b.docs[name] == nil {
		b.docs[name] = map[string]map[string]any{}
	}
	return b.docs[name]
}

func (b *docBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.requests++
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 {
		http.NotFound(w, r)
		return
	}
	col := parts[3]
	var id string
	if len(parts) == 6 {
		id = parts[5]
	}
	respond := func(id string, fields map[string]any) {
		out := map[string]any{"$id": id}
		for k, v := range fields {
			out[k] = v
		}
		json.NewEncoder(w).Encode(out)
	}
	switch {
	case r.Method == http.MethodPost:
		var body struct {
			Data map[string]any `json:"data"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		b.next++
		docID := fmt.Sprintf("doc-%d", b.next)
		b.col(col)[docID] = body.Data
		respond(docID, body.Data)
	case r.Method == http.MethodGet && id == "":
		docs := []map[string]any{}
		for docID, fields := range b.col(col) {
			d := map[string]any{"$id": docID}
			for k, v := range fields {
				d[k] = v
			}
			docs = append(docs, d)
		}
		json.NewEncoder(w).Encode(map[string]any{"total": len(docs), "documents": docs})
	case r.Method == http.MethodPatch:
		var body struct {
			Data map[string]any `json:"data"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		for k, v := range body.Data {
			b.col(col)[id][k] = v
		}
		respond(id, b.col(col)[id])
	case r.Method == http.MethodDelete:
		delete(b.col(col), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func acceptAll(string) (bool, error)  { return true, nil }
func declineAll(string) (bool, error) { return false, nil }

func newTestForms(t *testing.T, confirm ConfirmFunc) (*Forms, *docBackend, *fakeBlobs, *store.Content) {
	t.Helper()
	backend := &docBackend{docs: map[string]map[string]map[string]any{}}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cols := config.Collections{
		PersonalInfo: "personal-info",
		Experiences:  "experiences",
		Projects:     "projects",
		Skills:       "skills",
		Certificates: "certificates",
		Messages:     "messages",
	}
	services := content.New(appwrite.New(srv.URL, "test-project").WithKey("test-key"), "portfolio", cols)
	cache := store.New(services)
	blobs := &fakeBlobs{}
	return New(services, cache, blobs, "portfolio-images", confirm), backend, blobs, cache
}

func TestSaveSkillCreatesAndReloads(t *testing.T) {
	f, backend, _, cache := newTestForms(t, acceptAll)

	saved, err := f.SaveSkill(model.Skill{Name: "Go", Level: 82, Category: "Backend"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Len(t, backend.col("skills"), 1)

	snap := cache.Snapshot()
	require.Len(t, snap.Skills, 1, "save refreshes the cache")
	assert.Equal(t, model.Advanced, snap.Skills[0].Proficiency)
}

func TestSaveSkillUpdatesByID(t *testing.T) {
	f, backend, _, _ := newTestForms(t, acceptAll)
	saved, err := f.SaveSkill(model.Skill{Name: "Go", Level: 82, Category: "Backend"})
	require.NoError(t, err)

	saved.Level = 35
	saved.Proficiency = model.ProficiencyForLevel(saved.Level)
	updated, err := f.SaveSkill(*saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Len(t, backend.col("skills"), 1, "update must not create a second document")
}

func TestSaveValidatesBeforeAnyNetworkCall(t *testing.T) {
	f, backend, _, _ := newTestForms(t, acceptAll)

	_, err := f.SaveSkill(model.Skill{Level: 50, Category: "Backend"})
	assert.ErrorContains(t, err, "name is required")
	assert.Zero(t, backend.requests)

	_, err = f.SaveExperience(model.Experience{Title: "Engineer", Company: "Acme", Duration: "2022", Type: "Casual"})
	assert.ErrorContains(t, err, "invalid experience type")
	assert.Zero(t, backend.requests)
}

func TestSaveProjectUploadsImage(t *testing.T) {
	f, _, blobs, cache := newTestForms(t, acceptAll)

	saved, err := f.SaveProject(model.Project{
		Title:       "Folio",
		Description: "Portfolio site",
		Status:      model.StatusCompleted,
	}, writeTempImage(t, "cover.png", 0))
	require.NoError(t, err)
	require.Len(t, blobs.created, 1)
	assert.Contains(t, saved.Image, blobs.created[0])
	assert.Len(t, cache.Snapshot().Projects, 1)
}

func TestDeleteProjectRemovesImage(t *testing.T) {
	f, backend, blobs, cache := newTestForms(t, acceptAll)
	saved, err := f.SaveProject(model.Project{
		Title:       "Folio",
		Description: "Portfolio site",
		Status:      model.StatusCompleted,
		Image:       "imgfile789",
	}, "")
	require.NoError(t, err)

	require.NoError(t, f.DeleteProject(*saved))
	assert.Empty(t, backend.col("projects"))
	assert.Equal(t, []string{"imgfile789"}, blobs.deleted, "project delete cleans up its image")
	assert.Empty(t, cache.Snapshot().Projects)
}

func TestDeleteDeclined(t *testing.T) {
	f, backend, blobs, _ := newTestForms(t, acceptAll)
	saved, err := f.SaveProject(model.Project{Title: "Folio", Description: "site", Status: model.StatusPlanned}, "")
	require.NoError(t, err)

	f.confirm = declineAll
	err = f.DeleteProject(*saved)
	assert.ErrorIs(t, err, ErrAborted)
	assert.Len(t, backend.col("projects"), 1, "declined confirm must not delete")
	assert.Empty(t, blobs.deleted)
}

func TestDeleteCertificateRemovesImage(t *testing.T) {
	f, _, blobs, _ := newTestForms(t, acceptAll)
	saved, err := f.SaveCertificate(model.Certificate{Title: "TF Developer", Issuer: "Google", Image: "certimg1"}, "")
	require.NoError(t, err)

	require.NoError(t, f.DeleteCertificate(*saved))
	assert.Equal(t, []string{"certimg1"}, blobs.deleted)
}

func TestDeleteExperienceLeavesBlobsAlone(t *testing.T) {
	f, _, blobs, cache := newTestForms(t, acceptAll)
	saved, err := f.SaveExperience(model.Experience{Title: "Engineer", Company: "Acme", Duration: "2022", Type: model.TypeFullTime})
	require.NoError(t, err)

	require.NoError(t, f.DeleteExperience(*saved))
	assert.Empty(t, blobs.deleted)
	assert.Empty(t, cache.Snapshot().Experiences)
}

func TestSavePersonalInfoCreateThenUpdate(t *testing.T) {
	f, backend, _, cache := newTestForms(t, acceptAll)

	saved, err := f.SavePersonalInfo(model.PersonalInfo{Name: "Mohsin Ali", Title: "ML Engineer", Email: "m@example.com"}, "")
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	saved.Bio = "Builds things."
	_, err = f.SavePersonalInfo(*saved, "")
	require.NoError(t, err)
	assert.Len(t, backend.col("personal-info"), 1, "profile stays a singleton")
	assert.Equal(t, "Builds things.", cache.Snapshot().PersonalInfo.Bio)
}

func TestMarkMessageRefreshesInbox(t *testing.T) {
	f, _, _, cache := newTestForms(t, acceptAll)
	created, err := f.services.CreateMessage(model.ContactMessage{Name: "Visitor", Email: "v@example.com", Message: "hi"})
	require.NoError(t, err)

	updated, err := f.MarkMessage(created.ID, model.MessageRead)
	require.NoError(t, err)
	assert.Equal(t, model.MessageRead, updated.Status)
	require.Len(t, cache.Snapshot().Messages, 1)
	assert.Equal(t, model.MessageRead, cache.Snapshot().Messages[0].Status)
}
