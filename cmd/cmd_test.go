package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinali45213/folio/internal/model"
)

// fakeBackend is a minimal in-memory document API for cmd-level tests.
type fakeBackend struct {
	mu   sync.Mutex
	docs map[string]map[string]map[string]any
	next int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{docs: map[string]map[string]map[string]any{}}
}

func (f *fakeBackend) col(name string) map[string]map[string]any {
	if f.docs[name] == nil {
		f.docs[name] = map[string]map[string]any{}
	}
	return f.docs[name]
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 || parts[0] != "databases" {
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
		f.next++
		docID := fmt.Sprintf("doc-%d", f.next)
		f.col(col)[docID] = body.Data
		respond(docID, body.Data)
	case r.Method == http.MethodGet && id == "":
		docs := []map[string]any{}
		for docID, fields := range f.col(col) {
			d := map[string]any{"$id": docID}
			for k, v := range fields {
				d[k] = v
			}
			docs = append(docs, d)
		}
		json.NewEncoder(w).Encode(map[string]any{"total": len(docs), "documents": docs})
	case r.Method == http.MethodGet:
		fields, ok := f.col(col)[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"message": "not found", "code": 404})
			return
		}
		respond(id, fields)
	case r.Method == http.MethodPatch:
		var body struct {
			Data map[string]any `json:"data"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		for k, v := range body.Data {
			f.col(col)[id][k] = v
		}
		respond(id, f.col(col)[id])
	case r.Method == http.MethodDelete:
		delete(f.col(col), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func setupEnv(t *testing.T) (*fakeBackend, string) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	t.Setenv("APPWRITE_ENDPOINT", srv.URL)
	t.Setenv("APPWRITE_PROJECT_ID", "test-project")
	t.Setenv("APPWRITE_API_KEY", "test-key")
	return backend, t.TempDir()
}

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append(args, "--data-dir", dir))
	return rootCmd.Execute()
}

func TestSkillAdd(t *testing.T) {
	backend, dir := setupEnv(t)

	require.NoError(t, run(t, dir, "skill", "add", "Go", "--level", "82", "--category", "Backend"))

	require.Len(t, backend.col("skills"), 1)
	for _, fields := range backend.col("skills") {
		assert.Equal(t, "Go", fields["name"])
		assert.Equal(t, "Advanced", fields["proficiency"], "proficiency derives from the level")
	}
}

func TestSkillUpdateSnapsLevel(t *testing.T) {
	_, dir := setupEnv(t)
	require.NoError(t, run(t, dir, "skill", "add", "Go", "--level", "82", "--category", "Backend"))

	skills := services.Skills()
	require.Len(t, skills, 1)

	require.NoError(t, run(t, dir, "skill", "update", skills[0].ID, "--proficiency", "Intermediate"))

	updated, err := services.Skill(skills[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Level)
}

func TestSkillAddRequiresCategory(t *testing.T) {
	_, dir := setupEnv(t)
	assert.Error(t, run(t, dir, "skill", "add", "Go", "--level", "50", "--category", ""))
}

func TestExperienceListEmpty(t *testing.T) {
	_, dir := setupEnv(t)
	require.NoError(t, run(t, dir, "experience", "list"))
}

func TestProjectAddRequiresDescription(t *testing.T) {
	// The description comes from stdin; with nothing piped in, validation
	// rejects the project before any network call.
	backend, dir := setupEnv(t)
	assert.Error(t, run(t, dir, "project", "add", "--title", "Folio", "--status", "planned"))
	assert.Empty(t, backend.col("projects"))
}

func TestProjectDeleteForce(t *testing.T) {
	backend, dir := setupEnv(t)
	// PersistentPreRunE wires the globals; list is a cheap way to trigger it.
	require.NoError(t, run(t, dir, "project", "list"))

	created, err := services.CreateProject(model.Project{
		Title: "Folio", Description: "Portfolio site", Status: model.StatusPlanned,
	})
	require.NoError(t, err)

	require.NoError(t, run(t, dir, "project", "delete", created.ID, "--force"))
	assert.Empty(t, backend.col("projects"))
}

func TestMessageMark(t *testing.T) {
	backend, dir := setupEnv(t)
	// PersistentPreRunE wires the globals; list is a cheap way to trigger it.
	require.NoError(t, run(t, dir, "message", "list"))

	created, err := services.CreateMessage(model.ContactMessage{Name: "V", Email: "v@example.com", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, run(t, dir, "message", "mark", created.ID, "read"))
	assert.Equal(t, "read", backend.col("messages")[created.ID]["status"])
}

func TestMessageMarkInvalidStatus(t *testing.T) {
	_, dir := setupEnv(t)
	require.NoError(t, run(t, dir, "message", "list"))
	created, err := services.CreateMessage(model.ContactMessage{Name: "V", Email: "v@example.com", Message: "hi"})
	require.NoError(t, err)

	assert.Error(t, run(t, dir, "message", "mark", created.ID, "archived"))
}

func TestInfoShowWithoutProfile(t *testing.T) {
	_, dir := setupEnv(t)
	require.NoError(t, run(t, dir, "info", "show"))
}

func TestMissingEndpointFails(t *testing.T) {
	t.Setenv("APPWRITE_ENDPOINT", "")
	t.Setenv("APPWRITE_PROJECT_ID", "")
	assert.Error(t, run(t, t.TempDir(), "skill", "list"))
}
