package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinali45213/folio/internal/model"
)

func TestBundleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := Bundle{
		PersonalInfo: &model.PersonalInfo{
			ID: "p1", Name: "Mohsin Ali", Title: "ML Engineer",
			Email: "m@example.com", Bio: "Builds ML systems.\n\nAnd writes about them.",
		},
		Experiences: []model.Experience{{
			ID: "e1", Title: "Engineer", Company: "Acme", Duration: "2022 - Present",
			Type: model.TypeFullTime, Description: "Shipped the data platform.",
		}},
		Projects: []model.Project{{
			ID: "pr1", Title: "Folio", Description: "Portfolio site",
			Status: model.StatusCompleted, Featured: true, Tech: "Go, Fiber",
		}},
		Skills: []model.Skill{{
			ID: "s1", Name: "Go", Level: 82, Proficiency: model.Advanced, Category: "Backend",
		}},
		Certificates: []model.Certificate{{
			ID: "c1", Title: "TF Developer", Issuer: "Google", Verified: true,
			Description: "Covers model building.",
		}},
	}

	require.NoError(t, Write(dir, in))

	out, err := Read(dir)
	require.NoError(t, err)
	require.NotNil(t, out.PersonalInfo)
	assert.Equal(t, *in.PersonalInfo, *out.PersonalInfo)
	assert.Equal(t, in.Experiences, out.Experiences)
	assert.Equal(t, in.Projects, out.Projects)
	assert.Equal(t, in.Skills, out.Skills)
	assert.Equal(t, in.Certificates, out.Certificates)
}

func TestWritePutsLongTextInBody(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Bundle{
		PersonalInfo: &model.PersonalInfo{ID: "p1", Name: "A", Title: "B", Email: "c@d.e", Bio: "The bio body."},
	}))

	raw, err := os.ReadFile(filepath.Join(dir, "info.md"))
	require.NoError(t, err)
	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "\n---\n\nThe bio body.\n")
	assert.NotContains(t, content, "bio:", "bio lives in the body, not the frontmatter")
}

func TestReadPartialBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "skills"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills", "go.md"), []byte(`---
name: Go
level: 80
category: Backend
---
`), 0o644))

	out, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, out.PersonalInfo)
	assert.Empty(t, out.Projects)
	require.Len(t, out.Skills, 1)
	assert.Equal(t, "Go", out.Skills[0].Name)
	assert.Empty(t, out.Skills[0].ID, "hand-written bundles may omit ids")
}

func TestFileSlugFallsBackToName(t *testing.T) {
	assert.Equal(t, "doc-1", fileSlug("doc-1", "Whatever"))
	assert.Equal(t, "my-cool-project", fileSlug("", "My Cool Project!"))
}
