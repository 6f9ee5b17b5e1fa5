package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
profile:
  full-name: Amina Okafor
  status: employed
  years-experience: "2"
  target-role: Program Officer
  skills:
    - Excel
    - Report Writing
    - Stakeholder Engagement
  unique-hook: Ran a village savings scheme at 19
projects:
  - name: Budget Tool
    description: Built in Excel for the district office
  - name: Survey Dashboard
    description: Tracked household survey responses
experience:
  - role: Field Assistant
    company: Hope Foundation
    description: Coordinated data collection across five villages
job:
  company: UNICEF
  title: Program Officer
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "profile.yaml", sampleYAML)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Amina Okafor", doc.Profile.FullName)
	assert.Equal(t, "employed", doc.Profile.Status)
	assert.InDelta(t, 2.0, doc.Profile.YearsExperience, 0.001)
	assert.Equal(t, "Program Officer", doc.Profile.TargetRole)
	assert.Equal(t, []string{"Excel", "Report Writing", "Stakeholder Engagement"}, doc.Profile.Skills)
	assert.Equal(t, 2, doc.Profile.ProjectCount, "project count should default to the number of projects")

	require.Len(t, doc.Projects, 2)
	assert.Equal(t, "Budget Tool", doc.Projects[0].Name)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Hope Foundation", doc.Experience[0].Company)

	require.NotNil(t, doc.Job)
	assert.Equal(t, "UNICEF", doc.Job.Company)
}

func TestLoadJSONKeepsExplicitProjectCount(t *testing.T) {
	path := writeFile(t, "profile.json", `{
  "profile": {"status": "student", "years-experience": 0, "skills": ["Python"], "project-count": 0},
  "projects": [{"name": "Scraper", "description": "Python crawler"}]
}`)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Profile.ProjectCount)
	assert.Nil(t, doc.Job)
}

func TestLoadErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "broken.yaml", "profile: [unterminated")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("undecodable field", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "profile:\n  years-experience: lots\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := Decode(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, UserProfile{}, doc.Profile)
	assert.Empty(t, doc.Projects)
}
