package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InitializeEmbedded(t *testing.T) {
	store := NewStore("")
	assert.False(t, store.IsReady())
	assert.Nil(t, store.Profile())

	require.NoError(t, store.Initialize())

	assert.True(t, store.IsReady())
	profile := store.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Sohag Bhuiyan", profile.Name)
	assert.Len(t, profile.Navigation, 5)
	assert.Len(t, profile.Experiences, 2)
	assert.Len(t, profile.Projects, 3)
	assert.Len(t, profile.Education, 3)
	assert.Equal(t, "proj-2", profile.Projects[1].ID)
	assert.Equal(t, "mailto:sohagbhuiyan778@gmail.com", profile.SocialLinks[2].Href)
}

func TestStore_InitializeOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	doc := "name: Jane Doe\nprojects:\n  - id: p1\n    title: One\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	store := NewStore(path)
	require.NoError(t, store.Initialize())

	assert.Equal(t, "Jane Doe", store.Profile().Name)
	assert.Equal(t, "One", store.Profile().Projects[0].Title)
}

func TestStore_InitializeMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.yaml"))

	err := store.Initialize()

	require.Error(t, err)
	assert.False(t, store.IsReady())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		errorMsg string
	}{
		{name: "minimal", doc: "name: A"},
		{name: "malformed yaml", doc: "name: [", errorMsg: "failed to parse"},
		{name: "missing name", doc: "headline: x", errorMsg: "name is required"},
		{name: "project without id or title", doc: "name: A\nprojects:\n  - features: [x]\n", errorMsg: "neither id nor title"},
		{name: "duplicate project id", doc: "name: A\nprojects:\n  - id: x\n  - id: x\n", errorMsg: "duplicate project id"},
		{name: "derived id clashes", doc: "name: A\nprojects:\n  - id: my-app\n  - title: My App\n", errorMsg: "duplicate project id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestParse_DerivesProjectID(t *testing.T) {
	profile, err := Parse([]byte("name: A\nprojects:\n  - title: Weather Dashboard (Beta)\n"))

	require.NoError(t, err)
	assert.Equal(t, "weather-dashboard-beta", profile.Projects[0].ID)
}
