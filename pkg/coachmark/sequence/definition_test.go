package sequence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tourYAML = `
id: first-run
steps:
  - id: settings
    title: Settings
    body: Change the theme here.
    region: {x: 16, y: 16, w: 48, h: 48}
  - id: library
    body: Your games live here.
    image: assets/library.png
`

func TestParseDefinition(t *testing.T) {
	t.Parallel()

	def, err := ParseDefinition([]byte(tourYAML))
	require.NoError(t, err)

	assert.Equal(t, "first-run", def.ID)
	require.Len(t, def.Steps, 2)

	steps := def.StepList()
	require.Len(t, steps, 2)
	assert.Equal(t, TextStep{Key: "settings", Title: "Settings", Body: "Change the theme here."}, steps[0])
	assert.Equal(t, TextStep{Key: "library", Body: "Your games live here.", Image: "assets/library.png"}, steps[1])

	assert.Equal(t, map[string]geometry.Rect{
		"settings": geometry.XYWH(16, 16, 48, 48),
	}, def.Regions())
}

func TestParseDefinition_DefaultID(t *testing.T) {
	t.Parallel()

	def, err := ParseDefinition([]byte("steps:\n  - id: a\n"))
	require.NoError(t, err)
	assert.Equal(t, "tour", def.ID)
}

func TestParseDefinition_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no steps",
			yaml:    "id: empty\n",
			wantErr: "empty step sequence",
		},
		{
			name:    "missing id",
			yaml:    "steps:\n  - body: hi\n",
			wantErr: "steps[0]: id cannot be empty",
		},
		{
			name:    "duplicate id",
			yaml:    "steps:\n  - id: a\n  - id: a\n",
			wantErr: "duplicate step id",
		},
		{
			name:    "negative region",
			yaml:    "steps:\n  - id: a\n    region: {x: 0, y: 0, w: -1, h: 4}\n",
			wantErr: "region size must be >= 0",
		},
		{
			name:    "malformed",
			yaml:    "steps: [\n",
			wantErr: "failed to parse walkthrough YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDefinition([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDefinition_EmptyIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := ParseDefinition([]byte("id: x\nsteps: []\n"))
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestLoadDefinition(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tourYAML), 0o644))

	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Len(t, def.StepList(), 2)

	_, err = LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read walkthrough file")
}
