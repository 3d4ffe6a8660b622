package skill_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/pointbuy/internal/game/skill"
)

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "melee.yaml"), []byte(`
skills:
  - name: Shortsword
    attribute: DX
    difficulty: A
    preset: DX-4
  - name: Shield
    attribute: DX
    difficulty: easy
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	tmpls, err := skill.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, tmpls, 2)
	assert.Equal(t, "Shortsword", tmpls[0].Name)
	assert.Equal(t, skill.Average, tmpls[0].Difficulty)
	assert.Equal(t, "DX-4", tmpls[0].Preset)
	assert.Equal(t, skill.Easy, tmpls[1].Difficulty)
}

func TestLoadTemplates_BadDifficulty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
skills:
  - name: Juggling
    attribute: DX
    difficulty: trivial
`), 0o644))
	_, err := skill.LoadTemplates(dir)
	assert.Error(t, err)
}

func TestLoadTemplates_BadAttribute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
skills:
  - name: Juggling
    attribute: LUCK
    difficulty: A
`), 0o644))
	_, err := skill.LoadTemplates(dir)
	assert.Error(t, err)
}

func TestLoadTemplates_MissingDir(t *testing.T) {
	_, err := skill.LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSkill_LevelAndPreset(t *testing.T) {
	s := skill.Skill{Attribute: "DX", Difficulty: skill.Average, Preset: " DX-4 "}
	_, ok := s.Level(12)
	assert.False(t, ok)
	assert.True(t, s.HasPreset())

	s.Points = 4
	lvl, ok := s.Level(12)
	require.True(t, ok)
	assert.Equal(t, 13, lvl)
}
