package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{
			name: "too small",
			rows: []string{"##", "##"},
			want: ErrTooSmall,
		},
		{
			name: "ragged rows",
			rows: []string{"#####", "#P.G#", "####"},
			want: ErrRaggedRows,
		},
		{
			name: "no player spawn",
			rows: []string{"#####", "#..G#", "#####"},
			want: ErrNoPlayerSpawn,
		},
		{
			name: "two player spawns",
			rows: []string{"#####", "#PPG#", "#####"},
			want: ErrNoPlayerSpawn,
		},
		{
			name: "no ghost spawn",
			rows: []string{"#####", "#P..#", "#####"},
			want: ErrNoGhostSpawn,
		},
		{
			name: "unpaired tunnel",
			rows: []string{"#####", "TP.G#", "#####"},
			want: ErrUnpairedTunnel,
		},
		{
			name: "disconnected",
			rows: []string{"#####", "#P#G#", "#####"},
			want: ErrDisconnected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRejectsUnknownRune(t *testing.T) {
	_, err := Parse([]string{"#####", "#PXG#", "#####"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown layout rune")
}

func TestParseConsumablePlacement(t *testing.T) {
	m, err := Parse([]string{
		"#######",
		"#P.o.G#",
		"#######",
	})
	require.NoError(t, err)

	assert.Equal(t, []Cell{{Col: 2, Row: 1}, {Col: 4, Row: 1}}, m.Dots)
	assert.Equal(t, []Cell{{Col: 3, Row: 1}}, m.Pellets)
	assert.Equal(t, Cell{Col: 1, Row: 1}, m.PlayerSpawn)
	assert.Equal(t, []Cell{{Col: 5, Row: 1}}, m.GhostSpawns)
	// spawn cells carry no consumable
	assert.Equal(t, KindFloor, m.KindAt(m.PlayerSpawn))
}

func TestDefaultLayout(t *testing.T) {
	m := Default()

	assert.Equal(t, 21, m.Width)
	assert.Equal(t, 15, m.Height)
	assert.Equal(t, Cell{Col: 10, Row: 13}, m.PlayerSpawn)
	assert.Len(t, m.GhostSpawns, 3)
	assert.Len(t, m.Pellets, 4)
	assert.Greater(t, len(m.Dots), 100)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	data := "name: tiny\nrows:\n" +
		"  - \"#####\"\n" +
		"  - \"#P.G#\"\n" +
		"  - \"#####\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Len(t, m.Dots, 1)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: {oops"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)

	// syntactically valid yaml, semantically broken layout
	path = filepath.Join(t.TempDir(), "nospawn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [\"#####\", \"#...#\", \"#####\"]"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}
