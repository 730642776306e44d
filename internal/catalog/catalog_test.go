package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func TestLoad_DefaultCatalog(t *testing.T) {
	entries, err := Load(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, entries, 6)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		assert.Equal(t, domain.MaxDurability, e.Tool.Durability(), e.Key)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, keys)

	hammer, ok := entries[0].Tool.(*tool.Hammer)
	require.True(t, ok)
	assert.Equal(t, "Hammer", hammer.Name())
	assert.Equal(t, "Iron", hammer.Material())
	assert.Equal(t, 2.5, hammer.Weight())
	assert.Equal(t, "Flat", hammer.HeadType)
	assert.Equal(t, "Curved", hammer.ClawType)
	assert.Equal(t, 16, hammer.HandleLength)

	drill, ok := entries[1].Tool.(*tool.Drill)
	require.True(t, ok)
	assert.Equal(t, 500.0, drill.PowerRating)
	assert.True(t, drill.Cordless)
	assert.Equal(t, 1500, drill.Speed)
	assert.Equal(t, "Standard", drill.Bit)

	saw, ok := entries[2].Tool.(*tool.Saw)
	require.True(t, ok)
	assert.Equal(t, "Wood", saw.BladeType)
	assert.Equal(t, 18.0, saw.Length)
	assert.True(t, saw.Corded)

	screwdriver, ok := entries[3].Tool.(*tool.Screwdriver)
	require.True(t, ok)
	assert.Equal(t, "Phillips", screwdriver.TipType)
	assert.False(t, screwdriver.Magnetized)

	tape, ok := entries[4].Tool.(*tool.MeasuringTape)
	require.True(t, ok)
	assert.Equal(t, "Measuring Tape", tape.Name())
	assert.Equal(t, 25.0, tape.Length)
	assert.False(t, tape.WearOnInvalidInterval)

	wrench, ok := entries[5].Tool.(*tool.Wrench)
	require.True(t, ok)
	assert.Equal(t, "Chrome-Vanadium", wrench.Material())
	assert.Equal(t, 17, wrench.Size)
	assert.True(t, wrench.Ratcheting)
}

func TestLoad_TapeQuirkOption(t *testing.T) {
	entries, err := Load(context.Background(), Options{WearOnInvalidInterval: true})
	require.NoError(t, err)

	tape := entries[4].Tool.(*tool.MeasuringTape)
	assert.True(t, tape.WearOnInvalidInterval)
}

func TestLoad_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolbox.json")
	doc := `{"tools": [
		{"key": "1", "kind": "saw", "name": "Hacksaw", "material": "Steel", "weight": 0.7,
		 "blade_type": "Metal", "length": 12, "corded": false, "wear": 10}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	entries, err := Load(context.Background(), Options{Path: path})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	saw := entries[0].Tool.(*tool.Saw)
	assert.Equal(t, "Hacksaw", saw.Name())
	assert.Equal(t, "Metal", saw.BladeType)
	assert.Equal(t, 10, saw.Wear())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope.json")})
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "unknown kind",
			doc:  `{"tools": [{"key": "1", "kind": "chisel", "name": "C", "material": "Steel", "weight": 1}]}`,
			msg:  "kind",
		},
		{
			name: "missing variant field",
			doc:  `{"tools": [{"key": "1", "kind": "wrench", "name": "W", "material": "Steel", "weight": 1}]}`,
			msg:  "required",
		},
		{
			name: "size outside option set",
			doc:  `{"tools": [{"key": "1", "kind": "wrench", "name": "W", "material": "Steel", "weight": 1, "size": 13}]}`,
			msg:  "size",
		},
		{
			name: "duplicate key",
			doc: `{"tools": [
				{"key": "1", "kind": "measuring_tape", "name": "A", "material": "Plastic", "weight": 1, "length": 5},
				{"key": "1", "kind": "measuring_tape", "name": "B", "material": "Plastic", "weight": 1, "length": 5}
			]}`,
			msg: "duplicate key",
		},
		{
			name: "empty toolbox",
			doc:  `{"tools": []}`,
			msg:  "minItems",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(Definition{Kind: "chisel"}, Options{})
	assert.ErrorIs(t, err, domain.ErrUnknownToolKind)
}

func TestBuild_DrillSpeedFallback(t *testing.T) {
	got, err := Build(Definition{Kind: domain.ToolKindDrill, Name: "D", Material: "Steel", Weight: 1, PowerRating: 300}, Options{})
	require.NoError(t, err)

	drill := got.(*tool.Drill)
	assert.Equal(t, tool.DefaultDrillSpeed, drill.Speed)
	assert.Equal(t, "Standard", drill.Bit)
}
