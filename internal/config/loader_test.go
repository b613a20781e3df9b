package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetgen/internal/gen"
	"sheetgen/internal/grid"
)

const sampleJob = `
defaults:
  namespace: Game
  usings: [System]
  outdir: Generated
  masterMemory: true
  newline: crlf
tables:
  - type: EquipmentData
    input: Sample.xlsx
    sheet: Equipment
    range: {startRow: 2, startColumn: 3, endRow: 20}
    usings: [UnityEngine]
    outputs:
      class: EquipmentData.cs
      binaryBuilder: Builders/EquipmentData_BinaryBuilder.cs
  - type: ItemData
    input: items.csv
    namespace: Game.Items
    masterMemory: false
    outdir: /abs/out
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleJob))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	require.Len(t, f.Tables, 2)

	eq := f.Tables[0]
	assert.Equal(t, grid.Sheet{Name: "Equipment"}, eq.GridSheet())
	assert.Equal(t, grid.Range{StartRow: 2, StartColumn: 3, EndRow: 20}, eq.GridRange())

	item := f.Tables[1]
	assert.Equal(t, grid.FullRange(), item.GridRange())
	assert.Equal(t, Outputs{Class: "ItemData.cs", Data: "ItemData_DataOnly.cs"}, item.Outputs)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("tables: [unterminated"))
	require.Error(t, err)
}

func TestFile_GeneratorConfig(t *testing.T) {
	f, err := Parse([]byte(sampleJob))
	require.NoError(t, err)

	cfg := f.GeneratorConfig(&f.Tables[0])
	assert.Equal(t, "Game", cfg.Namespace)
	assert.Equal(t, "EquipmentData", cfg.TypeName)
	assert.Equal(t, []string{"System", "UnityEngine"}, cfg.Usings)
	assert.True(t, cfg.MasterMemory)
	assert.Equal(t, "\r\n", cfg.NewLine)
	assert.Equal(t, []gen.Artifact{gen.ArtifactClass, gen.ArtifactBinaryBuilder}, cfg.Artifacts)
	assert.Equal(t, "Builders/EquipmentData_BinaryBuilder.cs", cfg.Filenames[gen.ArtifactBinaryBuilder])

	cfg = f.GeneratorConfig(&f.Tables[1])
	assert.Equal(t, "Game.Items", cfg.Namespace)
	assert.False(t, cfg.MasterMemory)
	assert.Equal(t, []string{"System"}, cfg.Usings)
	assert.Equal(t, []gen.Artifact{gen.ArtifactClass, gen.ArtifactData}, cfg.Artifacts)
}

func TestLoad_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleJob), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, f.BaseDir)

	assert.Equal(t, filepath.Join(dir, "Sample.xlsx"), f.InputPath(&f.Tables[0]))
	assert.Equal(t, filepath.Join(dir, "Generated"), f.OutputDir(&f.Tables[0]))
	assert.Equal(t, "/abs/out", f.OutputDir(&f.Tables[1]))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOutputs_DataList(t *testing.T) {
	f, err := Parse([]byte("tables: [{type: A, input: a.csv, outputs: {dataList: Snippets/A.cs}}]"))
	require.NoError(t, err)

	cfg := f.GeneratorConfig(&f.Tables[0])
	assert.Equal(t, []gen.Artifact{gen.ArtifactDataList}, cfg.Artifacts)
	assert.Equal(t, "Snippets/A.cs", cfg.Filenames[gen.ArtifactDataList])
}
