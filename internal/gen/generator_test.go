package gen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetgen/internal/diagnostic"
	"sheetgen/internal/emit"
	"sheetgen/internal/grid"
	"sheetgen/internal/schema"
)

func itemGrid() grid.Grid {
	return grid.Grid{
		{"Id", "Category"},
		{"int", "enum"},
		{"1", "Weapon"},
		{"2", "Shield"},
	}
}

func TestGenerator_Generate_EndToEnd(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Namespace = "Game"
	cfg.TypeName = "Item"
	cfg.Usings = []string{"System"}

	res, err := NewGenerator(cfg).Generate(context.Background(), itemGrid())
	require.NoError(t, err)
	require.Len(t, res.Files, 2)

	class := res.Files[0]
	assert.Equal(t, ArtifactClass, class.Artifact)
	assert.Equal(t, "Item.cs", class.Filename)
	assert.Equal(t, `using System;

namespace Game
{
    public class Item
    {
        public int Id { get; set; }

        public Category Category { get; set; }
    }

    public enum Category
    {
        Weapon,
        Shield
    }
}
`, string(class.Content))

	data := res.Files[1]
	assert.Equal(t, ArtifactData, data.Artifact)
	assert.Equal(t, "Item_DataOnly.cs", data.Filename)

	content := string(data.Content)
	assert.Contains(t, content, "Category = Category.Weapon\n")
	assert.Contains(t, content, "Category = Category.Shield\n")
	assert.Less(t, strings.Index(content, "Id = 1,"), strings.Index(content, "Id = 2,"))

	assert.False(t, res.Diagnostics.HasWarnings())
}

func TestGenerator_Generate_Idempotent(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.TypeName = "Item"
	cfg.Artifacts = AllArtifacts

	first, err := NewGenerator(cfg).Generate(context.Background(), itemGrid())
	require.NoError(t, err)

	second, err := NewGenerator(cfg).Generate(context.Background(), itemGrid())
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
}

func TestGenerator_Generate_SeparateEnums(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.TypeName = "Item"
	cfg.Artifacts = []Artifact{ArtifactEnums, ArtifactClass}

	res, err := NewGenerator(cfg).Generate(context.Background(), itemGrid())
	require.NoError(t, err)
	require.Len(t, res.Files, 2)

	assert.Equal(t, "Item.cs", res.Files[0].Filename)
	assert.NotContains(t, string(res.Files[0].Content), "enum")
	assert.Equal(t, "Item_Enums.cs", res.Files[1].Filename)
	assert.Contains(t, string(res.Files[1].Content), "public enum Category\n")
}

func TestGenerator_Generate_SkipsEnumsWithoutEnums(t *testing.T) {
	g := grid.Grid{{"Id"}, {"int"}, {"1"}}

	cfg := DefaultGeneratorConfig()
	cfg.TypeName = "Item"
	cfg.Artifacts = []Artifact{ArtifactClass, ArtifactEnums}

	res, err := NewGenerator(cfg).Generate(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, ArtifactClass, res.Files[0].Artifact)
}

func TestGenerator_Generate_MasterMemory(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.TypeName = "ItemData"
	cfg.MasterMemory = true
	cfg.Artifacts = []Artifact{ArtifactClass, ArtifactBinaryBuilder}
	cfg.Filenames = map[Artifact]string{ArtifactBinaryBuilder: "Builders/ItemBuilder.cs"}

	res, err := NewGenerator(cfg).Generate(context.Background(), itemGrid())
	require.NoError(t, err)
	require.Len(t, res.Files, 2)

	class := string(res.Files[0].Content)
	assert.True(t, strings.HasPrefix(class, "using MasterMemory;\nusing MessagePack;\n\n"))
	assert.Contains(t, class,
		"[MemoryTable(\"Item\"), MessagePackObject(true)]\npublic sealed partial class ItemData\n")

	assert.Equal(t, "Builders/ItemBuilder.cs", res.Files[1].Filename)
	assert.Contains(t, string(res.Files[1].Content), `"Assets/Generated/ItemData.bytes"`)
}

func TestGenerator_Generate_FatalErrors(t *testing.T) {
	tests := []struct {
		name     string
		grid     grid.Grid
		typeName string
		wantErr  error
	}{
		{"one row", grid.Grid{{"Id"}}, "Item", schema.ErrTooFewRows},
		{"no columns", grid.Grid{{}, {}}, "Item", schema.ErrNoColumns},
		{"blank type name", itemGrid(), "  ", schema.ErrMissingTypeName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			cfg.TypeName = tt.typeName

			res, err := NewGenerator(cfg).Generate(context.Background(), tt.grid)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestGenerator_Generate_Strict(t *testing.T) {
	g := grid.Grid{{"Id", "Score"}, {"int", "float"}, {"abc", "1.5"}}

	cfg := DefaultGeneratorConfig()
	cfg.TypeName = "Item"

	res, err := NewGenerator(cfg).Generate(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeValueDefaulted, res.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "Id (row 3)", res.Diagnostics.Warnings[0].Location)
	assert.Contains(t, string(res.Files[1].Content), "Id = 0,\n")

	cfg.Strict = true

	res, err = NewGenerator(cfg).Generate(context.Background(), g)
	require.ErrorIs(t, err, ErrStrict)
	require.NotNil(t, res)
	assert.Empty(t, res.Files)
	assert.NotNil(t, res.Schema)
}

func TestFormatRows_PreservesOrder(t *testing.T) {
	g := grid.Grid{{"N"}, {"int"}}
	for i := range 200 {
		g = append(g, grid.Row{strings.Repeat("1", i%5+1)})
	}

	s, _, err := schema.Extract(g, schema.ExtractOptions{TypeName: "T"})
	require.NoError(t, err)

	rows, diags, err := FormatRows(context.Background(), s, g.DataRows(), 4)
	require.NoError(t, err)
	assert.False(t, diags.HasWarnings())
	require.Len(t, rows, 200)

	for i, row := range rows {
		assert.Equal(t, strings.Repeat("1", i%5+1), row[0])
	}
}

func TestFormatRows_Canceled(t *testing.T) {
	s, _, err := schema.Extract(itemGrid(), schema.ExtractOptions{TypeName: "Item"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = FormatRows(ctx, s, itemGrid().DataRows(), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryTableName(t *testing.T) {
	assert.Equal(t, "Item", MemoryTableName("ItemData"))
	assert.Equal(t, "Equipment", MemoryTableName("Equipmentdata"))
	assert.Equal(t, "Data", MemoryTableName("Data"))
	assert.Equal(t, "Sample", MemoryTableName("Sample"))
}

func TestParseArtifacts(t *testing.T) {
	got, err := ParseArtifacts("class, Data,,binarybuilder")
	require.NoError(t, err)
	assert.Equal(t, []Artifact{ArtifactClass, ArtifactData, ArtifactBinaryBuilder}, got)

	got, err = ParseArtifacts("dataList")
	require.NoError(t, err)
	assert.Equal(t, []Artifact{ArtifactDataList}, got)

	_, err = ParseArtifacts("class,bogus")
	require.Error(t, err)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{Filename: "Item.cs", Content: []byte("a")},
		{Filename: "sub/Item_DataOnly.cs", Content: []byte("b")},
	}

	paths, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Item.cs"), filepath.Join(dir, "sub", "Item_DataOnly.cs")}, paths)

	got, err := os.ReadFile(filepath.Join(dir, "sub", "Item_DataOnly.cs"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))

	_, err = WriteFiles([]GeneratedFile{{Filename: "../escape.cs"}}, dir)
	require.Error(t, err)
}

func TestGenerator_Generate_DataList(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Namespace = "Game"
	cfg.TypeName = "Item"
	cfg.Artifacts = []Artifact{ArtifactDataList}

	res, err := NewGenerator(cfg).Generate(context.Background(), itemGrid())
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	file := res.Files[0]
	assert.Equal(t, ArtifactDataList, file.Artifact)
	assert.Equal(t, "Item_DataList.cs", file.Filename)
	assert.Equal(t, emit.DataList(res.Schema, res.Rows, emit.Options{}), string(file.Content))
	assert.True(t, strings.HasPrefix(string(file.Content), "public readonly static List<Item> Data"))
}
