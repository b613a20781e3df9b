package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetgen/internal/schema"
)

func itemSchema() *schema.RecordSchema {
	return &schema.RecordSchema{
		Namespace: "Game.Data",
		TypeName:  "Item",
		Fields: []schema.FieldDefinition{
			{Name: "Id", Type: "int", Kind: schema.KindInt, Attributes: []string{"PrimaryKey"}, Columns: []int{0}},
			{Name: "Category", Type: "Category", Kind: schema.KindEnum, Columns: []int{1}},
		},
		Enums: []schema.EnumDefinition{
			{Name: "Category", Members: []string{"Weapon", "Shield"}},
		},
	}
}

func itemRows() []Row {
	return []Row{
		{"1", "Category.Weapon"},
		{"2", "Category.Shield"},
	}
}

func TestRender(t *testing.T) {
	lines := Lines{line(0, "a"), blank(), line(2, "b"), Line{Depth: 3}}

	assert.Equal(t, "a\n\n        b\n\n", Render(lines, ""))
	assert.Equal(t, "a\r\n\r\n        b\r\n\r\n", Render(lines, "\r\n"))
	assert.Empty(t, Render(nil, ""))
}

func TestLines_IndentCopies(t *testing.T) {
	orig := Lines{line(0, "x")}
	indented := orig.Indent(2)

	assert.Equal(t, 0, orig[0].Depth)
	assert.Equal(t, 2, indented[0].Depth)
}

func TestTextLines(t *testing.T) {
	got := textLines("a\r\n  \nb\n")

	assert.Equal(t, Lines{line(0, "a"), blank(), line(0, "b")}, got)
}

func TestNormalizeUsings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"dedup and sort", []string{"UnityEngine", "System", "System"}, []string{"System", "UnityEngine"}},
		{"strips keyword and semicolon", []string{"using System.IO;", " System.IO "}, []string{"System.IO"}},
		{"drops blanks", []string{"", "  ", ";"}, []string{}},
		{"ordinal order", []string{"b", "B", "a"}, []string{"B", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUsings(tt.in))
		})
	}
}

func TestDirectives(t *testing.T) {
	assert.Nil(t, Directives(nil))
	assert.Equal(t,
		"using A;\nusing B;\n\n",
		Render(Directives([]string{"B", "A", "B"}), ""))
}

func TestAttributeLine(t *testing.T) {
	assert.Equal(t, "[PrimaryKey]", attributeLine("PrimaryKey"))
	assert.Equal(t, "[Key(0)]", attributeLine(" [Key(0)] "))
}

func TestClassDecl(t *testing.T) {
	assert.Equal(t, "public class A", classDecl("A", false, false))
	assert.Equal(t, "public sealed partial class A", classDecl("A", true, true))
	assert.Equal(t, "public partial class A", classDecl("A", false, true))
}

func TestFieldSection(t *testing.T) {
	fields := []schema.FieldDefinition{
		{Name: "Id", Type: "int", Attributes: []string{"PrimaryKey", "Key(0)"}},
		{Name: "Name", Type: "string"},
	}

	want := "[PrimaryKey]\n" +
		"[Key(0)]\n" +
		"public int Id { get; set; }\n" +
		"\n" +
		"public string Name { get; set; }\n"

	assert.Equal(t, want, Render(FieldSection(fields), ""))
}

func TestClassSource_WithNamespaceAndEnums(t *testing.T) {
	opts := Options{Usings: []string{"UnityEngine", "using System;", "System"}}

	want := `using System;
using UnityEngine;

namespace Game.Data
{
    public class Item
    {
        [PrimaryKey]
        public int Id { get; set; }

        public Category Category { get; set; }
    }

    public enum Category
    {
        Weapon,
        Shield
    }
}
`

	assert.Equal(t, want, ClassSource(itemSchema(), opts))
}

func TestClassSource_NoNamespaceNoUsings(t *testing.T) {
	s := itemSchema()
	s.Namespace = ""
	s.Enums = nil

	want := `public class Item
{
    [PrimaryKey]
    public int Id { get; set; }

    public Category Category { get; set; }
}
`

	assert.Equal(t, want, ClassSource(s, Options{}))
}

func TestClassSource_TypeAttributesAndModifiers(t *testing.T) {
	s := itemSchema()
	s.Namespace = ""

	opts := Options{
		TypeAttributes: []string{"MemoryTable(\"Item\"), MessagePackObject(true)", ""},
		Sealed:         true,
		Partial:        true,
		SeparateEnums:  true,
	}

	got := ClassSource(s, opts)

	assert.True(t, strings.HasPrefix(got,
		"[MemoryTable(\"Item\"), MessagePackObject(true)]\npublic sealed partial class Item\n{\n"))
	assert.NotContains(t, got, "enum")
}

func TestEnumSource(t *testing.T) {
	s := itemSchema()
	s.Enums = append(s.Enums, schema.EnumDefinition{Name: "Rarity", Members: []string{"None"}})

	want := `namespace Game.Data
{
    public enum Category
    {
        Weapon,
        Shield
    }

    public enum Rarity
    {
        None
    }
}
`

	assert.Equal(t, want, EnumSource(s, Options{}))
}

func TestDataList(t *testing.T) {
	want := `public readonly static List<Item> Data = new List<Item>()
{
    new Item
    {
        Id = 1,
        Category = Category.Weapon
    },
    new Item
    {
        Id = 2,
        Category = Category.Shield
    }
};
`

	assert.Equal(t, want, DataList(itemSchema(), itemRows(), Options{}))
}

func TestDataList_NoRows(t *testing.T) {
	want := "public readonly static List<Item> Data = new List<Item>()\n{\n};\n"

	assert.Equal(t, want, DataList(itemSchema(), nil, Options{}))
}

func TestDataFile(t *testing.T) {
	got := DataFile(itemSchema(), itemRows()[:1], Options{Usings: []string{"System"}})

	want := `using System;
using System.Collections.Generic;

namespace Game.Data
{
    public partial class Item
    {
        public readonly static List<Item> Data = new List<Item>()
        {
            new Item
            {
                Id = 1,
                Category = Category.Weapon
            }
        };
    }
}
`

	assert.Equal(t, want, got)
}

func TestBinaryBuilder(t *testing.T) {
	got, err := BinaryBuilder(itemSchema(), Options{Sealed: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "using MasterMemory;\nusing MessagePack;\n"))
	assert.Contains(t, got, "using System.Collections.Generic;\n")
	assert.Contains(t, got, "namespace Game.Data\n{\n    public sealed partial class Item\n")
	assert.Contains(t, got,
		"        public static byte[] BuildBinary(IEnumerable<Item> masters, string outputPath = null)\n")
	assert.Contains(t, got, `outputPath ??= "Assets/Generated/Item.bytes";`)
	assert.True(t, strings.HasSuffix(got, "    }\n}\n"))
}

func TestBinaryBuilder_CustomPath(t *testing.T) {
	got, err := BinaryBuilder(itemSchema(), Options{BinaryOutputPath: `C:\out\item.bytes`})
	require.NoError(t, err)

	assert.Contains(t, got, `outputPath ??= "C:\\out\\item.bytes";`)
	assert.Contains(t, got, "public partial class Item\n")
}

func TestArtifacts_Idempotent(t *testing.T) {
	s := itemSchema()
	opts := Options{Usings: []string{"System"}, Partial: true}

	assert.Equal(t, ClassSource(s, opts), ClassSource(s, opts))
	assert.Equal(t, EnumSource(s, opts), EnumSource(s, opts))
	assert.Equal(t, DataFile(s, itemRows(), opts), DataFile(s, itemRows(), opts))

	first, err := BinaryBuilder(s, opts)
	require.NoError(t, err)

	second, err := BinaryBuilder(s, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
