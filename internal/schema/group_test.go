package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_ContinuationColumns(t *testing.T) {
	groups := Group(
		[]string{"A", "", "", "B"},
		[]string{"int[]", "ignored", "", "string"},
	)

	require.Len(t, groups, 2)

	assert.Equal(t, "A", groups[0].PropertyName)
	assert.Equal(t, []int{0, 1, 2}, groups[0].Columns)
	assert.Equal(t, "int[]", groups[0].TypeName)
	assert.Equal(t, KindIntArray, groups[0].Kind)

	assert.Equal(t, "B", groups[1].PropertyName)
	assert.Equal(t, []int{3}, groups[1].Columns)
	assert.Equal(t, 3, groups[1].Start())
}

func TestGroup_LeadingBlankHeadersSkipped(t *testing.T) {
	groups := Group(
		[]string{"", " ", "item name", "kind"},
		[]string{"int", "int", "[Key]string", "Enum"},
	)

	require.Len(t, groups, 2)
	assert.Equal(t, "ItemName", groups[0].PropertyName)
	assert.Equal(t, []int{2}, groups[0].Columns)
	assert.Equal(t, []string{"Key"}, groups[0].Attributes)
	assert.True(t, groups[1].IsEnum)
}

func TestGroup_ShortTypeHintRow(t *testing.T) {
	groups := Group([]string{"A", "B"}, []string{"int"})

	require.Len(t, groups, 2)
	assert.Equal(t, KindInvalid, groups[1].Kind)
	assert.Equal(t, "", groups[1].TypeToken)
}

func TestGroup_MalformedAttribute(t *testing.T) {
	groups := Group([]string{"A"}, []string{"[Oops int"})

	require.Len(t, groups, 1)
	assert.True(t, groups[0].MalformedAttribute)
	assert.Equal(t, "[Oops int", groups[0].TypeName)
}

func TestGroup_NoHeaders(t *testing.T) {
	assert.Empty(t, Group([]string{"", ""}, []string{"int", "int"}))
	assert.Empty(t, Group(nil, nil))
}
