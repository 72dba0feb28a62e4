package form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGroups struct {
	ids map[uint]bool
}

func (s stubGroups) Exists(_ context.Context, id uint) (bool, error) { return s.ids[id], nil }

func TestCleanValid(t *testing.T) {
	groups := stubGroups{ids: map[uint]bool{1: true}}
	gid := uint(1)

	data, errs, err := Clean(context.Background(), PostInput{Text: "  hello  ", GroupID: &gid}, groups)
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Equal(t, "hello", data.Text)
	assert.Equal(t, gid, *data.GroupID)
}

func TestCleanNoGroup(t *testing.T) {
	data, errs, err := Clean(context.Background(), PostInput{Text: "hello"}, stubGroups{})
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Nil(t, data.GroupID)
}

func TestCleanZeroGroupMeansNoGroup(t *testing.T) {
	// 空下拉框提交 group=，绑定后是指向 0 的指针
	zero := uint(0)
	data, errs, err := Clean(context.Background(), PostInput{Text: "hello", GroupID: &zero}, stubGroups{})
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Nil(t, data.GroupID)
}

func TestCleanBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		data, errs, err := Clean(context.Background(), PostInput{Text: text}, stubGroups{})
		require.NoError(t, err)
		assert.Nil(t, data)
		assert.True(t, errs.Has("text"), "text=%q", text)
	}
}

func TestCleanUnknownGroup(t *testing.T) {
	gid := uint(42)
	data, errs, err := Clean(context.Background(), PostInput{Text: "hello", GroupID: &gid}, stubGroups{ids: map[uint]bool{1: true}})
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.True(t, errs.Has("group"))
	assert.False(t, errs.Has("text"))
}

func TestCleanCollectsAllFields(t *testing.T) {
	gid := uint(42)
	_, errs, err := Clean(context.Background(), PostInput{Text: " ", GroupID: &gid}, stubGroups{})
	require.NoError(t, err)
	assert.True(t, errs.Has("text"))
	assert.True(t, errs.Has("group"))
}
