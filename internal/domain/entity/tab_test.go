package entity_test

import (
	"fmt"
	"testing"

	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(n int) *entity.TabList {
	tl := entity.NewTabList()
	for i := 0; i < n; i++ {
		tl.Add(entity.NewTab(entity.TabID(fmt.Sprintf("t%d", i)), ""))
	}
	return tl
}

func TestTabList_AddFirstBecomesActive(t *testing.T) {
	tl := newList(3)
	assert.Equal(t, entity.TabID("t0"), tl.ActiveTabID)
	for i, tab := range tl.Tabs {
		assert.Equal(t, i, tab.Position)
	}
}

func TestTabList_RemoveActivePicksSameIndex(t *testing.T) {
	tl := newList(3)
	tl.ActiveTabID = "t1"

	require.True(t, tl.Remove("t1"))
	assert.Equal(t, entity.TabID("t2"), tl.ActiveTabID)
	assert.Equal(t, 1, tl.Find("t2").Position)
}

func TestTabList_RemoveLastActivePicksPrevious(t *testing.T) {
	tl := newList(3)
	tl.ActiveTabID = "t2"

	require.True(t, tl.Remove("t2"))
	assert.Equal(t, entity.TabID("t1"), tl.ActiveTabID)
}

func TestTabList_RemoveInactiveKeepsActive(t *testing.T) {
	tl := newList(3)
	tl.ActiveTabID = "t2"

	require.True(t, tl.Remove("t0"))
	assert.Equal(t, entity.TabID("t2"), tl.ActiveTabID)
	assert.Equal(t, 2, tl.Count())
}

func TestTabList_RemoveUnknown(t *testing.T) {
	tl := newList(1)
	assert.False(t, tl.Remove("nope"))
	assert.Equal(t, 1, tl.Count())
}

func TestTabList_RemoveAllClearsActive(t *testing.T) {
	tl := newList(1)
	require.True(t, tl.Remove("t0"))
	assert.Empty(t, tl.ActiveTabID)
	assert.Nil(t, tl.ActiveTab())
}

func TestTabList_At(t *testing.T) {
	tl := newList(2)
	assert.Equal(t, entity.TabID("t1"), tl.At(1).ID)
	assert.Nil(t, tl.At(2))
	assert.Nil(t, tl.At(-1))
}

func TestTab_DisplayTitle(t *testing.T) {
	tab := entity.NewTab("a", "https://example.com")
	assert.Equal(t, entity.TabStateCreated, tab.State)
	assert.False(t, tab.HasPageTitle())
	assert.Equal(t, "New tab", tab.DisplayTitle("New tab"))

	tab.Title = "Example"
	assert.Equal(t, "Example", tab.DisplayTitle("New tab"))
}
