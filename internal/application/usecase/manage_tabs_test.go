package usecase_test

import (
	"fmt"
	"testing"

	"github.com/qualzed/qb/internal/application/usecase"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
}

func TestManageTabsUseCase_OpenMakesNewTabActive(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "https://google.com")
	tabs := entity.NewTabList()

	first, err := uc.Open(ctx, tabs, "")
	require.NoError(t, err)
	assert.Equal(t, "https://google.com", first.URL)
	assert.Equal(t, first.ID, tabs.ActiveTabID)

	second, err := uc.Open(ctx, tabs, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", second.URL)
	assert.Equal(t, second.ID, tabs.ActiveTabID)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, entity.TabStateCreated, second.State)
}

func TestManageTabsUseCase_OpenRequiresList(t *testing.T) {
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	_, err := uc.Open(testContext(), nil, "")
	require.Error(t, err)
	assert.Equal(t, "https://google.com", uc.HomeURL())
}

func TestManageTabsUseCase_CloseAllButOneLeavesOneActive(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()

	var ids []entity.TabID
	for i := 0; i < 5; i++ {
		tab, err := uc.Open(ctx, tabs, "")
		require.NoError(t, err)
		ids = append(ids, tab.ID)
	}

	for _, id := range ids[:4] {
		wasLast, err := uc.Close(ctx, tabs, id)
		require.NoError(t, err)
		assert.False(t, wasLast)
	}

	require.Equal(t, 1, tabs.Count())
	assert.Equal(t, ids[4], tabs.ActiveTabID)

	wasLast, err := uc.Close(ctx, tabs, ids[4])
	require.NoError(t, err)
	assert.True(t, wasLast)
	assert.Zero(t, tabs.Count())
}

func TestManageTabsUseCase_CloseActivePicksNeighbour(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	a, _ := uc.Open(ctx, tabs, "")
	b, _ := uc.Open(ctx, tabs, "")
	c, _ := uc.Open(ctx, tabs, "")

	require.NoError(t, uc.Switch(ctx, tabs, b.ID))
	_, err := uc.Close(ctx, tabs, b.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, tabs.ActiveTabID)

	_, err = uc.Close(ctx, tabs, c.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, tabs.ActiveTabID)
}

func TestManageTabsUseCase_CloseUnknown(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	_, _ = uc.Open(ctx, tabs, "")

	wasLast, err := uc.Close(ctx, tabs, "missing")
	require.ErrorIs(t, err, usecase.ErrTabNotFound)
	assert.False(t, wasLast)
	assert.Equal(t, 1, tabs.Count())
}

func TestManageTabsUseCase_SwitchByIndex(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	a, _ := uc.Open(ctx, tabs, "")
	_, _ = uc.Open(ctx, tabs, "")

	require.NoError(t, uc.SwitchByIndex(ctx, tabs, 0))
	assert.Equal(t, a.ID, tabs.ActiveTabID)
	require.ErrorIs(t, uc.SwitchByIndex(ctx, tabs, 7), usecase.ErrTabNotFound)
	require.ErrorIs(t, uc.Switch(ctx, tabs, "nope"), usecase.ErrTabNotFound)
}

func TestManageTabsUseCase_StateTransitions(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	tab, _ := uc.Open(ctx, tabs, "")

	require.True(t, uc.MarkLoading(ctx, tabs, tab.ID, "https://go.dev/"))
	assert.Equal(t, entity.TabStateLoading, tab.State)
	assert.Equal(t, "https://go.dev/", tab.URL)
	assert.False(t, tab.HasPageTitle())

	require.True(t, uc.UpdateTitle(ctx, tabs, tab.ID, "The Go Programming Language"))
	assert.Equal(t, "The Go Programming Language", tab.DisplayTitle("ntab"))

	require.True(t, uc.MarkLoaded(ctx, tabs, tab.ID))
	assert.Equal(t, entity.TabStateLoaded, tab.State)
}

func TestManageTabsUseCase_UntitledPageShowsPlaceholder(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	tab, _ := uc.Open(ctx, tabs, "")

	require.True(t, uc.UpdateTitle(ctx, tabs, tab.ID, "Old Page"))
	require.True(t, uc.MarkLoading(ctx, tabs, tab.ID, "https://untitled.example/"))
	assert.False(t, tab.HasPageTitle())
	assert.Equal(t, "ntab", tab.DisplayTitle("ntab"))

	require.True(t, uc.UpdateTitle(ctx, tabs, tab.ID, ""))
	require.True(t, uc.MarkLoaded(ctx, tabs, tab.ID))
	assert.Equal(t, entity.TabStateLoaded, tab.State)
	assert.Equal(t, "ntab", tab.DisplayTitle("ntab"))
}

func TestManageTabsUseCase_BlankTitleClearsPreviousTitle(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	tab, _ := uc.Open(ctx, tabs, "")

	require.True(t, uc.UpdateTitle(ctx, tabs, tab.ID, "Old Page"))
	require.True(t, uc.UpdateTitle(ctx, tabs, tab.ID, ""))
	assert.Empty(t, tab.Title)
}

func TestManageTabsUseCase_NotificationsForClosedTabAreDropped(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(sequentialIDs(), "")
	tabs := entity.NewTabList()
	a, _ := uc.Open(ctx, tabs, "")
	b, _ := uc.Open(ctx, tabs, "")
	_, err := uc.Close(ctx, tabs, a.ID)
	require.NoError(t, err)

	assert.False(t, uc.MarkLoading(ctx, tabs, a.ID, "https://x"))
	assert.False(t, uc.UpdateTitle(ctx, tabs, a.ID, "stale"))
	assert.False(t, uc.MarkLoaded(ctx, tabs, a.ID))
	assert.Empty(t, b.Title)
}
