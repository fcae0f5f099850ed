package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velikovic/inkwell/pkg/pagination"
)

func TestState_Defaults(t *testing.T) {
	s := NewState()

	assert.Equal(t, 1, s.Page())
	assert.Equal(t, pagination.PageDefaultSize, s.Limit())
	assert.Empty(t, s.Selected())
}

func TestState_SetLimitResetsPage(t *testing.T) {
	s := NewState()
	s.SetPage(5)

	s.SetLimit(20)

	assert.Equal(t, 20, s.Limit())
	assert.Equal(t, 1, s.Page(), "changing the limit must reset the page")
}

func TestState_ToggleCategoryResetsPage(t *testing.T) {
	s := NewState()
	s.SetPage(3)

	s.ToggleCategory(7)

	assert.True(t, s.IsSelected(7))
	assert.Equal(t, 1, s.Page(), "changing the filter must reset the page")

	s.SetPage(2)
	s.ToggleCategory(7)

	assert.False(t, s.IsSelected(7))
	assert.Equal(t, 1, s.Page(), "removing a filter is also a filter change")
}

func TestState_SetCategoriesResetsPage(t *testing.T) {
	s := NewState()
	s.SetPage(4)

	s.SetCategories([]int{1, 2})

	assert.True(t, s.IsSelected(1))
	assert.True(t, s.IsSelected(2))
	assert.Equal(t, 1, s.Page())
}

func TestState_ClearCategoriesResetsPage(t *testing.T) {
	s := NewState()
	s.ToggleCategory(1)
	s.SetPage(2)

	s.ClearCategories()

	assert.False(t, s.IsSelected(1))
	assert.Empty(t, s.Selected())
	assert.Equal(t, 1, s.Page())
}

func TestState_SetPageKeepsFilterAndLimit(t *testing.T) {
	s := NewState()
	s.SetLimit(25)
	s.ToggleCategory(3)

	s.SetPage(7)

	assert.Equal(t, 7, s.Page())
	assert.Equal(t, 25, s.Limit())
	assert.True(t, s.IsSelected(3))
}

func TestState_BoundsClamped(t *testing.T) {
	s := NewState()

	s.SetPage(-1)
	assert.Equal(t, 1, s.Page())

	s.SetLimit(-5)
	assert.Equal(t, pagination.PageDefaultSize, s.Limit())

	s.SetLimit(pagination.PageMaxSize + 1)
	assert.Equal(t, pagination.PageMaxSize, s.Limit())
}
