package listing

import (
	"sync"

	"github.com/velikovic/inkwell/pkg/pagination"
)

// State is the explicit filter/pagination state for one listing session.
// It replaces ambient per-view globals: handlers receive it, tests build
// it directly.
//
// Invariant: changing the limit or the category selection resets the
// current page to 1. Without the reset a shrunken result set can leave
// the session on a page past the end, showing zero rows.
type State struct {
	mu       sync.Mutex
	selected map[int]bool
	limit    int
	page     int
}

func NewState() *State {
	return &State{
		selected: make(map[int]bool),
		limit:    pagination.PageDefaultSize,
		page:     1,
	}
}

// ToggleCategory adds or removes a category from the selection and resets
// the page.
func (s *State) ToggleCategory(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	s.page = 1
}

// SetCategories replaces the whole selection. The page resets even when
// the new selection equals the old one; the caller cannot tell and must
// not care.
func (s *State) SetCategories(ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]bool, len(ids))
	for _, id := range ids {
		s.selected[id] = true
	}
	s.page = 1
}

// ClearCategories empties the selection and resets the page.
func (s *State) ClearCategories() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]bool)
	s.page = 1
}

func (s *State) IsSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected[id]
}

// SetLimit changes the page size and resets the page.
func (s *State) SetLimit(limit int) {
	if limit < 1 {
		limit = pagination.PageDefaultSize
	}
	if limit > pagination.PageMaxSize {
		limit = pagination.PageMaxSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = limit
	s.page = 1
}

// SetPage moves to the requested page without touching filter or limit.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

func (s *State) Limit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

func (s *State) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Selected returns a copy of the current selection.
func (s *State) Selected() map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]bool, len(s.selected))
	for k, v := range s.selected {
		out[k] = v
	}
	return out
}
