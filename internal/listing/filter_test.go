package listing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/velikovic/inkwell/internal/domain"
)

func withCategory(id int) domain.Article {
	return domain.Article{
		ID:       uuid.New(),
		Category: &domain.Category{ID: id},
	}
}

func TestFilterByCategories(t *testing.T) {
	uncategorized := domain.Article{ID: uuid.New()}
	articles := []domain.Article{
		withCategory(1),
		withCategory(2),
		withCategory(1),
		uncategorized,
	}

	t.Run("empty selection returns the full set", func(t *testing.T) {
		filtered := FilterByCategories(articles, nil)
		assert.Len(t, filtered, 4, "no filter means show all, not show none")

		filtered = FilterByCategories(articles, map[int]bool{})
		assert.Len(t, filtered, 4)
	})

	t.Run("selection keeps only members", func(t *testing.T) {
		filtered := FilterByCategories(articles, map[int]bool{1: true})
		assert.Len(t, filtered, 2)
		for _, a := range filtered {
			assert.Equal(t, 1, a.Category.ID)
		}
	})

	t.Run("multiple selected categories union", func(t *testing.T) {
		filtered := FilterByCategories(articles, map[int]bool{1: true, 2: true})
		assert.Len(t, filtered, 3)
	})

	t.Run("uncategorized never matches a non-empty selection", func(t *testing.T) {
		filtered := FilterByCategories(articles, map[int]bool{1: true, 2: true, 99: true})
		for _, a := range filtered {
			assert.NotNil(t, a.Category)
		}
	})

	t.Run("no matches yields empty set", func(t *testing.T) {
		filtered := FilterByCategories(articles, map[int]bool{42: true})
		assert.Empty(t, filtered)
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
	}{
		{"first page", 1, 3, []int{1, 2, 3}},
		{"middle page", 2, 3, []int{4, 5, 6}},
		{"partial last page", 3, 3, []int{7}},
		{"out of range page", 4, 3, []int{}},
		{"far out of range", 100, 3, []int{}},
		{"limit larger than set", 1, 50, []int{1, 2, 3, 4, 5, 6, 7}},
		{"zero page", 0, 3, []int{}},
		{"zero limit", 1, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page, tt.limit))
		})
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]int{}, 1, 10))
}
