package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikovic/inkwell/internal/apperr"
)

func TestCreateArticleRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateArticleRequest
		wantErr string
	}{
		{"valid", CreateArticleRequest{Title: "T", Markdown: "M"}, ""},
		{"missing title", CreateArticleRequest{Markdown: "M"}, "title is required"},
		{"whitespace title", CreateArticleRequest{Title: "   ", Markdown: "M"}, "title is required"},
		{"missing markdown", CreateArticleRequest{Title: "T"}, "markdown is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Message)
		})
	}
}

func TestUpdateArticleRequest_PartialDecode(t *testing.T) {
	t.Run("absent reference leaves the patch empty", func(t *testing.T) {
		var req UpdateArticleRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"New"}`), &req))

		patch := req.ToPatch()
		require.NotNil(t, patch.Title)
		assert.Equal(t, "New", *patch.Title)
		assert.Nil(t, patch.CategoryID, "absent categoryId must not touch the column")
	})

	t.Run("explicit null clears the reference", func(t *testing.T) {
		var req UpdateArticleRequest
		require.NoError(t, json.Unmarshal([]byte(`{"categoryId":null}`), &req))

		patch := req.ToPatch()
		require.NotNil(t, patch.CategoryID)
		assert.Nil(t, *patch.CategoryID)
	})

	t.Run("integer sets the reference", func(t *testing.T) {
		var req UpdateArticleRequest
		require.NoError(t, json.Unmarshal([]byte(`{"categoryId":3}`), &req))

		patch := req.ToPatch()
		require.NotNil(t, patch.CategoryID)
		require.NotNil(t, *patch.CategoryID)
		assert.Equal(t, 3, **patch.CategoryID)
	})
}

func TestUpdateArticleRequest_Validate(t *testing.T) {
	empty := ""
	req := UpdateArticleRequest{Title: &empty}

	var ve *apperr.ValidationError
	require.ErrorAs(t, req.Validate(), &ve)
	assert.Equal(t, "title must not be empty", ve.Message)

	md := ""
	req = UpdateArticleRequest{Markdown: &md}
	require.ErrorAs(t, req.Validate(), &ve)

	assert.NoError(t, (&UpdateArticleRequest{}).Validate(), "an all-absent patch is valid")
}
