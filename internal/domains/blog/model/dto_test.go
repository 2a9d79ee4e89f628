package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{"published": true}`, true},
		{`{"published": false}`, false},
		{`{"published": "true"}`, true},
		{`{"published": "false"}`, false},
		{`{"published": "yes"}`, false},
		{`{"published": 1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var p BlogPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			require.NotNil(t, p.Published)
			assert.Equal(t, tt.want, bool(*p.Published))
		})
	}

	var p BlogPayload
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &p))
	assert.Nil(t, p.ToInput().Published)
}

func TestBlogInput_ValidateCreate(t *testing.T) {
	ok := BlogInput{Title: " Hello ", Content: " body "}.Normalize()
	assert.NoError(t, ok.ValidateCreate())
	assert.Equal(t, "Hello", ok.Title)

	for _, in := range []BlogInput{
		{Title: "   ", Content: "body"},
		{Title: "Hello"},
		{},
	} {
		err := in.Normalize().ValidateCreate()
		assert.True(t, errors.Is(err, ErrTitleContentRequired))
	}
}

func TestBlogInput_ResolveCoverImage(t *testing.T) {
	in := BlogInput{CoverImage: "https://direct/upload/a.jpg"}
	assert.Equal(t, "https://direct/upload/a.jpg", in.ResolveCoverImage())

	in.Upload = &UploadedAsset{URL: "https://host/upload/v1/f/b.png", PublicID: "f/b"}
	assert.Equal(t, "https://host/upload/v1/f/b.png", in.ResolveCoverImage())

	in.Upload = &UploadedAsset{PublicID: "f/b"}
	assert.Equal(t, "", in.ResolveCoverImage())
}

func TestBlogInput_NormalizeKeywords(t *testing.T) {
	in := BlogInput{Keywords: []string{" go ", "", "web"}}.Normalize()
	assert.Equal(t, []string{"go", "web"}, in.Keywords)
	assert.Nil(t, BlogInput{}.Normalize().Keywords)
}

func TestListBlogsRequest_Validate(t *testing.T) {
	assert.NoError(t, ListBlogsRequest{Page: 1, Limit: 10}.Validate())

	for _, req := range []ListBlogsRequest{
		{Page: 0, Limit: 10},
		{Page: 1, Limit: 0},
		{Page: -1, Limit: 10},
		{Page: 2, Limit: -5},
	} {
		assert.ErrorIs(t, req.Validate(), ErrInvalidPageLimit)
	}
}

func TestPagination(t *testing.T) {
	assert.EqualValues(t, 20, ListBlogsRequest{Page: 3, Limit: 10}.Skip())
	assert.EqualValues(t, 0, TotalPages(0, 10))
	assert.EqualValues(t, 3, TotalPages(25, 10))
	assert.EqualValues(t, 2, TotalPages(20, 10))
	assert.EqualValues(t, 1, TotalPages(1, 10))
}
