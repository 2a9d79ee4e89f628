package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My First Post", "my-first-post"},
		{"  Hello, World! 2024 ", "hello-world-2024"},
		{"Nguyễn Nhật Ánh", "nguyen-nhat-anh"},
		{"Đà Lạt trip", "da-lat-trip"},
		{"Crème brûlée -- recipe", "creme-brulee-recipe"},
		{"Go_Lang & Mongo", "go-lang-mongo"},
		{"UPPER case", "upper-case"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Nguyen Nhat Anh", RemoveDiacritics("Nguyễn Nhật Ánh"))
	assert.Equal(t, "Strasse", RemoveDiacritics("Straße"))
	assert.Equal(t, "plain", RemoveDiacritics("plain"))
}
