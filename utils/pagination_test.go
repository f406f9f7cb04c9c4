package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p = NewPagination(3, 45)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())

	// Empty result set
	p = NewPagination(1, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext())

	// Page below 1 is clamped
	p = NewPagination(0, 10)
	assert.Equal(t, 1, p.Page)
}
