package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductIDs(t *testing.T) {
	products := []Product{
		{ID: 3, Title: "C", Category: "cat2"},
		{ID: 1, Title: "A", Category: "cat1"},
	}

	assert.Equal(t, []int{3, 1}, ProductIDs(products))
	assert.Empty(t, ProductIDs(nil))
	assert.NotNil(t, ProductIDs(nil))
}
