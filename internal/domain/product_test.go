package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductPatch_IsEmpty(t *testing.T) {
	assert.True(t, ProductPatch{}.IsEmpty())

	inStock := false
	assert.False(t, ProductPatch{InStock: &inStock}.IsEmpty())

	price := 0.0
	assert.False(t, ProductPatch{Price: &price}.IsEmpty())
}
