package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genautech/yoobe-store-api/internal/domain/catalog"
)

func TestNormalize_RemoveAcentosEMinusculas(t *testing.T) {
	assert.Equal(t, "caneca termica", catalog.Normalize("Caneca Térmica"))
	assert.Equal(t, "acai organico", catalog.Normalize("  AÇAÍ Orgânico "))
	assert.Equal(t, "mochila", catalog.Normalize("mochila"))
}

func TestMatches(t *testing.T) {
	assert.True(t, catalog.Matches("Caneca Térmica 500ml", "termica"))
	assert.True(t, catalog.Matches("Caneca Térmica 500ml", "CANECA TÉRMICA"))
	assert.True(t, catalog.Matches("Caneca", ""))
	assert.False(t, catalog.Matches("Caneca Térmica", "garrafa"))
}
