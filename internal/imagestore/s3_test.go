package imagestore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("products/", "swatch.png")

	assert.True(t, strings.HasPrefix(key, "products/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, ObjectKey("products/", "swatch.png"))
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := ObjectKey("products/", "swatch")

	assert.True(t, strings.HasPrefix(key, "products/"))
	assert.NotContains(t, key, ".")
}

func TestObjectURL(t *testing.T) {
	url := ObjectURL("images", "eu-west-1", "products/abc.png")

	assert.Equal(t, "https://images.s3.eu-west-1.amazonaws.com/products/abc.png", url)
}
