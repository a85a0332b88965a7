package storage

import (
	"path"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestImageKey(t *testing.T) {
	productID := uuid.New()

	key := imageKey(productID, "photo.JPG")
	assert.True(t, strings.HasPrefix(key, "products/"+productID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	// Extensionless filenames still produce a usable key
	key = imageKey(productID, "photo")
	assert.True(t, strings.HasPrefix(key, "products/"+productID.String()+"/"))
	assert.False(t, strings.Contains(path.Base(key), "."))
}

func TestImageKey_Unique(t *testing.T) {
	productID := uuid.New()

	first := imageKey(productID, "a.png")
	second := imageKey(productID, "a.png")
	assert.NotEqual(t, first, second)
}
