// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The document columns must reach the driver as text, not raw bytes:
// membership filtering runs LIKE against them, and LIKE over a blob
// matches nothing on the sqlite test store.
func TestDocumentColumnsStoreAsText(t *testing.T) {
	variants := VariantList{{ID: uuid.New(), ColorID: uuid.New()}}
	value, err := variants.Value()
	require.NoError(t, err)
	text, ok := value.(string)
	require.True(t, ok, "variants column value is %T, want string", value)
	assert.Contains(t, text, variants[0].ColorID.String())

	tagsValue, err := StringList{"cotton"}.Value()
	require.NoError(t, err)
	_, ok = tagsValue.(string)
	assert.True(t, ok, "string list column value is %T, want string", tagsValue)

	specsValue, err := JSONB{"fit": "regular"}.Value()
	require.NoError(t, err)
	_, ok = specsValue.(string)
	assert.True(t, ok, "jsonb column value is %T, want string", specsValue)
}

func TestVariantListStockAndColorHelpers(t *testing.T) {
	red, blue := uuid.New(), uuid.New()
	variants := VariantList{
		{ID: uuid.New(), ColorID: red, Sizes: []SizeStock{{Label: "s", Quantity: 2}, {Label: "m", Quantity: 0}}},
		{ID: uuid.New(), ColorID: red, Sizes: []SizeStock{{Label: "l", Quantity: 3}}},
		{ID: uuid.New(), ColorID: blue},
	}

	assert.Equal(t, []uuid.UUID{red, blue}, variants.ColorIDs())
	assert.Equal(t, 5, variants.TotalStock())
	assert.False(t, variants.HasImage())

	variants[2].Images = []VariantImage{{URL: "u", StorageKey: "k"}}
	assert.True(t, variants.HasImage())
}
