// internal/utils/projector_test.go
package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type projectorChild struct {
	ID   uuid.UUID `json:"id"`
	Note string    `json:"note,omitempty"`
}

type projectorDoc struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Price     decimal.Decimal        `json:"price"`
	CreatedAt time.Time              `json:"created_at"`
	DeletedAt gorm.DeletedAt         `json:"deleted_at,omitempty"`
	Children  []projectorChild       `json:"children,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
	hidden    string
}

func TestProjectNormalizesDocument(t *testing.T) {
	id := uuid.New()
	childID := uuid.New()
	created := time.Date(2026, 3, 14, 15, 9, 26, 0, time.FixedZone("CET", 3600))

	doc := projectorDoc{
		ID:        id,
		Name:      "Classic Tee",
		Price:     decimal.NewFromFloat(79.90),
		CreatedAt: created,
		Children:  []projectorChild{{ID: childID, Note: "first"}},
		Extra: map[string]interface{}{
			"deleted_at": "should vanish",
			"ref":        childID,
		},
		hidden: "never serialized",
	}

	projected, ok := Project(doc).(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, id.String(), projected["id"])
	assert.Equal(t, "Classic Tee", projected["name"])
	assert.Equal(t, "79.9", projected["price"])

	// Timestamps come out as one fixed UTC text encoding.
	assert.Equal(t, "2026-03-14T14:09:26Z", projected["created_at"])

	// The soft-delete marker is stripped at every level.
	_, hasDeletedAt := projected["deleted_at"]
	assert.False(t, hasDeletedAt)
	extra, ok := projected["extra"].(map[string]interface{})
	require.True(t, ok)
	_, hasDeletedAt = extra["deleted_at"]
	assert.False(t, hasDeletedAt)
	assert.Equal(t, childID.String(), extra["ref"])

	children, ok := projected["children"].([]interface{})
	require.True(t, ok)
	require.Len(t, children, 1)
	child, ok := children[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, childID.String(), child["id"])
	assert.Equal(t, "first", child["note"])

	_, hasHidden := projected["hidden"]
	assert.False(t, hasHidden)
}

func TestProjectIsIdempotent(t *testing.T) {
	doc := projectorDoc{
		ID:        uuid.New(),
		Name:      "Twice",
		Price:     decimal.NewFromInt(10),
		CreatedAt: time.Now(),
	}

	once := Project(doc)
	twice := Project(once)
	assert.Equal(t, once, twice)
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	ref := uuid.New()
	input := map[string]interface{}{
		"id":         ref,
		"deleted_at": "still here",
	}

	_ = Project(input)

	assert.Equal(t, ref, input["id"])
	assert.Equal(t, "still here", input["deleted_at"])
}

func TestProjectScalarsAndNil(t *testing.T) {
	assert.Nil(t, Project(nil))
	assert.Equal(t, 42, Project(42))
	assert.Equal(t, "plain", Project("plain"))

	var nilTime *time.Time
	assert.Nil(t, Project(nilTime))

	id := uuid.New()
	assert.Equal(t, id.String(), Project(&id))
}
