// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pricedRequest struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"min=0"`
}

func TestValidateStructSeesDecimalFields(t *testing.T) {
	err := ValidateStruct(&pricedRequest{Name: "ok", Price: decimal.NewFromInt(10)})
	assert.NoError(t, err)

	// min/max tags must apply to the decimal's numeric value, not the
	// struct representation.
	err = ValidateStruct(&pricedRequest{Name: "ok", Price: decimal.NewFromInt(-1)})
	require.Error(t, err)
	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
	assert.Equal(t, "min", errs[0].Tag)
}

func TestGetValidationErrorsMessages(t *testing.T) {
	err := ValidateStruct(&pricedRequest{Price: decimal.NewFromInt(1)})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Name is required", errs[0].Message)
}
