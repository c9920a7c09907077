package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestYearQuery struct {
	Year int `json:"year" validate:"billingyear"`
}

type TestAmountFilter struct {
	MinAmount float64 `json:"min_amount" validate:"min=0"`
	MaxAmount float64 `json:"max_amount" validate:"min=0"`
}

type TestSearchQuery struct {
	MinYearsExp int `json:"min_years_exp" validate:"min=0"`
}

func TestValidator_BillingYear(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestYearQuery
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Zero means no filter",
			req:       TestYearQuery{Year: 0},
			wantError: false,
		},
		{
			name:      "Plausible year",
			req:       TestYearQuery{Year: 2024},
			wantError: false,
		},
		{
			name:      "Lower bound",
			req:       TestYearQuery{Year: 1990},
			wantError: false,
		},
		{
			name:      "Upper bound",
			req:       TestYearQuery{Year: 2100},
			wantError: false,
		},
		{
			name:      "Too far in the past",
			req:       TestYearQuery{Year: 999},
			wantError: true,
			errorMsg:  "year must be a plausible billing year",
		},
		{
			name:      "Too far in the future",
			req:       TestYearQuery{Year: 2101},
			wantError: true,
			errorMsg:  "year must be a plausible billing year",
		},
		{
			name:      "Negative year",
			req:       TestYearQuery{Year: -1},
			wantError: true,
			errorMsg:  "year must be a plausible billing year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_AmountFilter(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestAmountFilter
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Both zero",
			req:       TestAmountFilter{},
			wantError: false,
		},
		{
			name:      "Valid range",
			req:       TestAmountFilter{MinAmount: 100000, MaxAmount: 500000},
			wantError: false,
		},
		{
			name:      "Negative minimum",
			req:       TestAmountFilter{MinAmount: -1},
			wantError: true,
			errorMsg:  "min_amount must be at least 0",
		},
		{
			name:      "Negative maximum",
			req:       TestAmountFilter{MaxAmount: -50},
			wantError: true,
			errorMsg:  "max_amount must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(TestSearchQuery{MinYearsExp: -3})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_years_exp must be at least 0")

	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "min_years_exp", verrs[0].Field)
	assert.Equal(t, "min", verrs[0].Tag)
}
