package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	tg := New([]Rule{
		{Match: "GRILL", Category: "dining"},
		{Match: "umami", Category: "restaurants"}, // never reached for UMAMI GRILL
		{Match: "payroll", Category: "income"},
	})

	tests := []struct {
		description string
		expected    string
	}{
		{"UMAMI GRILL LOS ANGELES CA", "dining"},
		{"PAYROLL DEPOSIT ACME CORP", "income"},
		{"payroll deposit", "income"},
		{"UNKNOWN MERCHANT", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, tg.Category(tt.description))
		})
	}
}

func TestCategoriesKeepsOrder(t *testing.T) {
	tg := New([]Rule{{Match: "a", Category: "first"}})
	got := tg.Categories([]string{"abc", "xyz"})
	assert.Equal(t, []string{"first", ""}, got)
}

func TestEmptyRuleNeverMatches(t *testing.T) {
	tg := New([]Rule{{Match: "", Category: "everything"}})
	assert.Equal(t, "", tg.Category("anything"))
}
