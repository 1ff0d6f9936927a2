package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunnelDef_Validate(t *testing.T) {
	rate := 1.5

	tests := []struct {
		name    string
		funnel  FunnelDef
		wantErr bool
	}{
		{"valid", FunnelDef{Name: "ok", Type: "conversion", Importance: "high", Steps: []string{"a"}}, false},
		{"bad type", FunnelDef{Name: "t", Type: "virality", Importance: "high", Steps: []string{"a"}}, true},
		{"bad importance", FunnelDef{Name: "i", Type: "retention", Importance: "urgent", Steps: []string{"a"}}, true},
		{"no steps", FunnelDef{Name: "s", Type: "engagement", Importance: "low"}, true},
		{"rate out of range", FunnelDef{Name: "r", Type: "engagement", Importance: "low", Steps: []string{"a"}, ConversionRate: &rate}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.funnel.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAll_ReportsIndex(t *testing.T) {
	funnels := []FunnelDef{
		{Name: "ok", Type: "conversion", Importance: "high", Steps: []string{"a"}},
		{Name: "empty", Type: "conversion", Importance: "high"},
	}

	err := ValidateAll(funnels)
	assert.ErrorIs(t, err, ErrNoSteps)
	assert.Contains(t, err.Error(), "index 1")
}
