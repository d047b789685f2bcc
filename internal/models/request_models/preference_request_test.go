package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceQueryDecoding(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		budget   int
		duration int
	}{
		{
			name:     "numeric_values",
			payload:  `{"budget": 1000, "duration": 8}`,
			budget:   1000,
			duration: 8,
		},
		{
			name:     "string_values",
			payload:  `{"budget": "1000", "duration": "8"}`,
			budget:   1000,
			duration: 8,
		},
		{
			name:     "currency_and_units",
			payload:  `{"budget": "$1,200", "duration": "8 days"}`,
			budget:   1200,
			duration: 8,
		},
		{
			name:     "unparseable_disables_predicate",
			payload:  `{"budget": "cheap", "duration": "a while"}`,
			budget:   0,
			duration: 0,
		},
		{
			name:     "absent_fields_decode_to_zero",
			payload:  `{}`,
			budget:   0,
			duration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prefs PreferenceQuery
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &prefs))
			assert.Equal(t, FlexInt(tt.budget), prefs.Budget)
			assert.Equal(t, FlexInt(tt.duration), prefs.Duration)
		})
	}
}
