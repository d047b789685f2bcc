package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
)

func testCatalog() []response_models.TourPackage {
	return []response_models.TourPackage{
		{
			ID:       1,
			Name:     "Heritage Week",
			Duration: "7 days",
			Price:    "$800",
			BestFor:  []string{"Cultural enthusiasts"},
		},
		{
			ID:       2,
			Name:     "High Trail",
			Duration: "10 days",
			Price:    "$1200",
			BestFor:  []string{"Adventure seekers"},
		},
	}
}

func TestFilterTours(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name        string
		prefs       request_models.PreferenceQuery
		expectedIDs []int
	}{
		{
			name:        "no_preferences_returns_full_catalog",
			prefs:       request_models.PreferenceQuery{},
			expectedIDs: []int{1, 2},
		},
		{
			name: "duration_budget_and_interest",
			prefs: request_models.PreferenceQuery{
				Duration:  8,
				Budget:    1000,
				Interests: []string{"cultural"},
			},
			expectedIDs: []int{1},
		},
		{
			name:        "duration_only",
			prefs:       request_models.PreferenceQuery{Duration: 7},
			expectedIDs: []int{1},
		},
		{
			name:        "budget_only",
			prefs:       request_models.PreferenceQuery{Budget: 900},
			expectedIDs: []int{1},
		},
		{
			name:        "interest_is_case_insensitive_substring",
			prefs:       request_models.PreferenceQuery{Interests: []string{"ADVENTURE"}},
			expectedIDs: []int{2},
		},
		{
			name:        "unmatched_interest_rejects_everything",
			prefs:       request_models.PreferenceQuery{Interests: []string{"beach"}},
			expectedIDs: nil,
		},
		{
			name:        "too_short_duration_matches_nothing",
			prefs:       request_models.PreferenceQuery{Duration: 3},
			expectedIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterTours(catalog, tt.prefs)

			var ids []int
			for _, pkg := range result {
				ids = append(ids, pkg.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilterToursPreservesOrder(t *testing.T) {
	catalog := tourCatalog
	result := FilterTours(catalog, request_models.PreferenceQuery{Budget: 2000})

	require.NotEmpty(t, result)
	lastIdx := -1
	for _, pkg := range result {
		idx := -1
		for i, entry := range catalog {
			if entry.ID == pkg.ID {
				idx = i
				break
			}
		}
		require.GreaterOrEqual(t, idx, 0, "filtered entry must come from catalog")
		assert.Greater(t, idx, lastIdx, "catalog order must be preserved")
		lastIdx = idx
	}
}

func TestRecommendFallback(t *testing.T) {
	svc := &TourService{catalog: testCatalog()}

	message, tours := svc.Recommend(request_models.PreferenceQuery{Duration: 3})

	assert.Equal(t, popularToursMessage, message)
	require.Len(t, tours, 2)
	assert.Equal(t, 1, tours[0].ID)
	assert.Equal(t, 2, tours[1].ID)
}

func TestRecommendMatch(t *testing.T) {
	svc := &TourService{catalog: testCatalog()}

	message, tours := svc.Recommend(request_models.PreferenceQuery{
		Duration:  8,
		Budget:    1000,
		Interests: []string{"cultural"},
	})

	assert.Equal(t, recommendationMessage, message)
	require.Len(t, tours, 1)
	assert.Equal(t, "Heritage Week", tours[0].Name)
}

func TestGetTourByID(t *testing.T) {
	svc := NewTourService()

	tour, err := svc.GetTourByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Kathmandu Valley Heritage Tour", tour.Name)

	_, err = svc.GetTourByID(999)
	assert.Error(t, err)
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 7, leadingInt("7 days"))
	assert.Equal(t, 800, leadingInt("800"))
	assert.Equal(t, 1200, leadingInt("1,200"))
	assert.Equal(t, 0, leadingInt("free"))
	assert.Equal(t, 0, leadingInt(""))
}
