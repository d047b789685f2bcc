package services

import (
	"regexp"
	"strconv"
	"strings"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

const (
	recommendationMessage = "Here are tours matching your preferences"
	popularToursMessage   = "No exact match for your preferences, showing our most popular tours"

	// How many catalog entries the fallback slice contains.
	popularTourCount = 2
)

type TourServiceInterface interface {
	ListTours() []response_models.TourPackage
	GetTourByID(id int) (*response_models.TourPackage, error)
	Recommend(prefs request_models.PreferenceQuery) (string, []response_models.TourPackage)
}

type TourService struct {
	catalog []response_models.TourPackage
}

func NewTourService() TourServiceInterface {
	return &TourService{catalog: tourCatalog}
}

func (t *TourService) ListTours() []response_models.TourPackage {
	return t.catalog
}

func (t *TourService) GetTourByID(id int) (*response_models.TourPackage, error) {
	for i := range t.catalog {
		if t.catalog[i].ID == id {
			return &t.catalog[i], nil
		}
	}
	return nil, utils.ErrTourNotFound
}

// Recommend filters the catalog against the preferences and falls back to a
// fixed-size prefix of the catalog when nothing matches. An empty catalog
// match is graceful degradation, not an error.
func (t *TourService) Recommend(prefs request_models.PreferenceQuery) (string, []response_models.TourPackage) {
	matched := FilterTours(t.catalog, prefs)
	if len(matched) > 0 {
		return recommendationMessage, matched
	}

	popular := t.catalog
	if len(popular) > popularTourCount {
		popular = popular[:popularTourCount]
	}
	return popularToursMessage, popular
}

// FilterTours returns the catalog entries passing every applicable predicate,
// preserving catalog order. A predicate whose preference field is absent
// always passes.
func FilterTours(catalog []response_models.TourPackage, prefs request_models.PreferenceQuery) []response_models.TourPackage {
	var matched []response_models.TourPackage
	for _, pkg := range catalog {
		if !durationFits(pkg, prefs.Duration) {
			continue
		}
		if !budgetFits(pkg, prefs.Budget) {
			continue
		}
		if !interestsMatch(pkg, prefs.Interests) {
			continue
		}
		matched = append(matched, pkg)
	}
	return matched
}

var digitsRe = regexp.MustCompile(`\d+`)

// leadingInt pulls the first integer out of strings like "7 days" or "$800".
// Returns 0 when the string carries no number.
func leadingInt(s string) int {
	match := digitsRe.FindString(strings.ReplaceAll(s, ",", ""))
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

func durationFits(pkg response_models.TourPackage, wanted request_models.FlexInt) bool {
	if wanted <= 0 {
		return true
	}
	return leadingInt(pkg.Duration) <= int(wanted)
}

func budgetFits(pkg response_models.TourPackage, budget request_models.FlexInt) bool {
	if budget <= 0 {
		return true
	}
	return leadingInt(strings.TrimPrefix(pkg.Price, "$")) <= int(budget)
}

func interestsMatch(pkg response_models.TourPackage, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, interest := range interests {
		interest = strings.ToLower(strings.TrimSpace(interest))
		if interest == "" {
			continue
		}
		for _, category := range pkg.BestFor {
			if strings.Contains(strings.ToLower(category), interest) {
				return true
			}
		}
	}
	return false
}
