package request_models

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingIntRe = regexp.MustCompile(`\d+`)

// FlexInt decodes a JSON number or a string such as "1000", "$1,200" or
// "8 days" to its leading integer. Anything unparseable decodes to zero,
// which the tour filter treats as "no constraint" rather than an error.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	s = strings.ReplaceAll(s, ",", "")

	match := leadingIntRe.FindString(s)
	if match == "" {
		*f = 0
		return nil
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexInt(n)
	return nil
}

// PreferenceQuery carries the user's stated tour preferences. Every field is
// optional; an absent field skips its predicate.
type PreferenceQuery struct {
	Budget      FlexInt  `json:"budget"`
	Duration    FlexInt  `json:"duration"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travelStyle"`
}

type RecommendationRequest struct {
	Preferences PreferenceQuery `json:"preferences"`
}
