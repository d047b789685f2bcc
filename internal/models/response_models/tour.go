package response_models

// TourPackage is a static catalog entry. The catalog is compiled into the
// binary and never mutated at runtime.
type TourPackage struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Itinerary   []string `json:"itinerary"`
	Includes    []string `json:"includes"`
	BestFor     []string `json:"bestFor"`
}
