package response_models

type BookingResponse struct {
	ID         string `json:"id"`
	TourID     int    `json:"tour_id"`
	TourName   string `json:"tour_name"`
	GuestCount int    `json:"guest_count"`
	TravelDate int64  `json:"travel_date"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}
