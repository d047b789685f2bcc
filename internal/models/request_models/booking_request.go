package request_models

type BookingRequest struct {
	TourID     int   `json:"tour_id" binding:"required"`
	GuestCount int   `json:"guest_count" binding:"required,min=1"`
	TravelDate int64 `json:"travel_date" binding:"required"`
}
