package services

import (
	"context"

	"github.com/google/uuid"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, accountID string, request request_models.BookingRequest) (*response_models.BookingResponse, error)
	GetBookingsByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]response_models.BookingResponse, error)
	GetAllBookings(ctx context.Context, page int, pageSize int) ([]response_models.BookingResponse, error)
	CancelBooking(ctx context.Context, id string, requesterID string, requesterRole string) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	tourService TourServiceInterface
}

func NewBookingService(bookingRepo repositories.BookingRepository, tourService TourServiceInterface) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		tourService: tourService,
	}
}

func (b *BookingService) CreateBooking(ctx context.Context, accountID string, request request_models.BookingRequest) (*response_models.BookingResponse, error) {
	account, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	// Bookings reference the static catalog; an unknown tour id is a client
	// error, not a database miss.
	tour, err := b.tourService.GetTourByID(request.TourID)
	if err != nil {
		return nil, err
	}

	booking := &db_models.Booking{
		AccountID:  account,
		TourID:     tour.ID,
		TourName:   tour.Name,
		GuestCount: request.GuestCount,
		TravelDate: request.TravelDate,
		Status:     "confirmed",
	}

	if err := b.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (b *BookingService) GetBookingsByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookingRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(bookings), nil
}

func (b *BookingService) GetAllBookings(ctx context.Context, page int, pageSize int) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookingRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(bookings), nil
}

func (b *BookingService) CancelBooking(ctx context.Context, id string, requesterID string, requesterRole string) error {
	booking, err := b.bookingRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}

	if requesterRole != "admin" && booking.AccountID.String() != requesterID {
		return utils.ErrForbidden
	}

	if err := b.bookingRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toBookingResponse(booking *db_models.Booking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:         booking.ID.String(),
		TourID:     booking.TourID,
		TourName:   booking.TourName,
		GuestCount: booking.GuestCount,
		TravelDate: booking.TravelDate,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}

func toBookingResponses(bookings []*db_models.Booking) []response_models.BookingResponse {
	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		responses = append(responses, toBookingResponse(booking))
	}
	return responses
}
