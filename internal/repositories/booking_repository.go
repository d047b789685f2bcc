package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindById(ctx context.Context, id string) (*db_models.Booking, error)
	ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]*db_models.Booking, error)
	ListAll(ctx context.Context, page int, pageSize int) ([]*db_models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) FindById(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := b.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *bookingRepository) ListByAccount(ctx context.Context, accountID string, page int, pageSize int) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := b.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	return bookings, err
}

func (b *bookingRepository) ListAll(ctx context.Context, page int, pageSize int) ([]*db_models.Booking, error) {
	var bookings []*db_models.Booking
	err := b.db.WithContext(ctx).
		Preload("Account").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	return bookings, err
}

func (b *bookingRepository) Delete(ctx context.Context, id string) error {
	return b.db.WithContext(ctx).Delete(&db_models.Booking{}, "id = ?", id).Error
}
