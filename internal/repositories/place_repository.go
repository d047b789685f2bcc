package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type PlaceRepository interface {
	List(ctx context.Context, page int, pageSize int) ([]*db_models.Place, error)
	FindById(ctx context.Context, id string) (*db_models.Place, error)
	Insert(ctx context.Context, place *db_models.Place) error
	Update(ctx context.Context, place *db_models.Place) error
	Delete(ctx context.Context, id string) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (p *placeRepository) List(ctx context.Context, page int, pageSize int) ([]*db_models.Place, error) {
	var places []*db_models.Place
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&places).Error
	return places, err
}

func (p *placeRepository) FindById(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := p.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (p *placeRepository) Insert(ctx context.Context, place *db_models.Place) error {
	return p.db.WithContext(ctx).Create(place).Error
}

func (p *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return p.db.WithContext(ctx).Save(place).Error
}

func (p *placeRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Place{}, "id = ?", id).Error
}
