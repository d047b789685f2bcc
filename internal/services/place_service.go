package services

import (
	"context"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type PlaceServiceInterface interface {
	GetAllPlaces(ctx context.Context, page int, pageSize int) ([]response_models.PlaceResponse, error)
	GetPlaceById(ctx context.Context, id string) (*response_models.PlaceResponse, error)
	CreatePlace(ctx context.Context, request request_models.PlaceRequest) (*response_models.PlaceResponse, error)
	UpdatePlace(ctx context.Context, id string, request request_models.PlaceRequest) (*response_models.PlaceResponse, error)
	DeletePlace(ctx context.Context, id string) error
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{placeRepo: placeRepo}
}

func (p *PlaceService) GetAllPlaces(ctx context.Context, page int, pageSize int) ([]response_models.PlaceResponse, error) {
	places, err := p.placeRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlaceResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, toPlaceResponse(place))
	}
	return responses, nil
}

func (p *PlaceService) GetPlaceById(ctx context.Context, id string) (*response_models.PlaceResponse, error) {
	place, err := p.placeRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	resp := toPlaceResponse(place)
	return &resp, nil
}

func (p *PlaceService) CreatePlace(ctx context.Context, request request_models.PlaceRequest) (*response_models.PlaceResponse, error) {
	place := &db_models.Place{
		Name:        request.Name,
		Location:    request.Location,
		Description: request.Description,
		ImageURL:    request.ImageURL,
	}

	if err := p.placeRepo.Insert(ctx, place); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPlaceResponse(place)
	return &resp, nil
}

func (p *PlaceService) UpdatePlace(ctx context.Context, id string, request request_models.PlaceRequest) (*response_models.PlaceResponse, error) {
	place, err := p.placeRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	place.Name = request.Name
	place.Location = request.Location
	place.Description = request.Description
	place.ImageURL = request.ImageURL

	if err := p.placeRepo.Update(ctx, place); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPlaceResponse(place)
	return &resp, nil
}

func (p *PlaceService) DeletePlace(ctx context.Context, id string) error {
	place, err := p.placeRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}

	if err := p.placeRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toPlaceResponse(place *db_models.Place) response_models.PlaceResponse {
	return response_models.PlaceResponse{
		ID:          place.ID.String(),
		Name:        place.Name,
		Location:    place.Location,
		Description: place.Description,
		ImageURL:    place.ImageURL,
	}
}
