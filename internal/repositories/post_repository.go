package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamio/internal/models/db_models"
)

type PostRepository interface {
	List(ctx context.Context, page int, pageSize int) ([]*db_models.Post, error)
	FindById(ctx context.Context, id string) (*db_models.Post, error)
	Insert(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (p *postRepository) List(ctx context.Context, page int, pageSize int) ([]*db_models.Post, error) {
	var posts []*db_models.Post
	err := p.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	return posts, err
}

func (p *postRepository) FindById(ctx context.Context, id string) (*db_models.Post, error) {
	var post db_models.Post
	err := p.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (p *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return p.db.WithContext(ctx).Create(post).Error
}

func (p *postRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id).Error
}
