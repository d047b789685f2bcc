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

type PostServiceInterface interface {
	GetAllPosts(ctx context.Context, page int, pageSize int) ([]response_models.PostResponse, error)
	GetPostById(ctx context.Context, id string) (*response_models.PostResponse, error)
	CreatePost(ctx context.Context, authorID string, request request_models.PostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, id string, requesterID string, requesterRole string) error
}

type PostService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostServiceInterface {
	return &PostService{postRepo: postRepo}
}

func (p *PostService) GetAllPosts(ctx context.Context, page int, pageSize int) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toPostResponse(post))
	}
	return responses, nil
}

func (p *PostService) GetPostById(ctx context.Context, id string) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	resp := toPostResponse(post)
	return &resp, nil
}

func (p *PostService) CreatePost(ctx context.Context, authorID string, request request_models.PostRequest) (*response_models.PostResponse, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	post := &db_models.Post{
		Title:    request.Title,
		Content:  request.Content,
		AuthorID: author,
	}

	if err := p.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(post)
	return &resp, nil
}

// DeletePost allows the author or an admin to remove a post.
func (p *PostService) DeletePost(ctx context.Context, id string, requesterID string, requesterRole string) error {
	post, err := p.postRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if requesterRole != "admin" && post.AuthorID.String() != requesterID {
		return utils.ErrForbidden
	}

	if err := p.postRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toPostResponse(post *db_models.Post) response_models.PostResponse {
	resp := response_models.PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID.String(),
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		resp.AuthorName = post.Author.Name
	}
	return resp
}
