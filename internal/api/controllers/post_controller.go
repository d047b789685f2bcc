package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{postService: postService}
}

func (p *PostController) ListPostsHandler(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	posts, err := p.postService.GetAllPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

func (p *PostController) GetPostHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	post, err := p.postService.GetPostById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

func (p *PostController) CreatePostHandler(c *gin.Context) {
	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	authorID := c.GetString("user_id")
	post, err := p.postService.CreatePost(c.Request.Context(), authorID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post created successfully")
}

func (p *PostController) DeletePostHandler(c *gin.Context) {
	id := c.Param("id")
	err := p.postService.DeletePost(c.Request.Context(), id, c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
