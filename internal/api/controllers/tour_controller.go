package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
)

type TourController struct {
	tourService services.TourServiceInterface
}

func NewTourController(tourService services.TourServiceInterface) *TourController {
	return &TourController{tourService: tourService}
}

// GET /api/tours -> the full static catalog.
func (t *TourController) ListToursHandler(c *gin.Context) {
	c.JSON(http.StatusOK, t.tourService.ListTours())
}

// GET /api/tours/:id
func (t *TourController) GetTourHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return
	}

	tour, err := t.tourService.GetTourByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
		return
	}

	c.JSON(http.StatusOK, tour)
}

// POST /api/tours/recommendations {"preferences": {...}} -> {"message", "tours"}
func (t *TourController) RecommendationsHandler(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences payload"})
		return
	}

	message, tours := t.tourService.Recommend(req.Preferences)
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"tours":   tours,
	})
}
