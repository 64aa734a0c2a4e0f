package handler

import (
	"errors"
	"strconv"

	"bookden/internal/domains/rating/model"
	"bookden/internal/domains/rating/service"
	"bookden/internal/shared/middleware"
	"bookden/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.ServiceInterface
}

func NewRatingHandler(ratingService service.ServiceInterface) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Types handles GET /ratings/types
func (h *RatingHandler) Types(c *gin.Context) {
	types, err := h.ratingService.Types(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load rating types")
		return
	}

	response.Success(c, types)
}

// CreateRating handles POST /ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req model.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ip := middleware.ClientIPFromContext(c.Request.Context())
	if ip == "" {
		ip = c.ClientIP()
	}

	var userID *int64
	if id, exists := c.Get("user_id"); exists {
		if v, ok := id.(int64); ok {
			userID = &v
		}
	}

	rating, err := h.ratingService.CreateRating(c.Request.Context(), req, ip, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyRated):
			response.Conflict(c, "you have already rated this book")
		case errors.Is(err, model.ErrRatingTypeNotFound):
			response.BadRequest(c, "unknown rating type")
		default:
			response.InternalServerError(c, "failed to create rating")
		}
		return
	}

	response.Success(c, rating)
}

// BookStats handles GET /ratings/books/:bookId/stats
func (h *RatingHandler) BookStats(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	stats, err := h.ratingService.BookStats(c.Request.Context(), bookID)
	if err != nil {
		response.InternalServerError(c, "failed to load rating stats")
		return
	}

	response.Success(c, stats)
}
