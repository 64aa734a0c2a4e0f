package handler

import (
	"errors"
	"strconv"

	"bookden/internal/domains/book/model"
	"bookden/internal/domains/book/service"
	"bookden/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query model.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	result, err := h.bookService.ListBooks(c.Request.Context(), query)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetBookDetail handles GET /books/:id
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	detail, err := h.bookService.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "book not found")
			return
		}
		response.InternalServerError(c, "failed to load book")
		return
	}

	response.Success(c, detail)
}

// SearchBooks handles GET /books/search
func (h *BookHandler) SearchBooks(c *gin.Context) {
	keyword := c.Query("keyword")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	books, err := h.bookService.SearchBooks(c.Request.Context(), keyword, limit)
	if err != nil {
		if errors.Is(err, model.ErrInvalidKeyword) {
			response.BadRequest(c, "keyword must not be blank")
			return
		}
		response.InternalServerError(c, "search failed")
		return
	}

	response.Success(c, books)
}

// LatestBooks handles GET /books/latest
func (h *BookHandler) LatestBooks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	books, err := h.bookService.LatestBooks(c.Request.Context(), limit)
	if err != nil {
		response.InternalServerError(c, "failed to load latest books")
		return
	}

	response.Success(c, books)
}

// HotBooks handles GET /books/hot
func (h *BookHandler) HotBooks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	books, err := h.bookService.HotBooks(c.Request.Context(), limit)
	if err != nil {
		response.InternalServerError(c, "failed to load hot books")
		return
	}

	response.Success(c, books)
}

// Categories handles GET /books/categories
func (h *BookHandler) Categories(c *gin.Context) {
	categories, err := h.bookService.Categories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load categories")
		return
	}

	response.Success(c, categories)
}
