package handler

import (
	"strconv"

	"bookden/internal/domains/chapter/service"
	"bookden/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	chapterService service.ServiceInterface
}

func NewChapterHandler(chapterService service.ServiceInterface) *ChapterHandler {
	return &ChapterHandler{chapterService: chapterService}
}

// ListByBook handles GET /chapters/books/:bookId
func (h *ChapterHandler) ListByBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	chapters, err := h.chapterService.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		response.InternalServerError(c, "failed to load chapters")
		return
	}

	response.Success(c, chapters)
}

// Sync handles POST /chapters/sync/:bookId
func (h *ChapterHandler) Sync(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	result, err := h.chapterService.Sync(c.Request.Context(), bookID)
	if err != nil {
		response.InternalServerError(c, "chapter sync failed")
		return
	}

	response.Success(c, result)
}
