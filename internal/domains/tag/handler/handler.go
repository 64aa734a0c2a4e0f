package handler

import (
	"bookden/internal/domains/tag/service"
	"bookden/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService service.ServiceInterface
}

func NewTagHandler(tagService service.ServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// Cloud handles GET /tags/cloud
func (h *TagHandler) Cloud(c *gin.Context) {
	tags, err := h.tagService.Cloud(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load tag cloud")
		return
	}

	response.Success(c, tags)
}
