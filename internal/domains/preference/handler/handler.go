package handler

import (
	"errors"

	"bookden/internal/domains/preference/model"
	"bookden/internal/domains/preference/service"
	userModel "bookden/internal/domains/user/model"
	"bookden/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceService service.ServiceInterface
}

func NewPreferenceHandler(preferenceService service.ServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// Save handles POST /preferences
func (h *PreferenceHandler) Save(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var prefs model.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.preferenceService.Save(c.Request.Context(), id, prefs); err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "preferences saved")
}

// Get handles GET /preferences
func (h *PreferenceHandler) Get(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	prefs, err := h.preferenceService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load preferences")
		return
	}

	response.Success(c, prefs)
}

// Status handles GET /preferences/status
func (h *PreferenceHandler) Status(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	status, err := h.preferenceService.Status(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load preference status")
		return
	}

	response.Success(c, status)
}
