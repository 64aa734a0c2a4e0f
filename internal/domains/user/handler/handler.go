package handler

import (
	"errors"

	"bookden/internal/domains/user/model"
	"bookden/internal/domains/user/service"
	"bookden/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// currentUserID extracts the authenticated user's ID from the gin context.
func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken), errors.Is(err, model.ErrEmailTaken):
			response.Conflict(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, user)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Logout handles POST /auth/logout. Tokens are stateless; the endpoint
// exists so clients have a defined point to discard their session.
func (h *UserHandler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, "logged out")
}

// CurrentUser handles GET /auth/current-user
func (h *UserHandler) CurrentUser(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	user, err := h.userService.CurrentUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.Unauthorized(c, "account no longer exists")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.Success(c, user)
}

// UpdateProfile handles PUT /auth/update
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, user)
}
