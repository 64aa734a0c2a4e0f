package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Registration accepts a closed set of e-mail providers.
var EmailAllowListRegex = regexp.MustCompile(
	`^[a-zA-Z0-9._%+-]+@(gmail\.com|qq\.com|163\.com|126\.com|outlook\.com|hotmail\.com|yahoo\.com|foxmail\.com|live\.com|msn\.com|icloud\.com|me\.com|sina\.com|sohu\.com|yeah\.net)$`,
)

var (
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=]`)
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Nickname        string `json:"nickname"`
	Introduction    string `json:"introduction"`
}

func (r RegisterRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Match(EmailAllowListRegex).Error("email provider is not supported"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 20).Error("password must be 8-20 characters"),
			validation.Match(lowerRegex).Error("password must contain a lowercase letter"),
			validation.Match(upperRegex).Error("password must contain an uppercase letter"),
			validation.Match(digitRegex).Error("password must contain a digit"),
			validation.Match(specialRegex).Error("password must contain a special character"),
		),
		validation.Field(&r.Nickname, validation.Length(0, 50).Error("nickname must not exceed 50 characters")),
		validation.Field(&r.Introduction, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return validation.NewError("validation_password_mismatch", "passwords do not match")
	}
	return nil
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse carries the bearer token plus the authenticated profile.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest is the body of PUT /auth/update.
type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname"`
	Avatar       *string `json:"avatar"`
	Introduction *string `json:"introduction"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.Length(0, 50).Error("nickname must not exceed 50 characters")),
		validation.Field(&r.Avatar, validation.Length(0, 255)),
		validation.Field(&r.Introduction, validation.Length(0, 500)),
	)
}
