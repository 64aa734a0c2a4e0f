// Package validate holds the client-side form rules. They mirror the
// server's registration rules so a form can be rejected before any
// request is made.
package validate

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Registration accepts a closed set of e-mail providers.
var emailAllowList = regexp.MustCompile(
	`^[a-zA-Z0-9._%+-]+@(gmail\.com|qq\.com|163\.com|126\.com|outlook\.com|hotmail\.com|yahoo\.com|foxmail\.com|live\.com|msn\.com|icloud\.com|me\.com|sina\.com|sohu\.com|yeah\.net)$`,
)

var (
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=]`)
)

// ErrPasswordMismatch reports a confirmation that differs from the
// password, even a valid one.
var ErrPasswordMismatch = validation.NewError("validation_password_mismatch", "passwords do not match")

// Username requires a non-empty name of at most 50 characters.
func Username(username string) error {
	return validation.Validate(username,
		validation.Required.Error("username is required"),
		validation.Length(1, 50),
	)
}

// Email requires a non-empty address from the provider allow-list.
func Email(email string) error {
	return validation.Validate(email,
		validation.Required.Error("email is required"),
		validation.Match(emailAllowList).Error("email provider is not supported"),
	)
}

// Password requires 8-20 characters spanning a lowercase letter, an
// uppercase letter, a digit and a special character, and an identical
// confirmation.
func Password(password, confirm string) error {
	err := validation.Validate(password,
		validation.Required.Error("password is required"),
		validation.Length(8, 20).Error("password must be 8-20 characters"),
		validation.Match(lowerRegex).Error("password must contain a lowercase letter"),
		validation.Match(upperRegex).Error("password must contain an uppercase letter"),
		validation.Match(digitRegex).Error("password must contain a digit"),
		validation.Match(specialRegex).Error("password must contain a special character"),
	)
	if err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Nickname allows up to 50 characters; empty is fine.
func Nickname(nickname string) error {
	return validation.Validate(nickname,
		validation.Length(0, 50).Error("nickname must not exceed 50 characters"),
	)
}

// LoginForm is what the login screen submits.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks fields in order and stops at the first failure.
func (f LoginForm) Validate() error {
	if err := Username(f.Username); err != nil {
		return err
	}
	return validation.Validate(f.Password, validation.Required.Error("password is required"))
}

// RegisterForm is what the registration screen submits.
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Nickname        string
}

// Validate checks fields in order and stops at the first failure.
func (f RegisterForm) Validate() error {
	if err := Username(f.Username); err != nil {
		return err
	}
	if err := Email(f.Email); err != nil {
		return err
	}
	if err := Password(f.Password, f.ConfirmPassword); err != nil {
		return err
	}
	return Nickname(f.Nickname)
}
