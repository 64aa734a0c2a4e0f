package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("reader"))
	assert.Error(t, Username(""))
}

func TestEmail_AllowList(t *testing.T) {
	assert.NoError(t, Email("a@gmail.com"))
	assert.NoError(t, Email("someone@icloud.com"))
	assert.Error(t, Email("a@random.xyz"))
	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
}

func TestPassword(t *testing.T) {
	// Missing uppercase and special character.
	assert.Error(t, Password("abc12345", "abc12345"))

	assert.NoError(t, Password("Abc123!@", "Abc123!@"))

	// Valid password, mismatched confirmation.
	err := Password("Abc123!@", "Abc123!#")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	assert.Error(t, Password("Ab1!", "Ab1!"), "too short")
	assert.Error(t, Password("Abcdefgh1!Abcdefgh1!x", "Abcdefgh1!Abcdefgh1!x"), "too long")
	assert.Error(t, Password("ABC123!@", "ABC123!@"), "no lowercase")
	assert.Error(t, Password("Abcdefg!", "Abcdefg!"), "no digit")
}

func TestNickname(t *testing.T) {
	assert.NoError(t, Nickname(""))
	assert.NoError(t, Nickname("The Reader"))

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, Nickname(string(long)))
}

func TestLoginForm_ShortCircuits(t *testing.T) {
	err := LoginForm{Username: "", Password: ""}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username")

	err = LoginForm{Username: "reader", Password: ""}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password")

	assert.NoError(t, LoginForm{Username: "reader", Password: "whatever"}.Validate())
}

func TestRegisterForm(t *testing.T) {
	form := RegisterForm{
		Username:        "reader",
		Email:           "reader@gmail.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		Nickname:        "The Reader",
	}
	assert.NoError(t, form.Validate())

	bad := form
	bad.Email = "reader@random.xyz"
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "provider")

	bad = form
	bad.ConfirmPassword = "different"
	assert.ErrorIs(t, bad.Validate(), ErrPasswordMismatch)
}
