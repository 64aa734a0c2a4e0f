package service

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookden/internal/domains/user/model"
	"bookden/internal/domains/user/repository"
	"bookden/internal/infrastructure/database"
	"bookden/pkg/jwt"
)

func newService(t *testing.T) ServiceInterface {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(database.Schema)
	require.NoError(t, err)

	return NewUserService(repository.NewSQLiteRepository(db), jwt.NewManager("test-secret", 24))
}

func registerRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Username:        "reader",
		Email:           "reader@gmail.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "reader", user.Nickname, "nickname defaults to the username")
	assert.Equal(t, []string{"user"}, user.Roles)

	resp, err := svc.Login(ctx, model.LoginRequest{Username: "reader", Password: "Abc123!@"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	second := registerRequest()
	second.Email = "other@gmail.com"
	_, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	second := registerRequest()
	second.Username = "other"
	_, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	svc := newService(t)

	req := registerRequest()
	req.Password = "abc12345"
	req.ConfirmPassword = "abc12345"
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{Username: "reader", Password: "Wrong123!@"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_UnknownUserHidesExistence(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "nobody", Password: "Abc123!@"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestUpdateProfile_MergesPointerFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	nickname := "The Reader"
	updated, err := svc.UpdateProfile(ctx, user.ID, model.UpdateProfileRequest{Nickname: &nickname})
	require.NoError(t, err)

	assert.Equal(t, "The Reader", updated.Nickname)
	assert.Equal(t, user.Avatar, updated.Avatar, "omitted fields stay untouched")
}
