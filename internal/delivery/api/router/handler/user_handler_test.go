package handler

import (
	"net/http"
	"testing"

	"carvalue/internal/domain/entity"
	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/errors"
	mockUC "carvalue/internal/mocks/usecase"
	"carvalue/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC}), userUC
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, userUC := createTestUserHandler(t)
		id := uuid.New()
		userUC.EXPECT().GetUser(mock.Anything, id).Return(&entity.User{ID: id, Email: "a@example.com", Password: "x.y"}, nil)

		rec, env := serve(t, h.GetUser, testRequest{method: http.MethodGet, target: "/auth/" + id.String(), params: map[string]string{"id": id.String()}})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, UserResponse{ID: id.String(), Email: "a@example.com"}, decodeData[UserResponse](t, env))
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := createTestUserHandler(t)

		rec, env := serve(t, h.GetUser, testRequest{method: http.MethodGet, target: "/auth/42", params: map[string]string{"id": "42"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "id must be a UUID", env.Error.Details)
	})

	t.Run("missing", func(t *testing.T) {
		h, userUC := createTestUserHandler(t)
		id := uuid.New()
		userUC.EXPECT().GetUser(mock.Anything, id).Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user"))

		rec, env := serve(t, h.GetUser, testRequest{method: http.MethodGet, target: "/auth/" + id.String(), params: map[string]string{"id": id.String()}})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
	})
}

func TestUserHandler_FindUsers(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	userUC.EXPECT().FindUsers(mock.Anything, "a@example.com").Return([]*entity.User{{ID: uuid.New(), Email: "a@example.com"}}, nil)

	rec, env := serve(t, h.FindUsers, testRequest{method: http.MethodGet, target: "/auth?email=a@example.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]UserResponse](t, env), 1)
}

func TestUserHandler_FindUsers_Empty(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	userUC.EXPECT().FindUsers(mock.Anything, "none@example.com").Return(nil, nil)

	rec, env := serve(t, h.FindUsers, testRequest{method: http.MethodGet, target: "/auth?email=none@example.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestUserHandler_UpdateUser(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	id := uuid.New()
	actor := &entity.Identity{UserID: id}

	userUC.EXPECT().
		UpdateUser(mock.Anything, actor, id, mock.MatchedBy(func(input *usecase.UpdateUserInput) bool {
			return input.Password != nil && *input.Password == "new" && input.Email == nil
		})).
		Return(&entity.User{ID: id, Email: "a@example.com"}, nil)

	rec, _ := serve(t, h.UpdateUser, testRequest{
		method:   http.MethodPatch,
		target:   "/auth/" + id.String(),
		body:     `{"password":"new"}`,
		params:   map[string]string{"id": id.String()},
		identity: actor,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateUser_Forbidden(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	id := uuid.New()
	actor := &entity.Identity{UserID: uuid.New()}

	userUC.EXPECT().UpdateUser(mock.Anything, actor, id, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "caller may not manage this account"))

	rec, env := serve(t, h.UpdateUser, testRequest{
		method:   http.MethodPatch,
		target:   "/auth/" + id.String(),
		body:     `{"email":"b@example.com"}`,
		params:   map[string]string{"id": id.String()},
		identity: actor,
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestUserHandler_RemoveUser(t *testing.T) {
	h, userUC := createTestUserHandler(t)
	id := uuid.New()
	actor := &entity.Identity{UserID: id}

	userUC.EXPECT().RemoveUser(mock.Anything, actor, id).Return(nil)

	rec, _ := serve(t, h.RemoveUser, testRequest{
		method:   http.MethodDelete,
		target:   "/auth/" + id.String(),
		params:   map[string]string{"id": id.String()},
		identity: actor,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
