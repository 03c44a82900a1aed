package handler_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/internal/interface/handler"
	"github.com/Hiro-mackay/gc-profile/internal/interface/middleware"
	"github.com/Hiro-mackay/gc-profile/internal/interface/server"
	profilecmd "github.com/Hiro-mackay/gc-profile/internal/usecase/profile/command"
	profileqry "github.com/Hiro-mackay/gc-profile/internal/usecase/profile/query"
	"github.com/Hiro-mackay/gc-profile/pkg/jwt"
	"github.com/Hiro-mackay/gc-profile/tests/testutil/mocks"
)

const testSecret = "handler-test-secret-key-at-least-32-chars"

type profileHandlerTestEnv struct {
	server          *server.Server
	jwtService      *jwt.JWTService
	userRepo        *mocks.MockUserRepository
	profileRepo     *mocks.MockUserProfileRepository
	avatarStorage   *mocks.MockAvatarStorage
	avatarProcessor *mocks.MockAvatarProcessor
}

func newJWTService(expiry time.Duration) *jwt.JWTService {
	cfg := jwt.DefaultConfig()
	cfg.SecretKey = testSecret
	cfg.AccessTokenExpiry = expiry
	return jwt.NewJWTService(cfg)
}

func newProfileHandlerTestEnv(t *testing.T) *profileHandlerTestEnv {
	t.Helper()

	env := &profileHandlerTestEnv{
		server:          server.NewServer(server.DefaultConfig()),
		jwtService:      newJWTService(15 * time.Minute),
		userRepo:        mocks.NewMockUserRepository(t),
		profileRepo:     mocks.NewMockUserProfileRepository(t),
		avatarStorage:   mocks.NewMockAvatarStorage(t),
		avatarProcessor: mocks.NewMockAvatarProcessor(t),
	}

	authzService := service.NewAuthorizationService()
	h := handler.NewProfileHandler(
		profileqry.NewGetProfileQuery(env.profileRepo, env.userRepo, authzService),
		profilecmd.NewCreateProfileCommand(
			env.userRepo,
			env.profileRepo,
			mocks.NewMockTransactionManager(t),
			authzService,
			env.avatarStorage,
			env.avatarProcessor,
		),
	)

	auth := middleware.NewJWTAuthMiddleware(env.jwtService, nil)
	e := env.server.Echo()
	e.POST("/users/:user_id/profile/", h.CreateProfile, auth.Authenticate())
	e.GET("/users/:user_id/profile/", h.GetProfile, auth.Authenticate())

	return env
}

func (env *profileHandlerTestEnv) token(t *testing.T, userID int64) string {
	t.Helper()
	token, err := env.jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

func (env *profileHandlerTestEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.server.Echo().ServeHTTP(rec, req)
	return rec
}

func multipartRequest(t *testing.T, target string, fields map[string]string, avatar []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if avatar != nil {
		part, err := w.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = part.Write(avatar)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeBody(t, rec)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error body, got %s", rec.Body.String())
	return errBody
}

func activeUser(id int64, group valueobject.UserGroupName) *entity.User {
	return &entity.User{ID: id, IsActive: true, Group: &entity.UserGroup{Name: group}}
}

func TestCreateProfile_MissingAuthorization(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	rec := env.do(multipartRequest(t, "/users/7/profile/", map[string]string{"gender": "man"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errBody := errorOf(t, rec)
	assert.Equal(t, "UNAUTHORIZED", errBody["code"])
	assert.Equal(t, "Authorization header is missing.", errBody["message"])
}

func TestCreateProfile_ExpiredToken(t *testing.T) {
	env := newProfileHandlerTestEnv(t)
	expired, err := newJWTService(-time.Minute).GenerateAccessToken(7)
	require.NoError(t, err)

	req := multipartRequest(t, "/users/7/profile/", nil, nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errBody := errorOf(t, rec)
	assert.Equal(t, "TOKEN_EXPIRED", errBody["code"])
	assert.Equal(t, "Token has expired.", errBody["message"])
}

func TestCreateProfile_InvalidToken(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	req := multipartRequest(t, "/users/7/profile/", nil, nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token.", errorOf(t, rec)["message"])
}

func TestCreateProfile_Success(t *testing.T) {
	env := newProfileHandlerTestEnv(t)
	avatar := pngBytes(t)
	key := valueobject.NewAvatarKey(7)
	url := "http://localhost:9000/gc-profile/avatars/7_avatar.jpg"

	env.userRepo.On("FindByID", mock.Anything, int64(7)).Return(activeUser(7, valueobject.UserGroupUser), nil)
	env.profileRepo.On("ExistsByUserID", mock.Anything, int64(7)).Return(false, nil)
	env.avatarProcessor.On("Normalize", avatar).Return([]byte("jpeg"), nil)
	env.avatarStorage.On("Upload", mock.Anything, key, []byte("jpeg")).Return(nil)
	env.avatarStorage.On("URL", mock.Anything, key).Return(url, nil)
	env.profileRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

	req := multipartRequest(t, "/users/7/profile/", map[string]string{
		"first_name":    "Ann",
		"last_name":     "Lee",
		"gender":        "woman",
		"date_of_birth": "1990-05-01",
	}, avatar)
	req.Header.Set("Authorization", "Bearer "+env.token(t, 7))
	rec := env.do(req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, float64(7), body["user_id"])
	assert.Equal(t, "ann", body["first_name"])
	assert.Equal(t, "lee", body["last_name"])
	assert.Equal(t, "woman", body["gender"])
	assert.Equal(t, "1990-05-01", body["date_of_birth"])
	assert.Nil(t, body["info"])
	assert.Contains(t, body, "info")
	assert.Equal(t, url, body["avatar"])
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
}

func TestCreateProfile_ValidationError(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	req := multipartRequest(t, "/users/7/profile/", map[string]string{
		"gender": "other",
		"info":   "  ",
	}, []byte("plain text is not an image"))
	req.Header.Set("Authorization", "Bearer "+env.token(t, 7))
	rec := env.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errBody := errorOf(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])

	fields := map[string]bool{}
	for _, d := range errBody["details"].([]any) {
		fields[d.(map[string]any)["field"].(string)] = true
	}
	assert.Equal(t, map[string]bool{"gender": true, "info": true, "avatar": true}, fields)
}

func TestCreateProfile_Forbidden(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	env.userRepo.On("FindByID", mock.Anything, int64(7)).Return(activeUser(7, valueobject.UserGroupUser), nil)
	env.userRepo.On("FindByID", mock.Anything, int64(8)).Return(activeUser(8, valueobject.UserGroupUser), nil)

	req := multipartRequest(t, "/users/7/profile/", map[string]string{"gender": "man"}, nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, 8))
	rec := env.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You don't have permission to edit this profile.", errorOf(t, rec)["message"])
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	env.userRepo.On("FindByID", mock.Anything, int64(7)).Return(activeUser(7, valueobject.UserGroupUser), nil)
	env.profileRepo.On("ExistsByUserID", mock.Anything, int64(7)).Return(true, nil)

	req := multipartRequest(t, "/users/7/profile/", nil, pngBytes(t))
	req.Header.Set("Authorization", "Bearer "+env.token(t, 7))
	rec := env.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := errorOf(t, rec)
	assert.Equal(t, "ALREADY_EXISTS", errBody["code"])
	assert.Equal(t, "User already has a profile.", errBody["message"])
}

func TestCreateProfile_NonNumericUserID(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	req := multipartRequest(t, "/users/abc/profile/", nil, nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, 7))
	rec := env.do(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfile_Owner(t *testing.T) {
	env := newProfileHandlerTestEnv(t)

	env.userRepo.On("FindByID", mock.Anything, int64(7)).Return(activeUser(7, valueobject.UserGroupUser), nil)
	env.profileRepo.On("FindByUserID", mock.Anything, int64(7)).Return(&entity.UserProfile{
		ID:     7,
		UserID: 7,
		Gender: valueobject.GenderMan,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/7/profile/", nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, 7))
	rec := env.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "man", body["gender"])
	assert.Nil(t, body["first_name"])
	assert.Nil(t, body["avatar"])
}
