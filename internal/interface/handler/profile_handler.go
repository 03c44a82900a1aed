package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/internal/interface/dto/request"
	"github.com/Hiro-mackay/gc-profile/internal/interface/dto/response"
	"github.com/Hiro-mackay/gc-profile/internal/interface/middleware"
	"github.com/Hiro-mackay/gc-profile/internal/interface/presenter"
	profilecmd "github.com/Hiro-mackay/gc-profile/internal/usecase/profile/command"
	profileqry "github.com/Hiro-mackay/gc-profile/internal/usecase/profile/query"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

// multipartMemory はmultipartフォームをメモリ上に保持する上限です。超えた分は一時ファイルになります。
const multipartMemory = 2 << 20

// ProfileHandler はプロファイル関連のHTTPハンドラーです
type ProfileHandler struct {
	// Queries
	getProfileQuery *profileqry.GetProfileQuery

	// Commands
	createProfileCommand *profilecmd.CreateProfileCommand
}

// NewProfileHandler は新しいProfileHandlerを作成します
func NewProfileHandler(
	getProfileQuery *profileqry.GetProfileQuery,
	createProfileCommand *profilecmd.CreateProfileCommand,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileQuery:      getProfileQuery,
		createProfileCommand: createProfileCommand,
	}
}

// CreateProfile は指定ユーザーのプロファイルを作成します
// @Summary プロファイル作成
// @Description 本人または管理者が、プロファイルを持たないユーザーのプロファイルを作成します
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "ユーザーID"
// @Param first_name formData string false "名"
// @Param last_name formData string false "姓"
// @Param gender formData string false "man | woman"
// @Param date_of_birth formData string false "YYYY-MM-DD"
// @Param info formData string false "自己紹介"
// @Param avatar formData file false "JPEG/PNG/WebP, 1MB以下"
// @Success 201 {object} response.ProfileResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /users/{user_id}/profile/ [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return apperror.NewUnauthorizedError(middleware.MsgAuthorizationMissing)
	}

	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	req, err := bindCreateProfileRequest(c)
	if err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	output, err := h.createProfileCommand.Execute(c.Request().Context(), profilecmd.CreateProfileInput{
		ActorID:      actorID,
		TargetUserID: targetUserID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		DateOfBirth:  req.DateOfBirth,
		Info:         req.Info,
		Avatar:       req.Avatar,
	})
	if err != nil {
		return err
	}

	return presenter.Created(c, response.ToProfileResponse(output.Profile))
}

// GetProfile は指定ユーザーのプロファイルを取得します
// @Summary プロファイル取得
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "ユーザーID"
// @Success 200 {object} response.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{user_id}/profile/ [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return apperror.NewUnauthorizedError(middleware.MsgAuthorizationMissing)
	}

	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	output, err := h.getProfileQuery.Execute(c.Request().Context(), profileqry.GetProfileInput{
		ActorID:      actorID,
		TargetUserID: targetUserID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToProfileResponse(output.Profile))
}

// parseUserID はパスのuser_idを取り出します。数値でないIDはルート不一致と同じく404とします。
func parseUserID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError("user")
	}
	return id, nil
}

// bindCreateProfileRequest はフォームからリクエストを組み立てます
// フォームに存在しない項目はnilのまま残し、空文字列とは区別します
func bindCreateProfileRequest(c echo.Context) (*request.CreateProfileRequest, error) {
	r := c.Request()

	if strings.HasPrefix(r.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			// ボディサイズ超過(413)はそのまま返す
			var he *echo.HTTPError
			if errors.As(err, &he) {
				return nil, he
			}
			return nil, apperror.NewInvalidRequestError("invalid multipart form")
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, apperror.NewInvalidRequestError("invalid form body")
	}

	req := &request.CreateProfileRequest{
		FirstName:   formValue(r, "first_name"),
		LastName:    formValue(r, "last_name"),
		Gender:      formValue(r, "gender"),
		DateOfBirth: formValue(r, "date_of_birth"),
		Info:        formValue(r, "info"),
	}

	avatar, err := readAvatar(r)
	if err != nil {
		return nil, err
	}
	req.Avatar = avatar

	return req, nil
}

func formValue(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// readAvatar はアップロードされたアバターを読み込みます
// 上限を1バイト超えた時点で読み込みを止め、サイズ超過の判定はバリデーターに任せます
func readAvatar(r *http.Request) ([]byte, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File["avatar"]
	if len(headers) == 0 {
		return nil, nil
	}

	f, err := headers[0].Open()
	if err != nil {
		return nil, apperror.NewInvalidRequestError("failed to read avatar")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, valueobject.AvatarMaxBytes+1))
	if err != nil {
		return nil, apperror.NewInvalidRequestError("failed to read avatar")
	}
	return data, nil
}
