package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

// ErrorResponse はエラーレスポンス構造を定義します
type ErrorResponse struct {
	Error ErrorBody   `json:"error"`
	Meta  interface{} `json:"meta"`
}

// ErrorBody はエラー本体を定義します
type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラーです
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		// 内部エラーの場合はログ出力
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(ctx, "internal error", "error", appErr.Error())
		}

		_ = c.JSON(appErr.HTTPStatus, ErrorResponse{
			Error: ErrorBody{
				Code:    string(appErr.Code),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	// Echo HTTPErrorの場合(ルート不一致、ボディサイズ超過など)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, ErrorResponse{
			Error: ErrorBody{
				Code:    httpErrorCode(he.Code),
				Message: fmt.Sprintf("%v", he.Message),
			},
		})
		return
	}

	// 未知のエラー
	logger.Error(ctx, "unknown error", "error", err.Error())

	_ = c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: ErrorBody{
			Code:    string(apperror.CodeInternalError),
			Message: "internal server error",
		},
	})
}

// httpErrorCode はEchoのステータスコードをエラーコードに対応付けます
func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(apperror.CodeNotFound)
	case http.StatusUnauthorized:
		return string(apperror.CodeUnauthorized)
	case http.StatusForbidden:
		return string(apperror.CodeForbidden)
	case http.StatusTooManyRequests:
		return string(apperror.CodeRateLimitExceeded)
	case http.StatusServiceUnavailable:
		return string(apperror.CodeServiceUnavailable)
	}
	if status >= http.StatusInternalServerError {
		return string(apperror.CodeInternalError)
	}
	return string(apperror.CodeInvalidRequest)
}

// statusOf はハンドラーが返したエラーのHTTPステータスを返します
func statusOf(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
