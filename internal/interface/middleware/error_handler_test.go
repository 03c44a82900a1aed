package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

func handleError(err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	CustomHTTPErrorHandler(err, c)
	return rec
}

func TestCustomHTTPErrorHandler_AppError(t *testing.T) {
	rec := handleError(apperror.NewValidationError("validation failed", []apperror.FieldError{
		{Field: "gender", Message: "must be one of: man, woman"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"error": {
			"code": "VALIDATION_ERROR",
			"message": "validation failed",
			"details": [{"field": "gender", "message": "must be one of: man, woman"}]
		},
		"meta": null
	}`, rec.Body.String())
}

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec := handleError(echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Not Found"},"meta":null}`, rec.Body.String())
}

func TestCustomHTTPErrorHandler_UnknownError(t *testing.T) {
	rec := handleError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"},"meta":null}`, rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, statusOf(apperror.NewForbiddenError("no")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusOf(echo.ErrStatusRequestEntityTooLarge))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("x")))
}
