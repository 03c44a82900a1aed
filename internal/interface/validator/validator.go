package validator

import (
	"errors"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

// CustomValidator はEcho用のカスタムバリデーターです
type CustomValidator struct {
	validator *validator.Validate
	now       func() time.Time
}

// NewCustomValidator は新しいCustomValidatorを作成します
func NewCustomValidator() *CustomValidator {
	cv := &CustomValidator{
		validator: validator.New(),
		now:       time.Now,
	}

	// カスタムバリデーション登録
	cv.validator.RegisterValidation("personname", validatePersonName)
	cv.validator.RegisterValidation("gender", validateGender)
	cv.validator.RegisterValidation("birthdate", cv.validateBirthDate)
	cv.validator.RegisterValidation("notblank", validateNotBlank)
	cv.validator.RegisterValidation("avatar", validateAvatar)

	return cv
}

// Validate はリクエストを検証します
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return cv.formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors はバリデーションエラーをフォーマットします
func (cv *CustomValidator) formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewValidationError(err.Error(), nil)
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   toSnakeCase(e.Field()),
			Message: getValidationMessage(e),
		})
	}

	return apperror.NewValidationError("validation failed", details)
}

// validatePersonName は氏名(英字のみ 1〜100文字)のバリデーション
func validatePersonName(fl validator.FieldLevel) bool {
	_, err := valueobject.NewPersonName(fl.Field().String())
	return err == nil
}

func validateGender(fl validator.FieldLevel) bool {
	_, err := valueobject.NewGender(fl.Field().String())
	return err == nil
}

// validateNotBlank は半角スペースのみ、または空の文字列を拒否します
func validateNotBlank(fl validator.FieldLevel) bool {
	return !valueobject.IsBlankInfo(fl.Field().String())
}

// validateBirthDate は生年月日(YYYY-MM-DD、1900年以降、未来日不可、18歳以上)のバリデーション
func (cv *CustomValidator) validateBirthDate(fl validator.FieldLevel) bool {
	_, err := valueobject.ParseBirthDate(fl.Field().String(), cv.now())
	return err == nil
}

// validateAvatar は画像サイズと実際の内容から判定した形式を検証します
// 拡張子やContent-Typeヘッダーは信用しません
func validateAvatar(fl validator.FieldLevel) bool {
	data := fl.Field().Bytes()
	if err := valueobject.ValidateAvatarSize(len(data)); err != nil {
		return false
	}
	_, err := valueobject.NewImageFormat(mimetype.Detect(data).String())
	return err == nil
}

// getValidationMessage はバリデーションエラーメッセージを返します
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "oneof":
		return "must be one of: " + e.Param()
	case "personname":
		return "must contain only letters (1-100 characters)"
	case "gender":
		return "must be one of: man, woman"
	case "birthdate":
		return "must be a YYYY-MM-DD date from 1900 onwards, not in the future, for a user at least 18 years old"
	case "notblank":
		return "must not be blank"
	case "avatar":
		return "must be a non-empty JPEG, PNG or WebP image of at most 1 MB"
	default:
		return "validation failed"
	}
}

// toSnakeCase はPascalCase/camelCaseをsnake_caseに変換します
func toSnakeCase(str string) string {
	var result []rune
	for i, r := range str {
		if i > 0 && 'A' <= r && r <= 'Z' {
			result = append(result, '_')
		}
		result = append(result, r)
	}
	return strings.ToLower(string(result))
}
