package request

// CreateProfileRequest はプロファイル作成リクエスト(multipart/form-data)
// nilのフィールドはフォームに含まれなかったことを表します
type CreateProfileRequest struct {
	FirstName   *string `form:"first_name" validate:"omitempty,personname"`
	LastName    *string `form:"last_name" validate:"omitempty,personname"`
	Gender      *string `form:"gender" validate:"omitempty,gender"`
	DateOfBirth *string `form:"date_of_birth" validate:"omitempty,birthdate"`
	Info        *string `form:"info" validate:"omitempty,notblank,max=1000"`
	Avatar      []byte  `form:"avatar" validate:"omitempty,avatar"`
}
