package response

import (
	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
)

// ProfileResponse はプロファイル情報レスポンス
// 未設定の項目はnullとして出力します
type ProfileResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
	Info        *string `json:"info"`
	Avatar      *string `json:"avatar"`
}

// ToProfileResponse はエンティティをレスポンスに変換します
func ToProfileResponse(profile *entity.UserProfile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	resp := &ProfileResponse{
		ID:     profile.ID,
		UserID: profile.UserID,
	}
	if !profile.FirstName.IsEmpty() {
		resp.FirstName = stringPtr(profile.FirstName.Value())
	}
	if !profile.LastName.IsEmpty() {
		resp.LastName = stringPtr(profile.LastName.Value())
	}
	if profile.Gender != "" {
		resp.Gender = stringPtr(profile.Gender.String())
	}
	if !profile.DateOfBirth.IsZero() {
		resp.DateOfBirth = stringPtr(profile.DateOfBirth.String())
	}
	if !profile.Info.IsEmpty() {
		resp.Info = stringPtr(profile.Info.Value())
	}
	if profile.HasAvatar() {
		resp.Avatar = stringPtr(profile.AvatarURL)
	}
	return resp
}

func stringPtr(s string) *string {
	return &s
}
