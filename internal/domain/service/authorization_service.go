package service

import (
	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

// ProfileEditForbiddenMessage は他人のプロファイル操作を拒否する際のメッセージです
const ProfileEditForbiddenMessage = "You don't have permission to edit this profile."

// AuthorizationService はプロファイル操作の認可に関するドメインサービス
type AuthorizationService interface {
	// AuthorizeProfileAccess は操作者が対象ユーザーのプロファイルを扱えるかを確認します
	AuthorizeProfileAccess(actor *entity.User, targetUserID int64) error
}

type authorizationServiceImpl struct{}

// NewAuthorizationService は新しいAuthorizationServiceを作成します
func NewAuthorizationService() AuthorizationService {
	return &authorizationServiceImpl{}
}

// AuthorizeProfileAccess は本人または管理者以外をForbiddenとして拒否します。
// 操作者が見つからない場合(nil)も拒否します。
func (s *authorizationServiceImpl) AuthorizeProfileAccess(actor *entity.User, targetUserID int64) error {
	if actor == nil || !actor.CanManageProfileOf(targetUserID) {
		return apperror.NewForbiddenError(ProfileEditForbiddenMessage)
	}
	return nil
}
