package query

import (
	"context"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/internal/domain/repository"
	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

// MsgUserNotFoundOrInactive は対象ユーザーが利用できない場合のメッセージです
const MsgUserNotFoundOrInactive = "User not found or not active."

// GetProfileInput はプロファイル取得の入力を定義します
type GetProfileInput struct {
	ActorID      int64
	TargetUserID int64
}

// GetProfileOutput はプロファイル取得の出力を定義します
type GetProfileOutput struct {
	Profile *entity.UserProfile
}

// GetProfileQuery はプロファイル取得クエリです
type GetProfileQuery struct {
	profileRepo  repository.UserProfileRepository
	userRepo     repository.UserRepository
	authzService service.AuthorizationService
}

// NewGetProfileQuery は新しいGetProfileQueryを作成します
func NewGetProfileQuery(
	profileRepo repository.UserProfileRepository,
	userRepo repository.UserRepository,
	authzService service.AuthorizationService,
) *GetProfileQuery {
	return &GetProfileQuery{
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		authzService: authzService,
	}
}

// Execute はプロファイル取得を実行します
func (q *GetProfileQuery) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	target, err := q.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorizedError(MsgUserNotFoundOrInactive)
		}
		return nil, apperror.NewInternalError(err)
	}
	if !target.IsActive {
		return nil, apperror.NewUnauthorizedError(MsgUserNotFoundOrInactive)
	}

	actor := target
	if input.ActorID != target.ID {
		actor, err = q.userRepo.FindByID(ctx, input.ActorID)
		if err != nil && !apperror.IsNotFound(err) {
			return nil, apperror.NewInternalError(err)
		}
	}

	if err := q.authzService.AuthorizeProfileAccess(actor, target.ID); err != nil {
		return nil, err
	}

	profile, err := q.profileRepo.FindByUserID(ctx, target.ID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("profile")
		}
		return nil, apperror.NewInternalError(err)
	}

	return &GetProfileOutput{Profile: profile}, nil
}
