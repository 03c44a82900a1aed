package command

import (
	"context"
	"errors"
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/internal/domain/repository"
	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

// クライアントに返す固定メッセージ
const (
	MsgUserNotFoundOrInactive = "User not found or not active."
	MsgProfileAlreadyExists   = "User already has a profile."
	MsgAvatarUploadFailed     = "Failed to upload avatar. Please try again later."
)

// CreateProfileInput はプロファイル作成の入力を定義します
// nilのフィールドは未指定を表します
type CreateProfileInput struct {
	ActorID      int64
	TargetUserID int64
	FirstName    *string
	LastName     *string
	Gender       *string
	DateOfBirth  *string
	Info         *string
	Avatar       []byte
}

// CreateProfileOutput はプロファイル作成の出力を定義します
type CreateProfileOutput struct {
	Profile *entity.UserProfile
}

// CreateProfileCommand はプロファイル作成コマンドです
type CreateProfileCommand struct {
	userRepo        repository.UserRepository
	profileRepo     repository.UserProfileRepository
	txManager       repository.TransactionManager
	authzService    service.AuthorizationService
	avatarStorage   service.AvatarStorage
	avatarProcessor service.AvatarProcessor
	now             func() time.Time
}

// NewCreateProfileCommand は新しいCreateProfileCommandを作成します
func NewCreateProfileCommand(
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	txManager repository.TransactionManager,
	authzService service.AuthorizationService,
	avatarStorage service.AvatarStorage,
	avatarProcessor service.AvatarProcessor,
) *CreateProfileCommand {
	return &CreateProfileCommand{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		txManager:       txManager,
		authzService:    authzService,
		avatarStorage:   avatarStorage,
		avatarProcessor: avatarProcessor,
		now:             time.Now,
	}
}

// Execute はプロファイル作成を実行します
//
// 対象ユーザーの確認 → 認可 → 重複確認 → アバター保存 → 登録 の順に処理し、
// いずれの失敗も再試行せずにAppErrorとして返します。
func (c *CreateProfileCommand) Execute(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	params, err := c.buildParams(input)
	if err != nil {
		return nil, err
	}

	target, err := c.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorizedError(MsgUserNotFoundOrInactive)
		}
		return nil, apperror.NewInternalError(err)
	}
	if !target.IsActive {
		return nil, apperror.NewUnauthorizedError(MsgUserNotFoundOrInactive)
	}

	actor, err := c.findActor(ctx, input.ActorID, target)
	if err != nil {
		return nil, err
	}
	if err := c.authzService.AuthorizeProfileAccess(actor, target.ID); err != nil {
		return nil, err
	}

	exists, err := c.profileRepo.ExistsByUserID(ctx, target.ID)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	if exists {
		return nil, apperror.NewAlreadyExistsError(MsgProfileAlreadyExists)
	}

	var uploaded *valueobject.AvatarKey
	if input.Avatar != nil {
		key, url, err := c.uploadAvatar(ctx, target.ID, input.Avatar)
		if err != nil {
			return nil, err
		}
		uploaded = &key
		params.AvatarURL = url
	}

	profile, err := entity.NewUserProfile(params)
	if err != nil {
		c.discardAvatar(ctx, uploaded)
		return nil, apperror.NewInternalError(err)
	}

	err = c.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		return c.profileRepo.Create(ctx, profile)
	})
	if err != nil {
		if apperror.IsAlreadyExists(err) {
			// 同じキーは先に登録されたプロファイルも参照しているため削除しない
			return nil, apperror.NewAlreadyExistsError(MsgProfileAlreadyExists).WithCause(err)
		}
		c.discardAvatar(ctx, uploaded)
		return nil, apperror.NewInternalError(err)
	}

	logger.Info(ctx, "profile created",
		"profile_id", profile.ID,
		"target_user_id", target.ID,
		"has_avatar", profile.HasAvatar(),
	)

	return &CreateProfileOutput{Profile: profile}, nil
}

// findActor はトークンの持ち主を取得します。対象ユーザー本人の場合は再取得しません。
// 見つからない操作者はnilとして返し、認可で拒否させます。
func (c *CreateProfileCommand) findActor(ctx context.Context, actorID int64, target *entity.User) (*entity.User, error) {
	if actorID == target.ID {
		return target, nil
	}

	actor, err := c.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, apperror.NewInternalError(err)
	}
	return actor, nil
}

// buildParams は入力値を値オブジェクトへ変換します
func (c *CreateProfileCommand) buildParams(input CreateProfileInput) (entity.UserProfileParams, error) {
	params := entity.UserProfileParams{UserID: input.TargetUserID}
	var details []apperror.FieldError

	addErr := func(field string, err error) {
		details = append(details, apperror.FieldError{Field: field, Message: err.Error()})
	}

	if input.FirstName != nil {
		v, err := valueobject.NewPersonName(*input.FirstName)
		if err != nil {
			addErr("first_name", err)
		}
		params.FirstName = v
	}
	if input.LastName != nil {
		v, err := valueobject.NewPersonName(*input.LastName)
		if err != nil {
			addErr("last_name", err)
		}
		params.LastName = v
	}
	if input.Gender != nil {
		v, err := valueobject.NewGender(*input.Gender)
		if err != nil {
			addErr("gender", err)
		}
		params.Gender = v
	}
	if input.DateOfBirth != nil {
		v, err := valueobject.ParseBirthDate(*input.DateOfBirth, c.now())
		if err != nil {
			addErr("date_of_birth", err)
		}
		params.DateOfBirth = v
	}
	if input.Info != nil {
		v, err := valueobject.NewProfileInfo(*input.Info)
		if err != nil {
			addErr("info", err)
		}
		params.Info = v
	}
	if input.Avatar != nil {
		if err := valueobject.ValidateAvatarSize(len(input.Avatar)); err != nil {
			addErr("avatar", err)
		}
	}

	if len(details) > 0 {
		return entity.UserProfileParams{}, apperror.NewValidationError("validation failed", details)
	}
	return params, nil
}

// uploadAvatar は画像をJPEGに変換して保存し、キーと公開URLを返します
func (c *CreateProfileCommand) uploadAvatar(ctx context.Context, userID int64, data []byte) (valueobject.AvatarKey, string, error) {
	key := valueobject.NewAvatarKey(userID)

	jpeg, err := c.avatarProcessor.Normalize(data)
	if err != nil {
		msg := "image could not be decoded"
		if errors.Is(err, service.ErrAvatarTooLarge) {
			msg = service.ErrAvatarTooLarge.Error()
		}
		return key, "", apperror.NewValidationError("validation failed", []apperror.FieldError{
			{Field: "avatar", Message: msg},
		})
	}

	if err := c.avatarStorage.Upload(ctx, key, jpeg); err != nil {
		logger.WithError(ctx, err).Error("avatar upload failed", "key", key.Value())
		return key, "", apperror.NewInternalErrorWithMessage(MsgAvatarUploadFailed, err)
	}

	url, err := c.avatarStorage.URL(ctx, key)
	if err != nil {
		c.discardAvatar(ctx, &key)
		return key, "", apperror.NewInternalErrorWithMessage(MsgAvatarUploadFailed, err)
	}

	return key, url, nil
}

// discardAvatar はアップロード済みのアバターを削除します。失敗はログのみです。
func (c *CreateProfileCommand) discardAvatar(ctx context.Context, key *valueobject.AvatarKey) {
	if key == nil {
		return
	}
	if err := c.avatarStorage.Delete(context.WithoutCancel(ctx), *key); err != nil {
		logger.WithError(ctx, err).Warn("failed to delete orphaned avatar", "key", key.Value())
	}
}
