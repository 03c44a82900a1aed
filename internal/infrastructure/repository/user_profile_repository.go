package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/internal/domain/repository"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

const (
	insertUserProfileQuery = `
INSERT INTO user_profiles (id, user_id, first_name, last_name, gender, date_of_birth, info, avatar, created_at, updated_at)
VALUES ($1, $1, $2, $3, $4, $5, $6, $7, $8, $9)`

	findUserProfileByUserIDQuery = `
SELECT id, user_id, first_name, last_name, gender, date_of_birth, info, avatar, created_at, updated_at
FROM user_profiles
WHERE user_id = $1`

	existsUserProfileQuery = `SELECT EXISTS (SELECT 1 FROM user_profiles WHERE user_id = $1)`
)

// UserProfileRepository はユーザープロファイルリポジトリの実装です
type UserProfileRepository struct {
	*database.BaseRepository
}

// NewUserProfileRepository は新しいUserProfileRepositoryを作成します
func NewUserProfileRepository(txManager *database.TxManager) *UserProfileRepository {
	return &UserProfileRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// Create はプロファイルを作成します。IDはユーザーIDと同じ値で登録します。
// 一意制約違反はALREADY_EXISTSのAppErrorとして返します。
func (r *UserProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	_, err := r.Querier(ctx).Exec(ctx, insertUserProfileQuery,
		profile.UserID,
		nullableText(profile.FirstName.Value()),
		nullableText(profile.LastName.Value()),
		nullableText(profile.Gender.String()),
		nullableDate(profile.DateOfBirth),
		nullableText(profile.Info.Value()),
		nullableText(profile.AvatarURL),
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		err = r.HandleError(err)
		if database.IsConflictError(err) {
			return apperror.NewAlreadyExistsError("user profile already exists").WithCause(err)
		}
		return err
	}
	return nil
}

// FindByUserID はユーザーIDでプロファイルを検索します
func (r *UserProfileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	var (
		profile                                   entity.UserProfile
		firstName, lastName, gender, info, avatar pgtype.Text
		dateOfBirth                               pgtype.Date
	)

	err := r.Querier(ctx).QueryRow(ctx, findUserProfileByUserIDQuery, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&firstName,
		&lastName,
		&gender,
		&dateOfBirth,
		&info,
		&avatar,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		err = r.HandleError(err)
		if database.IsNotFoundError(err) {
			return nil, apperror.NewNotFoundError("user profile")
		}
		return nil, err
	}

	profile.FirstName = valueobject.ReconstructPersonName(firstName.String)
	profile.LastName = valueobject.ReconstructPersonName(lastName.String)
	profile.Gender = valueobject.Gender(gender.String)
	profile.Info = valueobject.ReconstructProfileInfo(info.String)
	profile.AvatarURL = avatar.String
	if dateOfBirth.Valid {
		profile.DateOfBirth = valueobject.ReconstructBirthDate(dateOfBirth.Time)
	}

	return &profile, nil
}

// ExistsByUserID はユーザーのプロファイルが存在するかを確認します
func (r *UserProfileRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	if err := r.Querier(ctx).QueryRow(ctx, existsUserProfileQuery, userID).Scan(&exists); err != nil {
		return false, r.HandleError(err)
	}
	return exists, nil
}

// nullableText は空文字をNULLとして扱います
func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func nullableDate(d valueobject.BirthDate) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

var _ repository.UserProfileRepository = (*UserProfileRepository)(nil)
