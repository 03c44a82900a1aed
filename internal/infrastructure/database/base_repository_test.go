package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.True(t, IsNotFoundError(translateError(pgx.ErrNoRows)))
	assert.True(t, IsNotFoundError(translateError(fmt.Errorf("scan: %w", pgx.ErrNoRows))))

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "user_profiles_user_id_key"}
	err := translateError(unique)
	assert.True(t, IsConflictError(err))
	assert.Contains(t, err.Error(), "user_profiles_user_id_key")

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "user_profiles_user_id_fkey"}
	err = translateError(fk)
	assert.False(t, IsConflictError(err))
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}
