package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

var userCols = []string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	username := "alice"
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(username, nil).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(id.String(), "alice", "alice@example.com", "hash", "USER", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(username, nil).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Equal(t, id, user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)

	user, err = repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "alice@example.com", "hash", "USER").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(id.String(), "alice", "alice@example.com", "hash", "USER", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	user, err := repo.Save(context.Background(), "alice", "hash", "alice@example.com", "USER")
	assert.NoError(t, err)
	assert.Equal(t, id, user.UserID)

	_, err = repo.Save(context.Background(), "alice", "hash", "alice@example.com", "USER")
	assert.ErrorIs(t, err, models.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}
