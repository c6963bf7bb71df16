package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"yatube/internal/models"
)

var userRows = []string{
	"user_id", "username", "email", "password_hash",
	"refresh_token", "refresh_token_expiry_time",
}

func newUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewUserRepository(sqlxDB), mock, func() { db.Close() }
}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	password := "password123"

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		user := &models.User{
			Username:               "post_author",
			Email:                  "test@example.com",
			RefreshToken:           "refresh_token",
			RefreshTokenExpiryTime: time.Time{},
		}

		mock.ExpectExec(`
			INSERT INTO users (user_id, username, email, password_hash, refresh_token, refresh_token_expiry_time)
			VALUES (?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				sqlmock.AnyArg(),
				"post_author",
				"test@example.com",
				sqlmock.AnyArg(),
				"refresh_token",
				time.Time{},
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateUser(ctx, user, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.NotEqual(t, password, user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при дублировании имени", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		user := &models.User{
			Username: "post_author",
			Email:    "test@example.com",
		}

		mock.ExpectExec(`
			INSERT INTO users (user_id, username, email, password_hash, refresh_token, refresh_token_expiry_time)
			VALUES (?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				sqlmock.AnyArg(),
				"post_author",
				"test@example.com",
				sqlmock.AnyArg(),
				"",
				time.Time{},
			).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.CreateUser(ctx, user, password)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании пользователя")
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное получение по имени", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		rows := sqlmock.NewRows(userRows).
			AddRow(uuid.New().String(), "post_author", "test@example.com", "hashed_password", "", time.Time{})

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("post_author").
			WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "post_author")

		require.NoError(t, err)
		assert.Equal(t, "post_author", user.Username)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(ctx, "ghost")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	ctx := context.Background()
	password := "correct_password"

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("Успешная проверка пароля", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		rows := sqlmock.NewRows(userRows).
			AddRow(uuid.New().String(), "post_author", "test@example.com", string(hashedPassword), "", time.Time{})

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("post_author").
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, "post_author", password)

		require.NoError(t, err)
		assert.Equal(t, "post_author", user.Username)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		rows := sqlmock.NewRows(userRows).
			AddRow(uuid.New().String(), "post_author", "test@example.com", string(hashedPassword), "", time.Time{})

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("post_author").
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, "post_author", "wrong_password")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "неверный пароль")
	})
}

func TestUserRepository_GetUserByRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Валидный refresh token", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		rows := sqlmock.NewRows(userRows).
			AddRow(uuid.New().String(), "post_author", "test@example.com", "hashed_password",
				"valid_refresh_token", time.Now().Add(time.Hour))

		mock.ExpectQuery(`SELECT * FROM users WHERE refresh_token = $1 AND refresh_token_expiry_time > CURRENT_TIMESTAMP`).
			WithArgs("valid_refresh_token").
			WillReturnRows(rows)

		user, err := repo.GetUserByRefreshToken(ctx, "valid_refresh_token")

		require.NoError(t, err)
		assert.Equal(t, "valid_refresh_token", user.RefreshToken)
	})

	t.Run("Просроченный refresh token", func(t *testing.T) {
		repo, mock, closeDB := newUserRepo(t)
		defer closeDB()

		mock.ExpectQuery(`SELECT * FROM users WHERE refresh_token = $1 AND refresh_token_expiry_time > CURRENT_TIMESTAMP`).
			WithArgs("expired_refresh_token").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByRefreshToken(ctx, "expired_refresh_token")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "недействительный или просроченный")
	})
}
