package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"postsAPI/internal/models"
)

func newUserRepoMock(t *testing.T) (UserRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewUserRepository(sqlxDB), mock, db
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	ctx := context.Background()

	username := "alice"
	password := "password123"

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		user := &models.User{Username: username}

		mock.ExpectQuery(`
			INSERT INTO users (username, password)
			VALUES ($1, $2)
			RETURNING id
		`).
			WithArgs(username, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.CreateUser(ctx, user, password)

		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)

		// Пароль хранится только как bcrypt-хеш
		assert.NotEqual(t, password, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Разные хеши для одинаковых паролей", func(t *testing.T) {
		user1 := &models.User{Username: "bob"}
		user2 := &models.User{Username: "carol"}

		for i := 0; i < 2; i++ {
			mock.ExpectQuery(`
				INSERT INTO users (username, password)
				VALUES ($1, $2)
				RETURNING id
			`).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 2))
		}

		require.NoError(t, repo.CreateUser(ctx, user1, password))
		require.NoError(t, repo.CreateUser(ctx, user2, password))

		// случайная соль дает разные хеши
		assert.NotEqual(t, user1.PasswordHash, user2.PasswordHash)
	})

	t.Run("Ошибка базы при создании", func(t *testing.T) {
		user := &models.User{Username: username}

		mock.ExpectQuery(`
			INSERT INTO users (username, password)
			VALUES ($1, $2)
			RETURNING id
		`).
			WithArgs(username, sqlmock.AnyArg()).
			WillReturnError(errors.New("connection refused"))

		err := repo.CreateUser(ctx, user, password)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании пользователя")
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	ctx := context.Background()

	t.Run("Успешное получение пользователя", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(1, "alice", "hashed")

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(ctx, "nobody")

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "не найден")
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	ctx := context.Background()

	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Верный пароль", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(1, "alice", string(hash))

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, "alice", password)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password"}).
			AddRow(1, "alice", string(hash))

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, "alice", "wrong")

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "неверный пароль")
	})
}
