package repository

import (
	"context"
	"postsAPI/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetByAuthor(ctx context.Context, author string) ([]models.Post, error)
	GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Post, error)
	Update(ctx context.Context, post *UpdatePostRequest) error
	Delete(ctx context.Context, postID string) error
	DeleteByAuthor(ctx context.Context, author string) (int64, error)
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}
