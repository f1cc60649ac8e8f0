package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"postsAPI/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type UpdatePostRequest struct {
	PostID  string `json:"post_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (title, content, author, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	// id генерирует база, забираем его через RETURNING
	err := r.db.GetContext(ctx, &post.ID, query,
		post.Title, post.Content, post.Author, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s не найден", postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE author = $1`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, author)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	if len(posts) == 0 {
		return nil, fmt.Errorf("посты автора %s не найдены", author)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Post, error) {
	// сравнение дат отдаем Postgres, границы включительно
	query := `SELECT * FROM posts WHERE created_at BETWEEN $1 AND $2`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов за период: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, req *UpdatePostRequest) error {
	// created_at и id не трогаем, RowsAffected не проверяем:
	// обновление несуществующего поста считается успешным no-op
	query := `
		UPDATE posts SET
			title = $1,
			content = $2,
			author = $3
		WHERE id = $4
	`

	_, err := r.db.ExecContext(ctx, query, req.Title, req.Content, req.Author, req.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE id = $1`

	// удаление несуществующего id тоже успех, операция идемпотентна
	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) DeleteByAuthor(ctx context.Context, author string) (int64, error) {
	query := `DELETE FROM posts WHERE author = $1`

	result, err := r.db.ExecContext(ctx, query, author)
	if err != nil {
		return 0, fmt.Errorf("ошибка при удалении постов автора: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return 0, fmt.Errorf("посты автора %s не найдены", author)
	}

	return rowsAffected, nil
}
