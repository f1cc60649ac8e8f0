package service

import (
	"context"
	"time"

	"postsAPI/internal/config"
	"postsAPI/internal/models"
	"postsAPI/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error
	DeletePost(ctx context.Context, postID string) error
	DeletePostsByAuthor(ctx context.Context, author string) (int64, error)
}

type postService struct {
	postRepo repository.PostRepository
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		cfg:      cfg,
	}
}

func (s *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		// created_at выставляет сервис, а не база
		CreatedAt: time.Now(),
	}

	err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, req repository.UpdatePostRequest) error {
	return s.postRepo.Update(ctx, &req)
}

func (s *postService) DeletePost(ctx context.Context, postID string) error {
	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) DeletePostsByAuthor(ctx context.Context, author string) (int64, error) {
	return s.postRepo.DeleteByAuthor(ctx, author)
}
