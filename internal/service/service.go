package service

import (
	"postsAPI/internal/config"
	"postsAPI/internal/repository"
)

type Service struct {
	Post PostService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Post: NewPostService(rep.Post, cfg),
		Auth: NewAuthService(rep.User, cfg),
	}
}
