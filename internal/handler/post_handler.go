package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"postsAPI/internal/repository"
)

type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"required"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	}

	// creating a post
	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, Envelope{
		Status:  "success",
		Data:    post,
		Message: "Пост успешно создан",
	}, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// коллекции отдаем как есть, без конверта
	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	}

	// updating the post
	if err := h.PostService.UpdatePost(r.Context(), serviceReq); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, Envelope{
		Status:  "success",
		Message: "Пост успешно обновлен",
	}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, Envelope{
		Status:  "success",
		Message: "Пост успешно удален",
	}, http.StatusOK)
}

func (h *Handlers) GetPostsByAuthor(w http.ResponseWriter, r *http.Request) {
	author := mux.Vars(r)["authorName"]

	posts, err := h.PostRepo.GetByAuthor(r.Context(), author)
	if err != nil {
		if strings.Contains(err.Error(), "не найдены") {
			WriteError(w, "Посты автора не найдены", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) DeletePostsByAuthor(w http.ResponseWriter, r *http.Request) {
	author := mux.Vars(r)["authorName"]

	deleted, err := h.PostService.DeletePostsByAuthor(r.Context(), author)
	if err != nil {
		if strings.Contains(err.Error(), "не найдены") {
			WriteError(w, "Посты автора не найдены", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, Envelope{
		Status:  "success",
		Message: fmt.Sprintf("Удалено постов: %d", deleted),
	}, http.StatusOK)
}

func (h *Handlers) GetPostsByDateRange(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	startDate := vars["startDate"]
	endDate := vars["endDate"]

	posts, err := h.PostRepo.GetByDateRange(r.Context(), startDate, endDate)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}
