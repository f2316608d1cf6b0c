package services

import (
	"errors"
	"strings"

	"go-blog-api/models"
	"go-blog-api/repositories"

	"gorm.io/gorm"
)

// Anonymous list reads only get a preview of this many characters before
// an ellipsis is appended.
const previewContentLength = 150

type PostService interface {
	ListPosts(actor *models.Actor) ([]models.PostResponse, error)
	GetPost(id uint, actor *models.Actor) (*models.Post, error)
	CreatePost(actor *models.Actor, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(actor *models.Actor, id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(actor *models.Actor, id uint) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) ListPosts(actor *models.Actor) ([]models.PostResponse, error) {
	posts, err := s.postRepo.GetAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, buildPostResponse(&posts[i], actor))
	}

	return responses, nil
}

func (s *postService) GetPost(id uint, actor *models.Actor) (*models.Post, error) {
	if actor == nil {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	return s.getPost(id)
}

func (s *postService) CreatePost(actor *models.Actor, req models.CreatePostRequest) (*models.Post, error) {
	if actor == nil {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		fields["content"] = "content is required"
	}
	if len(fields) > 0 {
		return nil, models.ErrorValidation{Fields: fields}
	}

	post := &models.Post{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		AuthorID:   actor.ID,
		AuthorName: actor.Username,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return post, nil
}

func (s *postService) UpdatePost(actor *models.Actor, id uint, req models.UpdatePostRequest) (*models.Post, error) {
	if actor == nil {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	post, err := s.getPost(id)
	if err != nil {
		return nil, err
	}

	if !canEditPost(actor, post) {
		return nil, models.ErrorForbidden{Message: "not allowed to modify this post"}
	}

	// Partial update: an empty field means "not supplied" and keeps its
	// stored value. The author reference never changes.
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Image != "" {
		post.Image = req.Image
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return post, nil
}

func (s *postService) DeletePost(actor *models.Actor, id uint) error {
	if actor == nil {
		return models.ErrorUnauthorized{Message: "authentication required"}
	}

	post, err := s.getPost(id)
	if err != nil {
		return err
	}

	if !canDeletePost(actor, post) {
		return models.ErrorForbidden{Message: "not allowed to delete this post"}
	}

	if err := s.postRepo.Delete(id); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}

	return nil
}

func (s *postService) getPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}
	return post, nil
}

func buildPostResponse(post *models.Post, actor *models.Actor) models.PostResponse {
	resp := models.PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Image:      post.Image,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}

	if actor == nil {
		// Anonymous consumers get a content preview and no author
		// reference, only the denormalized name.
		resp.Content = truncateContent(post.Content, previewContentLength)
		return resp
	}

	authorID := post.AuthorID
	resp.AuthorID = &authorID
	return resp
}

// truncateContent is rune-safe; content at or under the limit passes
// through unchanged, with no ellipsis.
func truncateContent(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
