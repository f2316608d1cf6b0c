package services

import (
	"errors"
	"strings"

	"go-blog-api/models"
	"go-blog-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	ListComments(postID uint) ([]models.Comment, error)
	CreateComment(actor *models.Actor, req models.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(actor *models.Actor, id uint, req models.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(actor *models.Actor, id uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentService) ListComments(postID uint) ([]models.Comment, error) {
	comments, err := s.commentRepo.GetByPostID(postID)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return comments, nil
}

func (s *commentService) CreateComment(actor *models.Actor, req models.CreateCommentRequest) (*models.Comment, error) {
	if actor == nil {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Content) == "" {
		fields["content"] = "content is required"
	}
	if req.PostID == 0 {
		fields["post_id"] = "post_id is required"
	}
	if len(fields) > 0 {
		return nil, models.ErrorValidation{Fields: fields}
	}

	// The referenced post must exist before any comment row is written.
	if _, err := s.postRepo.GetByID(req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	comment := &models.Comment{
		Content:    req.Content,
		PostID:     req.PostID,
		AuthorID:   actor.ID,
		AuthorName: actor.Username,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return comment, nil
}

func (s *commentService) UpdateComment(actor *models.Actor, id uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	if actor == nil {
		return nil, models.ErrorUnauthorized{Message: "authentication required"}
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrorValidation{Fields: map[string]string{"content": "content is required"}}
	}

	comment, err := s.getComment(id)
	if err != nil {
		return nil, err
	}

	if !canEditComment(actor, comment) {
		return nil, models.ErrorForbidden{Message: "only the author can edit a comment"}
	}

	comment.Content = req.Content

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return comment, nil
}

func (s *commentService) DeleteComment(actor *models.Actor, id uint) error {
	if actor == nil {
		return models.ErrorUnauthorized{Message: "authentication required"}
	}

	comment, err := s.getComment(id)
	if err != nil {
		return err
	}

	if !canDeleteComment(actor, comment) {
		return models.ErrorForbidden{Message: "not allowed to delete this comment"}
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}

	return nil
}

func (s *commentService) getComment(id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "comment not found"}
		}
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}
	return comment, nil
}
