package handlers

import (
	"mime/multipart"

	"go-blog-api/models"

	"github.com/stretchr/testify/mock"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(actor *models.Actor) ([]models.PostResponse, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostResponse), args.Error(1)
}

func (m *MockPostService) GetPost(id uint, actor *models.Actor) (*models.Post, error) {
	args := m.Called(id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(actor *models.Actor, req models.CreatePostRequest) (*models.Post, error) {
	args := m.Called(actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(actor *models.Actor, id uint, req models.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(actor *models.Actor, id uint) error {
	args := m.Called(actor, id)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(postID uint) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(actor *models.Actor, req models.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(actor *models.Actor, id uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	args := m.Called(actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(actor *models.Actor, id uint) error {
	args := m.Called(actor, id)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockAuthService) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// fakeFileStorage stands in for the upload collaborator.
type fakeFileStorage struct {
	path  string
	err   error
	saved int
}

func (f *fakeFileStorage) Save(file *multipart.FileHeader) (string, error) {
	f.saved++
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}
