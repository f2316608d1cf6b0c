package handlers

import (
	"errors"
	"strconv"

	"go-blog-api/helper"
	"go-blog-api/middleware"
	"go-blog-api/models"
	"go-blog-api/services"
	"go-blog-api/storage"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	fileStorage storage.FileStorage
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, fileStorage storage.FileStorage, httpHelper *helper.HTTPHelper) *PostHandler {
	return &PostHandler{
		postService: postService,
		fileStorage: fileStorage,
		Helper:      httpHelper,
	}
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(middleware.CurrentActor(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	post, err := h.postService.GetPost(uint(id), middleware.CurrentActor(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	image, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}
	req.Image = image

	post, err := h.postService.CreatePost(middleware.CurrentActor(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Post created successfully", post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	image, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}
	req.Image = image

	post, err := h.postService.UpdatePost(middleware.CurrentActor(c), uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post updated successfully", post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.postService.DeletePost(middleware.CurrentActor(c), uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Post deleted successfully", h.Helper.EmptyJsonMap())
}

// saveUploadedImage persists the optional multipart image field and
// returns its stored reference. Requests without an image pass through.
func (h *PostHandler) saveUploadedImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", true
	}

	path, err := h.fileStorage.Save(file)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrUnsupportedType) {
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		} else {
			h.Helper.SendServiceError(c, models.ErrorInternalServer{Message: err.Error()})
		}
		return "", false
	}

	return path, true
}
