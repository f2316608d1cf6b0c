package handlers

import (
	"strconv"

	"go-blog-api/helper"
	"go-blog-api/middleware"
	"go-blog-api/models"
	"go-blog-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, httpHelper *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: httpHelper}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID", h.Helper.EmptyJsonMap())
		return
	}

	comments, err := h.commentService.ListComments(uint(postID))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	comment, err := h.commentService.CreateComment(middleware.CurrentActor(c), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment created successfully", comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	comment, err := h.commentService.UpdateComment(middleware.CurrentActor(c), uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment updated successfully", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentService.DeleteComment(middleware.CurrentActor(c), uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", h.Helper.EmptyJsonMap())
}
