package services

import "go-blog-api/models"

// Ownership and moderation rules are plain field comparisons. With two
// roles and a single ownership relation there is nothing to generalize.

func canEditPost(actor *models.Actor, post *models.Post) bool {
	if actor == nil {
		return false
	}
	return actor.ID == post.AuthorID || actor.IsAdmin()
}

func canDeletePost(actor *models.Actor, post *models.Post) bool {
	return canEditPost(actor, post)
}

// Comment edits are author-only; admins get no override here, unlike on
// delete.
func canEditComment(actor *models.Actor, comment *models.Comment) bool {
	if actor == nil {
		return false
	}
	return actor.ID == comment.AuthorID
}

func canDeleteComment(actor *models.Actor, comment *models.Comment) bool {
	if actor == nil {
		return false
	}
	return actor.ID == comment.AuthorID || actor.IsAdmin()
}
