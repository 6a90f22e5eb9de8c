package repository

import (
	"github.com/studieren/blogly/models"
	"gorm.io/gorm"
)

// The cascades below run explicitly so deletes behave the same whether or
// not the store enforces ON DELETE CASCADE.

// deletePosts removes the given posts and their tag links.
func deletePosts(tx *gorm.DB, postIDs []uint) error {
	if len(postIDs) == 0 {
		return nil
	}
	if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
		return storeError("delete post links", err)
	}
	if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
		return storeError("delete posts", err)
	}
	return nil
}

// deleteUserCascade removes a user's posts, their links, then the user.
// It returns the number of posts removed.
func deleteUserCascade(tx *gorm.DB, userID uint) (int, error) {
	var postIDs []uint
	if err := tx.Model(&models.Post{}).Where("author_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
		return 0, storeError("list user posts", err)
	}
	if err := deletePosts(tx, postIDs); err != nil {
		return 0, err
	}
	res := tx.Delete(&models.User{}, userID)
	if res.Error != nil {
		return 0, storeError("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return len(postIDs), nil
}

// deleteTagCascade removes a tag's links, then the tag. Posts stay.
func deleteTagCascade(tx *gorm.DB, tagID uint) error {
	if err := tx.Where("tag_id = ?", tagID).Delete(&models.PostTag{}).Error; err != nil {
		return storeError("delete tag links", err)
	}
	res := tx.Delete(&models.Tag{}, tagID)
	if res.Error != nil {
		return storeError("delete tag", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
