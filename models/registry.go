package models

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every table in creation order.
func All() []interface{} {
	return []interface{}{&User{}, &Post{}, &Tag{}, &PostTag{}}
}

// SetupJoinTables registers PostTag as the join model for both sides of the
// post/tag relation. It must run before AutoMigrate and before any query
// that preloads Tags or Posts.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return fmt.Errorf("setup posts_tags for Post.Tags: %w", err)
	}
	if err := db.SetupJoinTable(&Tag{}, "Posts", &PostTag{}); err != nil {
		return fmt.Errorf("setup posts_tags for Tag.Posts: %w", err)
	}
	return nil
}
