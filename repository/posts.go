package repository

import (
	"context"
	"time"

	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Posts struct {
	tool *gormtool.CRUDTool
}

func NewPosts(tool *gormtool.CRUDTool) *Posts {
	return &Posts{tool: tool}
}

func orderTags(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }

// List returns every post with its author, in id order.
func (r *Posts) List(ctx context.Context) (posts []models.Post, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "list", &models.Post{}, time.Since(start), err, map[string]interface{}{
			"count": len(posts),
		})
	}()

	posts = []models.Post{}
	if err = r.tool.DB.WithContext(ctx).Preload("Author").Order("id").Find(&posts).Error; err != nil {
		return nil, storeError("list posts", err)
	}
	return posts, nil
}

// Recent returns the newest limit posts with their authors.
func (r *Posts) Recent(ctx context.Context, limit int) (posts []models.Post, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "recent", &models.Post{}, time.Since(start), err, map[string]interface{}{
			"limit": limit,
		})
	}()

	posts = []models.Post{}
	err = r.tool.DB.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, storeError("recent posts", err)
	}
	return posts, nil
}

// Get loads one post with its author and tags.
func (r *Posts) Get(ctx context.Context, id uint) (post *models.Post, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "get", &models.Post{}, time.Since(start), err, map[string]interface{}{"id": id})
	}()

	return r.load(r.tool.DB.WithContext(ctx), id)
}

func (r *Posts) load(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	if err := db.Preload("Author").Preload("Tags", orderTags).First(&post, id).Error; err != nil {
		return nil, storeError("get post", err)
	}
	return &post, nil
}

// Create stores a post for authorID and links it to f.TagIDs. The author
// must exist and every tag id must resolve, or nothing is written.
func (r *Posts) Create(ctx context.Context, authorID uint, f PostFields) (post *models.Post, err error) {
	start := time.Now()
	defer func() {
		fields := map[string]interface{}{"author_id": authorID, "tag_ids": f.TagIDs}
		if post != nil {
			fields["id"] = post.ID
		}
		r.tool.LogOperation(ctx, "create", &models.Post{}, time.Since(start), err, fields)
	}()

	if err = validateFields(f); err != nil {
		return nil, err
	}

	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var author models.User
		if err := tx.Select("id").First(&author, authorID).Error; err != nil {
			return storeError("get author", err)
		}
		tagIDs, err := resolveIDs(tx, &models.Tag{}, "tags", f.TagIDs)
		if err != nil {
			return err
		}

		row := models.Post{Title: f.Title, Content: f.Content, AuthorID: authorID}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return storeError("create post", err)
		}
		if err := replacePostTags(tx, row.ID, tagIDs); err != nil {
			return err
		}
		post, err = r.load(tx, row.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update overwrites title and content and replaces the whole tag set with
// f.TagIDs.
func (r *Posts) Update(ctx context.Context, id uint, f PostFields) (post *models.Post, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "update", &models.Post{}, time.Since(start), err, map[string]interface{}{
			"id":      id,
			"tag_ids": f.TagIDs,
		})
	}()

	if err = validateFields(f); err != nil {
		return nil, err
	}

	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var current models.Post
		if err := tx.First(&current, id).Error; err != nil {
			return storeError("get post", err)
		}
		tagIDs, err := resolveIDs(tx, &models.Tag{}, "tags", f.TagIDs)
		if err != nil {
			return err
		}

		err = tx.Model(&current).Omit(clause.Associations).Updates(map[string]interface{}{
			"title":   f.Title,
			"content": f.Content,
		}).Error
		if err != nil {
			return storeError("update post", err)
		}
		if err := replacePostTags(tx, id, tagIDs); err != nil {
			return err
		}
		post, err = r.load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post and its tag links. The returned post carries the
// author id of the removed row.
func (r *Posts) Delete(ctx context.Context, id uint) (post *models.Post, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "delete", &models.Post{}, time.Since(start), err, map[string]interface{}{"id": id})
	}()

	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var current models.Post
		if err := tx.First(&current, id).Error; err != nil {
			return storeError("get post", err)
		}
		if err := deletePosts(tx, []uint{id}); err != nil {
			return err
		}
		post = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}
