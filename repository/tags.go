package repository

import (
	"context"
	"time"

	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Tags struct {
	tool *gormtool.CRUDTool
}

func NewTags(tool *gormtool.CRUDTool) *Tags {
	return &Tags{tool: tool}
}

func orderPosts(db *gorm.DB) *gorm.DB { return db.Order("posts.created_at DESC, posts.id DESC") }

// List returns every tag in id order.
func (r *Tags) List(ctx context.Context) (tags []models.Tag, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "list", &models.Tag{}, time.Since(start), err, map[string]interface{}{
			"count": len(tags),
		})
	}()

	tags = []models.Tag{}
	if err = r.tool.DB.WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, storeError("list tags", err)
	}
	return tags, nil
}

// Get loads one tag with its posts.
func (r *Tags) Get(ctx context.Context, id uint) (tag *models.Tag, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "get", &models.Tag{}, time.Since(start), err, map[string]interface{}{"id": id})
	}()

	return r.load(r.tool.DB.WithContext(ctx), id)
}

func (r *Tags) load(db *gorm.DB, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := db.Preload("Posts", orderPosts).First(&tag, id).Error; err != nil {
		return nil, storeError("get tag", err)
	}
	return &tag, nil
}

// Create stores a tag linked to f.PostIDs. A taken name is an
// ErrIntegrityViolation.
func (r *Tags) Create(ctx context.Context, f TagFields) (tag *models.Tag, err error) {
	start := time.Now()
	defer func() {
		fields := map[string]interface{}{"name": f.Name, "post_ids": f.PostIDs}
		if tag != nil {
			fields["id"] = tag.ID
		}
		r.tool.LogOperation(ctx, "create", &models.Tag{}, time.Since(start), err, fields)
	}()

	if err = validateFields(f); err != nil {
		return nil, err
	}

	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		postIDs, err := resolveIDs(tx, &models.Post{}, "posts", f.PostIDs)
		if err != nil {
			return err
		}
		row := models.Tag{Name: f.Name}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return storeError("create tag", err)
		}
		if err := replaceTagPosts(tx, row.ID, postIDs); err != nil {
			return err
		}
		tag, err = r.load(tx, row.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Update renames the tag and replaces its whole post set with f.PostIDs.
func (r *Tags) Update(ctx context.Context, id uint, f TagFields) (tag *models.Tag, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "update", &models.Tag{}, time.Since(start), err, map[string]interface{}{
			"id":       id,
			"post_ids": f.PostIDs,
		})
	}()

	if err = validateFields(f); err != nil {
		return nil, err
	}

	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var current models.Tag
		if err := tx.First(&current, id).Error; err != nil {
			return storeError("get tag", err)
		}
		postIDs, err := resolveIDs(tx, &models.Post{}, "posts", f.PostIDs)
		if err != nil {
			return err
		}
		if err := tx.Model(&current).Update("name", f.Name).Error; err != nil {
			return storeError("update tag", err)
		}
		if err := replaceTagPosts(tx, id, postIDs); err != nil {
			return err
		}
		tag, err = r.load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes the tag and its links. Tagged posts are kept.
func (r *Tags) Delete(ctx context.Context, id uint) (err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "delete", &models.Tag{}, time.Since(start), err, map[string]interface{}{"id": id})
	}()

	return r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var exists models.Tag
		if err := tx.Select("id").First(&exists, id).Error; err != nil {
			return storeError("get tag", err)
		}
		return deleteTagCascade(tx, id)
	})
}
