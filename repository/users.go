package repository

import (
	"context"
	"time"

	"github.com/studieren/blogly/gormtool"
	"github.com/studieren/blogly/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Users struct {
	tool         *gormtool.CRUDTool
	defaultImage string
}

// NewUsers builds the user repository. An empty defaultImage means
// models.DefaultImageURL.
func NewUsers(tool *gormtool.CRUDTool, defaultImage string) *Users {
	if defaultImage == "" {
		defaultImage = models.DefaultImageURL
	}
	return &Users{tool: tool, defaultImage: defaultImage}
}

// List returns every user in id order.
func (r *Users) List(ctx context.Context) (users []models.User, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "list", &models.User{}, time.Since(start), err, map[string]interface{}{
			"count": len(users),
		})
	}()

	users = []models.User{}
	if err = r.tool.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// Get loads one user with their posts, newest first.
func (r *Users) Get(ctx context.Context, id uint) (user *models.User, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "get", &models.User{}, time.Since(start), err, map[string]interface{}{"id": id})
	}()

	return r.load(r.tool.DB.WithContext(ctx), id)
}

func (r *Users) load(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC, id DESC")
	}).First(&user, id).Error
	if err != nil {
		return nil, storeError("get user", err)
	}
	return &user, nil
}

func (r *Users) Create(ctx context.Context, f UserFields) (user *models.User, err error) {
	start := time.Now()
	defer func() {
		fields := map[string]interface{}{}
		if user != nil {
			fields["id"] = user.ID
		}
		r.tool.LogOperation(ctx, "create", &models.User{}, time.Since(start), err, fields)
	}()

	if err = validateFields(f); err != nil {
		return nil, err
	}

	user = &models.User{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		ImageURL:  r.imageOrDefault(f.ImageURL),
	}
	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		return storeError("create user", tx.Omit(clause.Associations).Create(user).Error)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites every mutable column with f.
func (r *Users) Update(ctx context.Context, id uint, f UserFields) (user *models.User, err error) {
	start := time.Now()
	defer func() {
		r.tool.LogOperation(ctx, "update", &models.User{}, time.Since(start), err, map[string]interface{}{"id": id})
	}()

	if err = validateFields(f); err != nil {
		return nil, err
	}

	err = r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var current models.User
		if err := tx.First(&current, id).Error; err != nil {
			return storeError("get user", err)
		}
		current.FirstName = f.FirstName
		current.LastName = f.LastName
		current.ImageURL = r.imageOrDefault(f.ImageURL)
		if err := tx.Omit(clause.Associations).Save(&current).Error; err != nil {
			return storeError("update user", err)
		}
		user = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user together with every post they own and those
// posts' tag links, all in one transaction.
func (r *Users) Delete(ctx context.Context, id uint) (err error) {
	start := time.Now()
	removed := 0
	defer func() {
		r.tool.LogOperation(ctx, "delete", &models.User{}, time.Since(start), err, map[string]interface{}{
			"id":            id,
			"posts_removed": removed,
		})
	}()

	return r.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var exists models.User
		if err := tx.Select("id").First(&exists, id).Error; err != nil {
			return storeError("get user", err)
		}
		n, err := deleteUserCascade(tx, id)
		removed = n
		return err
	})
}

func (r *Users) imageOrDefault(url string) string {
	if url == "" {
		return r.defaultImage
	}
	return url
}
