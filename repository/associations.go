package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/studieren/blogly/models"
	"gorm.io/gorm"
)

// dedupeIDs drops repeated ids, keeping the first occurrence.
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveIDs checks that every id exists in model's table. Unknown ids are
// a validation error on field, never silently dropped.
func resolveIDs(tx *gorm.DB, model interface{}, field string, ids []uint) ([]uint, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return ids, nil
	}

	var found []uint
	if err := tx.Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, storeError("resolve "+field, err)
	}
	if len(found) == len(ids) {
		return ids, nil
	}

	exists := make(map[uint]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}
	var missing []uint
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	names := make([]string, len(missing))
	for i, id := range missing {
		names[i] = fmt.Sprint(id)
	}
	return nil, &ValidationError{
		Field:   field,
		Message: "unknown id(s) " + strings.Join(names, ", "),
	}
}

// replacePostTags swaps the whole tag set of one post: every existing link
// goes, then the new set is inserted. Callers run it inside a transaction.
func replacePostTags(tx *gorm.DB, postID uint, tagIDs []uint) error {
	if err := tx.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
		return storeError("clear post tags", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, models.PostTag{PostID: postID, TagID: tagID})
	}
	return storeError("link post tags", tx.Create(&links).Error)
}

// replaceTagPosts is replacePostTags seen from the tag side.
func replaceTagPosts(tx *gorm.DB, tagID uint, postIDs []uint) error {
	if err := tx.Where("tag_id = ?", tagID).Delete(&models.PostTag{}).Error; err != nil {
		return storeError("clear tag posts", err)
	}
	if len(postIDs) == 0 {
		return nil
	}
	links := make([]models.PostTag, 0, len(postIDs))
	for _, postID := range postIDs {
		links = append(links, models.PostTag{PostID: postID, TagID: tagID})
	}
	return storeError("link tag posts", tx.Create(&links).Error)
}
