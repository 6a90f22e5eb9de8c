package models

type Tag struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Posts []Post `gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

func (Tag) TableName() string { return "tags" }

func (t Tag) HasPost(id uint) bool {
	for _, p := range t.Posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PostTag is the posts_tags join row. The composite primary key keeps a
// post/tag pairing unique.
type PostTag struct {
	PostID uint `gorm:"primaryKey;column:post_id"`
	TagID  uint `gorm:"primaryKey;column:tag_id"`
}

func (PostTag) TableName() string { return "posts_tags" }
