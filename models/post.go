package models

import "time"

type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;size:50;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	AuthorID  uint      `gorm:"column:author_id;not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags      []Tag     `gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

func (Post) TableName() string { return "posts" }

// FriendlyDate formats CreatedAt the way the detail page shows it.
func (p Post) FriendlyDate() string {
	if p.CreatedAt.IsZero() {
		return ""
	}
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}

// HasTag reports whether the tag is attached; the edit form uses it to
// pre-check boxes.
func (p Post) HasTag(id uint) bool {
	for _, t := range p.Tags {
		if t.ID == id {
			return true
		}
	}
	return false
}
