package models

import (
	"strings"
	"time"
)

// DefaultImageURL is stored when a user is saved without a picture.
const DefaultImageURL = "https://www.freeiconspng.com/uploads/msn-people-person-profile-user-icon--icon-search-engine-11.png"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:first_name;size:20;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:20" json:"last_name"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"image_url"`
	Posts     []Post    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

// FullName joins first and last name with a single space, even when the
// last name is empty.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Initials renders the badge next to each name on the users list.
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}
	return b.String()
}
