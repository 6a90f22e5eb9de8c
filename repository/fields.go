package repository

// UserFields holds the mutable user columns. An empty ImageURL falls back
// to the configured default image.
type UserFields struct {
	FirstName string `form:"first_name" validate:"required,max=20"`
	LastName  string `form:"last_name" validate:"max=20"`
	ImageURL  string `form:"image_url"`
}

// PostFields holds the mutable post columns plus the full tag id set.
type PostFields struct {
	Title   string `form:"title" validate:"required,max=50"`
	Content string `form:"content" validate:"required"`
	TagIDs  []uint `form:"tags"`
}

// TagFields holds the tag name plus the full post id set.
type TagFields struct {
	Name    string `form:"tag_name" validate:"required"`
	PostIDs []uint `form:"posts"`
}
