// Package repository holds the CRUD operations for users, posts and tags.
// Every mutation runs in a single transaction: it either applies fully,
// cascades and association swaps included, or leaves the store unchanged.
package repository

import "github.com/studieren/blogly/gormtool"

// Repositories groups the three entity repositories over one store handle.
type Repositories struct {
	Users *Users
	Posts *Posts
	Tags  *Tags
}

func New(tool *gormtool.CRUDTool, defaultImage string) *Repositories {
	return &Repositories{
		Users: NewUsers(tool, defaultImage),
		Posts: NewPosts(tool),
		Tags:  NewTags(tool),
	}
}
