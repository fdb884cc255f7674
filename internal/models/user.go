// Package models contains data models for the blog service.
package models

// User represents a registered account. The first account ever created
// (id 1) is the administrator.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:250;not null"`
	Email        string `json:"email" gorm:"size:250;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:250;not null"`

	Posts    []Post    `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:CommentAuthorID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
