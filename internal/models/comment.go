package models

// Comment is a reply attached to exactly one post, authored by exactly one
// registered user. Comments are never edited or deleted individually; they
// are removed only when their parent post is deleted.
type Comment struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Text            string `json:"text" gorm:"type:text;not null"`
	CommentAuthorID int64  `json:"comment_author_id" gorm:"not null;index"`
	ParentPostID    int64  `json:"parent_post_id" gorm:"not null;index"`

	CommentAuthor User `json:"-" gorm:"foreignKey:CommentAuthorID"`
}

// TableName returns the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}
