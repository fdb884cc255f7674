package models

// Post represents a published article. Date is the human-readable publish
// date captured once at creation time and never recomputed.
type Post struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Title    string `json:"title" gorm:"size:250;uniqueIndex;not null"`
	Subtitle string `json:"subtitle" gorm:"size:250;not null"`
	Date     string `json:"date" gorm:"size:250;not null"`
	Body     string `json:"body" gorm:"type:text;not null"`
	ImgURL   string `json:"img_url" gorm:"size:250;not null"`
	AuthorID int64  `json:"author_id" gorm:"not null;index"`

	Author   User      `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:ParentPostID"`
}

// TableName returns the database table name for the Post model.
func (Post) TableName() string {
	return "blog_posts"
}
