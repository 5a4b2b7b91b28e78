package models

import "time"

// Post represents a blog post authored by a user.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:50;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags      []Tag     `gorm:"many2many:post_tags"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "posts"
}

// FriendlyDate formats the creation timestamp for display.
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format("Mon Jan 2, 2006 3:04 PM")
}
