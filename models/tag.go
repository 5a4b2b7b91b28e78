package models

// Tag is a label shared across posts. Names are unique.
type Tag struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:50;uniqueIndex;not null"`
	Posts []Post `gorm:"many2many:post_tags"`
}

// TableName overrides the table name used by GORM
func (Tag) TableName() string {
	return "tags"
}

// PostTag is the join row behind the posts<->tags association. The composite
// primary key enforces pair uniqueness.
type PostTag struct {
	PostID uint `gorm:"column:post_id;primaryKey"`
	TagID  uint `gorm:"column:tag_id;primaryKey"`
}

// TableName overrides the table name used by GORM
func (PostTag) TableName() string {
	return "post_tags"
}
