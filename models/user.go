package models

// DefaultImageURL is shown for users who never set a profile image.
const DefaultImageURL = "https://rithm-students-media.s3.amazonaws.com/CACHE/images/user_photos/joel/67987019-1bc4-485b-b4a8-5bca9c2381d1-5281391517_21c58b50e0_o/18697a97aac35b539bf6d017aa499f0d.jpg"

// User represents an author account.
type User struct {
	ID        uint    `gorm:"primaryKey"`
	FirstName string  `gorm:"column:first_name;size:50;not null"`
	LastName  string  `gorm:"column:last_name;size:50;not null"`
	// Pointer so a blank submission is stored as NULL, never as "".
	ImageURL *string `gorm:"column:image_url;size:250"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}

// FullName joins the two name fields for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Image returns the profile image to display, falling back to the stock
// avatar when none is set.
func (u User) Image() string {
	if u.ImageURL != nil && *u.ImageURL != "" {
		return *u.ImageURL
	}
	return DefaultImageURL
}
