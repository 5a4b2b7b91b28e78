package database

import (
	"blogly/models"

	"gorm.io/gorm"
)

// Seed drops the schema, recreates it, and loads the sample data set:
// two users, three posts, and three tags spread across the posts.
func Seed(db *gorm.DB) error {
	if err := DropAll(db); err != nil {
		return err
	}
	if err := CreateAll(db); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		jason := models.User{FirstName: "Jason", LastName: "Johnson"}
		igor := models.User{FirstName: "Igor", LastName: "Oganesian"}
		if err := tx.Create(&jason).Error; err != nil {
			return err
		}
		if err := tx.Create(&igor).Error; err != nil {
			return err
		}

		tags := []models.Tag{{Name: "tagOne"}, {Name: "tagTwo"}, {Name: "tagThree"}}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}

		posts := []models.Post{
			{Title: "First Post", Content: "Hello from Jason.", UserID: jason.ID, Tags: tags[:1]},
			{Title: "Second Post", Content: "Still Jason.", UserID: jason.ID, Tags: tags[:2]},
			{Title: "Igor Writes", Content: "Igor checking in.", UserID: igor.ID, Tags: tags[2:]},
		}
		return tx.Create(&posts).Error
	})
}
