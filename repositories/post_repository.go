package repositories

import (
	"blogly/models"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) ListByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) Get(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Tags").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(userID uint, title, content string, tagIDs []uint) (*models.Post, error) {
	post := models.Post{UserID: userID, Title: title, Content: content}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// The foreign key would reject the insert anyway; checking first
		// turns a missing owner into a clean not-found.
		var owner models.User
		if err := tx.First(&owner, userID).Error; err != nil {
			return err
		}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return replaceTags(tx, &post, tagIDs)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update overwrites title, content, and the tag set. Ownership and the
// creation timestamp are immutable.
func (r *postRepository) Update(id uint, title, content string, tagIDs []uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{"title": title, "content": content}
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return err
		}
		return replaceTags(tx, &post, tagIDs)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(id uint) (uint, error) {
	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return 0, err
	}
	return post.UserID, nil
}

// replaceTags swaps the post's association set for the given tag ids.
// Unknown ids are silently dropped.
func replaceTags(tx *gorm.DB, post *models.Post, tagIDs []uint) error {
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := tx.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(post).Association("Tags").Replace(tags)
}
