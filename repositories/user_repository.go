package repositories

import (
	"blogly/models"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) Get(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(firstName, lastName, imageURL string) (*models.User, error) {
	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  normalizeImageURL(imageURL),
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(id uint, firstName, lastName, imageURL string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.ImageURL = normalizeImageURL(imageURL)

	// Save writes all fields, so a cleared image URL really becomes NULL.
	if err := r.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user's posts (and their tag links) before the user row.
// The whole cascade commits or rolls back as one transaction.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
}

// normalizeImageURL maps a blank submission to NULL.
func normalizeImageURL(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
