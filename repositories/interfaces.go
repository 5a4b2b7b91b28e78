package repositories

import "blogly/models"

// Lookups that match no row return gorm.ErrRecordNotFound; handlers turn
// that into a 404.

type UserRepository interface {
	List() ([]models.User, error)
	Get(id uint) (*models.User, error)
	Create(firstName, lastName, imageURL string) (*models.User, error)
	Update(id uint, firstName, lastName, imageURL string) (*models.User, error)
	Delete(id uint) error
}

type PostRepository interface {
	ListByUser(userID uint) ([]models.Post, error)
	Get(id uint) (*models.Post, error)
	Create(userID uint, title, content string, tagIDs []uint) (*models.Post, error)
	Update(id uint, title, content string, tagIDs []uint) (*models.Post, error)
	// Delete reports the owner's id so the handler can redirect there.
	Delete(id uint) (uint, error)
}

type TagRepository interface {
	List() ([]models.Tag, error)
	Get(id uint) (*models.Tag, error)
	Create(name string) (*models.Tag, error)
	Update(id uint, name string) (*models.Tag, error)
	Delete(id uint) error
}
