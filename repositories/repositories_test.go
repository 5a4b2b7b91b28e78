package repositories

import (
	"path/filepath"
	"testing"

	"blogly/database"
	"blogly/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "blogly_test.db"))
	require.NoError(t, err)
	require.NoError(t, database.CreateAll(db))
	return db
}

func mustUser(t *testing.T, db *gorm.DB, first, last string) models.User {
	t.Helper()

	user := models.User{FirstName: first, LastName: last}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func mustPost(t *testing.T, db *gorm.DB, userID uint, title string) models.Post {
	t.Helper()

	post := models.Post{Title: title, Content: "content of " + title, UserID: userID}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func mustTag(t *testing.T, db *gorm.DB, name string) models.Tag {
	t.Helper()

	tag := models.Tag{Name: name}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
