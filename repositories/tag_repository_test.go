package repositories

import (
	"testing"

	"blogly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagNamesAreUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	_, err := repo.Create("golang")
	require.NoError(t, err)

	_, err = repo.Create("golang")
	assert.Error(t, err)

	// Uniqueness is case-sensitive.
	_, err = repo.Create("Golang")
	assert.NoError(t, err)
}

func TestGetTagNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	_, err := repo.Get(999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetTagPreloadsPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	author := mustUser(t, db, "Writer", "One")
	post := mustPost(t, db, author.ID, "tagged")
	tag := mustTag(t, db, "golang")
	require.NoError(t, db.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error)

	loaded, err := repo.Get(tag.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Posts, 1)
	assert.Equal(t, "tagged", loaded.Posts[0].Title)
}

func TestUpdateTagName(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	tag := mustTag(t, db, "golnag")

	updated, err := repo.Update(tag.ID, "golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", updated.Name)

	var stored models.Tag
	require.NoError(t, db.First(&stored, tag.ID).Error)
	assert.Equal(t, "golang", stored.Name)
}

func TestDeleteTagKeepsPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	author := mustUser(t, db, "Writer", "One")
	post := mustPost(t, db, author.ID, "tagged")
	tag := mustTag(t, db, "golang")
	require.NoError(t, db.Create(&models.PostTag{PostID: post.ID, TagID: tag.ID}).Error)

	require.NoError(t, repo.Delete(tag.ID))

	assert.Zero(t, countRows(t, db, &models.Tag{}))
	assert.Zero(t, countRows(t, db, &models.PostTag{}))

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
}
