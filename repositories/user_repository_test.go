package repositories

import (
	"testing"

	"blogly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateUserNormalizesEmptyImageURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.Create("Ada", "Lovelace", "")
	require.NoError(t, err)
	assert.Nil(t, user.ImageURL)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Nil(t, stored.ImageURL)
	assert.Equal(t, "Ada", stored.FirstName)
	assert.Equal(t, "Lovelace", stored.LastName)
}

func TestCreateUserKeepsImageURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.Create("Grace", "Hopper", "http://foo.com/grace.png")
	require.NoError(t, err)
	require.NotNil(t, user.ImageURL)
	assert.Equal(t, "http://foo.com/grace.png", *user.ImageURL)
}

func TestUpdateUserClearsImageURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.Create("Grace", "Hopper", "http://foo.com/grace.png")
	require.NoError(t, err)

	updated, err := repo.Update(user.ID, "Grace", "Murray Hopper", "")
	require.NoError(t, err)
	assert.Nil(t, updated.ImageURL)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Nil(t, stored.ImageURL)
	assert.Equal(t, "Murray Hopper", stored.LastName)
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Get(999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.Update(999999, "x", "y", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListUsersOrderedByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first := mustUser(t, db, "First", "User")
	second := mustUser(t, db, "Second", "User")

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	doomed := mustUser(t, db, "Doomed", "User")
	keeper := mustUser(t, db, "Keeper", "User")

	tagged := mustPost(t, db, doomed.ID, "tagged post")
	mustPost(t, db, doomed.ID, "plain post")
	kept := mustPost(t, db, keeper.ID, "kept post")

	tag := mustTag(t, db, "golang")
	require.NoError(t, db.Create(&models.PostTag{PostID: tagged.ID, TagID: tag.ID}).Error)

	require.NoError(t, repo.Delete(doomed.ID))

	var orphans int64
	require.NoError(t, db.Model(&models.Post{}).Where("user_id = ?", doomed.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	assert.Zero(t, countRows(t, db, &models.PostTag{}))

	// The other user and their post are untouched, and so is the tag.
	var stored models.Post
	require.NoError(t, db.First(&stored, kept.ID).Error)
	assert.Equal(t, int64(1), countRows(t, db, &models.Tag{}))

	_, err := repo.Get(doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
