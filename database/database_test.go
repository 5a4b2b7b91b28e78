package database

import (
	"path/filepath"
	"testing"

	"blogly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndDropSchema(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "blogly_test.db"))
	require.NoError(t, err)

	require.NoError(t, CreateAll(db))
	for _, table := range []string{"users", "posts", "tags", "post_tags"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, DropAll(db))
	for _, table := range []string{"users", "posts", "tags", "post_tags"} {
		assert.False(t, db.Migrator().HasTable(table), table)
	}
}

func TestSeedLoadsSampleData(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "blogly_test.db"))
	require.NoError(t, err)

	require.NoError(t, Seed(db))

	var users, posts, tags, joins int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	require.NoError(t, db.Model(&models.PostTag{}).Count(&joins).Error)

	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(3), posts)
	assert.Equal(t, int64(3), tags)
	assert.Equal(t, int64(4), joins)

	// Seeding again resets rather than duplicates.
	require.NoError(t, Seed(db))
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(2), users)
}
