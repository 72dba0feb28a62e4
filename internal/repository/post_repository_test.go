package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Group{}, &model.Post{}, &model.Follow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPostListOrderAndFilter(t *testing.T) {
	db := setupRepoDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := model.User{Username: "alice", Email: "a@example.com", Password: "x"}
	bob := model.User{Username: "bob", Email: "b@example.com", Password: "x"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	group := model.Group{Slug: "go", Title: "Go"}
	require.NoError(t, db.Create(&group).Error)

	for i := 1; i <= 5; i++ {
		author := alice.ID
		var gid *uint
		if i%2 == 0 {
			author = bob.ID
			gid = &group.ID
		}
		require.NoError(t, posts.Create(ctx, &model.Post{Text: fmt.Sprintf("p%d", i), AuthorID: author, GroupID: gid}))
	}

	all, err := posts.List(ctx, PostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].ID, all[i].ID, "id 倒序")
	}

	byAuthor, err := posts.List(ctx, PostFilter{AuthorID: &bob.ID}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byGroup, err := posts.Count(ctx, PostFilter{GroupID: &group.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), byGroup)

	bySet, err := posts.Count(ctx, PostFilter{AuthorIDs: []uint{alice.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), bySet)
}

func TestUpdateContentTouchesOnlyTextAndGroup(t *testing.T) {
	db := setupRepoDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := model.User{Username: "alice", Email: "a@example.com", Password: "x"}
	require.NoError(t, db.Create(&author).Error)
	group := model.Group{Slug: "go", Title: "Go"}
	require.NoError(t, db.Create(&group).Error)

	p := &model.Post{Text: "before", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, posts.Create(ctx, p))

	require.NoError(t, posts.UpdateContent(ctx, p.ID, "after", nil))

	got, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, author.ID, got.AuthorID)
	assert.Equal(t, p.CreatedAt.Unix(), got.CreatedAt.Unix())
}
