package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
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

type fixture struct {
	db      *gorm.DB
	users   repository.UserRepository
	groups  repository.GroupRepository
	posts   repository.PostRepository
	follows repository.FollowRepository
}

func newFixture(t *testing.T) *fixture {
	db := setupDB(t)
	return &fixture{
		db:      db,
		users:   repository.NewUserRepository(db),
		groups:  repository.NewGroupRepository(db),
		posts:   repository.NewPostRepository(db),
		follows: repository.NewFollowRepository(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func (f *fixture) group(t *testing.T, slug string) *model.Group {
	t.Helper()
	g := &model.Group{Slug: slug, Title: "Тестовая группа", Description: "Тестовое описание"}
	if err := f.groups.Create(context.Background(), g); err != nil {
		t.Fatalf("seed group %s: %v", slug, err)
	}
	return g
}

func (f *fixture) post(t *testing.T, author *model.User, text string, groupID *uint) *model.Post {
	t.Helper()
	p := &model.Post{Text: text, AuthorID: author.ID, GroupID: groupID}
	if err := f.posts.Create(context.Background(), p); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}

func (f *fixture) postCount(t *testing.T) int64 {
	t.Helper()
	n, err := f.posts.Count(context.Background(), repository.PostFilter{})
	if err != nil {
		t.Fatalf("count posts: %v", err)
	}
	return n
}
