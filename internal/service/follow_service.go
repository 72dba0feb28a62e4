package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
)

var ErrFollowSelf = errors.New("cannot follow self")

// FollowService 作者订阅
type FollowService interface {
	Follow(ctx context.Context, actor *model.User, authorUsername string) error
	Unfollow(ctx context.Context, actor *model.User, authorUsername string) error
	IsFollowing(ctx context.Context, actor *model.User, authorUsername string) (bool, error)
}

type followService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) FollowService {
	return &followService{follows: follows, users: users}
}

func (s *followService) author(ctx context.Context, username string) (*model.User, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return author, nil
}

func (s *followService) Follow(ctx context.Context, actor *model.User, authorUsername string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	author, err := s.author(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == actor.ID {
		return ErrFollowSelf
	}
	return s.follows.Create(ctx, actor.ID, author.ID)
}

func (s *followService) Unfollow(ctx context.Context, actor *model.User, authorUsername string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	author, err := s.author(ctx, authorUsername)
	if err != nil {
		return err
	}
	return s.follows.Delete(ctx, actor.ID, author.ID)
}

func (s *followService) IsFollowing(ctx context.Context, actor *model.User, authorUsername string) (bool, error) {
	if actor == nil {
		return false, nil
	}
	author, err := s.author(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	return s.follows.Exists(ctx, actor.ID, author.ID)
}
