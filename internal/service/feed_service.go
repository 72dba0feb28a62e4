package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/paginator"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
)

// GroupFeed 板块页：板块信息 + 一页帖子
type GroupFeed struct {
	Group *model.Group                 `json:"group"`
	Page  *paginator.Page[*model.Post] `json:"page"`
}

// ProfileFeed 作者主页：作者、累计发帖数（与分页无关）+ 一页帖子
type ProfileFeed struct {
	Author     *model.User                  `json:"author"`
	PostsCount int64                        `json:"posts_count"`
	Page       *paginator.Page[*model.Post] `json:"page"`
}

// FeedService 只读列表：全站、按板块、按作者、订阅流，统一 id 倒序、每页 10 条。
type FeedService interface {
	Index(ctx context.Context, page int) (*paginator.Page[*model.Post], error)
	GroupFeed(ctx context.Context, slug string, page int) (*GroupFeed, error)
	Profile(ctx context.Context, username string, page int) (*ProfileFeed, error)
	Detail(ctx context.Context, id uint) (*model.Post, error)
	// FollowFeed 当前用户关注作者的帖子
	FollowFeed(ctx context.Context, actor *model.User, page int) (*paginator.Page[*model.Post], error)
}

type feedService struct {
	posts   repository.PostRepository
	groups  repository.GroupRepository
	users   repository.UserRepository
	follows repository.FollowRepository
	cache   *cache.FeedCache
}

func NewFeedService(
	posts repository.PostRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	follows repository.FollowRepository,
	feedCache *cache.FeedCache,
) FeedService {
	return &feedService{posts: posts, groups: groups, users: users, follows: follows, cache: feedCache}
}

func (s *feedService) paginate(ctx context.Context, f repository.PostFilter, page int) (*paginator.Page[*model.Post], error) {
	total, err := s.posts.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	p := paginator.New[*model.Post](total, paginator.DefaultPageSize, page)
	items, err := s.posts.List(ctx, f, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}
	p.Items = items
	return p, nil
}

func (s *feedService) Index(ctx context.Context, page int) (*paginator.Page[*model.Post], error) {
	if cached, hit := s.cache.GetIndex(ctx, page); hit {
		return cached, nil
	}
	p, err := s.paginate(ctx, repository.PostFilter{}, page)
	if err != nil {
		return nil, err
	}
	// 以解析后的页码写缓存，越界请求命中同一份末页数据
	s.cache.SetIndex(ctx, p.Number, p)
	if p.Number != page {
		s.cache.SetIndex(ctx, page, p)
	}
	return p, nil
}

func (s *feedService) GroupFeed(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	p, err := s.paginate(ctx, repository.PostFilter{GroupID: &group.ID}, page)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{Group: group, Page: p}, nil
}

func (s *feedService) Profile(ctx context.Context, username string, page int) (*ProfileFeed, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p, err := s.paginate(ctx, repository.PostFilter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, err
	}
	return &ProfileFeed{Author: author, PostsCount: p.TotalItems, Page: p}, nil
}

func (s *feedService) Detail(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *feedService) FollowFeed(ctx context.Context, actor *model.User, page int) (*paginator.Page[*model.Post], error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	ids, err := s.follows.ListAuthorIDs(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return paginator.New[*model.Post](0, paginator.DefaultPageSize, page), nil
	}
	return s.paginate(ctx, repository.PostFilter{AuthorIDs: ids}, page)
}
