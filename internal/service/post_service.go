package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/internal/form"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/nav"
	"github.com/d60-Lab/yatube/internal/repository"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrPostNotFound    = errors.New("post not found")
)

// AuthorOutcome 创建/编辑的单次请求结果。
// Errors 非空表示校验失败（回显 Form，无状态变更）；
// Redirect 在成功或静默拒绝时给出跳转目标。
type AuthorOutcome struct {
	Post     *model.Post    `json:"post,omitempty"`
	Form     form.PostInput `json:"form"`
	Errors   form.Errors    `json:"errors,omitempty"`
	IsEdit   bool           `json:"is_edit,omitempty"`
	Redirect *nav.Target    `json:"redirect,omitempty"`
}

// PostService 发帖工作流。actor 显式入参，不读环境态。
type PostService interface {
	Create(ctx context.Context, actor *model.User, in form.PostInput) (*AuthorOutcome, error)
	// EditForm 返回以现有帖子内容预填的表单（编辑页首次展示）
	EditForm(ctx context.Context, actor *model.User, postID uint) (*AuthorOutcome, error)
	Edit(ctx context.Context, actor *model.User, postID uint, in form.PostInput) (*AuthorOutcome, error)
}

type postService struct {
	posts  repository.PostRepository
	groups repository.GroupRepository
	feed   *cache.FeedCache
}

func NewPostService(posts repository.PostRepository, groups repository.GroupRepository, feed *cache.FeedCache) PostService {
	return &postService{posts: posts, groups: groups, feed: feed}
}

func (s *postService) Create(ctx context.Context, actor *model.User, in form.PostInput) (*AuthorOutcome, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	data, errs, err := form.Clean(ctx, in, s.groups)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		return &AuthorOutcome{Form: in, Errors: errs}, nil
	}
	post := &model.Post{
		Text:      data.Text,
		AuthorID:  actor.ID,
		GroupID:   data.GroupID,
		CreatedAt: time.Now(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	s.feed.Invalidate(ctx)
	return &AuthorOutcome{
		Post:     post,
		Redirect: nav.To(nav.RouteProfile, "username", actor.Username),
	}, nil
}

func (s *postService) EditForm(ctx context.Context, actor *model.User, postID uint) (*AuthorOutcome, error) {
	post, outcome, err := s.loadForEdit(ctx, actor, postID)
	if err != nil || outcome != nil {
		return outcome, err
	}
	return &AuthorOutcome{
		Form:   form.PostInput{Text: post.Text, GroupID: post.GroupID},
		IsEdit: true,
	}, nil
}

func (s *postService) Edit(ctx context.Context, actor *model.User, postID uint, in form.PostInput) (*AuthorOutcome, error) {
	post, outcome, err := s.loadForEdit(ctx, actor, postID)
	if err != nil || outcome != nil {
		return outcome, err
	}
	data, errs, err := form.Clean(ctx, in, s.groups)
	if err != nil {
		return nil, err
	}
	if errs != nil {
		return &AuthorOutcome{Form: in, Errors: errs, IsEdit: true}, nil
	}
	// 只动 text/group；id、author、created_at 不变
	if err := s.posts.UpdateContent(ctx, post.ID, data.Text, data.GroupID); err != nil {
		return nil, err
	}
	post.Text = data.Text
	post.GroupID = data.GroupID
	s.feed.Invalidate(ctx)
	return &AuthorOutcome{
		Post:     post,
		Redirect: nav.To(nav.RoutePostDetail, "post_id", itoa(post.ID)),
	}, nil
}

// loadForEdit 做编辑入口共用的检查：登录、存在性、作者身份。
// 非作者不报错，静默跳转到详情页（与正常浏览不可区分）。
func (s *postService) loadForEdit(ctx context.Context, actor *model.User, postID uint) (*model.Post, *AuthorOutcome, error) {
	if actor == nil {
		return nil, nil, ErrUnauthenticated
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}
	if post.AuthorID != actor.ID {
		return nil, &AuthorOutcome{
			Redirect: nav.To(nav.RoutePostDetail, "post_id", itoa(post.ID)),
		}, nil
	}
	return post, nil, nil
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
