package handler

import (
	"github.com/d60-Lab/yatube/internal/service"
)

// Handler 聚合各路由处理器的依赖
type Handler struct {
	auth    service.AuthService
	posts   service.PostService
	feed    service.FeedService
	follows service.FollowService
}

func New(auth service.AuthService, posts service.PostService, feed service.FeedService, follows service.FollowService) *Handler {
	return &Handler{auth: auth, posts: posts, feed: feed, follows: follows}
}
