package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

func pageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return page
}

// Index 全站信息流
// @Summary 首页，最新帖子（每页 10 条）
// @Tags 信息流
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	p, err := h.feed.Index(c.Request.Context(), pageParam(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": p})
}

// GroupList 板块帖子列表
// @Summary 按板块浏览
// @Tags 信息流
// @Param slug path string true "板块 slug"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /group/{slug} [get]
func (h *Handler) GroupList(c *gin.Context) {
	gf, err := h.feed.GroupFeed(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.NotFound(c, "group not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gf)
}

// Profile 作者主页
// @Summary 某作者的帖子与累计发帖数
// @Tags 信息流
// @Param username path string true "用户名"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{username} [get]
func (h *Handler) Profile(c *gin.Context) {
	pf, err := h.feed.Profile(c.Request.Context(), c.Param("username"), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	following, err := h.follows.IsFollowing(c.Request.Context(), middleware.Actor(c), pf.Author.Username)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{
		"author":      pf.Author,
		"posts_count": pf.PostsCount,
		"page":        pf.Page,
		"following":   following,
	})
}

// PostDetail 帖子详情
// @Summary 单帖详情
// @Tags 信息流
// @Param post_id path int true "帖子 id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{post_id} [get]
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	post, err := h.feed.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"post": post})
}

// FollowIndex 订阅流
// @Summary 我关注作者的帖子
// @Tags 信息流
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response
// @Router /follow [get]
func (h *Handler) FollowIndex(c *gin.Context) {
	p, err := h.feed.FollowFeed(c.Request.Context(), middleware.Actor(c), pageParam(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": p})
}
