package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/nav"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

// Follow 关注作者
// @Summary 关注某作者，成功后回其主页
// @Tags 订阅
// @Param username path string true "作者用户名"
// @Success 302
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{username}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	username := c.Param("username")
	if err := h.follows.Follow(c.Request.Context(), middleware.Actor(c), username); err != nil {
		h.renderFollowError(c, err)
		return
	}
	c.Redirect(http.StatusFound, nav.To(nav.RouteProfile, "username", username).URL())
}

// Unfollow 取消关注
// @Summary 取消关注某作者
// @Tags 订阅
// @Param username path string true "作者用户名"
// @Success 302
// @Failure 404 {object} response.Response
// @Router /profile/{username}/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if err := h.follows.Unfollow(c.Request.Context(), middleware.Actor(c), username); err != nil {
		h.renderFollowError(c, err)
		return
	}
	c.Redirect(http.StatusFound, nav.To(nav.RouteProfile, "username", username).URL())
}

func (h *Handler) renderFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFollowSelf):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, service.ErrUnauthenticated):
		response.Unauthorized(c, "authentication required")
	default:
		response.InternalError(c, err)
	}
}
