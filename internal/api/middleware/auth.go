package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/nav"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/internal/service"
)

const actorKey = "actor"

// TokenCookie 浏览器侧令牌 cookie 名
const TokenCookie = "yatube_token"

// Auth 解析令牌（Authorization: Bearer 或 cookie）并把当前用户放入请求上下文。
// 匿名请求照常放行，是否强制由 RequireAuth 决定。
func Auth(auth service.AuthService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else if v, err := c.Cookie(TokenCookie); err == nil {
			token = v
		}
		if token != "" {
			if id, err := auth.ParseToken(token); err == nil {
				if user, err := users.GetByID(c.Request.Context(), id); err == nil {
					c.Set(actorKey, user)
				}
			}
		}
		c.Next()
	}
}

// RequireAuth 未登录时 302 到登录页，带可恢复的 next 参数
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Actor(c) == nil {
			target := nav.To(nav.RouteLogin).URL() + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Actor 当前登录用户，匿名为 nil
func Actor(c *gin.Context) *model.User {
	if v, ok := c.Get(actorKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}
