package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/nav"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

type signupRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Signup 注册
// @Summary 注册新用户
// @Tags 账号
// @Accept json
// @Param request body signupRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

// LoginForm 登录入口；把 next 原样带回，登录后可以回到原目标
// @Summary 登录入口
// @Tags 账号
// @Param next query string false "登录后返回地址"
// @Success 200 {object} response.Response
// @Router /auth/login [get]
func (h *Handler) LoginForm(c *gin.Context) {
	response.Success(c, gin.H{"next": c.Query("next")})
}

// Login 登录
// @Summary 登录，签发令牌
// @Tags 账号
// @Accept json
// @Param request body loginRequest true "凭据"
// @Param next query string false "登录后返回地址"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	// 浏览器侧同时种 cookie
	c.SetCookie(middleware.TokenCookie, token, 0, "/", "", false, true)
	next := c.Query("next")
	if next == "" || next[0] != '/' {
		next = nav.To(nav.RouteProfile, "username", user.Username).URL()
	}
	response.Success(c, gin.H{"token": token, "user": user, "next": next})
}
