package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/internal/api/middleware"
	"github.com/d60-Lab/yatube/internal/form"
	"github.com/d60-Lab/yatube/internal/service"
	"github.com/d60-Lab/yatube/pkg/response"
)

// 工作流结果统一落地：成功按跳转目标 302，校验失败 422 回显表单
func renderOutcome(c *gin.Context, out *service.AuthorOutcome) {
	if out.Redirect != nil {
		c.Redirect(http.StatusFound, out.Redirect.URL())
		return
	}
	if out.Errors != nil {
		response.UnprocessableEntity(c, out)
		return
	}
	response.Success(c, out)
}

// PostCreateForm 建帖表单
// @Summary 空白建帖表单
// @Tags 发帖
// @Success 200 {object} response.Response
// @Router /posts/create [get]
func (h *Handler) PostCreateForm(c *gin.Context) {
	response.Success(c, service.AuthorOutcome{Form: form.PostInput{}})
}

// PostCreate 建帖
// @Summary 创建帖子
// @Tags 发帖
// @Accept x-www-form-urlencoded
// @Param text formData string true "正文"
// @Param group formData int false "板块 id"
// @Success 302
// @Failure 422 {object} response.Response
// @Router /posts/create [post]
func (h *Handler) PostCreate(c *gin.Context) {
	var in form.PostInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out, err := h.posts.Create(c.Request.Context(), middleware.Actor(c), in)
	if err != nil {
		h.renderWorkflowError(c, err)
		return
	}
	renderOutcome(c, out)
}

// PostEditForm 编辑表单（以现有内容预填）
// @Summary 编辑表单
// @Tags 发帖
// @Param post_id path int true "帖子 id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{post_id}/edit [get]
func (h *Handler) PostEditForm(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	out, err := h.posts.EditForm(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.renderWorkflowError(c, err)
		return
	}
	renderOutcome(c, out)
}

// PostEdit 编辑帖子（仅作者）
// @Summary 编辑帖子
// @Tags 发帖
// @Accept x-www-form-urlencoded
// @Param post_id path int true "帖子 id"
// @Param text formData string true "正文"
// @Param group formData int false "板块 id"
// @Success 302
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /posts/{post_id}/edit [post]
func (h *Handler) PostEdit(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	var in form.PostInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out, err := h.posts.Edit(c.Request.Context(), middleware.Actor(c), id, in)
	if err != nil {
		h.renderWorkflowError(c, err)
		return
	}
	renderOutcome(c, out)
}

func postIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.NotFound(c, "post not found")
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) renderWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, service.ErrUnauthenticated):
		// RequireAuth 先行，正常到不了这里；兜底同样跳登录
		response.Unauthorized(c, "authentication required")
	default:
		response.InternalError(c, err)
	}
}
