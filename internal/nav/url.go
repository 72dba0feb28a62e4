package nav

import (
	"net/url"
	"strings"
)

// 路由名到 URL 模板的对照表，参数占位符与 gin 路由一致
var patterns = map[string]string{
	RouteIndex:      "/",
	RouteLogin:      "/auth/login",
	RouteGroupList:  "/group/:slug",
	RouteProfile:    "/profile/:username",
	RoutePostDetail: "/posts/:post_id",
	RoutePostCreate: "/posts/create",
	RoutePostEdit:   "/posts/:post_id/edit",
}

// URL 把命名目标换算成路径；未知路由回退到首页
func (t *Target) URL() string {
	pattern, ok := patterns[t.Route]
	if !ok {
		return "/"
	}
	parts := strings.Split(pattern, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			if v, ok := t.Params[p[1:]]; ok {
				parts[i] = url.PathEscape(v)
			}
		}
	}
	return strings.Join(parts, "/")
}
