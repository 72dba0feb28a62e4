package nav

// 路由名：工作流以「命名路由 + 参数」表达跳转目标，由展示层换算成 URL
const (
	RouteIndex      = "index"
	RouteLogin      = "login"
	RouteGroupList  = "group_list"
	RouteProfile    = "profile"
	RoutePostDetail = "post_detail"
	RoutePostCreate = "post_create"
	RoutePostEdit   = "post_edit"
)

// Target 跳转目标
type Target struct {
	Route  string            `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

// To 构造目标，kv 为交替的参数名/值；末尾落单的 key 会被忽略
func To(route string, kv ...string) *Target {
	t := &Target{Route: route}
	if len(kv) > 0 {
		t.Params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			t.Params[kv[i]] = kv[i+1]
		}
	}
	return t
}
