package form

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors 逐字段错误：字段名 -> 可读信息列表
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

// PostInput 表单原始输入 (text, group)
type PostInput struct {
	Text    string `form:"text" json:"text" validate:"required"`
	GroupID *uint  `form:"group" json:"group"`
}

// PostData 校验通过的待持久化数据
type PostData struct {
	Text    string
	GroupID *uint
}

// GroupChecker 校验 group 取值是否指向已有板块
type GroupChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// Clean 校验 (text, group)。纯校验，不做持久化：
// 成功返回清洗后的数据；校验失败返回非空 Errors；err 仅表示查询板块时的基础设施故障。
func Clean(ctx context.Context, in PostInput, groups GroupChecker) (*PostData, Errors, error) {
	errs := Errors{}

	if err := validate.StructCtx(ctx, in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, nil, err
		}
		for _, fe := range verrs {
			if fe.Field() == "Text" {
				errs.Add("text", "text is required")
			}
		}
	}
	text := strings.TrimSpace(in.Text)
	if text == "" && !errs.Has("text") {
		// 纯空白也算空
		errs.Add("text", "text is required")
	}

	// 浏览器提交空选择时是 group=，绑定成指向 0 的指针；0 不是合法自增 id，视同未选
	if in.GroupID != nil && *in.GroupID == 0 {
		in.GroupID = nil
	}

	if in.GroupID != nil {
		ok, err := groups.Exists(ctx, *in.GroupID)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			errs.Add("group", "select a valid group")
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return &PostData{Text: text, GroupID: in.GroupID}, nil, nil
}
