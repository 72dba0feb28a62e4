package paginator

// DefaultPageSize 列表页固定条数
const DefaultPageSize = 10

// Page 一页数据及分页元信息
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"number"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// New 由总数与请求页码构造元信息，Items 由调用方按 Offset/Limit 查询后填入。
// 页码从 1 开始；非法页码取最近的合法页（小于 1 取首页，超界取末页）；
// 空集合也是一个合法的空页。
func New[T any](total int64, pageSize, requested int) *Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return &Page[T]{
		Number:     number,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset 当前页在结果集中的偏移
func (p *Page[T]) Offset() int { return (p.Number - 1) * p.PageSize }

// Limit 当前页条数上限
func (p *Page[T]) Limit() int { return p.PageSize }
