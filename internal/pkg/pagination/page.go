package pagination

import (
	"strconv"
	"strings"
)

// Page 一页数据，页码从 1 开始
type Page[T any] struct {
	Items    []T
	Number   int
	PerPage  int
	Total    int64
	NumPages int
}

// NumPages 空列表也有一页
func NumPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Resolve 宽松解析页码：非整数回到第一页，越界落到最后一页
func Resolve(raw string, total int64, perPage int) (number, offset int) {
	last := NumPages(total, perPage)

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1, 0
	}
	if number < 1 || number > last {
		number = last
	}

	return number, (number - 1) * max(perPage, 0)
}

func New[T any](items []T, number, perPage int, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:    items,
		Number:   number,
		PerPage:  perPage,
		Total:    total,
		NumPages: NumPages(total, perPage),
	}
}

func (p *Page[T]) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p *Page[T]) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p *Page[T]) NextNumber() int {
	return p.Number + 1
}

func (p *Page[T]) PreviousNumber() int {
	return p.Number - 1
}

func (p *Page[T]) Len() int {
	return len(p.Items)
}

// PageRange 当前页附近的页码，用于分页导航
func (p *Page[T]) PageRange(around int) []int {
	start := max(1, p.Number-around)
	end := min(p.NumPages, p.Number+around)
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
