package ecs

// Activatable 可以被对象池复用的实例
// 实例从不销毁，只在激活/非激活之间切换
type Activatable interface {
	IsActive() bool
}

// Pool 固定容量的实例池
//
// 所有槽位在创建时分配，之后通过 FindFirst(false) 查找第一个空闲实例复用。
// 槽位顺序稳定，遍历顺序即创建顺序。
type Pool[T Activatable] struct {
	items []T
}

// NewPool 创建容量为 size 的实例池
//
// 参数：
//   - size: 槽位数量
//   - create: 为第 i 个槽位创建实例的工厂函数
//
// 返回：
//   - *Pool[T]: 已填满的实例池
func NewPool[T Activatable](size int, create func(i int) T) *Pool[T] {
	p := &Pool[T]{items: make([]T, 0, max(size, 0))}
	for i := 0; i < size; i++ {
		p.items = append(p.items, create(i))
	}
	return p
}

// FindFirst 按槽位顺序返回第一个激活状态等于 active 的实例
func (p *Pool[T]) FindFirst(active bool) (T, bool) {
	for _, item := range p.items {
		if item.IsActive() == active {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// At 返回第 i 个槽位的实例
func (p *Pool[T]) At(i int) T {
	return p.items[i]
}

// Len 返回槽位数量（容量）
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// ActiveCount 返回处于激活状态的实例数量
func (p *Pool[T]) ActiveCount() int {
	count := 0
	for _, item := range p.items {
		if item.IsActive() {
			count++
		}
	}
	return count
}

// Each 按槽位顺序遍历所有实例，fn 返回 false 时停止
func (p *Pool[T]) Each(fn func(i int, item T) bool) {
	for i, item := range p.items {
		if !fn(i, item) {
			return
		}
	}
}

// EachActive 按槽位顺序遍历激活的实例
func (p *Pool[T]) EachActive(fn func(item T)) {
	for _, item := range p.items {
		if item.IsActive() {
			fn(item)
		}
	}
}
