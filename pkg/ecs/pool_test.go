package ecs

import "testing"

type testItem struct {
	id     int
	active bool
}

func (t *testItem) IsActive() bool { return t.active }

func newTestPool(size int) *Pool[*testItem] {
	return NewPool(size, func(i int) *testItem { return &testItem{id: i} })
}

func TestNewPool(t *testing.T) {
	p := newTestPool(3)
	if p.Len() != 3 {
		t.Fatalf("Expected 3 slots, got %d", p.Len())
	}
	if p.ActiveCount() != 0 {
		t.Errorf("Expected 0 active, got %d", p.ActiveCount())
	}
	for i := 0; i < 3; i++ {
		if p.At(i).id != i {
			t.Errorf("Slot %d holds id %d", i, p.At(i).id)
		}
	}
}

// TestFindFirst 测试按槽位顺序查找第一个空闲/激活实例
func TestFindFirst(t *testing.T) {
	p := newTestPool(3)

	item, ok := p.FindFirst(false)
	if !ok || item.id != 0 {
		t.Fatalf("Expected slot 0 to be the first free item, got %+v", item)
	}
	item.active = true

	item, ok = p.FindFirst(false)
	if !ok || item.id != 1 {
		t.Fatalf("Expected slot 1 after activating slot 0, got %+v", item)
	}

	active, ok := p.FindFirst(true)
	if !ok || active.id != 0 {
		t.Errorf("Expected slot 0 as first active item, got %+v", active)
	}

	p.Each(func(_ int, it *testItem) bool {
		it.active = true
		return true
	})
	if _, ok := p.FindFirst(false); ok {
		t.Error("Expected no free item when every slot is active")
	}

	// 停用后重新可用
	p.At(2).active = false
	item, ok = p.FindFirst(false)
	if !ok || item.id != 2 {
		t.Errorf("Expected slot 2 to be reused, got %+v", item)
	}
}

func TestNewPoolNegativeSize(t *testing.T) {
	p := NewPool(-3, func(i int) *testItem { return &testItem{id: i} })
	if p.Len() != 0 {
		t.Errorf("Expected empty pool, got %d slots", p.Len())
	}
	if _, ok := p.FindFirst(false); ok {
		t.Error("Empty pool should have no free slot")
	}
}

func TestEachStopsEarly(t *testing.T) {
	p := newTestPool(5)
	visited := 0
	p.Each(func(i int, _ *testItem) bool {
		visited++
		return i < 1
	})
	if visited != 2 {
		t.Errorf("Expected 2 visits, got %d", visited)
	}

	p.At(1).active = true
	p.At(3).active = true
	var ids []int
	p.EachActive(func(it *testItem) { ids = append(ids, it.id) })
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("EachActive visited %v, want [1 3]", ids)
	}
}
