package font

import "sync"

// FamilyCache 记录句柄身份标识 -> 产生它的字体家族
// 单次读写是原子的，同一个 key 并发写入时后写者生效
type FamilyCache struct {
	m sync.Map // uint64 -> *FamilyEntry
}

func (c *FamilyCache) Store(id uint64, fam *FamilyEntry) bool {
	if id == InvalidID || fam == nil {
		return false
	}
	c.m.Store(id, fam)
	return true
}

func (c *FamilyCache) Load(id uint64) (*FamilyEntry, bool) {
	if id == InvalidID {
		return nil, false
	}
	v, ok := c.m.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*FamilyEntry), true
}

func (c *FamilyCache) Len() int {
	n := 0
	c.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
