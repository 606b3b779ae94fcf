package font

import (
	"errors"
	"sync/atomic"

	"golang.org/x/image/font/sfnt"
)

// 无效的身份标识，任何查询都不会命中
const InvalidID uint64 = 0

var lastID atomic.Uint64

func nextID() uint64 {
	return lastID.Add(1)
}

// Handle 是解析成功后的字体句柄
// 身份标识在创建时分配，同一进程内唯一且不为 InvalidID
type Handle struct {
	id    uint64
	font  *sfnt.Font
	data  []byte // sfnt.Font 引用这段数据，不能修改
	index int    // 字体集合中的索引位置
	path  string // 来源：资源名、URI 或文件路径，从字节流解析时为空
}

// 创建一个带新身份标识的句柄，供自定义 Engine 使用
func NewHandle(f *sfnt.Font, data []byte, index int, path string) *Handle {
	return &Handle{
		id:    nextID(),
		font:  f,
		data:  data,
		index: index,
		path:  path,
	}
}

func (h *Handle) ID() uint64 {
	if h == nil {
		return InvalidID
	}
	return h.id
}

func (h *Handle) Font() *sfnt.Font { return h.font }
func (h *Handle) Index() int       { return h.index }
func (h *Handle) Source() string   { return h.path }
func (h *Handle) Data() []byte     { return h.data }

func (h *Handle) NumGlyphs() int {
	if h.font == nil {
		return 0
	}
	return h.font.NumGlyphs()
}

func (h *Handle) Family() (string, error) {
	return h.name(sfnt.NameIDFamily)
}

func (h *Handle) Subfamily() (string, error) {
	return h.name(sfnt.NameIDSubfamily)
}

func (h *Handle) name(id sfnt.NameID) (string, error) {
	if h.font == nil {
		return "", ErrInvalidHandle
	}
	var buf sfnt.Buffer
	s, err := h.font.Name(&buf, id)
	if errors.Is(err, sfnt.ErrNotFound) {
		return "", ErrNameNotFound
	}
	return s, err
}

// 获取句柄的身份标识
// nil 或者不是由解析流程创建的句柄返回 InvalidID，并通过 fn 记录
func IdentityOf(h *Handle, fn CheckErrFn) uint64 {
	if h == nil {
		return InvalidID
	}
	if h.id == InvalidID {
		if fn != nil {
			fn(NewWarningMsg("could not retrieve identity of font handle %q", h.path))
		}
		return InvalidID
	}
	return h.id
}
