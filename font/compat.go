package font

import (
	"context"
	"io"
)

// Compat 负责选择字体、解析字体，并记录句柄来自哪个字体家族
// 所有失败都以 (nil, false) 返回，原因通过 WithCheckErr 设置的回调上报
type Compat struct {
	cfg      config
	families FamilyCache
}

func NewCompat(opts ...Option) *Compat {
	return &Compat{cfg: newConfig(opts)}
}

// 从字节流解析字体，r 由调用方关闭
func (c *Compat) RealizeFromStream(r io.Reader) (*Handle, bool) {
	return c.realize(r, 0, "")
}

func (c *Compat) realize(r io.Reader, index int, source string) (*Handle, bool) {
	h, err := realizeViaScratch(c.cfg.tempDir, c.cfg.engine, r, index)
	if err != nil {
		c.cfg.report(err)
		return nil, false
	}
	if h == nil {
		c.cfg.report(ErrInvalidHandle)
		return nil, false
	}
	h.path = source
	return h, true
}

// 从资源文件解析字体
func (c *Compat) RealizeFromResource(res Resources, id int, name string, index int) (*Handle, bool) {
	rc, err := res.Open(id, name)
	if err != nil {
		c.cfg.report(err)
		return nil, false
	}
	defer rc.Close()
	return c.realize(rc, index, name)
}

// 从字体提供方的结果中选出最接近的一个并解析
// ctx 只传给 resolver
func (c *Compat) RealizeFromProvider(ctx context.Context, resolver ContentResolver, fonts []ProviderFont, isTargetItalic bool, targetWeight int) (*Handle, bool) {
	best, ok := SelectBest(fonts, isTargetItalic, targetWeight)
	if !ok {
		c.cfg.report(ErrNoCandidates)
		return nil, false
	}
	rc, err := resolver.Open(ctx, best.URI)
	if err != nil {
		c.cfg.report(NewWarningMsg("failed to open font uri %s: %s", best.URI, err))
		return nil, false
	}
	defer rc.Close()
	return c.realize(rc, best.TTCIndex, best.URI)
}

// 选出家族中最接近的字体文件并解析，成功后记录句柄与家族的对应关系
// ctx 目前未被使用
func (c *Compat) RealizeFamily(_ context.Context, res Resources, fam *FamilyEntry, isTargetItalic bool, targetWeight int) (*Handle, bool) {
	if fam == nil {
		c.cfg.report(ErrNilFamily)
		return nil, false
	}
	best, ok := SelectBest(fam.Entries, isTargetItalic, targetWeight)
	if !ok {
		c.cfg.report(NewWarningMsg("font family %q: %s", fam.Name, ErrNoCandidates))
		return nil, false
	}
	h, ok := c.RealizeFromResource(res, best.ResourceID, best.FileName, best.TTCIndex)
	if !ok {
		return nil, false
	}
	c.families.Store(IdentityOf(h, c.cfg.fn), fam)
	target := Style{Weight: targetWeight, Italic: isTargetItalic}
	c.cfg.report(NewInfoMsg(`"%s" %s ---> "%s"[%d]`, fam.Name, target, best.FileName, best.TTCIndex))
	return h, true
}

// 查询句柄来自哪个字体家族，未经 RealizeFamily 产生的句柄总是查不到
func (c *Compat) LookupFamily(h *Handle) (*FamilyEntry, bool) {
	return c.families.Load(IdentityOf(h, c.cfg.fn))
}

// 已记录的句柄数量
func (c *Compat) CachedFamilies() int {
	return c.families.Len()
}
