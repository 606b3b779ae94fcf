package font

import "fmt"

const (
	WeightNormal = 400 // 常规字重
	WeightBold   = 700 // 粗体字重
)

// 任何能给出字重与斜体标记的字体描述
type Descriptor interface {
	FontWeight() int
	IsItalic() bool
}

// 调用方请求的字体样式
type Style struct {
	Weight int  `json:"weight"`
	Italic bool `json:"italic"`
}

func (s Style) String() string {
	return fmt.Sprintf("(%d,%t)", s.Weight, s.Italic)
}

// 字体提供方返回的结果
type ProviderFont struct {
	URI        string `json:"uri"`         // 字体内容地址
	TTCIndex   int    `json:"ttc_index"`   // 字体集合中的索引位置
	Weight     int    `json:"weight"`      // 字重
	Italic     bool   `json:"italic"`      // 是否斜体
	ResultCode int    `json:"result_code"` // 提供方结果码，0 表示成功
}

func (p ProviderFont) FontWeight() int { return p.Weight }
func (p ProviderFont) IsItalic() bool  { return p.Italic }

// 字体家族中的单个字体文件
type FileEntry struct {
	ResourceID        int    `json:"resource_id"`        // 资源 ID，仅作标识
	FileName          string `json:"file_name"`          // 资源文件名（或绝对路径）
	Weight            int    `json:"weight"`             // 字重
	Italic            bool   `json:"italic"`             // 是否斜体
	TTCIndex          int    `json:"ttc_index"`          // 字体集合中的索引位置
	VariationSettings string `json:"variation_settings"` // 可变字体参数，原样保留
}

func (e FileEntry) FontWeight() int { return e.Weight }
func (e FileEntry) IsItalic() bool  { return e.Italic }

// 一个逻辑字体家族，例如 "Roboto"
type FamilyEntry struct {
	Name    string      `json:"name"`
	Entries []FileEntry `json:"entries"`
}

var (
	_ Descriptor = ProviderFont{}
	_ Descriptor = FileEntry{}
)
