package font

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Engine 把磁盘上的字体文件解析为句柄
type Engine interface {
	ParseFile(path string, index int) (*Handle, error)
}

// SFNTEngine 基于 golang.org/x/image/font/sfnt 的解析器
// 单个字体按只含一个字体的集合处理
type SFNTEngine struct{}

func (SFNTEngine) ParseFile(path string, index int) (*Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	return ParseBytes(data, index, path)
}

// 解析内存中的字体数据，data 在句柄使用期间不能被修改
func ParseBytes(data []byte, index int, path string) (*Handle, error) {
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, NewErrParseFont(path, index, err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, NewErrParseFont(path, index, ErrNoContainFace)
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, NewErrParseFont(path, index, err)
	}
	return NewHandle(f, data, index, path), nil
}

var _ Engine = SFNTEngine{}
