package font

import (
	"io"
	"os"
)

const scratchPattern = "fontcompat-*.tmp"

// 把 r 的内容写入一个新的临时文件，然后交给 engine 解析
// 无论成功与否，临时文件都会在返回前被删除；r 由调用方关闭
func realizeViaScratch(dir string, engine Engine, r io.Reader, index int) (*Handle, error) {
	tmp, err := os.CreateTemp(dir, scratchPattern)
	if err != nil {
		return nil, NewErrScratchFile("create", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	_, err = io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, NewErrScratchFile("copy", err)
	}
	return engine.ParseFile(path, index)
}
