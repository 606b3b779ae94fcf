package font

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Resources 按资源 ID 和文件名打开字体文件
type Resources interface {
	Open(id int, name string) (io.ReadCloser, error)
}

// ContentResolver 打开字体提供方返回的地址
type ContentResolver interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// FSResources 从 fs.FS 中按文件名读取资源，ID 只用于报错
type FSResources struct {
	FS fs.FS
}

func (r FSResources) Open(id int, name string) (io.ReadCloser, error) {
	f, err := r.FS.Open(strings.TrimPrefix(filepath.ToSlash(name), "/"))
	if err != nil {
		return nil, NewErrOpenResource(id, name, err)
	}
	return f, nil
}

// FileResources 直接按路径打开文件，适用于 FamilyIndex 生成的家族
type FileResources struct{}

func (FileResources) Open(id int, name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewErrOpenResource(id, name, err)
	}
	return f, nil
}

// DirResolver 解析 file:// 地址或者相对 Root 的路径
// Root 不为空时，通过 os.Root 打开文件，不能访问 Root 之外的路径
type DirResolver struct {
	Root string
}

func (d DirResolver) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	p, err := d.resolve(uri)
	if err != nil {
		return nil, err
	}
	if d.Root == "" {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	root, err := os.OpenRoot(d.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to open font root %s: %w", d.Root, err)
	}
	defer root.Close()
	f, err := root.Open(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Root 不为空时返回相对 Root 的路径
func (d DirResolver) resolve(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid font uri %q: %w", uri, err)
	}
	var p string
	switch u.Scheme {
	case "file":
		p = u.Path
	case "":
		p = uri
	default:
		return "", fmt.Errorf("unsupported font uri scheme %q", u.Scheme)
	}
	p = filepath.FromSlash(p)
	if d.Root == "" || !filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}

	absRoot, err := filepath.Abs(d.Root)
	if err != nil {
		return "", fmt.Errorf("invalid font root %s: %w", d.Root, err)
	}
	rel, err := filepath.Rel(absRoot, filepath.Clean(p))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("font uri %q is outside of %s", uri, d.Root)
	}
	return rel, nil
}

var (
	_ Resources       = FSResources{}
	_ Resources       = FileResources{}
	_ ContentResolver = DirResolver{}
)
