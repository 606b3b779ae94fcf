package font

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"seehuhn.de/go/sfnt"
)

// FamilyIndex 扫描字体目录，按家族名称把字体文件归组
type FamilyIndex struct {
	mu       sync.RWMutex
	families map[string]*FamilyEntry // 折叠后的家族名称 -> 家族
}

func NewFamilyIndex() *FamilyIndex {
	return &FamilyIndex{
		families: make(map[string]*FamilyEntry),
	}
}

// cases.Caser 不能在 goroutine 之间共享，每次新建
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

type faceInfo struct {
	family string
	entry  FileEntry
}

func (idx *FamilyIndex) BuildIndex(fontsDirs []string, opts ...Option) error {
	cfg := newConfig(opts)
	fontPaths, err := findFontFiles(fontsDirs, cfg.withSystem)
	if err != nil {
		return fmt.Errorf("failed to find font files: %w", err)
	}

	var (
		mu    sync.Mutex
		faces []faceInfo
	)
	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for _, fontPath := range fontPaths {
		g.Go(func() error {
			infos, err := parseFaceInfos(fontPath)
			if err != nil { // 仅提示错误，不终止
				cfg.report(NewWarningMsg("failed to parse font %s: %s", fontPath, err))
				return nil
			}
			mu.Lock()
			faces = append(faces, infos...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, fi := range faces {
		idx.addLocked(fi.family, fi.entry)
	}
	for _, fam := range idx.families {
		sortEntries(fam.Entries)
	}
	return nil
}

// 手动添加一个字体文件
func (idx *FamilyIndex) Add(family string, entry FileEntry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.addLocked(family, entry)
}

func (idx *FamilyIndex) addLocked(family string, entry FileEntry) {
	key := foldName(family)
	if key == "" {
		return
	}
	fam, ok := idx.families[key]
	if !ok {
		fam = &FamilyEntry{Name: strings.TrimSpace(family)}
		idx.families[key] = fam
	}
	// 同一文件同一索引只保留一份，重复扫描时更新
	for i := range fam.Entries {
		if fam.Entries[i].FileName == entry.FileName && fam.Entries[i].TTCIndex == entry.TTCIndex {
			entry.ResourceID = fam.Entries[i].ResourceID
			fam.Entries[i] = entry
			return
		}
	}
	entry.ResourceID = len(fam.Entries)
	fam.Entries = append(fam.Entries, entry)
}

// 按名称查找家族，不区分大小写
func (idx *FamilyIndex) Family(name string) (*FamilyEntry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	fam, ok := idx.families[foldName(name)]
	return fam, ok
}

func (idx *FamilyIndex) Families() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	names := make([]string, 0, len(idx.families))
	for _, fam := range idx.families {
		names = append(names, fam.Name)
	}
	slices.Sort(names)
	return names
}

func (idx *FamilyIndex) SaveIndex(path string) error {
	idx.mu.RLock()
	data, err := json.MarshalIndent(idx.families, "", "  ")
	idx.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal font index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write font index to %s: %w", path, err)
	}
	return nil
}

func (idx *FamilyIndex) LoadIndex(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(`cannot read font index: "%s": %w`, path, err)
	}
	var decoded map[string]*FamilyEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf(`cannot load font index: "%s": %w`, path, err)
	}

	// 不信任文件中的 key，按家族名称重新折叠
	families := make(map[string]*FamilyEntry, len(decoded))
	for _, fam := range decoded {
		if fam == nil {
			continue
		}
		fam.Name = strings.TrimSpace(fam.Name)
		key := foldName(fam.Name)
		if key == "" {
			continue
		}
		if prev, ok := families[key]; ok {
			prev.Entries = append(prev.Entries, fam.Entries...)
			continue
		}
		families[key] = fam
	}
	idx.mu.Lock()
	idx.families = families
	idx.mu.Unlock()
	return nil
}

func sortEntries(entries []FileEntry) {
	slices.SortStableFunc(entries, func(a, b FileEntry) int {
		if c := cmp.Compare(a.FileName, b.FileName); c != 0 {
			return c
		}
		return cmp.Compare(a.TTCIndex, b.TTCIndex)
	})
	for i := range entries {
		entries[i].ResourceID = i
	}
}

var collectionExts = map[string]struct{}{".ttc": {}, ".otc": {}}

// 读取字体文件中每个字体的家族名称、字重与斜体标记
func parseFaceInfos(path string) ([]faceInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, ok := collectionExts[strings.ToLower(filepath.Ext(path))]; ok {
		return parseCollectionInfos(path, data)
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if info.FamilyName == "" {
		return nil, ErrNameNotFound
	}
	weight := int(info.Weight)
	if weight == 0 {
		weight = WeightNormal
	}
	return []faceInfo{{
		family: info.FamilyName,
		entry: FileEntry{
			FileName: path,
			Weight:   weight,
			Italic:   info.IsItalic || info.IsOblique,
		},
	}}, nil
}

func parseCollectionInfos(path string, data []byte) ([]faceInfo, error) {
	c, err := xsfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	var buf xsfnt.Buffer
	infos := make([]faceInfo, 0, c.NumFonts())
	for i := 0; i < c.NumFonts(); i++ {
		f, err := c.Font(i)
		if err != nil {
			continue
		}
		family, err := f.Name(&buf, xsfnt.NameIDFamily)
		if err != nil || family == "" {
			continue
		}
		sub, _ := f.Name(&buf, xsfnt.NameIDSubfamily)
		weight, italic := styleFromSubfamily(sub)
		infos = append(infos, faceInfo{
			family: family,
			entry: FileEntry{
				FileName: path,
				Weight:   weight,
				Italic:   italic,
				TTCIndex: i,
			},
		})
	}
	if len(infos) == 0 {
		return nil, ErrNoContainFace
	}
	return infos, nil
}

// 按长度从长到短匹配，避免 "bold" 先于 "semibold" 命中
var subfamilyWeights = []struct {
	word   string
	weight int
}{
	{"extralight", 200},
	{"ultralight", 200},
	{"extrabold", 800},
	{"ultrabold", 800},
	{"semibold", 600},
	{"demibold", 600},
	{"regular", 400},
	{"medium", 500},
	{"black", 900},
	{"heavy", 900},
	{"light", 300},
	{"thin", 100},
	{"bold", 700},
}

func styleFromSubfamily(sub string) (int, bool) {
	s := strings.ToLower(strings.ReplaceAll(sub, " ", ""))
	italic := strings.Contains(s, "italic") || strings.Contains(s, "oblique")
	for _, w := range subfamilyWeights {
		if strings.Contains(s, w.word) {
			return w.weight, italic
		}
	}
	return WeightNormal, italic
}
