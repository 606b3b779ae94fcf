package font

import "runtime"

type CheckErrFn func(error) bool

type Option func(*config)

type config struct {
	tempDir     string
	engine      Engine
	fn          CheckErrFn
	concurrency int
	withSystem  bool
}

func defaultConfig() config {
	return config{
		engine:      SFNTEngine{},
		concurrency: runtime.GOMAXPROCS(0),
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// 临时文件所在目录，为空时使用 os.TempDir()
func WithTempDir(dir string) Option {
	return func(c *config) {
		c.tempDir = dir
	}
}

func WithEngine(e Engine) Option {
	return func(c *config) {
		if e != nil {
			c.engine = e
		}
	}
}

func WithCheckErr(fn CheckErrFn) Option {
	return func(c *config) {
		c.fn = fn
	}
}

// 构建索引时同时解析的文件数量
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func WithSystemFonts() Option {
	return func(c *config) {
		c.withSystem = true
	}
}

func (c *config) report(err error) bool {
	if c.fn == nil {
		return true
	}
	return c.fn(err)
}
