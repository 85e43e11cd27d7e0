package medcontent

import (
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures Open.
type Option func(*libraryConfig)

type libraryConfig struct {
	fsys      fs.FS
	databases []DatabaseName

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithContentFS reads database files from fsys instead of the compiled-in
// content. Files are named <database>.yaml plus an optional navigation.yaml.
func WithContentFS(fsys fs.FS) Option {
	return func(c *libraryConfig) {
		c.fsys = fsys
	}
}

// WithContentDir reads database files from a directory on disk.
func WithContentDir(dir string) Option {
	return WithContentFS(os.DirFS(dir))
}

// WithDatabases limits loading to the named databases. Databases left out
// answer every query as empty. Defaults to all.
func WithDatabases(dbs ...DatabaseName) Option {
	return func(c *libraryConfig) {
		c.databases = append(c.databases, dbs...)
	}
}

// WithLogger enables structured logging of catalog loading.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return func(c *libraryConfig) {
		c.logger = l
	}
}

// WithPrometheus registers catalog gauges (entries, categories, cross-reference
// resolution, navigation sizes, load time) on the given registerer.
// Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(c *libraryConfig) {
		c.metricsReg = reg
	}
}
