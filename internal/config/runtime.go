package config

import "sync/atomic"

// Runtime holds the settings that can change while the server is running.
type Runtime struct {
	pageSize atomic.Int64
}

func NewRuntime(cfg *Config) *Runtime {
	r := &Runtime{}
	r.Apply(cfg)
	return r
}

// Apply copies reloadable settings from cfg. Invalid values are ignored.
func (r *Runtime) Apply(cfg *Config) {
	if cfg.Pagination.PageSize > 0 {
		r.pageSize.Store(int64(cfg.Pagination.PageSize))
	}
}

func (r *Runtime) PageSize() int {
	if n := r.pageSize.Load(); n > 0 {
		return int(n)
	}
	return DefaultPageSize
}
