// Package cache implements the tag-based invalidation signal consumed by
// downstream rendering layers. Each named tag carries a monotonically
// increasing version; a successful create, update or delete bumps the
// version of every tag the mutation touches, and list endpoints expose the
// current version as a weak ETag so clients and proxies can invalidate.
package cache

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Tag names shared with the rendering layer.
const (
	TagGames        = "games"
	TagApplications = "applications"
)

// Registry tracks one version counter per tag. The zero value is not usable;
// construct with New and inject where mutations happen.
type Registry struct {
	mu       sync.Mutex
	versions map[string]*atomic.Uint64
}

func New() *Registry {
	return &Registry{versions: make(map[string]*atomic.Uint64)}
}

func (r *Registry) counter(tag string) *atomic.Uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.versions[tag]
	if !ok {
		c = &atomic.Uint64{}
		r.versions[tag] = c
	}
	return c
}

// Invalidate bumps the version of each named tag. Called only after a
// mutation has committed; a rolled-back transaction must not emit a signal.
func (r *Registry) Invalidate(tags ...string) {
	for _, tag := range tags {
		r.counter(tag).Add(1)
	}
}

// Version returns the current version of a tag, starting at zero.
func (r *Registry) Version(tag string) uint64 {
	return r.counter(tag).Load()
}

// ETag renders the tag's version as a weak entity tag for response headers.
func (r *Registry) ETag(tag string) string {
	return fmt.Sprintf(`W/"%s-v%d"`, tag, r.Version(tag))
}
