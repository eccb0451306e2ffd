package mal

import (
	"strings"
	"time"

	"github.com/brokiem/mpc-discordrpc/filesystem"
	"github.com/brokiem/mpc-discordrpc/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// CoverLifetime is how long a resolved cover stays valid on disk.
const CoverLifetime = 7 * 24 * time.Hour

// Store remembers resolved covers by title.
type Store interface {
	Get(title string) mo.Option[string]
	Set(title, uri string) error
}

// cacheData defines the on-disk layout of the cover cache.
type cacheData[K comparable, T any] struct {
	Covers map[K]T `json:"covers"`
}

// cacher is a generic key/value view over a single gache file.
type cacher[K comparable, T any] struct {
	internal   *gache.Cache[*cacheData[K, T]]
	keyWrapper func(K) K
}

// Get retrieves a value from the cache associated with the specified key.
func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	value, ok := data.Covers[c.keyWrapper(key)]
	if ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

// Set persists a key-value pair to the cache. An expired file is started over.
func (c *cacher[K, T]) Set(key K, t T) error {
	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Covers == nil {
		data = &cacheData[K, T]{Covers: make(map[K]T)}
	}

	data.Covers[c.keyWrapper(key)] = t
	return c.internal.Set(data)
}

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewCoverStore opens the on-disk cover cache at path. An empty path uses where.Covers.
func NewCoverStore(path string) Store {
	if path == "" {
		path = where.Covers()
	}

	return &cacher[string, string]{
		internal: gache.New[*cacheData[string, string]](
			&gache.Options{
				Path:       path,
				Lifetime:   CoverLifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
		keyWrapper: normalizedName,
	}
}
