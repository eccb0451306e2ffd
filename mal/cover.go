package mal

import (
	"context"
	"errors"

	"github.com/brokiem/mpc-discordrpc/log"
	"github.com/samber/mo"
)

// Placeholder is the image key shown when no cover could be found.
const Placeholder = "anime-questionmark-removebg"

// ErrNoPicture is returned when the best match carries no image.
var ErrNoPicture = errors.New("anime has no picture")

// Cover is the outcome of a lookup: either a resolved image URL or the placeholder and the reason for it.
type Cover struct {
	URI string
	Err error
}

// Resolved reports whether URI came from the API rather than the fallback.
func (c Cover) Resolved() bool {
	return c.Err == nil
}

// Resolver finds cover art for display titles.
type Resolver struct {
	Client *Client

	// Store is optional; resolved covers are written to it and read back before hitting the API.
	Store Store
}

// Resolve looks up the top match for title. It never fails: on any error it returns the placeholder.
// Exactly one request is made per uncached call.
func (r *Resolver) Resolve(ctx context.Context, title string) Cover {
	if r.Store != nil {
		if uri, ok := r.Store.Get(title).Get(); ok {
			return Cover{URI: uri}
		}
	}

	uri, err := r.lookup(ctx, title).Get()
	if err != nil {
		log.Debugf("cover lookup for %q fell back: %v", title, err)
		return Cover{URI: Placeholder, Err: err}
	}

	if r.Store != nil {
		if err := r.Store.Set(title, uri); err != nil {
			log.Warnf("cache cover for %q: %v", title, err)
		}
	}

	return Cover{URI: uri}
}

func (r *Resolver) lookup(ctx context.Context, title string) mo.Result[string] {
	animes, err := r.Client.SearchAnime(ctx, title, 1)
	if err != nil {
		return mo.Err[string](err)
	}

	if len(animes) == 0 {
		return mo.Err[string](ErrNoResults)
	}

	if animes[0].MainPicture.Medium == "" {
		return mo.Err[string](ErrNoPicture)
	}

	return mo.Ok(animes[0].MainPicture.Medium)
}
