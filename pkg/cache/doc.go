// Package cache provides a generic LRU cache with optional idle expiry.
//
//	screens := cache.NewLRU[string, *Screen](10_000,
//		cache.WithTTL[string, *Screen](30*time.Minute),
//	)
//	screens.Put(id, s)
//	s, ok := screens.Get(id)
package cache
