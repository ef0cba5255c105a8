package sfoglia

// Stats is a point-in-time snapshot of cache and draw counters.
type Stats struct {
	CacheHits    int64 // Loads that found an existing entry
	CacheMisses  int64 // Loads that had to go to disk
	TextureLoads int64 // Textures created (images, SVGs, text)
	Draws        int64 // Successful Draw calls
}

// Stats reports cache and draw counters accumulated since construction.
func (c *Core) Stats() Stats {
	return Stats{
		CacheHits:    c.cacheHits.Load(),
		CacheMisses:  c.cacheMisses.Load(),
		TextureLoads: c.textureLoads.Load(),
		Draws:        c.draws.Load(),
	}
}
