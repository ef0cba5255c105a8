package internal

// TextureCache maps string keys (file paths or literal text) to owned
// textures. Entries are never evicted; they live until Destroy. Insertion
// order is tracked so teardown can release textures in reverse load order.
type TextureCache struct {
	textures map[string]Texture
	order    []string
}

func NewTextureCache() *TextureCache {
	return &TextureCache{
		textures: make(map[string]Texture),
	}
}

func (c *TextureCache) Has(key string) bool {
	_, exists := c.textures[key]
	return exists
}

func (c *TextureCache) Get(key string) Texture {
	return c.textures[key]
}

// Set stores a texture under key. The caller must not reuse a key that is
// already present; the cache owns the texture from this point on.
func (c *TextureCache) Set(key string, texture Texture) {
	if _, exists := c.textures[key]; exists {
		return
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.textures)
}

// Destroy releases every cached texture in reverse insertion order and
// empties the cache. Safe to call more than once.
func (c *TextureCache) Destroy() {
	for i := len(c.order) - 1; i >= 0; i-- {
		key := c.order[i]
		if texture, exists := c.textures[key]; exists {
			texture.Destroy()
			delete(c.textures, key)
		}
	}
	c.textures = make(map[string]Texture)
	c.order = c.order[:0]
}
