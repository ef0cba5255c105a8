package sfoglia

import (
	"fmt"

	"github.com/dvecchia/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Load decodes an image file into a texture cached under its path. Loading a
// path that is already cached is a no-op; the return value reports whether a
// fresh load happened.
func (c *Core) Load(path string) (bool, error) {
	if err := c.checkOpen(); err != nil {
		return false, err
	}

	if c.cache.Has(path) {
		c.cacheHits.Inc()
		c.log.Debug("texture already cached", "path", path)
		return false, nil
	}
	c.cacheMisses.Inc()

	texture, err := c.renderer.LoadTexture(path)
	if err != nil {
		return false, newOpError("load_texture", err)
	}

	c.cache.Set(path, texture)
	c.textureLoads.Inc()
	c.log.Debug("texture loaded", "path", path)
	return true, nil
}

// LoadAll loads each path in order, stopping at the first failure.
//
// LoadAll is not atomic: when it fails partway, everything loaded before the
// failing path stays cached. Callers that need all-or-nothing behavior must
// Close and rebuild the Core.
func (c *Core) LoadAll(paths []string) error {
	for _, path := range paths {
		if _, err := c.Load(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadText rasterizes text with the font at fontPath and pointSize, caches
// the result under the literal text as key, and returns a rectangle anchored
// at pos and sized to the rendered text.
//
// Unlike Load, text is load-once: a second call with the same text fails
// with ErrTextAlreadyLoaded.
func (c *Core) LoadText(text string, color sdl.Color, pos sdl.Point, fontPath string, pointSize int) (sdl.Rect, error) {
	if err := c.checkOpen(); err != nil {
		return sdl.Rect{}, err
	}

	if c.cache.Has(text) {
		return sdl.Rect{}, newOpError("load_text", fmt.Errorf("%w: %q", ErrTextAlreadyLoaded, text))
	}

	texture, err := c.renderer.RenderText(text, color, fontPath, pointSize)
	if err != nil {
		return sdl.Rect{}, newOpError("load_text", err)
	}

	c.cache.Set(text, texture)
	c.textureLoads.Inc()
	c.log.Debug("text loaded", "text", text)

	w, h := texture.Size()
	return sdl.Rect{X: pos.X, Y: pos.Y, W: w, H: h}, nil
}

// LoadSVG rasterizes an SVG file at the given pixel size and caches it as a
// texture under its path. Like Load, it is idempotent per path. A
// non-positive width or height uses the document's own viewbox size.
func (c *Core) LoadSVG(path string, width, height int) (bool, error) {
	if err := c.checkOpen(); err != nil {
		return false, err
	}

	if c.cache.Has(path) {
		c.cacheHits.Inc()
		c.log.Debug("texture already cached", "path", path)
		return false, nil
	}
	c.cacheMisses.Inc()

	rgba, err := internal.RasterizeSVGFile(path, width, height)
	if err != nil {
		return false, newOpError("rasterize_svg", err)
	}

	texture, err := c.renderer.TextureFromImage(rgba)
	if err != nil {
		return false, newOpError("load_svg", err)
	}

	c.cache.Set(path, texture)
	c.textureLoads.Inc()
	c.log.Debug("svg loaded", "path", path)
	return true, nil
}

// LoadTextMessage resolves a localized message through cat and loads it via
// LoadText. It returns the resolved text, which is the cache key to draw
// with, alongside the text rectangle.
func (c *Core) LoadTextMessage(cat *Catalog, messageID string, data map[string]any, color sdl.Color, pos sdl.Point, fontPath string, pointSize int) (string, sdl.Rect, error) {
	text, err := cat.Resolve(messageID, data)
	if err != nil {
		return "", sdl.Rect{}, newOpError("resolve_message", err)
	}

	rect, err := c.LoadText(text, color, pos, fontPath, pointSize)
	if err != nil {
		return "", sdl.Rect{}, err
	}
	return text, rect, nil
}
