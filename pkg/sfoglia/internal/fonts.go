package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// fontCache keeps fonts open for the lifetime of the renderer so repeated
// text loads at the same path and size do not reopen the file.
type fontCache struct {
	fonts map[string]*ttf.Font
}

func newFontCache() *fontCache {
	return &fontCache{fonts: make(map[string]*ttf.Font)}
}

func fontKey(path string, pointSize int) string {
	return fmt.Sprintf("%s#%d", path, pointSize)
}

func (c *fontCache) open(path string, pointSize int) (*ttf.Font, error) {
	key := fontKey(path, pointSize)
	if font, ok := c.fonts[key]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(path, pointSize)
	if err != nil {
		return nil, err
	}

	c.fonts[key] = font
	return font, nil
}

func (c *fontCache) close() {
	for _, font := range c.fonts {
		font.Close()
	}
	c.fonts = make(map[string]*ttf.Font)
}
