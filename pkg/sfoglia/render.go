package sfoglia

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Paint is the sum type inside a RenderData: either a solid color or a
// texture cache key, never both. Construct with PaintColor or PaintTexture.
type Paint interface {
	isPaint()
}

type colorPaint struct {
	color sdl.Color
}

func (colorPaint) isPaint() {}

type texturePaint struct {
	key string
}

func (texturePaint) isPaint() {}

// PaintColor makes a Paint that fills the destination with a solid color.
func PaintColor(c sdl.Color) Paint {
	return colorPaint{color: c}
}

// PaintTexture makes a Paint that blits the cached texture stored under key.
func PaintTexture(key string) Paint {
	return texturePaint{key: key}
}

// RenderData describes one draw operation. A nil Src or Dst means the full
// source texture or the full render target respectively.
type RenderData struct {
	Src   *sdl.Rect        // Source sub-rectangle; nil means the whole texture
	Dst   *sdl.Rect        // Destination; nil means the whole target
	Paint Paint            // Color fill or texture key; required
	Angle float64          // Rotation in degrees, texture draws only
	Flip  sdl.RendererFlip // sdl.FLIP_NONE, sdl.FLIP_HORIZONTAL, sdl.FLIP_VERTICAL
}

// Draw executes one render request against the back buffer. A texture paint
// whose key was never loaded fails with ErrTextureNotFound; a color paint
// never touches the cache.
func (c *Core) Draw(data RenderData) error {
	if err := c.checkOpen(); err != nil {
		return err
	}

	switch p := data.Paint.(type) {
	case texturePaint:
		texture := c.cache.Get(p.key)
		if texture == nil {
			return newOpError("draw", fmt.Errorf("%w: %q", ErrTextureNotFound, p.key))
		}
		if err := c.renderer.CopyEx(texture, data.Src, data.Dst, data.Angle, data.Flip); err != nil {
			return newOpError("draw_texture", err)
		}
		c.draws.Inc()
		c.log.Debug("texture rendered", "key", p.key)
		return nil

	case colorPaint:
		if err := c.renderer.SetDrawColor(p.color); err != nil {
			return newOpError("set_draw_color", err)
		}
		if err := c.renderer.FillRect(data.Dst); err != nil {
			return newOpError("fill_rect", err)
		}
		c.draws.Inc()
		c.log.Debug("rect rendered")
		return nil

	default:
		return ErrNoPaint
	}
}

// SetDrawColor sets the renderer's immediate draw color.
func (c *Core) SetDrawColor(col sdl.Color) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := c.renderer.SetDrawColor(col); err != nil {
		return newOpError("set_draw_color", err)
	}
	return nil
}

// Clear fills the whole render target with col.
func (c *Core) Clear(col sdl.Color) error {
	if err := c.SetDrawColor(col); err != nil {
		return err
	}
	if err := c.renderer.Clear(); err != nil {
		return newOpError("clear", err)
	}
	return nil
}
