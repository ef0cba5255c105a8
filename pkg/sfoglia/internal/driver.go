package internal

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// Driver abstracts the native SDL2 entry points so the façade logic can be
// exercised against a recording fake. The production implementation is
// SDLDriver; everything it hands out is exclusively owned by the caller and
// must be destroyed in reverse acquisition order.
type Driver interface {
	// Init brings up the video and TTF subsystems.
	Init() error

	// CreateWindow creates a window owned by the caller. The driver must be
	// initialized first.
	CreateWindow(title string, width, height int32, flags uint32) (Window, error)

	// Quit tears down the subsystems brought up by Init.
	Quit()
}

// Window owns one native window.
type Window interface {
	CreateRenderer() (Renderer, error)
	Destroy()
}

// Renderer owns one native renderer bound to its parent window, plus any
// fonts it opened. Textures it creates are owned by the caller.
type Renderer interface {
	SetDrawColor(c sdl.Color) error
	Clear() error
	FillRect(rect *sdl.Rect) error
	CopyEx(t Texture, src, dst *sdl.Rect, angle float64, flip sdl.RendererFlip) error
	Present()

	// LoadTexture decodes an image file (BMP, PNG, JPG, ...) into a texture.
	LoadTexture(path string) (Texture, error)

	// RenderText rasterizes text with the font at fontPath/pointSize into a
	// texture sized to fit.
	RenderText(text string, color sdl.Color, fontPath string, pointSize int) (Texture, error)

	// TextureFromImage uploads an RGBA image as a texture.
	TextureFromImage(img *image.RGBA) (Texture, error)

	Destroy()
}

// Texture owns one native texture.
type Texture interface {
	// Size reports the texture dimensions in pixels.
	Size() (w, h int32)
	Destroy()
}
