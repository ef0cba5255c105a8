package internal

import (
	"errors"
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// SDLDriver is the production Driver backed by go-sdl2.
type SDLDriver struct{}

func NewSDLDriver() *SDLDriver {
	return &SDLDriver{}
}

func (d *SDLDriver) Init() error {
	// SDL keeps thread-local state; the thread that initializes it must be
	// the one that talks to it.
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return err
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_TIF | img.INIT_WEBP); err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}

	return nil
}

func (d *SDLDriver) CreateWindow(title string, width, height int32, flags uint32) (Window, error) {
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err != nil {
		return nil, err
	}
	return &sdlWindow{win: win}, nil
}

func (d *SDLDriver) Quit() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

type sdlWindow struct {
	win *sdl.Window
}

func (w *sdlWindow) CreateRenderer() (Renderer, error) {
	ren, err := sdl.CreateRenderer(w.win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}

	info, err := ren.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &sdlRenderer{
		ren:      ren,
		fonts:    newFontCache(),
		hasVSync: vsync,
	}, nil
}

func (w *sdlWindow) Destroy() {
	w.win.Destroy()
}

type sdlRenderer struct {
	ren             *sdl.Renderer
	fonts           *fontCache
	hasVSync        bool
	lastPresentTime uint64
}

func (r *sdlRenderer) SetDrawColor(c sdl.Color) error {
	return r.ren.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *sdlRenderer) Clear() error {
	return r.ren.Clear()
}

func (r *sdlRenderer) FillRect(rect *sdl.Rect) error {
	return r.ren.FillRect(rect)
}

func (r *sdlRenderer) CopyEx(t Texture, src, dst *sdl.Rect, angle float64, flip sdl.RendererFlip) error {
	st, ok := t.(*sdlTexture)
	if !ok {
		return errors.New("texture does not belong to this renderer")
	}
	return r.ren.CopyEx(st.tex, src, dst, angle, nil, flip)
}

// Present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available.
func (r *sdlRenderer) Present() {
	r.ren.Present()
	if !r.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - r.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		r.lastPresentTime = sdl.GetTicks64()
	}
}

func (r *sdlRenderer) LoadTexture(path string) (Texture, error) {
	tex, err := img.LoadTexture(r.ren, path)
	if err != nil {
		return nil, err
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return nil, err
	}

	return &sdlTexture{tex: tex, w: w, h: h}, nil
}

func (r *sdlRenderer) RenderText(text string, color sdl.Color, fontPath string, pointSize int) (Texture, error) {
	font, err := r.fonts.open(fontPath, pointSize)
	if err != nil {
		return nil, err
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := r.ren.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}

	return &sdlTexture{tex: tex, w: surface.W, h: surface.H}, nil
}

func (r *sdlRenderer) TextureFromImage(src *image.RGBA) (Texture, error) {
	bounds := src.Bounds()
	w, h := int32(bounds.Dx()), int32(bounds.Dy())
	if w == 0 || h == 0 {
		return nil, errors.New("image has no pixels")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&src.Pix[0]), w, h, 32, int32(src.Stride), sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := r.ren.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}

	return &sdlTexture{tex: tex, w: w, h: h}, nil
}

func (r *sdlRenderer) Destroy() {
	r.fonts.close()
	r.ren.Destroy()
}

type sdlTexture struct {
	tex  *sdl.Texture
	w, h int32
}

func (t *sdlTexture) Size() (int32, int32) {
	return t.w, t.h
}

func (t *sdlTexture) Destroy() {
	t.tex.Destroy()
}
