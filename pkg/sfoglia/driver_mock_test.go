package sfoglia

import (
	"image"
	"log/slog"
	"testing"

	"github.com/dvecchia/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// fakeDriver records every lifecycle call in order so tests can assert
// acquisition and teardown sequencing without a display.
type fakeDriver struct {
	failInit     error
	failWindow   error
	failRenderer error

	calls []string
	ren   *fakeRenderer
}

func newFakeDriver() *fakeDriver {
	f := &fakeDriver{}
	f.ren = &fakeRenderer{
		drv:      f,
		failLoad: make(map[string]error),
	}
	return f
}

func (f *fakeDriver) record(op string) {
	f.calls = append(f.calls, op)
}

func (f *fakeDriver) Init() error {
	if f.failInit != nil {
		return f.failInit
	}
	f.record("init")
	return nil
}

func (f *fakeDriver) CreateWindow(title string, width, height int32, flags uint32) (internal.Window, error) {
	if f.failWindow != nil {
		return nil, f.failWindow
	}
	f.record("create_window")
	return &fakeWindow{drv: f}, nil
}

func (f *fakeDriver) Quit() {
	f.record("quit")
}

type fakeWindow struct {
	drv *fakeDriver
}

func (w *fakeWindow) CreateRenderer() (internal.Renderer, error) {
	if w.drv.failRenderer != nil {
		return nil, w.drv.failRenderer
	}
	w.drv.record("create_renderer")
	return w.drv.ren, nil
}

func (w *fakeWindow) Destroy() {
	w.drv.record("destroy_window")
}

type copyCall struct {
	tex      *fakeTexture
	src, dst *sdl.Rect
	angle    float64
	flip     sdl.RendererFlip
}

type fakeRenderer struct {
	drv *fakeDriver

	failLoad map[string]error
	failText error
	failFill error
	failCopy error

	loadCalls []string
	colors    []sdl.Color
	fills     []*sdl.Rect
	copies    []copyCall
}

func (r *fakeRenderer) newTexture(name string, w, h int32) *fakeTexture {
	return &fakeTexture{drv: r.drv, name: name, w: w, h: h}
}

func (r *fakeRenderer) SetDrawColor(c sdl.Color) error {
	r.colors = append(r.colors, c)
	return nil
}

func (r *fakeRenderer) Clear() error {
	r.drv.record("clear")
	return nil
}

func (r *fakeRenderer) FillRect(rect *sdl.Rect) error {
	if r.failFill != nil {
		return r.failFill
	}
	r.fills = append(r.fills, rect)
	return nil
}

func (r *fakeRenderer) CopyEx(t internal.Texture, src, dst *sdl.Rect, angle float64, flip sdl.RendererFlip) error {
	if r.failCopy != nil {
		return r.failCopy
	}
	r.copies = append(r.copies, copyCall{
		tex:   t.(*fakeTexture),
		src:   src,
		dst:   dst,
		angle: angle,
		flip:  flip,
	})
	return nil
}

func (r *fakeRenderer) Present() {
	r.drv.record("present")
}

func (r *fakeRenderer) LoadTexture(path string) (internal.Texture, error) {
	if err := r.failLoad[path]; err != nil {
		return nil, err
	}
	r.loadCalls = append(r.loadCalls, path)
	return r.newTexture(path, 64, 64), nil
}

func (r *fakeRenderer) RenderText(text string, color sdl.Color, fontPath string, pointSize int) (internal.Texture, error) {
	if r.failText != nil {
		return nil, r.failText
	}
	// Width scales with the text so rect assertions are meaningful.
	return r.newTexture("text:"+text, int32(len(text))*10, int32(pointSize)), nil
}

func (r *fakeRenderer) TextureFromImage(img *image.RGBA) (internal.Texture, error) {
	bounds := img.Bounds()
	return r.newTexture("image", int32(bounds.Dx()), int32(bounds.Dy())), nil
}

func (r *fakeRenderer) Destroy() {
	r.drv.record("destroy_renderer")
}

type fakeTexture struct {
	drv  *fakeDriver
	name string
	w, h int32
}

func (t *fakeTexture) Size() (int32, int32) {
	return t.w, t.h
}

func (t *fakeTexture) Destroy() {
	t.drv.record("destroy_texture:" + t.name)
}

func newTestCore(t *testing.T, drv *fakeDriver) *Core {
	t.Helper()

	core, err := New(Options{
		Title:  "test",
		Width:  800,
		Height: 600,
		Logger: slog.New(slog.DiscardHandler),
		driver: drv,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return core
}
