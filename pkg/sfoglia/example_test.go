package sfoglia_test

import (
	"log"

	"github.com/dvecchia/sfoglia/pkg/sfoglia"
	"github.com/veandco/go-sdl2/sdl"
)

// Example shows a minimal frame: load assets, clear, draw, present.
// It needs a display and asset files, so it is not executed as a test.
func Example() {
	core, err := sfoglia.New(sfoglia.Options{
		Title:  "demo",
		Width:  800,
		Height: 600,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer core.Close()

	if err := core.LoadAll([]string{"assets/face.bmp", "assets/face2.bmp"}); err != nil {
		log.Fatal(err)
	}

	white := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	textRect, err := core.LoadText("hello", white, sdl.Point{X: 8, Y: 8}, "assets/mono.ttf", 24)
	if err != nil {
		log.Fatal(err)
	}

	core.Clear(sdl.Color{A: 255})

	core.Draw(sfoglia.RenderData{
		Dst:   &sdl.Rect{X: 0, Y: 0, W: 50, H: 50},
		Paint: sfoglia.PaintTexture("assets/face.bmp"),
	})
	core.Draw(sfoglia.RenderData{
		Dst:   &sdl.Rect{X: 100, Y: 100, W: 200, H: 40},
		Paint: sfoglia.PaintColor(sdl.Color{R: 100, A: 255}),
	})
	core.Draw(sfoglia.RenderData{
		Dst:   &textRect,
		Paint: sfoglia.PaintTexture("hello"),
	})

	core.Present()
}
