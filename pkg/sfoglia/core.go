// Package sfoglia is a thin resource-lifetime layer over SDL2. A Core owns
// the SDL subsystem, one window, one renderer, and a cache of loaded
// textures, acquired in that order and released in reverse on Close or on
// any construction failure. Drawing is deliberately small: blit a cached
// texture or fill a rectangle with a solid color, then Present.
package sfoglia

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/dvecchia/sfoglia/pkg/sfoglia/internal"
	"go.uber.org/atomic"
)

// Environment variables that override the requested window size, mainly for
// development on machines where the configured size does not fit.
const (
	WindowWidthEnvVar  = "SFOGLIA_WINDOW_WIDTH"
	WindowHeightEnvVar = "SFOGLIA_WINDOW_HEIGHT"
)

// WindowOptions selects SDL window flags for construction.
type WindowOptions = internal.WindowOptions

// Options configures Core construction.
type Options struct {
	Title  string        // Window title
	Width  int32         // Window width in pixels
	Height int32         // Window height in pixels
	Window WindowOptions // SDL window flags (borderless, resizable, etc.)

	// Logger receives lifecycle and draw events at debug level. Defaults to
	// the shared package logger.
	Logger *slog.Logger

	// LogPath is the full path for the log file, including filename
	// (creates parent directories). Empty means console only.
	LogPath string

	driver internal.Driver // test seam; nil means the real SDL driver
}

// Core owns the SDL subsystem, a window, a renderer, and every texture
// loaded through it. It is not safe for concurrent use; SDL itself is
// single-threaded.
type Core struct {
	drv      internal.Driver
	window   internal.Window
	renderer internal.Renderer
	cache    *internal.TextureCache
	log      *slog.Logger

	closed atomic.Bool

	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	textureLoads atomic.Int64
	draws        atomic.Int64
}

// New acquires the SDL subsystem, a window, and a renderer, in that order.
// Any failure releases everything already acquired, in reverse order, before
// returning an error. The caller must call Close when done.
func New(opts Options) (*Core, error) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	opts.Width, opts.Height = applySizeEnv(opts.Width, opts.Height, logger)

	drv := opts.driver
	if drv == nil {
		drv = internal.NewSDLDriver()
	}

	if err := drv.Init(); err != nil {
		return nil, newOpError("init_subsystem", err)
	}
	logger.Debug("subsystem initialized")

	window, err := drv.CreateWindow(opts.Title, opts.Width, opts.Height, opts.Window.ToSDLFlags())
	if err != nil {
		drv.Quit()
		return nil, newOpError("create_window", err)
	}
	logger.Debug("window created", "title", opts.Title, "width", opts.Width, "height", opts.Height)

	renderer, err := window.CreateRenderer()
	if err != nil {
		window.Destroy()
		drv.Quit()
		return nil, newOpError("create_renderer", err)
	}
	logger.Debug("renderer created")

	return &Core{
		drv:      drv,
		window:   window,
		renderer: renderer,
		cache:    internal.NewTextureCache(),
		log:      logger,
	}, nil
}

func applySizeEnv(width, height int32, logger *slog.Logger) (int32, int32) {
	if v := os.Getenv(WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			width = int32(n)
		} else {
			logger.Warn("Invalid window width override; ignoring", "value", v, "error", err)
		}
	}
	if v := os.Getenv(WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			height = int32(n)
		} else {
			logger.Warn("Invalid window height override; ignoring", "value", v, "error", err)
		}
	}
	return width, height
}

// Present flushes the accumulated frame to the display.
func (c *Core) Present() {
	if c.closed.Load() {
		return
	}
	c.renderer.Present()
}

// Close releases every cached texture (in reverse load order), then the
// renderer, the window, and the subsystem. Safe to call more than once.
func (c *Core) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.cache.Destroy()
	c.renderer.Destroy()
	c.window.Destroy()
	c.drv.Quit()
	c.log.Debug("core closed")
}

func (c *Core) checkOpen() error {
	if c.closed.Load() {
		return ErrClosed
	}
	return nil
}
