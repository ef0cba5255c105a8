// Package internal contains the native SDL2 plumbing for sfoglia: the driver
// abstraction over go-sdl2, the texture and font caches, SVG rasterization,
// and logging setup. Types and functions in this package are not part of the
// public API.
package internal
