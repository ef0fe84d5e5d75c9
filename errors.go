package gui

import "errors"

var (
	// ErrUndefinedProperty is returned by View.Set when neither the view nor
	// any ancestor defines the key. Define it with View.Def first.
	ErrUndefinedProperty = errors.New("gui: property not defined")

	// ErrNoTextureCreator is returned when a texture upload runs without a
	// render-thread texture creator.
	ErrNoTextureCreator = errors.New("gui: no texture creator")

	// ErrTextureNotReady is returned by Texture.Handle before the upload
	// task has run on the render thread.
	ErrTextureNotReady = errors.New("gui: texture not uploaded yet")

	// ErrUnsupportedTexture is returned by Ctx.DrawTexture for textures the
	// software compositor cannot read back.
	ErrUnsupportedTexture = errors.New("gui: texture cannot be drawn by software context")
)
