package receipt

import "go.uber.org/fx"

// Module provides the receipt renderer.
var Module = fx.Provide(newRenderer)

func newRenderer() Renderer {
	return QRRenderer{}
}
