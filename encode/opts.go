package encode

type Option func(*EncState)

// Depth sets the starting indentation depth for Display.
func Depth(n int) Option {
	return func(es *EncState) { es.depth = n }
}

// Colors sets the palette used by Display.
func Colors(p *Palette) Option {
	return func(es *EncState) { es.palette = p }
}
