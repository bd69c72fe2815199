package ui

// SymbolFail marks error output.
const SymbolFail = "✗"

// Block glyphs for the pressure chart. Each terminal row holds two
// vertical units: a lower half block fills one, a full block fills both.
const (
	GlyphFull  = '█'
	GlyphHalf  = '▄'
	GlyphBlank = ' '
)
