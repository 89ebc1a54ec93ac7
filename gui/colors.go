package gui

import "image/color"

// The palette used by the playground.
var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
	DarkGray  = color.RGBA{80, 80, 80, 255}
	Red       = color.RGBA{230, 41, 55, 255}
	Green     = color.RGBA{0, 228, 48, 255}
	DarkGreen = color.RGBA{0, 117, 44, 255}
	Lime      = color.RGBA{0, 158, 47, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
	SkyBlue   = color.RGBA{102, 191, 255, 255}
	Pink      = color.RGBA{255, 109, 194, 255}
	Purple    = color.RGBA{200, 122, 255, 255}
	Brown     = color.RGBA{127, 106, 79, 255}
	DarkBrown = color.RGBA{76, 63, 47, 255}
)
