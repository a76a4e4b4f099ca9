package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorFloor         = color.RGBA{70, 70, 90, 255}    // Tile out of reach
	colorHole          = color.RGBA{8, 8, 14, 255}      // No tile on this floor
	colorFog           = color.RGBA{0, 0, 0, 170}       // Drawn over unseen cells
	colorWall          = color.RGBA{220, 220, 235, 255} // Blocking
	colorCover         = color.RGBA{230, 190, 80, 255}  // Cover
	colorClimbable     = color.RGBA{90, 210, 220, 255}  // Climbable
	colorYou           = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnemy         = color.RGBA{255, 90, 90, 255}   // Bright red
	colorSelected      = color.RGBA{180, 255, 180, 255}
	colorRoute         = color.RGBA{220, 120, 255, 255}
	colorCursor        = color.RGBA{255, 255, 255, 255}
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorDenied        = color.RGBA{255, 100, 100, 255}
	colorPanel         = color.RGBA{30, 30, 50, 220} // Semi-transparent dark
)

// tierColors tint reachable tiles by movement tier, nearest first
var tierColors = []color.RGBA{
	{40, 80, 150, 255},
	{40, 120, 130, 255},
	{70, 70, 140, 255},
}

func tierColor(tier int) color.RGBA {
	return tierColors[min(tier, len(tierColors)-1)]
}

// Tile size constraints
const (
	defaultTileSize = 24
	minTileSize     = 12
	maxTileSize     = 96
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Base font size at default tile size

	mapMargin    = 20
	headerHeight = 36
	wallWidth    = 3
)
