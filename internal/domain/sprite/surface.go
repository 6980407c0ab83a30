package sprite

import "image"

// Surface is the raster target the animator draws onto.
// Blit copies src from the sprite sheet into dst on the surface.
type Surface interface {
	Clear()
	Blit(src, dst image.Rectangle)
}
