package media

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	_ "golang.org/x/image/webp" // register WebP decoder
)

// decodeDimensions reads just enough of the stream to determine pixel
// dimensions. Content that passed the MIME gate but is not a decodable
// image fails here.
func decodeDimensions(r io.Reader) (int, int, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("image.DecodeConfig: %w", err)
	}

	return cfg.Width, cfg.Height, nil
}
