// Package imagemeta probes descriptive metadata from uploaded image bytes.
package imagemeta

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// UnknownDimensions is used when a publish-time probe fails; publishing must
// not fail on undecodable metadata.
const UnknownDimensions = "unknown"

// Dimensions decodes data and renders its pixel size as "WxH".
func Dimensions(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	return fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()), nil
}
