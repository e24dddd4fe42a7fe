package utils

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
)

// OpenImage decodes an image file from fs using the registered formats
// (png, jpeg, gif, bmp).
func OpenImage(fs afero.Fs, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	return img, err
}
