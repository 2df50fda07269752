package webpinput

import (
	"github.com/user/webpread/pkg/imageio"
	"github.com/user/webpread/pkg/riff"
)

func init() {
	imageio.Register(imageio.Format{
		Name:       "webp",
		Extensions: []string{"webp"},
		Detect:     riff.IsWebP,
		Open: func(data []byte) (imageio.Input, error) {
			return OpenBytes(data, Options{})
		},
	})
}
