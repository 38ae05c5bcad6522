package storage

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

// ProbeImageSize 读取图片头部返回像素宽高，无法识别的格式返回 (0, 0)。
// 支持 png/jpeg/gif/webp。
func ProbeImageSize(r io.Reader) (int, int) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
