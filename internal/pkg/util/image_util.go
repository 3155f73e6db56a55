package util

import (
	"Yatube/internal/pkg/consts"
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"path"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxImagePixels 防止解压炸弹
const MaxImagePixels = 40_000_000

var ErrNotImage = errors.New("not a supported image")

// DecodedImage 已校验的上传图片
type DecodedImage struct {
	Image       image.Image
	Format      imaging.Format
	ContentType string
}

// DecodeImage 校验字节流是可解码的图片（jpeg/png/gif/bmp）
func DecodeImage(data []byte) (*DecodedImage, error) {
	if !strings.HasPrefix(http.DetectContentType(data), consts.MimePrefixImage+"/") {
		return nil, ErrNotImage
	}

	cfg, formatName, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxImagePixels {
		return nil, ErrNotImage
	}

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return nil, ErrNotImage
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrNotImage
	}

	return &DecodedImage{Image: img, Format: format, ContentType: consts.MimePrefixImage + "/" + formatName}, nil
}

// Thumbnail 居中裁剪到固定尺寸，保持原格式
func Thumbnail(img *DecodedImage, width, height int) ([]byte, error) {
	thumb := imaging.Fill(img.Image, width, height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, img.Format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// SafeFilename 去掉目录部分与不安全字符，保留扩展名
func SafeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	cleaned := strings.TrimLeft(b.String(), ".")
	if cleaned == "" || cleaned == "/" {
		return "image"
	}
	return cleaned
}

// WithSuffix 在扩展名前追加后缀：a.jpg -> a_xxx.jpg
func WithSuffix(name, suffix string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}

// ThumbKey posts/a.jpg -> posts/thumbs/a.jpg
func ThumbKey(key string) string {
	return consts.PostThumbPrefix + strings.TrimPrefix(key, consts.PostImagePrefix)
}
