package hostgg

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"math"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp" // register BMP
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// picture is a decoded image. px backs per-pixel sampling for meshes and
// rotated draws; buf is the same pixels in gg's buffer for DrawImageEx.
type picture struct {
	px  *image.NRGBA
	buf *gg.ImageBuf
}

func decodePicture(data []byte, maxSide int) (*picture, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("empty %s image", format)
	}
	if b.Dx() > maxSide || b.Dy() > maxSide {
		return nil, fmt.Errorf("%s image %dx%d exceeds %d pixels per side", format, b.Dx(), b.Dy(), maxSide)
	}
	px := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(px, px.Bounds(), src, b.Min, xdraw.Src)
	return &picture{px: px, buf: gg.ImageBufFromImage(px)}, nil
}

func (p *picture) width() int  { return p.px.Rect.Dx() }
func (p *picture) height() int { return p.px.Rect.Dy() }

// sample returns the bilinearly filtered colour at pixel coordinates (u, v),
// clamping to the edge texels.
func (p *picture) sample(u, v float64) gg.RGBA {
	u -= 0.5
	v -= 0.5
	x0, y0 := math.Floor(u), math.Floor(v)
	fx, fy := u-x0, v-y0
	ix, iy := int(x0), int(y0)

	c00 := p.texel(ix, iy)
	c10 := p.texel(ix+1, iy)
	c01 := p.texel(ix, iy+1)
	c11 := p.texel(ix+1, iy+1)

	var out [4]float64
	for i := range out {
		top := c00[i]*(1-fx) + c10[i]*fx
		bottom := c01[i]*(1-fx) + c11[i]*fx
		out[i] = top*(1-fy) + bottom*fy
	}
	// Channels are interpolated premultiplied.
	if out[3] <= 0 {
		return gg.RGBA{}
	}
	return gg.RGBA{R: out[0] / out[3], G: out[1] / out[3], B: out[2] / out[3], A: out[3]}
}

// texel returns the premultiplied colour of the clamped pixel (x, y).
func (p *picture) texel(x, y int) [4]float64 {
	x = min(max(x, 0), p.width()-1)
	y = min(max(y, 0), p.height()-1)
	i := p.px.PixOffset(x, y)
	s := p.px.Pix[i : i+4 : i+4]
	a := float64(s[3]) / 255
	return [4]float64{
		float64(s[0]) / 255 * a,
		float64(s[1]) / 255 * a,
		float64(s[2]) / 255 * a,
		a,
	}
}
