package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA true-color image types. Color-mapped and grayscale files are
// rejected.
const (
	tgaTruecolor    = 2
	tgaTruecolorRLE = 10
)

// tgaInfo is the fixed 18-byte TGA preamble.
type tgaInfo struct {
	idLength  int
	imageType byte
	width     int
	height    int
	depth     int  // bits per pixel, 24 or 32
	topDown   bool // bit 5 of the descriptor, rows run top to bottom
}

func parseTGAInfo(data []byte) (tgaInfo, error) {
	if len(data) < 18 {
		return tgaInfo{}, fmt.Errorf("TGA data too short")
	}
	info := tgaInfo{
		idLength:  int(data[0]),
		imageType: data[2],
		width:     int(data[12]) | int(data[13])<<8,
		height:    int(data[14]) | int(data[15])<<8,
		depth:     int(data[16]),
		topDown:   data[17]&0x20 != 0,
	}
	if data[1] != 0 {
		return tgaInfo{}, fmt.Errorf("color-mapped TGA not supported")
	}
	if info.imageType != tgaTruecolor && info.imageType != tgaTruecolorRLE {
		return tgaInfo{}, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", info.imageType)
	}
	if info.depth != 24 && info.depth != 32 {
		return tgaInfo{}, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", info.depth)
	}
	return info, nil
}

// DecodeTGA decodes a TGA image. Sky panoramas are commonly exported as
// 24 or 32 bit true-color TGA, flat or RLE compressed, which is the
// subset handled here.
func DecodeTGA(data []byte) (image.Image, error) {
	info, err := parseTGAInfo(data)
	if err != nil {
		return nil, err
	}

	offset := 18 + info.idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	dec := tgaDecoder{
		info: info,
		data: data[offset:],
		img:  image.NewRGBA(image.Rect(0, 0, info.width, info.height)),
	}
	if info.imageType == tgaTruecolor {
		err = dec.decodeFlat()
	} else {
		err = dec.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return dec.img, nil
}

// tgaDecoder walks the BGR(A) pixel stream and writes rows in the
// order the descriptor asks for.
type tgaDecoder struct {
	info tgaInfo
	data []byte
	pos  int
	img  *image.RGBA
}

// readColor pulls one pixel off the stream. TGA stores channels as
// BGR, optionally followed by alpha at 32 bpp.
func (d *tgaDecoder) readColor() (color.RGBA, bool) {
	n := d.info.depth / 8
	if d.pos+n > len(d.data) {
		return color.RGBA{}, false
	}
	px := d.data[d.pos : d.pos+n]
	d.pos += n
	c := color.RGBA{R: px[2], G: px[1], B: px[0], A: 255}
	if n == 4 {
		c.A = px[3]
	}
	return c, true
}

// set writes the i-th stream pixel, flipping bottom-up files so row 0
// of the result is always the top row.
func (d *tgaDecoder) set(i int, c color.RGBA) {
	x := i % d.info.width
	y := i / d.info.width
	if !d.info.topDown {
		y = d.info.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeFlat() error {
	total := d.info.width * d.info.height
	if len(d.data) < total*(d.info.depth/8) {
		return fmt.Errorf("TGA pixel data truncated")
	}
	for i := 0; i < total; i++ {
		c, _ := d.readColor()
		d.set(i, c)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	total := d.info.width * d.info.height
	i := 0
	for i < total && d.pos < len(d.data) {
		packet := d.data[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run packet: one pixel repeated count times.
			c, ok := d.readColor()
			if !ok {
				break
			}
			for n := 0; n < count && i < total; n++ {
				d.set(i, c)
				i++
			}
		} else {
			// Raw packet: count literal pixels.
			for n := 0; n < count && i < total; n++ {
				c, ok := d.readColor()
				if !ok {
					return nil
				}
				d.set(i, c)
				i++
			}
		}
	}
	return nil
}
