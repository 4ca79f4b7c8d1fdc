// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asciify renders images as ASCII art.
package asciify

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"strings"
)

// Detail selects the character ramp used for lightness.
type Detail int

const (
	DetailLow Detail = iota
	DetailMid
	DetailHigh
)

func (d Detail) String() string {
	switch d {
	case DetailLow:
		return "low"
	case DetailMid:
		return "mid"
	case DetailHigh:
		return "high"
	}
	return fmt.Sprintf("Detail(%d)", int(d))
}

var ramps = map[Detail]string{
	DetailLow:  " .+#@",
	DetailMid:  " .-=+*x#$&X@",
	DetailHigh: " .'`^\",:;Il!i><~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
}

// edges is indexed by the quantized gradient direction.
const edges = `|/-\|/-\`

// edgeThreshold is the Sobel magnitude above which an edge glyph replaces
// the lightness glyph.
const edgeThreshold = 0.9

var (
	hueColors     = [6]int{31, 33, 32, 36, 34, 35}
	hueColorsHigh = [6]int{91, 93, 92, 96, 94, 95}
)

// Options control the output of Render. Its fields mirror the render
// command's flags.
type Options struct {
	Width    int
	Height   int
	HasWidth bool // when false Width is derived from Height and the aspect ratio

	Center    bool
	TermWidth int // columns available when centering

	Detail   Detail
	ANSI     bool
	XTerm    bool
	Quantize int // colour levels per channel, 0 to disable
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{Width: 100, Height: 50, Detail: DetailMid}
}

// Decode reads a PNG, JPEG or GIF image.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// Size returns the output size in characters. Terminal cells are about twice
// as tall as wide, so a derived width doubles the aspect ratio.
func Size(b image.Rectangle, o Options) (w, h int) {
	h = o.Height
	w = o.Width
	if !o.HasWidth && b.Dy() > 0 {
		aspect := float64(b.Dx()) / float64(b.Dy()) * 2
		w = int(math.Floor(float64(h) * aspect))
	}
	return max(w, 1), max(h, 1)
}

// Render writes img to w as ASCII art.
func Render(w io.Writer, img image.Image, o Options) error {
	if o.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", o.Height)
	}
	if o.HasWidth && o.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", o.Width)
	}
	ramp, ok := ramps[o.Detail]
	if !ok {
		return fmt.Errorf("unknown detail level %v", o.Detail)
	}

	cols, rows := Size(img.Bounds(), o)
	px := sample(img, cols, rows, o.Quantize)
	colored := o.ANSI || o.XTerm

	pad := ""
	if o.Center && o.TermWidth > cols {
		pad = strings.Repeat(" ", (o.TermWidth-cols)/2)
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < rows; y++ {
		bw.WriteString(pad)
		for x := 0; x < cols; x++ {
			p := px[y*cols+x]
			switch {
			case o.XTerm:
				fmt.Fprintf(bw, "\x1b[38;5;%dm", RGBToXterm(p.R, p.G, p.B))
			case o.ANSI:
				bw.WriteString(ansiCode(p))
			}
			if g, ok := edgeGlyph(px, cols, rows, x, y); ok {
				bw.WriteByte(g)
				continue
			}
			i := int(math.Floor(lightness(p) * float64(len(ramp)-1)))
			bw.WriteByte(ramp[min(i, len(ramp)-1)])
		}
		if colored {
			bw.WriteString("\x1b[0m")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// sample scales img to cols x rows by nearest-neighbour lookup.
func sample(img image.Image, cols, rows, levels int) []color.NRGBA {
	b := img.Bounds()
	out := make([]color.NRGBA, cols*rows)
	for y := 0; y < rows; y++ {
		sy := b.Min.Y + y*b.Dy()/rows
		for x := 0; x < cols; x++ {
			sx := b.Min.X + x*b.Dx()/cols
			p := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			if levels > 1 {
				p.R, p.G, p.B = quantize(p.R, levels), quantize(p.G, levels), quantize(p.B, levels)
			}
			out[y*cols+x] = p
		}
	}
	return out
}

func quantize(v uint8, levels int) uint8 {
	step := 255.0 / float64(levels-1)
	return uint8(math.Round(math.Round(float64(v)/step) * step))
}

func lightness(p color.NRGBA) float64 {
	return 0.2126*float64(p.R)/255 + 0.7152*float64(p.G)/255 + 0.0722*float64(p.B)/255
}

// edgeGlyph applies a Sobel operator at (x, y) and returns the glyph for
// the gradient direction when the gradient is strong enough.
func edgeGlyph(px []color.NRGBA, cols, rows, x, y int) (byte, bool) {
	if x == 0 || y == 0 || x == cols-1 || y == rows-1 {
		return 0, false
	}
	l := func(dx, dy int) float64 { return lightness(px[(y+dy)*cols+x+dx]) }
	gx := -l(-1, -1) + l(1, -1) - 2*l(-1, 0) + 2*l(1, 0) - l(-1, 1) + l(1, 1)
	gy := -l(-1, -1) - 2*l(0, -1) - l(1, -1) + l(-1, 1) + 2*l(0, 1) + l(1, 1)
	if math.Hypot(gx, gy) <= edgeThreshold {
		return 0, false
	}
	o := math.Atan2(gy, gx)
	i := int(math.Round(o/math.Pi*3.5+8)) % len(edges)
	return edges[i], true
}

// ansiCode picks one of six hues for saturated pixels and resets for grey
// ones.
func ansiCode(p color.NRGBA) string {
	r, g, b := float64(p.R)/255, float64(p.G)/255, float64(p.B)/255
	cmax := math.Max(math.Max(r, g), b)
	cmin := math.Min(math.Min(r, g), b)
	l := (cmax + cmin) / 2
	dc := (cmax - cmin) / 2
	if dc == 0 {
		return "\x1b[0m"
	}
	var s float64
	if l < 0.5 {
		s = dc / (cmax + cmin)
	} else {
		s = dc / (2 - cmax - cmin)
	}
	if s <= 0.1 {
		return "\x1b[0m"
	}
	var h float64
	switch cmax {
	case r:
		h = math.Mod((g-b)/dc, 6)
	case g:
		h = (b-r)/dc + 2
	default:
		h = (r-g)/dc + 4
	}
	i := int(math.Round(h+5.5)) % 6
	if i < 0 {
		i += 6
	}
	if l > 0.7 {
		return fmt.Sprintf("\x1b[0;%dm", hueColorsHigh[i])
	}
	return fmt.Sprintf("\x1b[0;%dm", hueColors[i])
}

// RGBToXterm maps a colour onto the nearest entry of the xterm 256-colour
// palette, choosing between the 6x6x6 cube and the grey ramp.
func RGBToXterm(r, g, b uint8) uint8 {
	idx := func(v uint8) int {
		switch {
		case v < 48:
			return 0
		case v < 115:
			return 1
		}
		return (int(v) - 35) / 40
	}
	level := func(i int) int {
		if i == 0 {
			return 0
		}
		return 55 + i*40
	}
	ri, gi, bi := idx(r), idx(g), idx(b)
	cube := 16 + 36*ri + 6*gi + bi

	avg := (int(r) + int(g) + int(b)) / 3
	grayIdx := 23
	if avg <= 238 {
		grayIdx = max((avg-3)/10, 0)
	}
	gray := 232 + grayIdx
	grayLevel := 8 + grayIdx*10

	sq := func(v int) int { return v * v }
	cubeDist := sq(int(r)-level(ri)) + sq(int(g)-level(gi)) + sq(int(b)-level(bi))
	grayDist := sq(int(r)-grayLevel) + sq(int(g)-grayLevel) + sq(int(b)-grayLevel)
	if grayDist < cubeDist {
		return uint8(gray)
	}
	return uint8(cube)
}
