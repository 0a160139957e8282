package viewer

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	// Codecs for the formats the content source serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const imageFetchTimeout = 20 * time.Second

// fetchImage pulls and decodes one frame image. Failures are reported
// to the model as a broken frame, never as a user-visible error.
func fetchImage(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: imageFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// renderImage rasterizes img into a w×h cell block using half-block
// runes, two sample rows per cell. FitContain scales the whole image
// inside the box; FitCover center-crops the source to the box aspect
// first. The returned block may be smaller than w×h for FitContain; the
// caller centers it.
func renderImage(img image.Image, w, h int, fit FitMode) string {
	if img == nil || w < 1 || h < 1 {
		return ""
	}

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return ""
	}

	// Dot grid: one cell is one dot wide and two dots tall.
	dotW, dotH := w, h*2

	crop := b
	switch fit {
	case FitContain:
		// Shrink the dot grid to the image aspect instead of cropping.
		if srcW*dotH > srcH*dotW {
			dotH = srcH * dotW / srcW
		} else {
			dotW = srcW * dotH / srcH
		}
		if dotW < 1 {
			dotW = 1
		}
		if dotH < 2 {
			dotH = 2
		}
	default:
		// Center-crop the source to the dot-grid aspect.
		if srcW*dotH > srcH*dotW {
			cw := srcH * dotW / dotH
			x0 := b.Min.X + (srcW-cw)/2
			crop = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
		} else {
			ch := srcW * dotH / dotW
			y0 := b.Min.Y + (srcH-ch)/2
			crop = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
		}
	}

	rows := dotH / 2
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < dotW; col++ {
			top := sampleRegion(img, crop, col, row*2, dotW, dotH)
			bottom := sampleRegion(img, crop, col, row*2+1, dotW, dotH)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			sb.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// sampleRegion averages the source pixels that map onto one dot of the
// target grid.
func sampleRegion(img image.Image, crop image.Rectangle, dx, dy, dotW, dotH int) colorful.Color {
	x0 := crop.Min.X + dx*crop.Dx()/dotW
	x1 := crop.Min.X + (dx+1)*crop.Dx()/dotW
	y0 := crop.Min.Y + dy*crop.Dy()/dotH
	y1 := crop.Min.Y + (dy+1)*crop.Dy()/dotH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, b float64
	var n float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += float64(pr) / 0xffff
			g += float64(pg) / 0xffff
			b += float64(pb) / 0xffff
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: r / n, G: g / n, B: b / n}.Clamped()
}
