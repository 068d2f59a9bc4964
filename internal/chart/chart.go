// Package chart renders trend and radar projections to PNG images. It
// defines its own input shapes so it stays a leaf capability: callers map
// report projections into them and the package knows nothing else.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Dataset is one line of a trend chart. Points align with the input labels;
// nil marks a gap and the pen lifts instead of interpolating.
type Dataset struct {
	Label  string
	Points []*float64
}

// TrendInput feeds RenderTrend.
type TrendInput struct {
	Labels   []string
	Datasets []Dataset
}

// RadarInput feeds RenderRadar. Labels and Values run in lockstep.
type RadarInput struct {
	Labels []string
	Values []float64
}

const (
	chartWidth  = 800
	chartHeight = 480
	margin      = 56.0

	// Ratings run 1..5; the axes are fixed so charts stay comparable
	// across ranges.
	axisMin = 0.0
	axisMax = 5.0
)

// palette cycles across datasets and radar axes.
var palette = []color.Color{
	hex("#1A9EAD"),
	hex("#FF7E36"),
	hex("#4CAF50"),
	hex("#9C27B0"),
	hex("#FF5722"),
	hex("#3F51B5"),
	hex("#FFC107"),
	hex("#607D8B"),
}

func hex(s string) color.Color {
	var r, g, b uint8
	fmt.Sscanf(s, "#%02X%02X%02X", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Filename derives the image name written next to an export or report:
// <base>-<yyyy-mm-dd>.png.
func Filename(base string, now time.Time) string {
	return fmt.Sprintf("%s-%s.png", base, now.Format("2006-01-02"))
}

// RenderTrend draws a multi-series line chart over time. Gaps in a series
// break the line; single isolated points render as dots.
func RenderTrend(in TrendInput) ([]byte, error) {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(chartWidth) - 2*margin
	plotH := float64(chartHeight) - 2*margin

	// horizontal gridlines at each integer rating
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	for v := axisMin; v <= axisMax; v++ {
		y := margin + plotH*(1-(v-axisMin)/(axisMax-axisMin))
		dc.DrawLine(margin, y, margin+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", v), margin-8, y, 1, 0.5)
		dc.SetRGBA(0, 0, 0, 0.15)
	}

	xAt := func(i int) float64 {
		if len(in.Labels) <= 1 {
			return margin + plotW/2
		}
		return margin + plotW*float64(i)/float64(len(in.Labels)-1)
	}
	yAt := func(v float64) float64 {
		return margin + plotH*(1-(v-axisMin)/(axisMax-axisMin))
	}

	// x labels, thinned so they never overlap
	step := 1
	if len(in.Labels) > 12 {
		step = (len(in.Labels) + 11) / 12
	}
	dc.SetRGB(0.2, 0.2, 0.2)
	for i, lbl := range in.Labels {
		if i%step != 0 {
			continue
		}
		dc.DrawStringAnchored(lbl, xAt(i), margin+plotH+14, 0.5, 0.5)
	}

	for di, ds := range in.Datasets {
		c := palette[di%len(palette)]
		dc.SetColor(c)
		dc.SetLineWidth(2)

		penDown := false
		for i, p := range ds.Points {
			if p == nil {
				if penDown {
					dc.Stroke()
					penDown = false
				}
				continue
			}
			x, y := xAt(i), yAt(*p)
			if penDown {
				dc.LineTo(x, y)
			} else {
				dc.MoveTo(x, y)
				penDown = true
			}
		}
		if penDown {
			dc.Stroke()
		}
		for i, p := range ds.Points {
			if p == nil {
				continue
			}
			dc.DrawCircle(xAt(i), yAt(*p), 3)
			dc.Fill()
		}

		// legend entry
		lx := margin + float64(di)*140
		ly := 24.0
		dc.DrawRectangle(lx, ly-5, 10, 10)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(truncate(ds.Label, 18), lx+16, ly, 0, 0.5)
	}

	return encode(dc)
}

// RenderRadar draws a filled polygon over one axis per label, scaled 0..5
// from the center outward.
func RenderRadar(in RadarInput) ([]byte, error) {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx := float64(chartWidth) / 2
	cy := float64(chartHeight) / 2
	radius := math.Min(cx, cy) - margin
	n := len(in.Labels)
	if n == 0 {
		return encode(dc)
	}

	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i int, v float64) (float64, float64) {
		r := radius * v / axisMax
		return cx + r*math.Cos(angle(i)), cy + r*math.Sin(angle(i))
	}

	// concentric guide rings at each integer rating
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	for ring := 1.0; ring <= axisMax; ring++ {
		for i := 0; i <= n; i++ {
			x, y := point(i%n, ring)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}

	// spokes and labels
	for i, lbl := range in.Labels {
		x, y := point(i, axisMax)
		dc.SetRGBA(0, 0, 0, 0.15)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		lx := cx + (radius+18)*math.Cos(angle(i))
		ly := cy + (radius+18)*math.Sin(angle(i))
		dc.DrawStringAnchored(truncate(lbl, 22), lx, ly, 0.5, 0.5)
	}

	// value polygon
	fill := hex("#1A9EAD")
	r, g, b, _ := fill.RGBA()
	dc.SetRGBA(float64(r)/65535, float64(g)/65535, float64(b)/65535, 0.35)
	for i := 0; i < n; i++ {
		x, y := point(i, clamp(in.Values[i]))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.FillPreserve()
	dc.SetColor(fill)
	dc.SetLineWidth(2)
	dc.Stroke()

	for i := 0; i < n; i++ {
		x, y := point(i, clamp(in.Values[i]))
		dc.DrawCircle(x, y, 3)
		dc.Fill()
	}

	return encode(dc)
}

func clamp(v float64) float64 {
	if v < axisMin {
		return axisMin
	}
	if v > axisMax {
		return axisMax
	}
	return v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("chart: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
