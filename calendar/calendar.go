// Copyright 2025 The Plotbook Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar renders calendar heat maps with gonum/plot.
//
// A calendar heat map places one cell per day on a week-column,
// weekday-row grid, colored by that day's value. The grid geometry is
// fixed by the calendar rather than by the data, which is why this is
// the one chart in the notebook drawn with a custom plotter instead of
// the grammar: a tile layer can place rectangles at data coordinates,
// but it cannot derive the week/weekday lattice for you.
package calendar

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Heatmap is a plot.Plotter that draws one colored cell per day.
// Weeks run top-to-bottom Sunday through Saturday, one column per
// week, GitHub-contribution-graph style. Days absent from Dates are
// simply not drawn.
type Heatmap struct {
	// Dates and Values give the day and magnitude of each cell.
	Dates  []time.Time
	Values []float64

	// Low and High are the ramp endpoints for the smallest and
	// largest value.
	Low, High color.Color

	// Gap is the padding between adjacent cells. It defaults to 1pt.
	Gap vg.Length

	origin   time.Time
	min, max float64
}

// NewHeatmap returns a Heatmap over the given days. Dates and values
// must be the same length and non-empty.
func NewHeatmap(dates []time.Time, values []float64) (*Heatmap, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("%d dates but %d values", len(dates), len(values))
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no days to draw")
	}

	h := &Heatmap{
		Dates:  dates,
		Values: values,
		Low:    color.RGBA{0xeb, 0xed, 0xf0, 0xff},
		High:   color.RGBA{0x21, 0x6e, 0x39, 0xff},
		Gap:    vg.Points(1),
	}

	earliest := dates[0]
	h.min, h.max = values[0], values[0]
	for i, d := range dates {
		if d.Before(earliest) {
			earliest = d
		}
		if values[i] < h.min {
			h.min = values[i]
		}
		if values[i] > h.max {
			h.max = values[i]
		}
	}
	h.origin = sundayOnOrBefore(earliest)
	return h, nil
}

// midnightUTC drops d's time of day and zone. Grid positions depend
// only on the calendar date, and pinning every day to UTC keeps day
// arithmetic exact even when the input dates carry a DST-observing
// location, where a day can be 23 or 25 hours long.
func midnightUTC(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func sundayOnOrBefore(d time.Time) time.Time {
	d = midnightUTC(d)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// cell maps a date to its (week column, weekday row) grid position.
// Row 0 is Sunday and rows grow downward in screen terms, so the
// returned row is inverted when plotted.
func (h *Heatmap) cell(d time.Time) (week, weekday int) {
	days := int(midnightUTC(d).Sub(h.origin).Hours() / 24)
	return days / 7, days % 7
}

// DataRange implements plot.DataRanger.
func (h *Heatmap) DataRange() (xmin, xmax, ymin, ymax float64) {
	maxWeek := 0
	for _, d := range h.Dates {
		if w, _ := h.cell(d); w > maxWeek {
			maxWeek = w
		}
	}
	return -0.5, float64(maxWeek) + 0.5, -0.5, 6.5
}

// Plot implements plot.Plotter.
func (h *Heatmap) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, d := range h.Dates {
		week, weekday := h.cell(d)
		// Row 0 (Sunday) goes at the top.
		x, y := float64(week), float64(6-weekday)

		x0, x1 := trX(x-0.5)+h.Gap, trX(x+0.5)-h.Gap
		y0, y1 := trY(y-0.5)+h.Gap, trY(y+0.5)-h.Gap
		c.FillPolygon(h.ramp(h.Values[i]), []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		})
	}
}

// ramp linearly interpolates between Low and High.
func (h *Heatmap) ramp(v float64) color.Color {
	t := 0.0
	if h.max > h.min {
		t = (v - h.min) / (h.max - h.min)
	}
	lr, lg, lb, la := h.Low.RGBA()
	hr, hg, hb, ha := h.High.RGBA()
	lerp := func(a, b uint32) uint8 {
		return uint8((float64(a) + t*(float64(b)-float64(a))) / 0x101)
	}
	return color.RGBA{lerp(lr, hr), lerp(lg, hg), lerp(lb, hb), lerp(la, ha)}
}

// WritePNG renders p to w as a PNG of the given size.
func WritePNG(p *plot.Plot, w io.Writer, width, height vg.Length) error {
	img := vgimg.New(width, height)
	p.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}
