package internal

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/quillback/cadgeom/dbg"
)

// This is for debugging purposes only. Drawing is something you call on a
// value you hold; no global hook is ever consulted, and the relation
// classifier itself knows nothing about any of this.

// Padding around the shape so markers at the hull aren't clipped
const dbgDrawPadding = 100

// DbgString colors the relation by how much trust it deserves: crossings
// green, the tolerance-dependent parallel outcomes cyan, rejections red.
func (r Relation) DbgString() string {
	switch r.Kind {
	case CrossFromRight, CrossFromLeft:
		return aurora.Green(fmt.Sprintf("%v(%0.6g, %0.6g)", r.Kind, r.ParamA, r.ParamB)).String()
	case Colinear, Parallel:
		return aurora.Cyan(r.Kind.String()).String()
	}
	return aurora.Red(r.Kind.String()).String()
}

// DbgName gives a segment a stable readable name for debug output. Names
// are keyed by value, so rebuilding a segment slice from the same geometry
// yields the same names.
func (s Segment) DbgName() string {
	return dbg.Name(s)
}

// Helper to draw a polyline and its self-intersections in the terminal
// (iTerm only) for debugging.
func (pl Polyline) dbgDraw(scale float64, snap float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range pl.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// The polyline itself
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	c.MoveTo(pl.Points[0].X, pl.Points[0].Y)
	for _, p := range pl.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()

	// Segment boxes, expanded the same way the prefilter expands them
	segments := pl.Segments()
	c.SetLineWidth(1)
	c.SetRGB(0.3, 0.3, 0.3)
	for i := range segments {
		box := segments[i].BBox().Expand(snap)
		c.DrawRectangle(box.Min.X, box.Min.Y, box.Max.X-box.Min.X, box.Max.Y-box.Min.Y)
	}
	c.Stroke()

	// Crossing markers
	c.SetRGB(1, 0, 0)
	for _, crossing := range pl.SelfIntersections(snap) {
		c.DrawCircle(crossing.At.X, crossing.At.Y, 4/scale)
		c.Fill()
		relation := Relate(segments[crossing.I], segments[crossing.J], snap)
		fmt.Printf("%s × %s %s at (%0.6g, %0.6g)\n",
			segments[crossing.I].DbgName(),
			segments[crossing.J].DbgName(),
			relation.DbgString(),
			crossing.At.X, crossing.At.Y,
		)
	}

	// Save to temp file
	c.SavePNG("/tmp/polyline.png")
	// Print to terminal
	imgcat.CatFile("/tmp/polyline.png", os.Stdout)
}
