package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/quillback/cadgeom"
)

const snapTolerance = 1e-6

// Demo of segment relation classification. Input on stdin should be newline
// separated points in the form "x y", with each polyline separated by an
// extra newline. Each polyline is checked for self-intersections and the
// crossings are printed.
func main() {
	polylines := readPolylines(os.Stdin)
	fmt.Printf("Read %d polylines\n", len(polylines))
	for i, polyline := range polylines {
		crossings := polyline.SelfIntersections(snapTolerance)
		fmt.Printf("Polyline %d: %d points, %d self-intersections\n",
			i, len(polyline.Points), len(crossings))
		for _, crossing := range crossings {
			fmt.Printf("  segments %d and %d touch at (%g, %g)\n",
				crossing.I, crossing.J, crossing.At.X, crossing.At.Y)
		}
	}
}

func readPolylines(in *os.File) []Polyline {
	polylines := []Polyline{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []Point{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polyline
		if line == "" {
			if len(points) > 0 {
				polylines = append(polylines, Polyline{Points: points})
				points = []Point{}
			}
			continue
		}

		// Parse the point out of the line
		points = append(points, parsePoint(line))
	}

	// Handle trailing polyline if any
	if len(points) > 0 {
		polylines = append(polylines, Polyline{Points: points})
	}
	return polylines
}

func parsePoint(line string) Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return Point{X: x, Y: y}
}
