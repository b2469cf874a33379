package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polylines. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polyline is, then converts that into a Polyline. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polyline {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polyline
	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}
	polylineEl := polylines[0]

	pointString := polylineEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return Polyline{Points: points}
}

// Some ad hoc code specified fixtures

// SawtoothAcross is a long baseline followed by a sawtooth doubling back over
// it. Each full tooth edge crosses the baseline exactly once, so the polyline
// has exactly `teeth` self-intersections.
func SawtoothAcross(teeth int) Polyline {
	points := []Point{{0, 0}, {100, 0}}
	// Lead-in up to the first peak; shares an endpoint with the baseline, so
	// it never counts as a crossing.
	points = append(points, Point{X: 95, Y: 5})
	y := -5.0
	for i := 0; i < teeth; i++ {
		points = append(points, Point{X: 90 - 5*float64(i), Y: y})
		y = -y
	}
	return Polyline{Points: points}
}
