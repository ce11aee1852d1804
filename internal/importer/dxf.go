package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/LoadPack/internal/model"
)

// DXFPrefix labels loads read from a drawing.
const DXFPrefix = "D"

// pointTolerance is the maximum endpoint gap, in drawing units, for two
// points to count as the same corner.
const pointTolerance = 0.01

type point struct {
	x, y float64
}

// segment is a line between two points, used for chaining loose LINE
// entities into closed outlines.
type segment struct {
	start point
	end   point
}

// ImportDXF imports a load list from a DXF drawing. Each closed axis-aligned
// rectangle (a LWPOLYLINE or a chain of four LINEs) becomes one load; equal
// sizes are merged into a single line with a count, in order of first
// appearance. Other shapes are skipped with a warning.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment
	skipped := map[string]int{}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if hasBulge(e) {
				skipped["curved LWPOLYLINE"]++
				continue
			}
			pts := make([]point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				pts = append(pts, point{x: v[0], y: v[1]})
			}
			outlines = append(outlines, pts)

		case *entity.Line:
			segments = append(segments, segment{
				start: point{x: e.Start[0], y: e.Start[1]},
				end:   point{x: e.End[0], y: e.End[1]},
			})

		case *entity.Circle:
			skipped["CIRCLE"]++
		case *entity.Arc:
			skipped["ARC"]++
		}
	}

	outlines = append(outlines, chainSegments(segments, pointTolerance)...)

	for kind, n := range skipped {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d %s entities", n, kind))
	}

	index := map[[2]float64]int{}
	for _, o := range outlines {
		w, h, ok := rectangleSize(o, pointTolerance)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped non-rectangular outline with %d vertices", len(o)))
			continue
		}
		if w < pointTolerance || h < pointTolerance {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate rectangle (%.2f x %.2f)", w, h))
			continue
		}

		key := [2]float64{w, h}
		if i, seen := index[key]; seen {
			result.Loads[i].Count++
			continue
		}
		index[key] = len(result.Loads)
		result.Loads = append(result.Loads, model.LoadSpec{
			Prefix: DXFPrefix,
			Width:  w,
			Height: h,
			Count:  1,
		})
	}

	if len(result.Loads) == 0 {
		result.Errors = append(result.Errors, "No rectangles found in DXF file")
	}
	return result
}

func hasBulge(lw *entity.LwPolyline) bool {
	for _, b := range lw.Bulges {
		if math.Abs(b) > 1e-9 {
			return true
		}
	}
	return false
}

// rectangleSize reports the width and height of an outline if it is an
// axis-aligned rectangle. A repeated closing vertex is ignored.
func rectangleSize(o []point, tolerance float64) (float64, float64, bool) {
	if len(o) == 5 && pointsClose(o[0], o[4], tolerance) {
		o = o[:4]
	}
	if len(o) != 4 {
		return 0, 0, false
	}

	minX, minY := o[0].x, o[0].y
	maxX, maxY := o[0].x, o[0].y
	for _, p := range o[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}

	corners := []point{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
	for _, c := range corners {
		found := false
		for _, p := range o {
			if pointsClose(c, p, tolerance) {
				found = true
				break
			}
		}
		if !found {
			return 0, 0, false
		}
	}

	return round2(maxX - minX), round2(maxY - minY), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Open chains are not outlines
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	return outlines
}

func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}
