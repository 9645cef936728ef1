package colorbook

import (
	"image"
	"image/color"
)

// FillStrategy selects the traversal used by FloodFill.
// All strategies recolor exactly the same pixels.
type FillStrategy uint8

const (
	// FillWorklist is a FIFO worklist with no visited set. Every popped
	// coordinate is re-checked against the source color, so a pixel that
	// was enqueued several times is recolored once and the later pops are
	// skipped. At most four pushes happen per recolored pixel.
	FillWorklist FillStrategy = iota

	// FillVisited marks coordinates when they are enqueued, so each pixel
	// enters the worklist at most once. It trades a W*H bitmap for fewer
	// queue operations.
	FillVisited
)

// String returns a string representation of the strategy.
func (s FillStrategy) String() string {
	switch s {
	case FillWorklist:
		return "Worklist"
	case FillVisited:
		return "Visited"
	default:
		return "Unknown"
	}
}

// FloodFill recolors the 4-connected region of pixels that share the exact
// color of the seed pixel (x, y), using the FillWorklist strategy.
// It returns the number of recolored pixels, which is zero when the seed is
// out of range or already has color c.
func FloodFill(p *Pixmap, x, y int, c color.NRGBA) int {
	return FloodFillWith(p, x, y, c, FillWorklist)
}

// FloodFillWith is FloodFill with an explicit traversal strategy.
// Unknown strategies use FillWorklist.
func FloodFillWith(p *Pixmap, x, y int, c color.NRGBA, s FillStrategy) int {
	if !p.InBounds(x, y) {
		return 0
	}
	source := p.GetPixel(x, y)
	if source == c {
		return 0
	}
	if s == FillVisited {
		return fillVisited(p, x, y, source, c)
	}
	return fillWorklist(p, x, y, source, c)
}

// neighbors4 are the up/down/left/right offsets.
var neighbors4 = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func fillWorklist(p *Pixmap, x, y int, source, c color.NRGBA) int {
	queue := []image.Point{{x, y}}
	n := 0
	for head := 0; head < len(queue); head++ {
		pt := queue[head]
		if !p.InBounds(pt.X, pt.Y) || p.GetPixel(pt.X, pt.Y) != source {
			continue
		}
		p.SetPixel(pt.X, pt.Y, c)
		n++
		for _, d := range neighbors4 {
			queue = append(queue, pt.Add(d))
		}
		// Reclaim the consumed prefix once it dominates the slice.
		if head > 4096 && head > len(queue)/2 {
			queue = append(queue[:0], queue[head+1:]...)
			head = -1
		}
	}
	return n
}

func fillVisited(p *Pixmap, x, y int, source, c color.NRGBA) int {
	w, h := p.Width(), p.Height()
	visited := make([]bool, w*h)
	visited[y*w+x] = true

	queue := []image.Point{{x, y}}
	n := 0
	for head := 0; head < len(queue); head++ {
		pt := queue[head]
		if p.GetPixel(pt.X, pt.Y) != source {
			continue
		}
		p.SetPixel(pt.X, pt.Y, c)
		n++
		for _, d := range neighbors4 {
			q := pt.Add(d)
			if q.X < 0 || q.X >= w || q.Y < 0 || q.Y >= h || visited[q.Y*w+q.X] {
				continue
			}
			visited[q.Y*w+q.X] = true
			queue = append(queue, q)
		}
	}
	return n
}
