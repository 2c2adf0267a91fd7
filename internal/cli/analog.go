package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellMark
	cellMajor
	cellHour
	cellMinute
	cellSecond
	cellCenter
)

// hand lengths as a fraction of the dial radius
const (
	hourHandLen   = 0.5
	minuteHandLen = 0.8
	secondHandLen = 0.95
)

var cellRunes = map[cellKind]string{
	cellEmpty:  " ",
	cellMark:   "·",
	cellMajor:  "◆",
	cellHour:   "█",
	cellMinute: "▒",
	cellSecond: "•",
	cellCenter: "◉",
}

// dial is a character canvas of an analog face. Columns are doubled so the
// face looks round in a terminal.
type dial struct {
	radius int
	cells  [][]cellKind
}

func newDial(radius int, hourAngle, minuteAngle, secondAngle float64) dial {
	d := dial{radius: radius, cells: make([][]cellKind, 2*radius+1)}
	for y := range d.cells {
		d.cells[y] = make([]cellKind, 4*radius+1)
	}

	for i := 0; i < 12; i++ {
		kind := cellMark
		if i%3 == 0 {
			kind = cellMajor
		}

		x, y := d.point(float64(i)*30, float64(radius))
		d.set(x, y, kind)
	}

	d.hand(hourAngle, hourHandLen, cellHour)
	d.hand(minuteAngle, minuteHandLen, cellMinute)
	d.hand(secondAngle, secondHandLen, cellSecond)

	cx, cy := d.point(0, 0)
	d.set(cx, cy, cellCenter)

	return d
}

// point converts a clockwise-from-12 angle and a distance in rows to a cell.
func (d dial) point(angle, dist float64) (x, y int) {
	rad := angle * math.Pi / 180
	cx, cy := 2*d.radius, d.radius

	x = cx + int(math.Round(math.Sin(rad)*dist*2))
	y = cy - int(math.Round(math.Cos(rad)*dist))

	return x, y
}

func (d dial) set(x, y int, kind cellKind) {
	if y < 0 || y >= len(d.cells) || x < 0 || x >= len(d.cells[y]) {
		return
	}

	d.cells[y][x] = kind
}

func (d dial) hand(angle, length float64, kind cellKind) {
	reach := length * float64(d.radius)
	steps := 4 * d.radius

	for i := 1; i <= steps; i++ {
		x, y := d.point(angle, reach*float64(i)/float64(steps))
		d.set(x, y, kind)
	}
}

func (d dial) at(x, y int) cellKind {
	return d.cells[y][x]
}

// render paints the canvas, grouping runs of equal cells into one styled span.
func (d dial) render(p palette) string {
	styles := map[cellKind]lipgloss.Style{
		cellEmpty:  lipgloss.NewStyle(),
		cellMark:   p.subtle(),
		cellMajor:  p.text(),
		cellHour:   p.text(),
		cellMinute: p.text(),
		cellSecond: lipgloss.NewStyle().Foreground(p.accent),
		cellCenter: lipgloss.NewStyle().Foreground(p.accent),
	}

	lines := make([]string, len(d.cells))

	for y, row := range d.cells {
		var b strings.Builder

		for x := 0; x < len(row); {
			kind := row[x]

			end := x
			for end < len(row) && row[end] == kind {
				end++
			}

			b.WriteString(styles[kind].Render(strings.Repeat(cellRunes[kind], end-x)))
			x = end
		}

		lines[y] = b.String()
	}

	return strings.Join(lines, "\n")
}
