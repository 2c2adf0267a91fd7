package cli

import "strings"

// glyphs are 3x5 bitmaps for the block digits.
var glyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {"..#", "..#", "..#", "..#", "..#"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	':': {".", "#", ".", "#", "."},
}

// digitScale maps the font size setting to horizontal and vertical cell
// multipliers. Terminal cells are about twice as tall as wide.
func digitScale(fontSize int) (sx, sy int) {
	sx = max(1, fontSize/20)
	sy = max(1, sx/2)

	return sx, sy
}

// bigText renders s with block glyphs. Runes without a glyph are skipped.
func bigText(s string, fontSize int) string {
	sx, sy := digitScale(fontSize)

	rows := make([]strings.Builder, 5*sy)

	first := true

	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}

		for gy, line := range g {
			for y := 0; y < sy; y++ {
				row := &rows[gy*sy+y]
				if !first {
					row.WriteString(strings.Repeat(" ", sx))
				}

				for _, px := range line {
					cell := " "
					if px == '#' {
						cell = "█"
					}

					row.WriteString(strings.Repeat(cell, sx))
				}
			}
		}

		first = false
	}

	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].String()
	}

	return strings.Join(out, "\n")
}
