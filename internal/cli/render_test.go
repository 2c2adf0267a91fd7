package cli

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/clockr/internal/model"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitScale(t *testing.T) {
	tests := []struct {
		fontSize int
		wantX    int
		wantY    int
	}{
		{12, 1, 1},
		{20, 1, 1},
		{40, 2, 1},
		{80, 4, 2},
		{120, 6, 3},
	}

	for _, tt := range tests {
		sx, sy := digitScale(tt.fontSize)
		assert.Equal(t, tt.wantX, sx, "fontSize %d", tt.fontSize)
		assert.Equal(t, tt.wantY, sy, "fontSize %d", tt.fontSize)
	}
}

func TestBigText(t *testing.T) {
	lines := strings.Split(bigText("1", 20), "\n")
	require.Len(t, lines, 5)

	for _, l := range lines {
		assert.Equal(t, "  █", l)
	}

	lines = strings.Split(bigText("12:34", 20), "\n")
	require.Len(t, lines, 5)

	for _, l := range lines {
		assert.Equal(t, 17, utf8.RuneCountInString(l))
	}

	lines = strings.Split(bigText("8", 80), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, 12, utf8.RuneCountInString(lines[0]))
}

func TestBigText_SkipsUnknownRunes(t *testing.T) {
	assert.Equal(t, bigText("12", 20), bigText("1x2", 20))
}

func TestDial_Geometry(t *testing.T) {
	d := newDial(4, 90, 0, 180)

	require.Len(t, d.cells, 9)
	require.Len(t, d.cells[0], 17)

	assert.Equal(t, cellCenter, d.at(8, 4))

	// minute hand straight up, stopping short of the 12 o'clock mark
	assert.Equal(t, cellMinute, d.at(8, 3))
	assert.Equal(t, cellMinute, d.at(8, 1))
	assert.Equal(t, cellMajor, d.at(8, 0))

	// hour hand at three o'clock
	assert.Equal(t, cellHour, d.at(10, 4))
	assert.Equal(t, cellHour, d.at(12, 4))
	assert.Equal(t, cellEmpty, d.at(14, 4))
	assert.Equal(t, cellMajor, d.at(16, 4))

	// second hand straight down
	assert.Equal(t, cellSecond, d.at(8, 7))

	// one o'clock mark
	assert.Equal(t, cellMark, d.at(12, 1))
}

func TestDial_Render(t *testing.T) {
	p := newPalette(model.ThemeDark, model.DefaultAccent, true)
	out := newDial(5, 0, 0, 0).render(p)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 11)

	for _, l := range lines {
		assert.Equal(t, 21, lipgloss.Width(l))
	}

	assert.Contains(t, out, "◉")
}

func TestResolveDark(t *testing.T) {
	assert.True(t, resolveDark(model.ThemeDark, false))
	assert.False(t, resolveDark(model.ThemeLight, true))
	assert.True(t, resolveDark(model.ThemeAuto, true))
	assert.False(t, resolveDark(model.ThemeAuto, false))
}

func TestFlashColor(t *testing.T) {
	base, err := colorful.Hex(model.DefaultAccent)
	require.NoError(t, err)

	flash, err := colorful.Hex(flashColor(model.DefaultAccent))
	require.NoError(t, err)

	_, _, baseL := base.Hsl()
	_, _, flashL := flash.Hsl()
	assert.Greater(t, flashL, baseL)

	assert.Equal(t, "oops", flashColor("oops"))
}

func TestDialRadius(t *testing.T) {
	assert.Equal(t, 4, dialRadius(model.MinFontSize))
	assert.Equal(t, 5, dialRadius(40))
	assert.Equal(t, 12, dialRadius(model.MaxFontSize))
}
