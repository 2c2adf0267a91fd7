package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/render"
	"github.com/inovacc/clockr/internal/settings"
)

// flashDuration is two 1.2s highlight pulses.
const flashDuration = 2400 * time.Millisecond

const fontStep = 4

// TickMsg carries the time of one render loop tick into the program.
type TickMsg struct{ Now time.Time }

type flashEndMsg struct{ seq int }

type overlay int

const (
	overlayNone overlay = iota
	overlayZones
	overlayConfigure
)

// ClockModel is the interactive clock. All settings changes go through
// apply, which validates, saves and redraws.
type ClockModel struct {
	ctx      context.Context
	store    *settings.Store
	renderer *render.Renderer
	logger   *slog.Logger

	settings model.Settings
	frame    render.Frame
	hasFrame bool

	keys         keyMap
	help         help.Model
	terminalDark bool
	width        int
	height       int

	flashing bool
	flashSeq int

	status    string
	statusErr bool

	overlay    overlay
	picker     ZonePickerModel
	form       ConfigureModel
	zones      []string
	exportPath string
}

// NewClockModel loads the stored settings and prepares the view. zones is the
// catalog offered by the zone picker.
func NewClockModel(ctx context.Context, store *settings.Store, renderer *render.Renderer, zones []string) ClockModel {
	return ClockModel{
		ctx:          ctx,
		store:        store,
		renderer:     renderer,
		logger:       slog.Default(),
		settings:     store.Load(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		terminalDark: lipgloss.HasDarkBackground(),
		zones:        zones,
	}
}

// WithLogger sets the logger for the model
func (m ClockModel) WithLogger(logger *slog.Logger) ClockModel {
	m.logger = logger
	return m
}

// WithExportPath sets where the export key writes; "" uses the default name.
func (m ClockModel) WithExportPath(path string) ClockModel {
	m.exportPath = path
	return m
}

// Settings returns the settings currently applied.
func (m ClockModel) Settings() model.Settings {
	return m.settings
}

func (m ClockModel) Init() tea.Cmd {
	return nil
}

func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.tick(msg.Now)

	case flashEndMsg:
		if msg.seq == m.flashSeq {
			m.flashing = false
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

		if m.overlay == overlayZones {
			return m.updatePicker(msg)
		}

		return m, nil

	case zonePickedMsg:
		m.overlay = overlayNone

		next := m.settings
		next.TZ = msg.zone

		return m.apply(next)

	case pickerClosedMsg, configureCancelMsg:
		m.overlay = overlayNone
		return m, nil

	case configureSubmitMsg:
		m.overlay = overlayNone
		return m.apply(msg.settings)
	}

	switch m.overlay {
	case overlayZones:
		return m.updatePicker(msg)
	case overlayConfigure:
		form, cmd := m.form.Update(msg)
		m.form = form.(ConfigureModel)

		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ClockModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	picker, cmd := m.picker.Update(msg)
	m.picker = picker.(ZonePickerModel)

	return m, cmd
}

func (m ClockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next := m.settings

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		next.Theme = next.Theme.Next()
	case key.Matches(msg, m.keys.Mode):
		next.Mode = next.Mode.Next()
	case key.Matches(msg, m.keys.Format):
		next.Format = next.Format.Toggle()
	case key.Matches(msg, m.keys.Seconds):
		next.ShowSeconds = !next.ShowSeconds
	case key.Matches(msg, m.keys.Date):
		next.DateStyle = next.DateStyle.Next()
	case key.Matches(msg, m.keys.Bigger):
		next.FontSize = min(next.FontSize+fontStep, model.MaxFontSize)
	case key.Matches(msg, m.keys.Smaller):
		next.FontSize = max(next.FontSize-fontStep, model.MinFontSize)
	case key.Matches(msg, m.keys.Alarm):
		next.Alarm.Enabled = !next.Alarm.Enabled
	case key.Matches(msg, m.keys.Zones):
		m.picker = NewZonePicker(m.zones, m.settings.TZ).embedded()
		if m.width > 0 {
			m.picker.list.SetWidth(m.width)
		}

		m.overlay = overlayZones

		return m, nil
	case key.Matches(msg, m.keys.Settings):
		m.form = newConfigureForm(m.settings)
		m.overlay = overlayConfigure

		return m, m.form.Init()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Export):
		return m.export()
	default:
		return m, nil
	}

	return m.apply(next)
}

// apply validates next, makes it current, persists it and redraws. An invalid
// record leaves the current settings in place.
func (m ClockModel) apply(next model.Settings) (tea.Model, tea.Cmd) {
	if err := settings.Validate(next); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.settings = next
	m.status = ""

	if err := m.store.Save(next); err != nil {
		m.logger.Warn("failed to persist settings", "error", err)
		m.setStatus("not saved: "+err.Error(), true)
	}

	return m.redraw()
}

func (m ClockModel) reset() (tea.Model, tea.Cmd) {
	def, err := m.store.Reset()
	if err != nil {
		m.logger.Warn("failed to clear stored settings", "error", err)
	}

	m.settings = def
	m.setStatus("settings reset to defaults", false)

	return m.redraw()
}

func (m ClockModel) export() (tea.Model, tea.Cmd) {
	path, err := m.store.ExportFile(m.exportPath, m.settings)
	if err != nil {
		m.setStatus("export failed: "+err.Error(), true)
		return m, nil
	}

	m.setStatus("exported to "+path, false)

	return m, nil
}

func (m *ClockModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// redraw recomputes the frame for the last tick so a settings change shows
// without waiting for the loop.
func (m ClockModel) redraw() (tea.Model, tea.Cmd) {
	if !m.hasFrame {
		return m, nil
	}

	return m.tick(m.frame.Now)
}

func (m ClockModel) tick(now time.Time) (tea.Model, tea.Cmd) {
	m.frame = m.renderer.Tick(m.ctx, now, m.settings)
	m.hasFrame = true

	if !m.frame.AlarmFired {
		return m, nil
	}

	m.flashing = true
	m.flashSeq++
	seq := m.flashSeq

	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashEndMsg{seq: seq}
	})
}

func (m ClockModel) View() string {
	switch m.overlay {
	case overlayZones:
		return m.picker.View()
	case overlayConfigure:
		return m.form.View()
	}

	p := newPalette(m.settings.Theme, m.settings.Accent, m.terminalDark)

	if !m.hasFrame {
		return p.subtle().Render("\n  starting clock…\n")
	}

	var panels []string

	if m.settings.ShowDigital() {
		panels = append(panels, m.digitalPanel(p))
	}

	if m.settings.ShowAnalog() {
		panels = append(panels, m.analogPanel(p))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(panels, "  ")...)
	if m.width > 0 && lipgloss.Width(body) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Center, panels...)
	}

	lines := []string{body, m.infoLine(p)}

	if m.status != "" {
		style := p.subtle()
		if m.statusErr {
			style = p.errorText()
		}

		lines = append(lines, style.Render(m.status))
	}

	lines = append(lines, m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Center, lines...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}

	return view
}

func (m ClockModel) digitalPanel(p palette) string {
	f := m.frame
	digits := p.digits(m.flashing)

	clock := digits.Render(bigText(f.Hour+":"+f.Minute, m.settings.FontSize))

	var right []string

	if m.settings.ShowSeconds {
		right = append(right, digits.Render(bigText(f.Second, m.settings.FontSize/2)))
	}

	if f.DayPeriod != "" {
		right = append(right, p.accented().Render(f.DayPeriod))
	}

	if len(right) > 0 {
		clock = lipgloss.JoinHorizontal(lipgloss.Bottom, clock, "  ", lipgloss.JoinVertical(lipgloss.Left, right...))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, clock, "", p.text().Render(f.Date))

	return p.panelStyle(m.flashing).Render(content)
}

func (m ClockModel) analogPanel(p palette) string {
	f := m.frame
	d := newDial(dialRadius(m.settings.FontSize), f.HourAngle, f.MinuteAngle, f.SecondAngle)

	return p.panelStyle(false).Render(d.render(p))
}

func (m ClockModel) infoLine(p palette) string {
	info := p.subtle().Render(m.frame.Zone)

	switch {
	case m.frame.AlarmFired || m.flashing:
		info += "  " + p.accented().Render("⏰ "+m.settings.Alarm.Time)
	case m.settings.Alarm.Enabled && m.settings.Alarm.Time != "":
		info += "  " + p.text().Render(fmt.Sprintf("alarm %s", m.settings.Alarm.Time))
	case m.settings.Alarm.Enabled:
		info += "  " + p.subtle().Render("alarm on, no time set")
	}

	return info
}

// dialRadius sizes the analog face to roughly match the digits.
func dialRadius(fontSize int) int {
	return min(max(fontSize/8, 4), 12)
}

func joinWithGap(parts []string, gap string) []string {
	out := make([]string, 0, 2*len(parts))

	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}

		out = append(out, p)
	}

	return out
}
