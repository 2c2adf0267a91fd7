package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/clockr/internal/model"
	"github.com/inovacc/clockr/internal/settings"
)

const fmtV1 = " %s\n %s\n\n"

var (
	focusedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle        = focusedStyle
	noStyle            = lipgloss.NewStyle()
	helpStyleConfigure = blurredStyle

	focusedButton = focusedStyle.Render("[ Save ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Save"))
)

// configureFields are the settings keys edited by the form, in input order.
var configureFields = []struct {
	key         string
	label       string
	placeholder string
	limit       int
}{
	{"accent", "Accent color:", "#5b9dff", 7},
	{"fontSize", fmt.Sprintf("Font size (%d-%d):", model.MinFontSize, model.MaxFontSize), "40", 3},
	{"tz", "Timezone:", "Europe/Paris", 64},
	{"alarm.time", "Alarm time (HH:MM, empty for none):", "07:30", 5},
	{"alarm.enabled", "Alarm enabled (true/false):", "false", 5},
}

type configureSubmitMsg struct{ settings model.Settings }

type configureCancelMsg struct{}

type successMsg struct{}

type errMsg struct{ err error }

// ConfigureModel edits the free-form settings. Standalone it saves through
// the store and quits; embedded in the clock view it hands the validated
// record back to its parent.
type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	base       model.Settings
	store      *settings.Store
	invalid    error
	Result     model.Settings
	Saved      bool
	Err        error
}

// NewConfigureModel creates a standalone form saving to store.
func NewConfigureModel(store *settings.Store) ConfigureModel {
	m := newConfigureForm(store.Load())
	m.store = store

	return m
}

func newConfigureForm(base model.Settings) ConfigureModel {
	m := ConfigureModel{
		inputs: make([]textinput.Model, len(configureFields)),
		base:   base,
	}

	for i, f := range configureFields {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.Placeholder = f.placeholder
		t.CharLimit = f.limit

		value, _ := base.Get(f.key)
		t.SetValue(value)

		if i == 0 {
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		}

		m.inputs[i] = t
	}

	return m
}

func (m ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.store != nil {
				return m, tea.Quit
			}

			return m, func() tea.Msg { return configureCancelMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m.submit()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only focused inputs react to keys.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

// collect applies every input over the base record. The first field that
// fails leaves the base untouched.
func (m ConfigureModel) collect() (model.Settings, error) {
	next := m.base

	for i, f := range configureFields {
		if err := next.Set(f.key, strings.TrimSpace(m.inputs[i].Value())); err != nil {
			return m.base, err
		}
	}

	if err := settings.Validate(next); err != nil {
		return m.base, err
	}

	return next, nil
}

func (m ConfigureModel) submit() (tea.Model, tea.Cmd) {
	next, err := m.collect()
	if err != nil {
		m.invalid = err
		return m, nil
	}

	m.invalid = nil
	m.Result = next

	if m.store == nil {
		return m, func() tea.Msg { return configureSubmitMsg{settings: next} }
	}

	return m, m.save(next)
}

func (m ConfigureModel) save(next model.Settings) tea.Cmd {
	store := m.store

	return func() tea.Msg {
		if err := store.Save(next); err != nil {
			return errMsg{err}
		}

		return successMsg{}
	}
}

func (m ConfigureModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render("\n  ✓ Settings saved\n\n")
	}

	if m.Err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render("Configure clock") + "\n"
	s += blurredStyle.Render("Edit the fields below and press Tab to navigate") + "\n\n"

	for i, f := range configureFields {
		s += fmt.Sprintf(fmtV1, blurredStyle.Render(f.label), m.inputs[i].View())
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)

	if m.invalid != nil {
		s += lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(" ✗ "+m.invalid.Error()) + "\n\n"
	}

	s += helpStyleConfigure.Render(" tab/shift+tab: navigate • enter: save • esc: cancel")

	return s
}

// RunConfigure shows the standalone form and reports whether it saved.
func RunConfigure(store *settings.Store) (bool, error) {
	p := tea.NewProgram(NewConfigureModel(store))

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	result := finalModel.(ConfigureModel)
	if result.Err != nil {
		return false, result.Err
	}

	return result.Saved, nil
}
