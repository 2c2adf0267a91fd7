package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	currentZoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type zoneItem struct {
	name    string
	current bool
}

func (i zoneItem) FilterValue() string { return i.name }

type zoneDelegate struct{}

func (d zoneDelegate) Height() int                             { return 1 }
func (d zoneDelegate) Spacing() int                            { return 0 }
func (d zoneDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d zoneDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(zoneItem)
	if !ok {
		return
	}

	str := i.name
	if i.current {
		str += currentZoneStyle.Render(" (current)")
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// zonePickedMsg and pickerClosedMsg report the outcome of an embedded picker.
type zonePickedMsg struct{ zone string }

type pickerClosedMsg struct{}

// ZonePickerModel lists timezones and lets the user choose one. Standalone,
// it quits the program on a decision; embedded in the clock view it reports
// back with a message instead.
type ZonePickerModel struct {
	list       list.Model
	choice     string
	quitting   bool
	standalone bool
}

// NewZonePicker creates a picker over zones with current preselected.
func NewZonePicker(zones []string, current string) ZonePickerModel {
	items := make([]list.Item, len(zones))
	selected := 0

	for i, z := range zones {
		items[i] = zoneItem{name: z, current: z == current}
		if z == current {
			selected = i
		}
	}

	const defaultWidth = 40

	l := list.New(items, zoneDelegate{}, defaultWidth, 14)
	l.Title = "Timezone"
	l.SetShowStatusBar(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	l.Select(selected)

	return ZonePickerModel{list: l, standalone: true}
}

func (m ZonePickerModel) embedded() ZonePickerModel {
	m.standalone = false
	return m
}

func (m ZonePickerModel) Init() tea.Cmd {
	return nil
}

func (m ZonePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, m.done(pickerClosedMsg{})

		case "enter":
			i, ok := m.list.SelectedItem().(zoneItem)
			if !ok {
				return m, nil
			}

			m.choice = i.name

			return m, m.done(zonePickedMsg{zone: i.name})
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ZonePickerModel) done(msg tea.Msg) tea.Cmd {
	if m.standalone {
		return tea.Quit
	}

	return func() tea.Msg { return msg }
}

func (m ZonePickerModel) View() string {
	if m.standalone && (m.choice != "" || m.quitting) {
		return ""
	}

	return "\n" + m.list.View()
}

// Choice returns the picked zone, or "" if the picker was dismissed.
func (m ZonePickerModel) Choice() string {
	return m.choice
}

// RunZonePicker shows a standalone picker and returns the chosen zone.
func RunZonePicker(zones []string, current string) (string, error) {
	p := tea.NewProgram(NewZonePicker(zones, current))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(ZonePickerModel).Choice(), nil
}
