// Package cli provides the terminal user interface for clockr.
//
// The package uses [Bubbletea] for the Model-View-Update loop and [Lipgloss]
// for styling. The render loop runs outside the program and delivers
// [TickMsg] values through Program.Send, so every piece of state is owned by
// the Update goroutine.
//
// # Components
//
//   - ClockModel: digital and analog clock with key-driven settings changes
//   - ZonePickerModel: filterable timezone list, standalone or embedded
//   - ConfigureModel: form for accent, font size, timezone and alarm
//
// # Keys
//
// The clock view binds t (theme), m (mode), f (12/24h), s (seconds),
// d (date style), +/- (font size), z (timezone), a (alarm), c (configure),
// r (reset), e (export), ? (help) and q (quit). Every change is validated,
// applied and saved immediately.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
