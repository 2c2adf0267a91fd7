package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

// BellSender plays the terminal bell as the alarm tone.
type BellSender struct {
	mu    sync.Mutex
	w     io.Writer
	count int
}

// NewBellSender rings count bells on w per event.
func NewBellSender(w io.Writer, count int) *BellSender {
	if count < 1 {
		count = 1
	}

	return &BellSender{w: w, count: count}
}

func (b *BellSender) Name() string { return "bell" }

func (b *BellSender) Send(_ context.Context, _ *Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := io.WriteString(b.w, strings.Repeat("\a", b.count)); err != nil {
		return fmt.Errorf("ringing bell: %w", err)
	}

	return nil
}

// CommandSender runs an external player, e.g. "paplay /usr/share/sounds/alarm.oga".
type CommandSender struct {
	argv []string
}

// NewCommandSender splits command on whitespace. It returns nil for an empty command.
func NewCommandSender(command string) *CommandSender {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil
	}

	return &CommandSender{argv: argv}
}

func (c *CommandSender) Name() string { return "command" }

func (c *CommandSender) Send(ctx context.Context, event *Event) error {
	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Env = append(cmd.Environ(), "CLOCKR_EVENT="+event.Type, "CLOCKR_ALARM_TIME="+event.AlarmTime)

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %w: %s", c.argv[0], err, strings.TrimSpace(string(out)))
	}

	return nil
}

// LogSender records events in the structured log.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender writing to logger.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (l *LogSender) Name() string { return "log" }

func (l *LogSender) Send(_ context.Context, event *Event) error {
	l.logger.Info("alarm fired",
		"event", event.ID,
		"type", event.Type,
		"alarm_time", event.AlarmTime,
		"zone", event.Zone,
		"at", event.Timestamp)

	return nil
}
