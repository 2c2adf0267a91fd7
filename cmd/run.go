package cmd

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clockr/internal/cli"
	"github.com/inovacc/clockr/internal/clock"
	"github.com/inovacc/clockr/internal/notify"
	"github.com/inovacc/clockr/internal/render"
	"github.com/inovacc/clockr/internal/settings"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	runPlain  bool
	runOnce   bool
	runExport string
)

// bellCount is how many bells one alarm rings.
const bellCount = 3

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the clock",
	Long: `Run the clock until interrupted.

When stdout is a terminal the interactive view starts; press ? inside it for
the key bindings. Otherwise, or with --plain, one line is printed each time
the displayed text changes.

Examples:
  clockr run
  clockr run --plain
  clockr run --once --tick 1s
  clockr run --export ~/clock-settings.json`,
	Args: cobra.NoArgs,
	RunE: runClock,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&runPlain, "plain", false, "Print plain lines instead of the interactive view")
	cmd.Flags().BoolVar(&runOnce, "once", false, "Print a single plain line and exit")
	cmd.Flags().StringVar(&runExport, "export", "", "File the export key writes (default ./"+settings.DefaultExportName+")")
}

func runClock(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	tty := cmd.OutOrStdout()
	out := &lockedWriter{w: tty}

	dispatcher := newDispatcher(out, true)
	defer dispatcher.Wait()

	renderer := render.NewRenderer(dispatcher).WithLogger(env.logger)

	if runOnce {
		return printOnce(ctx, out, renderer)
	}

	if runPlain || !isTerminal(tty) {
		return runPlainClock(ctx, out, renderer)
	}

	exportPath := runExport
	if exportPath != "" {
		p, err := expandPath(exportPath)
		if err != nil {
			return err
		}

		exportPath = p
	}

	return runInteractive(ctx, renderer, exportPath)
}

// newDispatcher returns the alarm outputs plus the event log.
func newDispatcher(out io.Writer, async bool) *notify.Dispatcher {
	d := newAlarmOutputs(out, async)
	d.Register(notify.NewLogSender(env.logger))

	return d
}

// newAlarmOutputs registers the user-facing alarm senders enabled in the config.
func newAlarmOutputs(out io.Writer, async bool) *notify.Dispatcher {
	d := notify.NewDispatcher(async).WithLogger(env.logger)

	if env.cfg.Bell {
		d.Register(notify.NewBellSender(out, bellCount))
	}

	if c := notify.NewCommandSender(env.cfg.AlarmCommand); c != nil {
		d.Register(c)
	}

	return d
}

// lockedWriter serializes the clock lines and asynchronous bells sharing one output.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Write(p)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func printOnce(ctx context.Context, out io.Writer, renderer *render.Renderer) error {
	s := env.settings.Load()

	return render.NewLinePrinter(out).Print(renderer.Tick(ctx, time.Now(), s), s)
}

// runPlainClock prints until the context is cancelled. Settings are read once
// at start; use the interactive view to change them.
func runPlainClock(ctx context.Context, out io.Writer, renderer *render.Renderer) error {
	s := env.settings.Load()
	printer := render.NewLinePrinter(out)

	loop := render.NewLoop(env.cfg.TickInterval, func(now time.Time) {
		if err := printer.Print(renderer.Tick(ctx, now, s), s); err != nil {
			env.logger.Warn("failed to print clock line", "error", err)
		}
	})

	env.logger.Info("plain clock started", "interval", loop.Interval())

	<-loop.Start(ctx).Done()

	return nil
}

func runInteractive(ctx context.Context, renderer *render.Renderer, exportPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := cli.NewClockModel(ctx, env.settings, renderer, clock.Zones(env.localZone)).
		WithLogger(env.logger).
		WithExportPath(exportPath)

	p := tea.NewProgram(m, tea.WithAltScreen())

	loop := render.NewLoop(env.cfg.TickInterval, func(now time.Time) {
		p.Send(cli.TickMsg{Now: now})
	})

	h := loop.Start(ctx)
	defer h.Stop()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	env.logger.Info("interactive clock started", "interval", loop.Interval())

	_, err := p.Run()

	return err
}
