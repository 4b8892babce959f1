// boxdash: a simulated job dashboard drawn with panes inside a bubbletea
// program.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kungfusheep/panes"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

var (
	styleFooter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	styleDone = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
)

type job struct {
	name string
	rate float64
	bar  *panes.ProgressBar
}

func (j *job) state() string {
	switch p := j.bar.Progress(); {
	case p <= 0:
		return "queued"
	case p >= 1:
		return "done"
	default:
		return "running"
	}
}

type tickMsg time.Time

type model struct {
	jobs     []*job
	parallel int
	interval time.Duration
	ticks    int

	table *panes.Table
	root  *panes.Layout

	width  int
	height int
	log    zerolog.Logger
}

func newModel(names []string, parallel int, interval time.Duration, log zerolog.Logger) *model {
	m := &model{
		parallel: max(parallel, 1),
		interval: interval,
		width:    60,
		height:   16,
		log:      log,
	}
	for i, n := range names {
		m.jobs = append(m.jobs, &job{
			name: n,
			rate: 0.04 + 0.03*float64(i%4),
			bar:  panes.NewProgressBar(1),
		})
	}

	m.table = panes.NewTable("job", "progress", "state").
		Weights(0.25, 0.5, 0.25).
		Divider(panes.Single).
		HeaderDivider(panes.Double)
	m.root = panes.NewLayout(panes.Column).
		Border(panes.Double).
		Title(panes.TitleTopLeft, "jobs").
		Add(m.table, 1)
	m.refresh()
	return m
}

// refresh rebuilds the table rows from the job state.
func (m *model) refresh() {
	rows := make([][]any, len(m.jobs))
	for i, j := range m.jobs {
		rows[i] = []any{j.name, j.bar, j.state()}
	}
	m.table.SetRows(rows)
	m.root.Title(panes.TitleTopRight, fmt.Sprintf("%d/%d", m.finished(), len(m.jobs)))
}

func (m *model) finished() int {
	n := 0
	for _, j := range m.jobs {
		if j.state() == "done" {
			n++
		}
	}
	return n
}

// step advances up to parallel unfinished jobs, in order.
func (m *model) step() {
	m.ticks++
	running := 0
	for _, j := range m.jobs {
		if running == m.parallel {
			break
		}
		if j.state() == "done" {
			continue
		}
		j.bar.Add(j.rate)
		if j.bar.Progress() > 1 {
			j.bar.Set(1)
		}
		if j.state() == "done" {
			m.log.Debug().Str("job", j.name).Int("tick", m.ticks).Msg("job finished")
		}
		running++
	}
	m.refresh()
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			for _, j := range m.jobs {
				j.bar.Set(0)
			}
			m.ticks = 0
			m.refresh()
		}
		return m, nil

	case tickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

func (m *model) View() string {
	c := panes.NewCanvas(m.width, max(m.height-1, 3))
	panes.Render(c, m.root)

	footer := styleFooter.Render("q quit · r restart")
	if m.finished() == len(m.jobs) {
		footer = styleDone.Render("all jobs done") + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.String(), footer)
}

func main() {
	var (
		parallel = pflag.Int("parallel", 2, "jobs advanced per tick")
		interval = pflag.Duration("interval", 150*time.Millisecond, "time between ticks")
		logFile  = pflag.String("log-file", "", "write debug logs to this file")
	)
	pflag.Parse()

	names := pflag.Args()
	if len(names) == 0 {
		names = []string{"fetch", "compile", "test", "package", "upload"}
	}

	log := zerolog.Nop()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "boxdash: open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		log = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
		panes.SetLogger(log)
	}

	m := newModel(names, *parallel, *interval, log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "boxdash:", err)
		os.Exit(1)
	}
}
