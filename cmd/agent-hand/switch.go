package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sahilm/fuzzy"

	"github.com/weykon/agent-hand/internal/detector"
	"github.com/weykon/agent-hand/internal/engine"
	"github.com/weykon/agent-hand/internal/keyconfig"
	"github.com/weykon/agent-hand/internal/store"
)

const switchRefreshInterval = 2 * time.Second

// rulesBox lets a background config watcher hand fresh detection rules to
// the running picker without the two having to share a lock.
type rulesBox struct {
	rules *detector.ExtraRules
}

var (
	switchBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(0, 1)

	switchSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("12")).
		Foreground(lipgloss.Color("0")).
		Padding(0, 1)

	switchNormalStyle = lipgloss.NewStyle().Padding(0, 1)
	switchDimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// detectColorProfile picks a color profile conservative enough to render
// correctly over tmux, where COLORTERM is usually stripped.
func detectColorProfile() termenv.Profile {
	if os.Getenv("COLORTERM") == "truecolor" {
		return termenv.TrueColor
	}
	return termenv.ANSI256
}

type switchModel struct {
	input     textinput.Model
	instances []*store.Instance
	matches   []*store.Instance
	cursor    int
	chosen    *store.Instance
	quit      bool

	adapter muxLike
	eng     *engine.Engine
	rules   *rulesBox
	persist func(dirty bool)
}

func newSwitchModel(instances []*store.Instance, adapter muxLike, eng *engine.Engine, rules *rulesBox, persist func(dirty bool)) switchModel {
	ti := textinput.New()
	ti.Placeholder = "filter sessions..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sorted := append([]*store.Instance(nil), instances...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })

	return switchModel{input: ti, instances: sorted, matches: sorted, adapter: adapter, eng: eng, rules: rules, persist: persist}
}

func (m switchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, refreshTick())
}

type refreshTickMsg struct{}

func refreshTick() tea.Cmd {
	return tea.Tick(switchRefreshInterval, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

type titleSource []*store.Instance

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

func (m *switchModel) refilter() {
	query := m.input.Value()
	if query == "" {
		m.matches = m.instances
		m.cursor = 0
		return
	}
	found := fuzzy.FindFrom(query, titleSource(m.instances))
	matches := make([]*store.Instance, 0, len(found))
	for _, f := range found {
		matches = append(matches, m.instances[f.Index])
	}
	m.matches = matches
	m.cursor = 0
}

func (m switchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		m.persist(tickAll(m.adapter, m.eng, m.instances, m.rules.rules))
		return m, refreshTick()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.matches) {
				m.chosen = m.matches[m.cursor]
			}
			return m, tea.Quit
		case "ctrl+n", "down":
			if len(m.matches) > 0 {
				m.cursor = (m.cursor + 1) % len(m.matches)
			}
			return m, nil
		case "ctrl+p", "up":
			if len(m.matches) > 0 {
				m.cursor = (m.cursor - 1 + len(m.matches)) % len(m.matches)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m switchModel) View() string {
	var body string
	body += m.input.View() + "\n\n"

	if len(m.matches) == 0 {
		body += switchDimStyle.Render("no matching sessions")
	}
	for i, in := range m.matches {
		label := fmt.Sprintf("%s  %-8s  %s", in.Title, in.Status, in.ProjectPath)
		if i == m.cursor {
			body += switchSelectedStyle.Render(label) + "\n"
		} else {
			body += switchNormalStyle.Render(label) + "\n"
		}
	}

	return switchBorderStyle.Render(body)
}

func handleSwitch(profile string, args []string) {
	lipgloss.SetColorProfile(detectColorProfile())

	s, instances, tree := openCatalog(profile)
	adapter := newAdapter()
	eng := engine.New(0)
	cfg, _ := keyconfig.Load()
	box := &rulesBox{rules: extraRulesFromConfig(cfg)}
	persist := func(dirty bool) {
		if dirty {
			saveCatalog(s, instances, tree)
		}
	}
	persist(tickAll(adapter, eng, instances, box.rules))

	if len(instances) == 0 {
		fmt.Println("no sessions to switch to")
		return
	}

	if watcher, err := keyconfig.NewWatcher(func(f *keyconfig.File) {
		box.rules = extraRulesFromConfig(f)
	}); err == nil && watcher != nil {
		go watcher.Start()
		defer watcher.Stop()
	}

	p := tea.NewProgram(newSwitchModel(instances, adapter, eng, box, persist))
	result, err := p.Run()
	if err != nil {
		fatalf("running switcher: %v", err)
	}

	final, ok := result.(switchModel)
	if !ok || final.chosen == nil {
		return
	}

	if err := adapter.SwitchClient(final.chosen.MuxName()); err != nil {
		fatalf("switching to session: %v", err)
	}

	now := time.Now().UTC()
	final.chosen.LastAccessedAt = &now
	saveCatalog(s, instances, tree)
}
