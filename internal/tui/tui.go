// Package tui is the interactive terminal view of the showcase.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/showcase/internal/model"
	"github.com/idilsaglam/showcase/internal/showcase"
)

const appTitle = "Projects Showcase"

// Options configure Run.
type Options struct {
	Source   showcase.Source
	Category model.Category
	Logger   *slog.Logger
}

// listItem adapts model.Project to bubbles/list.Item
type listItem struct {
	project model.Project
}

func (i listItem) Title() string       { return i.project.Name }
func (i listItem) Description() string { return i.project.ImageURL }
func (i listItem) FilterValue() string { return i.project.Name }

// Custom delegate: name on the first line, image on the second.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	name := it.project.Name
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " "
		name = titleStyle.Render(name)
	}
	fmt.Fprintf(w, "%s%s\n  %s", prefix, name, mutedStyle.Render(it.project.ImageURL))
}

type mountMsg struct{}

type projectsMsg struct {
	category model.Category
	projects []model.Project
}

type fetchFailedMsg struct {
	category model.Category
	err      error
}

func fetchCmd(ctx context.Context, src showcase.Source, req showcase.Request) tea.Cmd {
	return func() tea.Msg {
		projects, err := src.Projects(ctx, req.Category)
		if err != nil {
			return fetchFailedMsg{category: req.Category, err: err}
		}
		return projectsMsg{category: req.Category, projects: projects}
	}
}

type modelTUI struct {
	ctx  context.Context
	src  showcase.Source
	log  *slog.Logger
	ctrl *showcase.Controller

	spinner spinner.Model
	list    list.Model
	keys    keyMap
	help    help.Model

	width  int
	height int
}

func newModel(ctx context.Context, opt Options) modelTUI {
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("project", "projects")
	l.DisableQuitKeybindings()
	// left/right belong to the category selector
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev page"))
	l.Styles.StatusBar = helpStyle
	l.Styles.PaginationStyle = helpStyle

	s := spinner.New(spinner.WithSpinner(spinner.Points), spinner.WithStyle(spinnerStyle))

	return modelTUI{
		ctx:     ctx,
		src:     opt.Source,
		log:     logger,
		ctrl:    showcase.New(opt.Category),
		spinner: s,
		list:    l,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// Run starts the terminal view and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opt Options) error {
	if opt.Source == nil {
		return fmt.Errorf("tui: no project source")
	}
	p := tea.NewProgram(newModel(ctx, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

// fetch moves the controller to inProgress and issues exactly one request.
func (m *modelTUI) fetch() tea.Cmd {
	req := m.ctrl.Begin()
	m.keys.Retry.SetEnabled(false)
	m.log.Debug("fetching projects", "category", req.Category)
	return tea.Batch(fetchCmd(m.ctx, m.src, req), m.spinner.Tick)
}

func (m modelTUI) selectCategory(c model.Category) (tea.Model, tea.Cmd) {
	if !m.ctrl.Select(c) {
		return m, nil
	}
	cmd := m.fetch()
	return m, cmd
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mountMsg:
		cmd := m.fetch()
		return m, cmd

	case projectsMsg:
		m.ctrl.Resolve(msg.projects)
		m.keys.Retry.SetEnabled(false)
		m.log.Debug("projects loaded", "category", msg.category, "count", len(msg.projects))
		items := make([]list.Item, 0, len(msg.projects))
		for _, p := range msg.projects {
			items = append(items, listItem{project: p})
		}
		cmd := m.list.SetItems(items)
		m.list.ResetSelected()
		return m, cmd

	case fetchFailedMsg:
		m.ctrl.Fail()
		m.keys.Retry.SetEnabled(true)
		m.log.Warn("fetch failed", "category", msg.category, "err", msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Status() != model.StatusInProgress {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width-4, m.listHeight())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.list.SetSize(m.width-4, m.listHeight())
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.selectCategory(m.ctrl.Category().Next())
		case key.Matches(msg, m.keys.Prev):
			return m.selectCategory(m.ctrl.Category().Prev())
		case key.Matches(msg, m.keys.Pick):
			cs := model.Categories()
			i := int(msg.String()[0] - '1')
			if i >= 0 && i < len(cs) {
				return m.selectCategory(cs[i])
			}
			return m, nil
		case key.Matches(msg, m.keys.Retry):
			cmd := m.fetch()
			return m, cmd
		}
	}

	if m.ctrl.Status() == model.StatusSuccess {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m modelTUI) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return panel.Render(b.String())
}

func (m modelTUI) tabs() string {
	var parts []string
	for i, c := range model.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if c == m.ctrl.Category() {
			parts = append(parts, activeTab.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(mutedStyle.Render(label)))
		}
	}
	return strings.Join(parts, accentStyle.Render("│"))
}

// statusView renders exactly one of the four request states.
func (m modelTUI) statusView() string {
	switch m.ctrl.Status() {
	case model.StatusInProgress:
		return m.spinner.View() + " " + mutedStyle.Render("Loading projects...")
	case model.StatusSuccess:
		return m.list.View()
	case model.StatusFailure:
		return strings.Join([]string{
			errorStyle.Render("Oops! Something Went Wrong"),
			"We cannot seem to find the page you are looking for",
			"",
			accentStyle.Render("[r] Retry"),
		}, "\n")
	default:
		return ""
	}
}

// listHeight leaves room for the border, title, tabs and help bar.
func (m modelTUI) listHeight() int {
	reserved := 8
	if m.help.ShowAll {
		reserved += 3
	}
	if h := m.height - reserved; h > 2 {
		return h
	}
	return 2
}
