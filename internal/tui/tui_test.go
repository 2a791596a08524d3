package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/showcase/internal/model"
)

type fakeSource struct {
	calls    []model.Category
	projects map[model.Category][]model.Project
	err      error
}

func (s *fakeSource) Projects(_ context.Context, c model.Category) ([]model.Project, error) {
	s.calls = append(s.calls, c)
	if s.err != nil {
		return nil, s.err
	}
	return s.projects[c], nil
}

func newTestModel(src *fakeSource) modelTUI {
	m := newModel(context.Background(), Options{Source: src, Category: model.CategoryAll})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(modelTUI)
}

func sendKey(m modelTUI, key rune) (modelTUI, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
	return next.(modelTUI), cmd
}

func sendMsg(m modelTUI, msg tea.Msg) (modelTUI, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(modelTUI), cmd
}

// drain runs cmd and any batched commands, collecting their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settle runs cmd and feeds fetch results back into m.
func settle(m modelTUI, cmd tea.Cmd) modelTUI {
	for _, msg := range drain(cmd) {
		switch msg.(type) {
		case projectsMsg, fetchFailedMsg:
			m, _ = sendMsg(m, msg)
		}
	}
	return m
}

func mount(m modelTUI) modelTUI {
	return settle(sendMsg(m, m.Init()()))
}

func TestModel_InitialRendersNoStatus(t *testing.T) {
	src := &fakeSource{}
	m := newTestModel(src)

	assert.Equal(t, model.StatusInitial, m.ctrl.Status())
	view := m.View()
	assert.Contains(t, view, appTitle)
	assert.NotContains(t, view, "Loading")
	assert.NotContains(t, view, "Oops")
	assert.Empty(t, src.calls, "nothing is fetched before mount")
}

func TestModel_MountStartsFetch(t *testing.T) {
	src := &fakeSource{}
	m := newTestModel(src)

	msg := m.Init()()
	require.IsType(t, mountMsg{}, msg)

	m, cmd := sendMsg(m, msg)
	assert.Equal(t, model.StatusInProgress, m.ctrl.Status())
	assert.Contains(t, m.View(), "Loading projects...")
	require.NotNil(t, cmd)

	m = settle(m, cmd)
	assert.Equal(t, []model.Category{model.CategoryAll}, src.calls)
	assert.Equal(t, model.StatusSuccess, m.ctrl.Status())
}

func TestModel_SuccessRendersProjects(t *testing.T) {
	src := &fakeSource{projects: map[model.Category][]model.Project{
		model.CategoryReact: {{ID: "1", ImageURL: "u", Name: "n"}},
	}}
	m := mount(newTestModel(src))

	m = settle(sendKey(m, '5'))
	require.Equal(t, model.CategoryReact, m.ctrl.Category())
	require.Equal(t, model.StatusSuccess, m.ctrl.Status())

	items := m.list.Items()
	require.Len(t, items, 1)
	it := items[0].(listItem)
	assert.Equal(t, "n", it.project.Name)
	assert.Equal(t, "u", it.project.ImageURL)
	assert.Equal(t, "1", it.project.ID)

	view := m.View()
	assert.Contains(t, view, "n")
	assert.Contains(t, view, "u")
}

func TestModel_EveryCategoryFetchesOnce(t *testing.T) {
	for i, c := range model.Categories() {
		t.Run(c.String(), func(t *testing.T) {
			src := &fakeSource{}
			m := mount(newTestModel(src))
			src.calls = nil

			m = settle(sendKey(m, rune('1'+i)))
			assert.Equal(t, []model.Category{c}, src.calls)
			assert.Equal(t, c, m.ctrl.Category())
		})
	}
}

func TestModel_TabCyclesCategories(t *testing.T) {
	src := &fakeSource{}
	m := mount(newTestModel(src))
	src.calls = nil

	m = settle(sendMsg(m, tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, model.CategoryStatic, m.ctrl.Category())

	m = settle(sendMsg(m, tea.KeyMsg{Type: tea.KeyShiftTab}))
	m = settle(sendMsg(m, tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, model.CategoryReact, m.ctrl.Category())

	assert.Equal(t, []model.Category{model.CategoryStatic, model.CategoryAll, model.CategoryReact}, src.calls)
}

func TestModel_FailureView(t *testing.T) {
	src := &fakeSource{projects: map[model.Category][]model.Project{
		model.CategoryAll: {{ID: "1", ImageURL: "u", Name: "stale-project"}},
	}}
	m := mount(newTestModel(src))
	require.Contains(t, m.View(), "stale-project")

	src.err = errors.New("503")
	m = settle(sendKey(m, '2'))

	assert.Equal(t, model.StatusFailure, m.ctrl.Status())
	view := m.View()
	assert.Contains(t, view, "Oops! Something Went Wrong")
	assert.Contains(t, view, "Retry")
	assert.NotContains(t, view, "stale-project")
	assert.NotContains(t, view, "503", "error detail stays out of the view")
}

func TestModel_RetryRefetchesCurrentCategory(t *testing.T) {
	src := &fakeSource{err: errors.New("down")}
	m := mount(newTestModel(src))
	m = settle(sendKey(m, '4'))
	require.Equal(t, model.StatusFailure, m.ctrl.Status())
	src.calls = nil

	src.err = nil
	m, cmd := sendKey(m, 'r')
	assert.Equal(t, model.StatusInProgress, m.ctrl.Status())
	m = settle(m, cmd)

	assert.Equal(t, []model.Category{model.CategoryDynamic}, src.calls)
	assert.Equal(t, model.StatusSuccess, m.ctrl.Status())
}

func TestModel_RetryIgnoredOutsideFailure(t *testing.T) {
	src := &fakeSource{}
	m := mount(newTestModel(src))
	src.calls = nil

	m, cmd := sendKey(m, 'r')
	m = settle(m, cmd)
	assert.Empty(t, src.calls)
	assert.Equal(t, model.StatusSuccess, m.ctrl.Status())
}

func TestModel_LateResponseWins(t *testing.T) {
	src := &fakeSource{projects: map[model.Category][]model.Project{
		model.CategoryStatic: {{ID: "s", Name: "static-one"}},
		model.CategoryReact:  {{ID: "r", Name: "react-one"}},
	}}
	m := mount(newTestModel(src))

	m, first := sendKey(m, '2')
	m, second := sendKey(m, '5')
	m = settle(m, second)
	m = settle(m, first)

	assert.Equal(t, model.CategoryReact, m.ctrl.Category())
	require.Len(t, m.list.Items(), 1)
	assert.Equal(t, "static-one", m.list.Items()[0].(listItem).project.Name)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(&fakeSource{})
	_, cmd := sendKey(m, 'q')
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(&fakeSource{})
	short := m.View()
	m, _ = sendKey(m, '?')
	assert.True(t, m.help.ShowAll)
	full := m.View()
	assert.Greater(t, strings.Count(full, "\n"), strings.Count(short, "\n"))
}

func TestRun_RequiresSource(t *testing.T) {
	err := Run(context.Background(), Options{})
	assert.Error(t, err)
}
