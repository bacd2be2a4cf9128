package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/task-cli/internal/app"
	"github.com/runoshun/task-cli/internal/domain"
	"github.com/runoshun/task-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (*Model, *testutil.MockTaskRepository) {
	t.Helper()

	repo := testutil.NewMockTaskRepository()
	c := app.NewWithDeps(app.Config{}, repo, &testutil.MockStoreInitializer{}, repo.Clock, nil)
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, repo
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and feeds every resulting message back until the model settles.
func send(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()

	for range 5 {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if _, ok := msg.(Msg); !ok {
			// Blink, quit and other program-level messages end the chain
			return
		}
	}
	t.Fatal("update chain did not settle")
}

func load(t *testing.T, m *Model) {
	t.Helper()
	send(t, m, m.Init()())
}

func TestUpdate_MsgTasksLoaded(t *testing.T) {
	m, repo := newTestModel(t)
	repo.Seed(1, "first", domain.StatusTodo)
	repo.Seed(2, "second", domain.StatusDone)

	load(t, m)

	require.Len(t, m.tasks, 2)
	assert.Equal(t, 1, m.SelectedTask().ID)
}

func TestUpdate_MsgTasksLoaded_ClampsCursor(t *testing.T) {
	m := &Model{cursor: 5, tasks: []*domain.Task{{ID: 1}, {ID: 2}, {ID: 3}}}

	m.Update(MsgTasksLoaded{Tasks: []*domain.Task{{ID: 1}}})

	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_Navigation(t *testing.T) {
	m, repo := newTestModel(t)
	repo.Seed(1, "a", domain.StatusTodo)
	repo.Seed(2, "b", domain.StatusTodo)
	load(t, m)

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.SelectedTask().ID)

	// Stays on the last row
	send(t, m, runeKey("j"))
	assert.Equal(t, 2, m.SelectedTask().ID)

	send(t, m, runeKey("k"))
	assert.Equal(t, 1, m.SelectedTask().ID)

	send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.SelectedTask().ID)
}

func TestUpdate_AddTask(t *testing.T) {
	m, repo := newTestModel(t)
	load(t, m)

	// Focus returns a cursor blink command, which is not run here
	m.Update(runeKey("a"))
	require.Equal(t, ModeAdd, m.mode)

	m.input.SetValue("Buy milk")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeNormal, m.mode)
	require.Contains(t, repo.Tasks, 1)
	assert.Equal(t, "Buy milk", repo.Tasks[1].Description)
	assert.Equal(t, "Task added successfully (ID: 1)", m.notice)
	assert.Len(t, m.tasks, 1, "list reloads after add")
}

func TestUpdate_AddTask_Escape(t *testing.T) {
	m, repo := newTestModel(t)
	load(t, m)

	m.Update(runeKey("a"))
	m.input.SetValue("never mind")
	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, repo.Tasks)
	assert.Empty(t, m.input.Value())
}

func TestUpdate_AddTask_KeepsInputAsIs(t *testing.T) {
	m, repo := newTestModel(t)
	load(t, m)

	m.Update(runeKey("a"))
	m.input.SetValue("   ")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Contains(t, repo.Tasks, 1)
	assert.Equal(t, "   ", repo.Tasks[1].Description)

	m.Update(runeKey("a"))
	m.input.SetValue("  padded  ")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Contains(t, repo.Tasks, 2)
	assert.Equal(t, "  padded  ", repo.Tasks[2].Description)
}

func TestUpdate_EditTask(t *testing.T) {
	m, repo := newTestModel(t)
	repo.Seed(1, "old", domain.StatusTodo)
	load(t, m)

	m.Update(runeKey("e"))
	require.Equal(t, ModeEdit, m.mode)
	assert.Equal(t, "old", m.input.Value())

	m.input.SetValue("new")
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "new", repo.Tasks[1].Description)
	assert.Equal(t, "Task updated.", m.notice)
}

func TestUpdate_DeleteTask(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		wantTasks int
	}{
		{name: "confirmed", key: runeKey("y"), wantTasks: 0},
		{name: "cancelled", key: runeKey("n"), wantTasks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo := newTestModel(t)
			repo.Seed(1, "a", domain.StatusTodo)
			load(t, m)

			send(t, m, runeKey("d"))
			require.Equal(t, ModeConfirm, m.mode)
			assert.Equal(t, 1, m.confirmTaskID)

			send(t, m, tt.key)

			assert.Equal(t, ModeNormal, m.mode)
			assert.Len(t, repo.Tasks, tt.wantTasks)
		})
	}
}

func TestUpdate_MarkTask(t *testing.T) {
	tests := []struct {
		key        string
		wantStatus domain.Status
		wantNotice string
	}{
		{key: "p", wantStatus: domain.StatusInProgress, wantNotice: "Task marked as in progress."},
		{key: "x", wantStatus: domain.StatusDone, wantNotice: "Task marked as done."},
		{key: "t", wantStatus: domain.StatusTodo, wantNotice: "Task marked as todo."},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, repo := newTestModel(t)
			repo.Seed(1, "a", domain.StatusDone)
			repo.Seed(2, "b", domain.StatusTodo)
			load(t, m)

			send(t, m, runeKey(tt.key))

			assert.Equal(t, tt.wantStatus, repo.Tasks[1].Status)
			assert.Equal(t, tt.wantNotice, m.notice)
		})
	}
}

func TestUpdate_ActionsWithoutTasks(t *testing.T) {
	m, _ := newTestModel(t)
	load(t, m)

	for _, k := range []string{"e", "d", "p", "x", "t"} {
		_, cmd := m.Update(runeKey(k))
		assert.Nil(t, cmd, k)
		assert.Equal(t, ModeNormal, m.mode, k)
	}
}

func TestUpdate_Filter(t *testing.T) {
	m, repo := newTestModel(t)
	repo.Seed(1, "a", domain.StatusTodo)
	repo.Seed(2, "b", domain.StatusInProgress)
	repo.Seed(3, "c", domain.StatusDone)
	load(t, m)

	wantIDs := [][]int{{1}, {2}, {3}, {1, 2, 3}}
	for _, want := range wantIDs {
		send(t, m, tea.KeyMsg{Type: tea.KeyTab})

		var got []int
		for _, task := range m.visibleTasks() {
			got = append(got, task.ID)
		}
		assert.Equal(t, want, got)
	}
	assert.Nil(t, m.filter)
}

func TestUpdate_MsgError(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(MsgError{Err: errors.New("disk full")})
	assert.EqualError(t, m.err, "disk full")

	// The next key clears it
	m.Update(runeKey("j"))
	assert.NoError(t, m.err)
}

func TestUpdate_MsgError_NotFound(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(MsgError{Err: domain.ErrTaskNotFound})

	assert.NoError(t, m.err)
	assert.Equal(t, "Task not found.", m.notice)
	assert.NotNil(t, cmd, "reloads the list")
}

func TestUpdate_Help(t *testing.T) {
	m, _ := newTestModel(t)

	send(t, m, runeKey("?"))
	assert.Equal(t, ModeHelp, m.mode)

	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "add", ModeAdd.String())
	assert.Equal(t, "edit", ModeEdit.String())
	assert.Equal(t, "confirm", ModeConfirm.String())
	assert.Equal(t, "help", ModeHelp.String())
	assert.Equal(t, "unknown", Mode(99).String())
	assert.True(t, ModeAdd.IsInputMode())
	assert.False(t, ModeConfirm.IsInputMode())
}
