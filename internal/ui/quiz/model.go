package quiz

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/history"
	"quizdeck/internal/question"
	"quizdeck/internal/scores"
)

// Options configures the quiz UI.
type Options struct {
	NoColor bool
}

// Model drives the quiz UI with Bubble Tea. All quiz logic lives in the
// pure reducer; the model translates key messages into transitions and
// performs file I/O at the edges.
type Model struct {
	state   State
	name    textinput.Model
	board   table.Model
	store   *scores.Store
	log     *history.Store
	noColor bool
	logged  bool
}

// NewModel constructs a quiz UI model.
func NewModel(questions []question.Question, store *scores.Store, log *history.Store, opts Options) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = scores.MaxNameLength
	name.Width = scores.MaxNameLength + 2

	board := table.New(
		table.WithColumns(boardColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(scores.MaxEntries+1),
	)
	board.SetStyles(tableStyles(opts.NoColor))

	return Model{
		state:   NewState(questions),
		name:    name,
		board:   board,
		store:   store,
		log:     log,
		noColor: opts.NoColor,
	}
}

// Init performs no startup work; the model waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes terminal events and applies reducer transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.board.SetWidth(typed.Width)
		height := typed.Height - 5
		if height < 3 {
			height = 3
		}
		m.board.SetHeight(height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	if m.state.Phase == PhaseName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current phase.
func (m Model) View() string {
	return render(m.state, m.name, m.board, m.noColor)
}

// handleKey dispatches a key press to the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state.Phase {
	case PhaseQuiz:
		return m.handleQuizKey(msg)
	case PhaseConfirm:
		return m.handleConfirmKey(msg)
	case PhaseResult:
		return m.handleResultKey(msg)
	case PhaseName:
		return m.handleNameKey(msg)
	case PhaseDone:
		return m.handleDoneKey(msg)
	case PhaseBoard:
		return m.handleBoardKey(msg)
	}
	return m, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "v":
		return m.openBoard(), nil
	case "left", "h":
		m.state = MovePrevious(m.state)
	case "right", "l", "enter":
		m.state = MoveNext(m.state)
	case "up", "k":
		m.state = MoveCursor(m.state, -1)
	case "down", "j":
		m.state = MoveCursor(m.state, 1)
	case " ", "space":
		m.state = SelectOption(m.state, m.state.Cursor)
	case "1", "2", "3", "4":
		m.state = SelectOption(m.state, int(msg.String()[0]-'1'))
	case "s":
		m.state = RequestSubmit(m.state)
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.state = ConfirmSubmit(m.state)
	case "n", "esc":
		m.state = CancelConfirm(m.state)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.state = BeginSave(m.state)
		m.name.SetValue("")
		m.name.Focus()
		return m, textinput.Blink
	case "n", "esc", "enter":
		return m.finishWithoutSave(), nil
	case "v":
		return m.openBoard(), nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.finishWithName(), nil
	case "esc":
		return m.finishWithoutSave(), nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) handleDoneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		return m.openBoard(), nil
	case "q", "enter", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "v", "q":
		m.state = HideBoard(m.state)
	}
	return m, nil
}

// openBoard loads the leaderboard and shows the overlay. A corrupt file is
// shown as an empty board with a note.
func (m Model) openBoard() Model {
	board, err := m.store.Load()
	corrupt := errors.Is(err, scores.ErrCorrupt)
	m.board.SetRows(boardRows(board))
	m.state = ShowBoard(m.state, board, corrupt)
	return m
}

// finishWithoutSave ends the quiz without persisting a score record.
func (m Model) finishWithoutSave() Model {
	m.state = FinishWithoutSave(m.state)
	m.logAttempt("")
	return m
}

// finishWithName persists the score under the entered name. An empty or
// whitespace-only name skips the save.
func (m Model) finishWithName() Model {
	name := scores.NormalizeName(m.name.Value())
	if name == "" {
		return m.finishWithoutSave()
	}
	record := scores.Record{Name: name, Score: m.state.Score, Total: m.state.Total()}
	board, err := m.store.Save(record)
	if err != nil {
		m.state.SaveError = err.Error()
		m.state = FinishWithoutSave(m.state)
		m.logAttempt(name)
		return m
	}
	m.state = FinishWithSave(m.state, board, scores.Rank(board, record))
	m.logAttempt(name)
	return m
}

// logAttempt records the submitted attempt once, best-effort.
func (m *Model) logAttempt(name string) {
	if m.logged || m.log == nil {
		return
	}
	m.logged = true
	_ = m.log.Append(history.NewAttempt(name, m.state.Score, m.state.Total(), m.state.Percent))
}

// Run drives the model on a full-screen terminal program.
func Run(stdout io.Writer, model Model) error {
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
