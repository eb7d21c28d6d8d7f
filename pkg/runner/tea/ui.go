package teaui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/planner"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/calendar"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/panel"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
	"tableflip.dev/dayplan/pkg/sheet"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

const toastDuration = 1500 * time.Millisecond

// area is one focusable block of the sheet.
type area int

const (
	areaSchedule area = iota
	areaTodos
	areaGoals
	areaCount
)

// Saver queues snapshots for saving off the UI goroutine. autosave.Loop
// satisfies it.
type Saver interface {
	Submit(key string, rec day.Record)
	Flush() []store.Result
}

// Options configures a Model.
type Options struct {
	Persistence planner.Persistence
	// Saver, when nil, makes every edit save synchronously.
	Saver    Saver
	Events   <-chan store.Event
	Locale   daykey.Locale
	MinTasks int
	Now      func() time.Time
	Logger   *log.Logger
}

// changes is shared by copies of the Model; the sheet's change trigger
// flips it and Update drains it.
type changes struct {
	dirty bool
}

// Model contains UI state
type Model struct {
	planner *planner.Planner
	sheet   *sheet.Sheet
	saver   Saver
	events  <-chan store.Event
	locale  daykey.Locale
	logger  *log.Logger

	date time.Time
	week []planner.DaySummary

	mode   bottombar.Mode
	focus  area
	cursor [areaCount]int

	input        textinput.Model
	editSchedule *sheet.ScheduleRow
	editTask     *sheet.TaskRow

	keys  keyMap
	help  help.Model
	bar   bottombar.Model
	theme theme.Theme

	pending       *changes
	toastSeq      int
	reloadPending bool

	termWidth  int
	termHeight int
}

// messages
type saveResultMsg struct{ res store.Result }
type toastExpiredMsg struct{ seq int }
type storeEventMsg struct {
	ev store.Event
	ok bool
}

var commandOptions = []bottombar.CommandOption{
	{Name: "today", Description: "jump to today"},
	{Name: "goto", Description: "go to YYYY-MM-DD or +Nd/-Nw"},
	{Name: "prev", Description: "previous day"},
	{Name: "next", Description: "next day"},
	{Name: "quit", Description: "save and exit"},
}

// New creates a UI model and opens today.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Locale.Tag == (language.Tag{}) {
		opts.Locale = daykey.French
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	pending := &changes{}
	sh := sheet.New(opts.MinTasks, func() { pending.dirty = true })
	p := planner.New(opts.Persistence, sh)
	p.Logger = opts.Logger
	p.Now = opts.Now

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))

	th := theme.Default()
	bar := bottombar.New(th.Footer)
	bar.SetCommandDefinitions(commandOptions)

	m := Model{
		planner: p,
		sheet:   sh,
		saver:   opts.Saver,
		events:  opts.Events,
		locale:  opts.Locale,
		logger:  opts.Logger,
		date:    daykey.Midnight(opts.Now()),
		mode:    bottombar.ModeNormal,
		focus:   areaSchedule,
		input:   ti,
		keys:    defaultKeys(),
		help:    help.New(),
		bar:     bar,
		theme:   th,
		pending: pending,
	}

	if res := p.Open(m.date); !res.OK {
		m.bar.SetStatus(bottombar.StatusFailed, "Load failed: "+res.Err.Error())
	}
	m.afterOpen()
	return m
}

// Date returns the day on screen.
func (m Model) Date() time.Time {
	return m.date
}

// Init starts listening for storage changes.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		return storeEventMsg{ev: ev, ok: ok}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
		m.input.Width = m.inputWidth()
	case saveResultMsg:
		cmds = append(cmds, m.applySaveResult(msg.res))
		m.refreshWeek()
	case tea.BlurMsg:
		// Terminal lost focus: save what is on screen now.
		cmds = append(cmds, m.submit())
	case toastExpiredMsg:
		if kind, _ := m.bar.Status(); msg.seq == m.toastSeq && kind == bottombar.StatusSaved {
			m.bar.ClearStatus()
		}
	case storeEventMsg:
		if !msg.ok {
			break
		}
		m.reloadFromStore()
		cmds = append(cmds, waitForEvent(m.events))
	case tea.KeyMsg:
		switch m.mode {
		case bottombar.ModeHelp:
			if key.Matches(msg, m.keys.Help, m.keys.Quit) || msg.Type == tea.KeyEsc {
				m.setMode(bottombar.ModeNormal)
			}
		case bottombar.ModeEdit:
			cmds = append(cmds, m.updateEdit(msg))
		case bottombar.ModeCommand:
			cmds = append(cmds, m.updateCommand(msg))
		default:
			cmds = append(cmds, m.updateNormal(msg))
		}
	default:
		if m.mode == bottombar.ModeEdit || m.mode == bottombar.ModeCommand {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.pending.dirty {
		m.pending.dirty = false
		cmds = append(cmds, m.submit())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Prev):
		return m.navigate(func(from time.Time) (time.Time, store.Result) {
			return m.planner.GoToOffset(from, -1)
		})
	case key.Matches(msg, m.keys.Next):
		return m.navigate(func(from time.Time) (time.Time, store.Result) {
			return m.planner.GoToOffset(from, 1)
		})
	case key.Matches(msg, m.keys.Today):
		return m.navigate(m.planner.GoToToday)
	case key.Matches(msg, m.keys.Weekday):
		// 1 is Monday, 7 is Sunday.
		wd := time.Weekday(int(msg.Runes[0]-'0') % 7)
		return m.navigate(func(from time.Time) (time.Time, store.Result) {
			return m.planner.GoToWeekday(from, wd)
		})
	case key.Matches(msg, m.keys.GoTo):
		return m.enterCommandMode("goto ")
	case key.Matches(msg, m.keys.Command):
		return m.enterCommandMode("")
	case key.Matches(msg, m.keys.NextArea):
		m.focus = (m.focus + 1) % areaCount
	case key.Matches(msg, m.keys.PrevArea):
		m.focus = (m.focus + areaCount - 1) % areaCount
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.focus] < m.rowCount(m.focus)-1 {
			m.cursor[m.focus]++
		}
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Add):
		l := m.focusedList()
		if l == nil {
			m.focus = areaTodos
			l = m.sheet.Todos
		}
		row := l.Add(day.Task{})
		m.cursor[m.focus] = l.Index(row)
		return m.startEdit()
	case key.Matches(msg, m.keys.Toggle):
		if row := m.focusedTask(); row != nil {
			row.Toggle()
		}
	case key.Matches(msg, m.keys.Delete):
		if row := m.focusedTask(); row != nil {
			row.Remove()
			m.clampCursors()
		} else if m.focus == areaSchedule {
			if row := m.sheet.Schedule[m.cursor[areaSchedule]]; row.Text != "" {
				row.SetText("")
			}
		}
	case key.Matches(msg, m.keys.Help):
		m.setMode(bottombar.ModeHelp)
	}
	return nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		value := m.input.Value()
		switch {
		case m.editSchedule != nil:
			if value != m.editSchedule.Text {
				m.editSchedule.SetText(value)
			}
		case m.editTask != nil:
			if value != m.editTask.Text {
				m.editTask.SetText(value)
			}
		}
		m.stopEdit()
		return nil
	case tea.KeyEsc:
		m.stopEdit()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateCommand(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.setMode(bottombar.ModeNormal)
		return nil
	case tea.KeyUp:
		m.bar.MoveSelection(-1)
		return nil
	case tea.KeyDown:
		m.bar.MoveSelection(1)
		return nil
	case tea.KeyTab:
		if opt, ok := m.bar.Selected(); ok {
			m.input.SetValue(opt.Name + " ")
			m.input.CursorEnd()
			m.bar.UpdateCommandInput(m.input.Value(), m.input.View())
		}
		return nil
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		opt, hasOpt := m.bar.Selected()
		m.setMode(bottombar.ModeNormal)
		return m.runCommand(input, opt, hasOpt)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.bar.UpdateCommandInput(m.input.Value(), m.input.View())
	return cmd
}

func (m *Model) runCommand(input string, selected bottombar.CommandOption, hasSelected bool) tea.Cmd {
	if input == "" {
		return nil
	}
	fields := strings.Fields(input)
	name, args := strings.ToLower(fields[0]), fields[1:]
	if !isCommand(name) && hasSelected && strings.HasPrefix(selected.Name, name) {
		name = selected.Name
	}

	switch name {
	case "q", "quit", "exit":
		return m.quit()
	case "today":
		return m.navigate(m.planner.GoToToday)
	case "prev":
		return m.navigate(func(from time.Time) (time.Time, store.Result) {
			return m.planner.GoToOffset(from, -1)
		})
	case "next":
		return m.navigate(func(from time.Time) (time.Time, store.Result) {
			return m.planner.GoToOffset(from, 1)
		})
	case "goto":
		if len(args) != 1 {
			m.bar.SetStatus(bottombar.StatusFailed, "Usage: goto YYYY-MM-DD")
			return nil
		}
		if timeutil.IsOffset(args[0]) {
			days, err := timeutil.ParseOffset(args[0])
			if err != nil {
				m.bar.SetStatus(bottombar.StatusFailed, fmt.Sprintf("Invalid offset %q", args[0]))
				return nil
			}
			return m.navigate(func(from time.Time) (time.Time, store.Result) {
				return m.planner.GoToOffset(from, days)
			})
		}
		to, err := daykey.Parse(args[0], m.date.Location())
		if err != nil {
			m.bar.SetStatus(bottombar.StatusFailed, fmt.Sprintf("Invalid date %q", args[0]))
			return nil
		}
		return m.navigate(func(from time.Time) (time.Time, store.Result) {
			return m.planner.GoToDate(from, to)
		})
	}
	m.bar.SetStatus(bottombar.StatusFailed, fmt.Sprintf("Unknown command: %s", input))
	return nil
}

func isCommand(name string) bool {
	for _, opt := range commandOptions {
		if opt.Name == name {
			return true
		}
	}
	return name == "q" || name == "exit"
}

func (m *Model) setMode(mode bottombar.Mode) {
	m.mode = mode
	m.bar.SetMode(mode)
	if mode == bottombar.ModeNormal {
		m.input.Reset()
		m.input.Blur()
		m.editSchedule, m.editTask = nil, nil
	}
}

func (m *Model) enterCommandMode(prefill string) tea.Cmd {
	m.setMode(bottombar.ModeCommand)
	m.input.Placeholder = "command"
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	m.bar.UpdateCommandInput(m.input.Value(), m.input.View())
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) startEdit() tea.Cmd {
	switch m.focus {
	case areaSchedule:
		row := m.sheet.Schedule[m.cursor[areaSchedule]]
		m.editSchedule = row
		m.input.Placeholder = row.Hour
		m.input.SetValue(row.Text)
	default:
		row := m.focusedTask()
		if row == nil {
			l := m.focusedList()
			row = l.Add(day.Task{})
			m.cursor[m.focus] = l.Index(row)
		}
		m.editTask = row
		m.input.Placeholder = "..."
		m.input.SetValue(row.Text)
	}
	m.mode = bottombar.ModeEdit
	m.bar.SetMode(bottombar.ModeEdit)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) stopEdit() {
	m.setMode(bottombar.ModeNormal)
	if m.reloadPending {
		m.reloadPending = false
		m.reloadFromStore()
	}
}

// navigate saves the day on screen and moves. Queued snapshots are written
// first so an older one can never land after the navigation save.
func (m *Model) navigate(move func(from time.Time) (time.Time, store.Result)) tea.Cmd {
	if m.saver != nil {
		m.saver.Flush()
	}
	to, res := move(m.date)
	m.date = daykey.Midnight(to)
	m.clampCursors()
	m.afterOpen()
	return m.applySaveResult(res)
}

// afterOpen refreshes derived state once a day has been rendered. With a
// saver the rendered day becomes the snapshot the periodic save repeats.
func (m *Model) afterOpen() {
	m.refreshWeek()
	if m.saver != nil {
		m.saver.Submit(daykey.Format(m.date), m.sheet.Collect())
	}
}

func (m *Model) submit() tea.Cmd {
	if m.saver != nil {
		m.saver.Submit(daykey.Format(m.date), m.sheet.Collect())
		return nil
	}
	res := m.planner.Save(m.date)
	m.refreshWeek()
	return m.applySaveResult(res)
}

func (m *Model) quit() tea.Cmd {
	if m.saver != nil {
		m.saver.Submit(daykey.Format(m.date), m.sheet.Collect())
		for _, res := range m.saver.Flush() {
			if !res.OK {
				m.logger.Error("save on exit failed", "key", res.Key, "err", res.Err)
			}
		}
	} else if res := m.planner.Save(m.date); !res.OK {
		m.logger.Error("save on exit failed", "key", res.Key, "err", res.Err)
	}
	return tea.Quit
}

func (m *Model) applySaveResult(res store.Result) tea.Cmd {
	if !res.OK {
		msg := "Save failed"
		if res.Err != nil {
			msg += ": " + res.Err.Error()
		}
		m.bar.SetStatus(bottombar.StatusFailed, msg)
		return nil
	}
	m.toastSeq++
	seq := m.toastSeq
	m.bar.SetStatus(bottombar.StatusSaved, "Saved")
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// reloadFromStore re-renders the day when storage holds something other than
// what is on screen, which only happens when another process wrote it.
func (m *Model) reloadFromStore() {
	if m.mode == bottombar.ModeEdit {
		m.reloadPending = true
		return
	}
	if m.saver != nil {
		m.saver.Flush()
	}
	rec, res := m.planner.Store.Load(daykey.Format(m.date))
	if !res.OK {
		return
	}
	m.refreshWeek()
	if reflect.DeepEqual(sheet.Visible(rec), m.sheet.Collect()) {
		return
	}
	m.sheet.Render(rec)
	m.clampCursors()
	m.afterOpen()
	m.bar.SetStatus(bottombar.StatusInfo, "Reloaded changes from disk")
}

func (m *Model) refreshWeek() {
	m.week = m.planner.Week(m.date)
}

func (m *Model) focusedList() *sheet.TaskList {
	switch m.focus {
	case areaTodos:
		return m.sheet.Todos
	case areaGoals:
		return m.sheet.Goals
	}
	return nil
}

func (m *Model) focusedTask() *sheet.TaskRow {
	if l := m.focusedList(); l != nil {
		return l.At(m.cursor[m.focus])
	}
	return nil
}

func (m Model) rowCount(a area) int {
	switch a {
	case areaTodos:
		return m.sheet.Todos.Len()
	case areaGoals:
		return m.sheet.Goals.Len()
	}
	return len(m.sheet.Schedule)
}

func (m *Model) clampCursors() {
	for a := areaSchedule; a < areaCount; a++ {
		n := m.rowCount(a)
		if m.cursor[a] >= n {
			m.cursor[a] = n - 1
		}
		if m.cursor[a] < 0 {
			m.cursor[a] = 0
		}
	}
}

func (m Model) inputWidth() int {
	w := m.termWidth/2 - 12
	if w < 10 {
		w = 10
	}
	return w
}

// View renders the header, the three sheet areas and the footer.
func (m Model) View() string {
	sections := []string{m.viewHeader(), m.viewWeek(), m.viewBody()}

	bar := m.bar
	bar.SetHelp(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.mode == bottombar.ModeHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	}
	footer, _ := bar.View()
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (m Model) viewHeader() string {
	h := m.theme.Header
	return fmt.Sprintf("%s %s  %s",
		h.Weekday.Render(daykey.Weekday(m.date, m.locale)),
		h.Date.Render(daykey.Display(m.date, m.locale)),
		h.Key.Render(daykey.Format(m.date)))
}

func (m Model) viewWeek() string {
	days := make([]calendar.Day, 0, len(m.week))
	for _, d := range m.week {
		days = append(days, calendar.Day{
			Label:      m.locale.Short[d.Date.Weekday()],
			Number:     d.Date.Day(),
			HasEntry:   d.Counts != (day.Counts{}),
			IsToday:    d.Today,
			IsSelected: d.Active,
		})
	}
	w := m.theme.Week
	return calendar.RenderWeek(days, calendar.Options{
		EmptyStyle:    w.Empty,
		EntryStyle:    w.Entry,
		TodayStyle:    w.Today,
		SelectedStyle: w.Selected,
		ShowShortcut:  true,
	})
}

func (m Model) viewBody() string {
	leftW, rightW := 0, 0
	if m.termWidth > 0 {
		leftW = m.termWidth * 45 / 100
		if leftW < 30 {
			leftW = 30
		}
		rightW = m.termWidth - leftW - 1
		if rightW < 24 {
			rightW = 24
		}
	}

	schedule := panel.New(m.theme.Pane)
	schedule.SetWidth(leftW)
	schedule.SetFocused(m.focus == areaSchedule)
	schedule.SetContent(m.paneTitle(areaSchedule, "Schedule"), m.scheduleLines())

	todos := panel.New(m.theme.Pane)
	todos.SetWidth(rightW)
	todos.SetFocused(m.focus == areaTodos)
	todos.SetContent(m.paneTitle(areaTodos, "Todos"), m.taskLines(areaTodos, m.sheet.Todos))

	goals := panel.New(m.theme.Pane)
	goals.SetWidth(rightW)
	goals.SetFocused(m.focus == areaGoals)
	goals.SetContent(m.paneTitle(areaGoals, "Goals"), m.taskLines(areaGoals, m.sheet.Goals))

	left, _ := schedule.View()
	top, _ := todos.View()
	bottom, _ := goals.View()
	right := lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) paneTitle(a area, name string) string {
	// Fixed-width prefix keeps the layout still when focus changes.
	if m.focus == a {
		return "» " + name
	}
	return "  " + name
}

func (m Model) marker(a area, i int) string {
	if m.focus == a && m.cursor[a] == i {
		return m.theme.Pane.Cursor.Render("→ ")
	}
	return "  "
}

func (m Model) scheduleLines() []string {
	p := m.theme.Pane
	lines := make([]string, 0, len(m.sheet.Schedule))
	for i, row := range m.sheet.Schedule {
		text := row.Text
		switch {
		case m.editSchedule == row:
			text = m.input.View()
		case text == "":
			text = p.Placeholder.Render("·")
		}
		lines = append(lines, m.marker(areaSchedule, i)+p.Hour.Render(row.Hour)+" "+text)
	}
	return lines
}

func (m Model) taskLines(a area, l *sheet.TaskList) []string {
	p := m.theme.Pane
	if l.Len() == 0 {
		return []string{p.Placeholder.Render("  (a to add)")}
	}
	lines := make([]string, 0, l.Len())
	for i, row := range l.Rows() {
		box := "[ ]"
		text := row.Text
		if row.Done {
			box = "[x]"
			text = p.Done.Render(text)
		}
		switch {
		case m.editTask == row:
			text = m.input.View()
		case row.Text == "":
			text = p.Placeholder.Render("·")
		}
		lines = append(lines, m.marker(a, i)+box+" "+text)
	}
	return lines
}
