package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

type boardTab int

const (
	tabDashboard boardTab = iota
	tabDailies
	tabActivities
	tabCount
)

type boardModel struct {
	eng          *engine.Engine
	persist      Persist
	tickInterval time.Duration

	width  int
	height int

	tab      boardTab
	selected int

	state    *engine.SaveState
	actTable table.Model
	actIDs   []string

	lastLog string
}

type tickMsg time.Time

type dispatchedMsg struct {
	res *engine.Result
	err error
}

func newBoardModel(e *engine.Engine, persist Persist, tickInterval time.Duration) boardModel {
	m := boardModel{
		eng:          e,
		persist:      persist,
		tickInterval: tickInterval,
		lastLog:      "Loaded.",
	}
	m.state = e.State()
	m.actTable = newActivityTable()
	m.refreshActivities()
	return m
}

func newActivityTable() table.Model {
	cols := []table.Column{
		{Title: "Activity", Width: 28},
		{Title: "Stat", Width: 14},
		{Title: "XP", Width: 5},
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithHeight(12),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true)
	st.Selected = ui.SelectedRow
	t.SetStyles(st)
	return t
}

func (m *boardModel) refreshActivities() {
	rows := make([]table.Row, 0, len(m.state.Activities))
	ids := make([]string, 0, len(m.state.Activities))
	for _, a := range m.state.Activities {
		statName := "?"
		if a.Stat >= 0 && a.Stat < len(m.state.Stats) {
			statName = m.state.Stats[a.Stat].Name
		}
		rows = append(rows, table.Row{a.Icon + " " + a.Name, statName, fmt.Sprintf("%d", a.XP)})
		ids = append(ids, a.ID)
	}
	m.actTable.SetRows(rows)
	m.actIDs = ids
}

func (m boardModel) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m boardModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) dispatchCmd(in engine.Intent) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.Dispatch(in)
		return dispatchedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.eng.Tick(time.Time(msg)) {
			m.state = m.eng.State()
			m.refreshActivities()
			if m.persist != nil {
				m.persist(m.state)
			}
			m.lastLog = "A new day begins: dailies reset, energy restored."
		}
		return m, m.scheduleTick()

	case dispatchedMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
			return m, nil
		}
		m.state = msg.res.State
		m.refreshActivities()
		if m.persist != nil {
			m.persist(m.state)
		}
		m.lastLog = flashText(msg.res)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.tab = (m.tab + 1) % tabCount
			m.selected = 0
			return m, nil
		case "r":
			m.state = m.eng.State()
			m.refreshActivities()
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, nil
		case "up", "k":
			if m.tab == tabActivities {
				var cmd tea.Cmd
				m.actTable, cmd = m.actTable.Update(msg)
				return m, cmd
			}
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.tab == tabActivities {
				var cmd tea.Cmd
				m.actTable, cmd = m.actTable.Update(msg)
				return m, cmd
			}
			if m.selected < len(m.state.DailyQuests)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			return m.activate()
		}
	}
	return m, nil
}

func (m boardModel) activate() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabDailies:
		if m.selected < 0 || m.selected >= len(m.state.DailyQuests) {
			return m, nil
		}
		dq := m.state.DailyQuests[m.selected]
		if dq.CompletedToday {
			m.lastLog = "Already done today."
			return m, nil
		}
		return m, m.dispatchCmd(engine.CompleteDailyQuest{DailyID: dq.ID})
	case tabActivities:
		i := m.actTable.Cursor()
		if i < 0 || i >= len(m.actIDs) {
			return m, nil
		}
		return m, m.dispatchCmd(engine.LogActivity{ActivityID: m.actIDs[i]})
	}
	return m, nil
}

func flashText(res *engine.Result) string {
	parts := []string{fmt.Sprintf("+%d XP", res.XPAwarded)}
	if res.LevelUp {
		parts = append(parts, ui.BadgeLevelUp+fmt.Sprintf(" → %d", res.LevelAfter))
	}
	if res.NewAchievement != nil {
		parts = append(parts, ui.Gold.Render(ui.IconTrophy+" "+res.NewAchievement.Name))
	}
	return strings.Join(parts, "  ")
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	switch m.tab {
	case tabDashboard:
		b.WriteString(m.renderDashboard())
	case tabDailies:
		b.WriteString(m.renderDailies())
	case tabActivities:
		b.WriteString(m.actTable.View())
	}
	b.WriteString("\n\n")
	b.WriteString(ui.Dim.Render("tab: switch  ↑/↓: move  enter/space: do  r: refresh  q: quit"))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderHeader() string {
	lv := engine.ResolveLevel(m.state.TotalXP)
	bar := ui.ProgressBar(lv.CurrentXP, lv.Needed, 24)
	return fmt.Sprintf("%s %s  Lv %d %s  %s %s  %s %d",
		ui.Title.Render(m.state.PlayerName),
		ui.Muted.Render("«"+m.state.Title+"»"),
		lv.Level, bar,
		ui.IconEnergy, ui.EnergyText(m.state.Energy, engine.EnergyMax),
		ui.IconStreak, m.state.Streak,
	)
}

func (m boardModel) renderTabs() string {
	names := []string{"Dashboard", "Dailies", "Activities"}
	out := make([]string, len(names))
	for i, n := range names {
		if boardTab(i) == m.tab {
			out[i] = ui.SelectedRow.Render(" " + n + " ")
		} else {
			out[i] = ui.Muted.Render(" " + n + " ")
		}
	}
	return strings.Join(out, " ")
}

func (m boardModel) renderDashboard() string {
	var out []string

	sum := engine.SummarizeToday(m.state, time.Now())
	out = append(out, ui.H2.Render("Today"))
	out = append(out, fmt.Sprintf("- XP earned: %d  Logged: %d  Dailies: %d/%d",
		sum.XPEarned, sum.Logged, sum.DailiesDone, sum.DailiesTotal))
	out = append(out, "")

	out = append(out, ui.H2.Render("Stats"))
	for _, st := range m.state.Stats {
		lv := engine.ResolveLevel(st.XP)
		out = append(out, fmt.Sprintf("- %s %-12s L%-2d %s", st.Icon, st.Name, lv.Level, ui.ProgressBar(lv.CurrentXP, lv.Needed, 14)))
	}
	out = append(out, "")

	out = append(out, ui.H2.Render(ui.IconTree+" Skill Trees"))
	for i := range m.state.SkillTrees {
		t := &m.state.SkillTrees[i]
		done, total := engine.TreeProgress(t)
		out = append(out, fmt.Sprintf("- %s %-18s %d/%d", t.Icon, t.Name, done, total))
	}
	out = append(out, "")

	out = append(out, ui.H2.Render(ui.IconQuest+" Active Quests"))
	if len(m.state.Quests) == 0 {
		out = append(out, ui.Muted.Render("(none — add one with `liferpg quest add`)"))
	}
	for _, q := range m.state.Quests {
		out = append(out, fmt.Sprintf("- [%s] %s", ui.QuestTypeText(q.Type), q.Title))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderDailies() string {
	if len(m.state.DailyQuests) == 0 {
		return ui.Muted.Render("(no daily quests — add one with `liferpg daily add`)")
	}
	var out []string
	for i, dq := range m.state.DailyQuests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "○"
		if dq.CompletedToday {
			mark = ui.Good.Render("●")
		}
		statName := "?"
		if dq.StatIndex >= 0 && dq.StatIndex < len(m.state.Stats) {
			statName = m.state.Stats[dq.StatIndex].Name
		}
		out = append(out, fmt.Sprintf("%s%s %s %s", cursor, mark, dq.Title, ui.Muted.Render("("+statName+")")))
	}
	return strings.Join(out, "\n")
}
