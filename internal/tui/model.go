package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/camview/camview/internal/config"
	"github.com/camview/camview/internal/core"
	"github.com/camview/camview/internal/source"
)

// DataMsg carries freshly loaded camera data into the viewer.
type DataMsg source.Data

type tickMsg time.Time

const (
	liveRefresh = 10 * time.Second
	chromeRows  = 4 // header, sparkline, blank, status
)

// Model is the timeline viewer. It owns the time range and rebuilds the
// slot map whenever data, the selected date or "now" moves.
type Model struct {
	cfg    config.Config
	camera config.CameraConfig

	selected *time.Time
	rng      core.Range
	data     source.Data
	items    core.SlotMap

	cursor int // slot index of the selected row
	offset int // slot index of the first visible row
	width  int
	height int
	follow bool

	now func() time.Time
}

func NewModel(cfg config.Config, camera config.CameraConfig, selected *time.Time, data source.Data) Model {
	m := Model{
		cfg:      cfg,
		camera:   camera,
		selected: selected,
		data:     data,
		follow:   cfg.UI.FollowLive && selected == nil,
		now:      time.Now,
	}
	m.rebuild()
	return m
}

// rebuild recomputes the range and folds the current data into a fresh
// slot map. Cheap enough to run on every change.
func (m *Model) rebuild() {
	m.rng = core.NewRange(m.selected, m.now())
	events := core.FilterObjectEvents(m.data.Events, m.camera.Filters)
	m.items = core.BuildSlotMap(&m.rng, events, m.data.Timespans)
}

func (m Model) Init() tea.Cmd {
	if m.follow {
		return tickCmd()
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(liveRefresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()

	case DataMsg:
		m.data = source.Data(msg)
		m.rebuild()
		m.clampScroll()

	case tickMsg:
		if m.follow {
			m.rebuild()
			return m, tickCmd()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.selectAtRow(msg.Y)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.moveCursor(1)
		case "k", "up":
			m.moveCursor(-1)
		case "pgdown":
			m.moveCursor(m.visibleRows())
		case "pgup":
			m.moveCursor(-m.visibleRows())
		case "g":
			m.cursor = 0
			m.clampScroll()
		case "G":
			m.cursor = core.SlotCount(&m.rng) - 1
			m.clampScroll()
		case "f":
			m.follow = !m.follow
			if m.follow {
				return m, tickCmd()
			}
		case "r":
			m.rebuild()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampScroll()
}

// selectAtRow maps a clicked terminal row to a timestamp via the pixel
// conversion, then snaps the cursor to its slot.
func (m *Model) selectAtRow(y int) {
	row := y - 2 // header + sparkline
	if row < 0 || row >= m.visibleRows() {
		return
	}
	total := core.SlotCount(&m.rng)
	position := float64(m.offset + row)
	ts := core.PositionToTime(&m.rng, position, float64(total))
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return
	}
	at := int64(ts)
	m.cursor = core.SlotIndex(&m.rng, &at)
	m.clampScroll()
}

func (m *Model) clampScroll() {
	total := core.SlotCount(&m.rng)
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > total-1 {
		m.cursor = total - 1
	}
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) visibleRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(RenderDensity(&m.rng, m.items, m.width))
	b.WriteString("\n")

	total := core.SlotCount(&m.rng)
	nowRow := m.nowRow(total)
	for row := 0; row < m.visibleRows(); row++ {
		index := m.offset + row
		if index >= total {
			b.WriteString("\n")
			continue
		}
		rec := core.SlotAt(m.items, core.SlotTime(&m.rng, index))
		b.WriteString(RenderRow(rec, index == m.cursor, index == nowRow))
		b.WriteString("\n")
	}

	b.WriteString(m.statusView())
	return b.String()
}

// nowRow locates the current time inside the virtual list using the
// time-to-pixel conversion with one row per pixel. Live ranges keep
// "now" a few slots below the top; past days put it off-list.
func (m Model) nowRow(total int) int {
	y := core.TimeToPosition(&m.rng, float64(m.now().Unix()), float64(total))
	if math.IsNaN(y) || y < 0 || y >= float64(total) {
		return -1
	}
	return int(y)
}

func (m Model) headerView() string {
	name := m.camera.Name
	if name == "" {
		name = m.camera.Identifier
	}
	day := "today"
	if m.selected != nil {
		day = m.selected.Format("2006-01-02")
	}
	mode := ""
	if m.follow {
		mode = nowStyle.Render(" LIVE")
	}
	return headerStyle.Render("camview") +
		labelStyle.Render("  "+name+"  "+day) + mode
}

func (m Model) statusView() string {
	slotTime := core.SlotTime(&m.rng, m.cursor)
	at := time.Unix(slotTime, 0).Format("15:04:05")

	frag := core.FindFragmentByTimestamp(m.data.Fragments, float64(slotTime))
	segment := "no segment"
	if frag != nil {
		segment = frag.URI
	}

	status := fmt.Sprintf("%s  %s", at, segment)
	help := helpStyle.Render("  j/k scroll · f follow · q quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(status), help)
}
