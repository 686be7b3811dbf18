package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/lazyopencode/internal/discovery"
	"github.com/klauern/lazyopencode/internal/filter"
	"github.com/klauern/lazyopencode/internal/model"
)

// browseKeyMap defines the key bindings for the catalog browser.
type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Detail   key.Binding
	Level    key.Binding
	Refresh  key.Binding
	Filter   key.Binding
	ClearFlt key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "details"),
		),
		Level: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle scope"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFlt: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Styles for the catalog browser.
var browseStyles = struct {
	Title       lipgloss.Style
	Help        lipgloss.Style
	Filter      lipgloss.Style
	FilterInput lipgloss.Style
	Status      lipgloss.Style
	Degraded    lipgloss.Style
	DetailBox   lipgloss.Style
	DetailTitle lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	FilterInput: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	Degraded:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	DetailBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
}

type browsePhase int

const (
	browsePhaseList browsePhase = iota
	browsePhaseDetail
)

const (
	browseTypeWidth     = 9
	browseScopeWidth    = 8
	browseNameWidth     = 22
	browseStatusWidth   = 9
	browseDescWidth     = 38
	browseColumnPadding = 2
	browseColumnCount   = 5
	browseDetailLines   = 2
	browseDetailHeight  = browseDetailLines + 1 + 2 // title + content + border
)

type browseColumnWidths struct {
	typ    int
	scope  int
	name   int
	status int
	desc   int
}

var titleCaser = cases.Title(language.English)

// BrowseModel is the BubbleTea model for the interactive catalog browser.
type BrowseModel struct {
	store        *discovery.Store
	table        table.Model
	filtered     []model.Customization
	keys         browseKeyMap
	level        filter.Level
	query        string
	filtering    bool
	showHelp     bool
	width        int
	height       int
	columnWidths browseColumnWidths
	phase        browsePhase
	detail       model.Customization
	viewport     viewport.Model
	ready        bool
	quitting     bool
}

// NewBrowseModel creates a browser over the store's published snapshot,
// running the first discovery pass if none has been published yet.
func NewBrowseModel(store *discovery.Store) BrowseModel {
	store.LoadOrRefresh()

	m := BrowseModel{
		store: store,
		keys:  defaultBrowseKeyMap(),
		level: filter.LevelNone,
	}

	columns, widths := browseColumns(0)
	m.columnWidths = widths

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	m.applyFilter()
	return m
}

// snapshot returns the current catalog, which is never nil after
// NewBrowseModel ran the first pass.
func (m BrowseModel) snapshot() model.Catalog {
	if cat := m.store.Load(); cat != nil {
		return *cat
	}
	return model.Catalog{}
}

func (m *BrowseModel) applyFilter() {
	m.filtered = filter.Apply(m.snapshot(), m.level, m.query)
	m.table.SetRows(m.toRows(m.filtered))
	if cursor := m.table.Cursor(); cursor >= len(m.filtered) && len(m.filtered) > 0 {
		m.table.SetCursor(len(m.filtered) - 1)
	}
}

func (m BrowseModel) toRows(custs []model.Customization) []table.Row {
	rows := make([]table.Row, len(custs))
	for i, c := range custs {
		status := "valid"
		if !c.Status.IsValid() {
			status = "degraded"
		}
		rows[i] = table.Row{
			truncateText(c.Type.Label(), m.columnWidths.typ),
			truncateText(titleCaser.String(string(c.Scope)), m.columnWidths.scope),
			truncateText(c.Name, m.columnWidths.name),
			truncateText(status, m.columnWidths.status),
			truncateText(c.Description, m.columnWidths.desc),
		}
	}
	return rows
}

func browseColumns(totalWidth int) ([]table.Column, browseColumnWidths) {
	widths := browseColumnWidths{
		typ:    browseTypeWidth,
		scope:  browseScopeWidth,
		name:   browseNameWidth,
		status: browseStatusWidth,
		desc:   browseDescWidth,
	}

	if totalWidth > 0 {
		baseTotal := widths.typ + widths.scope + widths.name + widths.status + widths.desc +
			(browseColumnPadding * browseColumnCount)
		extra := totalWidth - baseTotal
		if extra > 0 {
			nameExtra := extra / 3
			widths.name += nameExtra
			widths.desc += extra - nameExtra
		}
	}

	columns := []table.Column{
		{Title: "Type", Width: widths.typ},
		{Title: "Scope", Width: widths.scope},
		{Title: "Name", Width: widths.name},
		{Title: "Status", Width: widths.status},
		{Title: "Description", Width: widths.desc},
	}

	return columns, widths
}

func (m *BrowseModel) updateColumns(totalWidth int) {
	columns, widths := browseColumns(totalWidth)
	m.columnWidths = widths
	m.table.SetColumns(columns)
}

func (m BrowseModel) selected() model.Customization {
	cursor := m.table.Cursor()
	if cursor >= 0 && cursor < len(m.filtered) {
		return m.filtered[cursor]
	}
	return model.Customization{}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case browsePhaseDetail:
		return m.updateDetail(msg)
	default:
		return m.updateList(msg)
	}
}

func (m BrowseModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		newHeight := max(msg.Height-10-browseDetailHeight-1, 5)
		m.table.SetHeight(newHeight)
		m.updateColumns(msg.Width)
		m.table.SetRows(m.toRows(m.filtered))

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				return m, nil
			case "esc":
				m.query = ""
				m.filtering = false
				m.applyFilter()
				return m, nil
			case "backspace":
				if len(m.query) > 0 {
					m.query = m.query[:len(m.query)-1]
					m.applyFilter()
				}
				return m, nil
			default:
				if len(msg.String()) == 1 {
					m.query += msg.String()
					m.applyFilter()
				}
				return m, nil
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, nil

		case key.Matches(msg, m.keys.ClearFlt):
			m.query = ""
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Level):
			m.level = m.level.Next()
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.store.Refresh()
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Detail):
			if len(m.filtered) > 0 {
				m.detail = m.selected()
				m.phase = browsePhaseDetail
				m.ready = false
				m.ensureViewport()
				return m, nil
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BrowseModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureViewport()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.phase = browsePhaseList
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *BrowseModel) ensureViewport() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height - 6
	if height < 5 {
		height = 15
	}
	m.viewport = viewport.New(width, height)
	m.viewport.SetContent(m.detailContent(width))
	m.ready = true
}

func (m BrowseModel) detailContent(width int) string {
	c := m.detail
	var b strings.Builder

	write := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(browseStyles.DetailTitle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	write("Type:", c.Type.Label())
	write("Scope:", titleCaser.String(string(c.Scope)))
	write("Path:", c.Path)
	write("Description:", c.Description)
	if !c.Status.IsValid() {
		b.WriteString(browseStyles.Degraded.Render("Status: " + c.Status.String()))
		b.WriteString("\n")
	}
	if len(c.Metadata) > 0 {
		b.WriteString(browseStyles.DetailTitle.Render("Metadata:"))
		b.WriteString("\n")
		for k, v := range c.Metadata {
			b.WriteString(fmt.Sprintf("  %s: %s\n", k, truncateText(v, width-4-runewidth.StringWidth(k))))
		}
	}
	if c.Content != "" {
		b.WriteString("\n")
		b.WriteString(c.Content)
	}
	return b.String()
}

func (m BrowseModel) renderDetailPanel() string {
	width := m.width
	if width <= 0 {
		width = m.columnWidths.typ + m.columnWidths.scope + m.columnWidths.name +
			m.columnWidths.status + m.columnWidths.desc + (browseColumnPadding * browseColumnCount)
	}
	contentWidth := max(width-4, 10)

	c := m.selected()
	description := strings.TrimSpace(c.Description)
	if description == "" {
		description = "No description available."
	}

	lines := clampLines(wrapText(description, contentWidth), browseDetailLines)
	header := browseStyles.DetailTitle.Render("Description (selected)")
	content := append([]string{header}, lines...)

	return browseStyles.DetailBox.Width(width).Render(strings.Join(content, "\n"))
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == browsePhaseDetail {
		return m.viewDetail()
	}

	var b strings.Builder

	b.WriteString(browseStyles.Title.Render("lazyopencode"))
	b.WriteString("\n\n")

	if m.query != "" || m.filtering {
		filterStr := browseStyles.Filter.Render("Filter: ")
		filterVal := browseStyles.FilterInput.Render(m.query)
		if m.filtering {
			filterVal += "█"
		}
		b.WriteString(filterStr + filterVal + "\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetailPanel())
	b.WriteString("\n")

	total := m.snapshot().Len()
	status := fmt.Sprintf("%d customization(s) • scope: %s", len(m.filtered), m.level)
	if len(m.filtered) != total {
		status = fmt.Sprintf("%d of %d customization(s) • scope: %s", len(m.filtered), total, m.level)
	}
	if diags := len(m.snapshot().Diagnostics); diags > 0 {
		status += fmt.Sprintf(" • %d diagnostic(s)", diags)
	}
	b.WriteString(browseStyles.Status.Render(status))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderShortHelp())
	}

	return b.String()
}

func (m BrowseModel) viewDetail() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(browseStyles.Title.Render(fmt.Sprintf("%s: %s", m.detail.Type.Label(), m.detail.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	scrollPercent := int(m.viewport.ScrollPercent() * 100)
	status := fmt.Sprintf("Scroll: %d%% • Press b or Esc to go back", scrollPercent)
	b.WriteString(browseStyles.Status.Render(status))
	b.WriteString("\n")

	return b.String()
}

func (m BrowseModel) renderShortHelp() string {
	return browseStyles.Help.Render("↑/↓ navigate • enter details • / filter • s scope • r rescan • ? help • q quit")
}

func (m BrowseModel) renderFullHelp() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Detail, m.keys.Level,
		m.keys.Refresh, m.keys.Filter, m.keys.ClearFlt, m.keys.Help, m.keys.Quit,
	}
	var lines []string
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
	}
	return browseStyles.Help.Render(strings.Join(lines, "\n"))
}
