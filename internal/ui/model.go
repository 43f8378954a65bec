package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkadlec/pricelist/internal/config"
	"github.com/mkadlec/pricelist/internal/converter"
	"github.com/mkadlec/pricelist/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type state int

const (
	stateFilePicker state = iota
	stateSheetSelect
	stateColumnSelect
	stateFilterOptions
	stateOutputName
	stateConverting
	stateComplete
	stateError
)

// filter-options screen rows
const (
	optFilterEnabled = iota
	optFilterColumn
	optMinLength
)

type Model struct {
	cfg   *config.Config
	state state

	filepicker filepicker.Model
	src        *os.File
	fileName   string

	sheets      []string
	sheetCursor int
	sheet       string

	preview  *types.Frame
	columns  []string
	selected []string // click order; the first entry is the key column
	cursor   int

	filterEnabled bool
	filterCursor  int // index into selected
	optCursor     int
	minLength     textinput.Model

	outName textinput.Model

	spinner spinner.Model
	result  *types.ConversionResult
	err     error
	notice  string

	width  int
	height int
}

type workbookLoadedMsg struct {
	src    *os.File
	sheets []string
	err    error
}

type previewLoadedMsg struct {
	frame *types.Frame
	err   error
}

type conversionDoneMsg struct {
	result *types.ConversionResult
	err    error
}

func InitialModel(cfg *config.Config) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx", ".xlsm"}
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#36A3D9"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#5CCFE6"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#36A3D9")).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	ml := textinput.New()
	ml.CharLimit = 4
	ml.Width = 6
	ml.SetValue(strconv.Itoa(cfg.Filter.MinLength))

	out := textinput.New()
	out.CharLimit = 128
	out.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SelectedStyle

	return Model{
		cfg:           cfg,
		state:         stateFilePicker,
		filepicker:    fp,
		filterEnabled: true,
		minLength:     ml,
		outName:       out,
		spinner:       sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for title, subtitle, help text, and padding.
		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case stateFilePicker:
			if msg.String() == "q" {
				return m, tea.Quit
			}

		case stateSheetSelect:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.sheetCursor > 0 {
					m.sheetCursor--
				}
			case "down", "j":
				if m.sheetCursor < len(m.sheets)-1 {
					m.sheetCursor++
				}
			case "enter":
				m.sheet = m.sheets[m.sheetCursor]
				return m, m.loadPreview()
			case "esc":
				return m.backToFilePicker()
			}

		case stateColumnSelect:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.columns)-1 {
					m.cursor++
				}
			case " ":
				if len(m.columns) > 0 {
					m.toggleColumn(m.columns[m.cursor])
					m.notice = ""
				}
			case "enter":
				m.notice = ""
				if m.filterCursor >= len(m.selected) {
					m.filterCursor = 0
				}
				m.optCursor = optFilterEnabled
				m.minLength.Blur()
				m.state = stateFilterOptions
			case "esc":
				m.state = stateSheetSelect
			}

		case stateFilterOptions:
			switch msg.String() {
			case "up", "k":
				if m.optCursor > 0 {
					m.optCursor--
				}
				m.syncMinLengthFocus()
				return m, nil
			case "down", "j", "tab":
				if m.optCursor < optMinLength {
					m.optCursor++
				}
				m.syncMinLengthFocus()
				return m, nil
			case " ":
				if m.optCursor == optFilterEnabled {
					m.filterEnabled = !m.filterEnabled
					return m, nil
				}
			case "left", "h":
				if m.optCursor == optFilterColumn && len(m.selected) > 0 {
					m.filterCursor = (m.filterCursor + len(m.selected) - 1) % len(m.selected)
					return m, nil
				}
			case "right", "l":
				if m.optCursor == optFilterColumn && len(m.selected) > 0 {
					m.filterCursor = (m.filterCursor + 1) % len(m.selected)
					return m, nil
				}
			case "enter":
				if m.filterEnabled {
					if _, err := m.minLengthValue(); err != nil {
						m.notice = err.Error()
						return m, nil
					}
				}
				m.notice = ""
				if m.outName.Value() == "" {
					m.outName.SetValue(converter.DefaultOutputName(m.fileName))
				}
				m.minLength.Blur()
				m.outName.Focus()
				m.state = stateOutputName
				return m, nil
			case "esc":
				m.minLength.Blur()
				m.state = stateColumnSelect
				return m, nil
			}
			if m.optCursor == optMinLength {
				var cmd tea.Cmd
				m.minLength, cmd = m.minLength.Update(msg)
				return m, cmd
			}
			return m, nil

		case stateOutputName:
			switch msg.String() {
			case "enter":
				return m.commit()
			case "esc":
				m.outName.Blur()
				m.optCursor = optFilterEnabled
				m.state = stateFilterOptions
				return m, nil
			}
			var cmd tea.Cmd
			m.outName, cmd = m.outName.Update(msg)
			return m, cmd

		case stateComplete:
			switch msg.String() {
			case "q", "enter":
				return m, tea.Quit
			case "esc":
				// Back for another conversion of the same workbook.
				m.result = nil
				m.outName.Focus()
				m.state = stateOutputName
			}

		case stateError:
			switch msg.String() {
			case "q", "enter":
				return m, tea.Quit
			case "esc":
				m.err = nil
				if len(m.columns) == 0 {
					return m.backToFilePicker()
				}
				m.state = stateColumnSelect
			}
		}

	case workbookLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.src = msg.src
		m.sheets = msg.sheets
		m.sheetCursor = converter.DefaultSheet(msg.sheets)
		m.state = stateSheetSelect
		return m, nil

	case previewLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.preview = msg.frame
		m.columns = msg.frame.Columns
		m.selected = converter.DefaultSelection(m.columns, m.cfg.Candidates())
		m.cursor = 0
		m.filterCursor = 0
		m.state = stateColumnSelect
		return m, nil

	case conversionDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.state = stateComplete
		return m, nil

	case spinner.TickMsg:
		if m.state == stateConverting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			m.fileName = path
			return m, m.loadWorkbook(path)
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) backToFilePicker() (Model, tea.Cmd) {
	if m.src != nil {
		m.src.Close()
		m.src = nil
	}
	m.sheets = nil
	m.state = stateFilePicker
	return m, nil
}

func (m *Model) toggleColumn(name string) {
	for i, sel := range m.selected {
		if sel == name {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return
		}
	}
	m.selected = append(m.selected, name)
}

func (m *Model) syncMinLengthFocus() {
	if m.optCursor == optMinLength && m.filterEnabled {
		m.minLength.Focus()
	} else {
		m.minLength.Blur()
	}
}

func (m Model) minLengthValue() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(m.minLength.Value()))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("minimum length must be a whole number of at least 1")
	}
	return n, nil
}

func (m Model) loadWorkbook(path string) tea.Cmd {
	return func() tea.Msg {
		src, err := os.Open(path)
		if err != nil {
			return workbookLoadedMsg{err: fmt.Errorf("open %s: %w", path, err)}
		}
		sheets, err := converter.SheetNames(src)
		if err != nil {
			src.Close()
			return workbookLoadedMsg{err: err}
		}
		return workbookLoadedMsg{src: src, sheets: sheets}
	}
}

func (m Model) loadPreview() tea.Cmd {
	src := m.src
	sheet := m.sheet
	return func() tea.Msg {
		frame, err := converter.Preview(src, sheet, converter.PreviewRows)
		return previewLoadedMsg{frame: frame, err: err}
	}
}

func (m Model) commit() (Model, tea.Cmd) {
	if len(m.selected) == 0 {
		m.notice = "select at least one column first"
		m.outName.Blur()
		m.state = stateColumnSelect
		return m, nil
	}
	name := strings.TrimSpace(m.outName.Value())
	if name == "" {
		m.notice = "output filename must not be empty"
		return m, nil
	}

	req := converter.Request{
		Sheet:   m.sheet,
		Columns: append([]string(nil), m.selected...),
	}
	if m.filterEnabled {
		n, err := m.minLengthValue()
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		req.FilterColumn = m.selected[m.filterCursor]
		req.MinLength = n
	}

	src := m.src
	outDir := m.cfg.Output.Dir
	m.notice = ""
	m.state = stateConverting

	convert := func() tea.Msg {
		result, err := converter.Convert(src, req)
		if err != nil {
			return conversionDoneMsg{err: err}
		}
		path, err := converter.WriteArtifact(outDir, name, result.CSVData)
		if err != nil {
			return conversionDoneMsg{err: err}
		}
		result.OutputFile = path
		return conversionDoneMsg{result: result}
	}
	return m, tea.Batch(m.spinner.Tick, convert)
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateSheetSelect:
		return m.viewSheetSelect()
	case stateColumnSelect:
		return m.viewColumnSelect()
	case stateFilterOptions:
		return m.viewFilterOptions()
	case stateOutputName:
		return m.viewOutputName()
	case stateConverting:
		return m.viewConverting()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Pricelist — Excel to CSV converter"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a workbook (.xlsx or .xlsm) to convert"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("q: quit"))

	return s.String()
}

func (m Model) viewSheetSelect() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Select Sheet"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Workbook: %s", m.fileName)))
	s.WriteString("\n\n")

	for i, name := range m.sheets {
		cursor := " "
		if m.sheetCursor == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, name)
		if m.sheetCursor == i {
			line = SelectedStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("↑/↓: navigate • enter: select • esc: back • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewColumnSelect() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Select Columns"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Sheet: %s — preview of first %d rows", m.sheet, converter.PreviewRows)))
	s.WriteString("\n")
	s.WriteString(m.renderPreview())
	s.WriteString("\n\n")

	for i, name := range m.columns {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		checked := "   "
		if pos := indexOf(m.selected, name); pos >= 0 {
			checked = fmt.Sprintf("%2d ", pos+1)
		}

		line := fmt.Sprintf("%s [%s] %s", cursor, checked, name)
		if m.cursor == i {
			line = SelectedStyle.Render(line)
		} else if indexOf(m.selected, name) >= 0 {
			line = CheckedStyle.Render(line)
		} else {
			line = UnselectedStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if m.notice != "" {
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(m.notice))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("column #1 is exported verbatim, the rest are normalized to integers"))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("↑/↓: navigate • space: toggle • enter: continue • esc: back • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) renderPreview() string {
	if m.preview == nil {
		return ""
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return UnselectedStyle
		}).
		Headers(m.preview.Columns...).
		Rows(m.preview.Rows...)
	return t.Render()
}

func (m Model) viewFilterOptions() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Filter Options"))
	s.WriteString("\n\n")

	enabled := "[ ]"
	if m.filterEnabled {
		enabled = "[x]"
	}
	filterCol := "(no columns selected)"
	if len(m.selected) > 0 {
		filterCol = m.selected[m.filterCursor]
	}

	rows := []string{
		fmt.Sprintf("%s Filter rows by minimum text length", enabled),
		fmt.Sprintf("Filter column: ◂ %s ▸", filterCol),
		fmt.Sprintf("Minimum length: %s", m.minLength.View()),
	}

	for i, row := range rows {
		cursor := " "
		if m.optCursor == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, row)
		switch {
		case i > optFilterEnabled && !m.filterEnabled:
			line = SubtitleStyle.Render(line)
		case m.optCursor == i:
			line = SelectedStyle.Render(line)
		default:
			line = UnselectedStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if m.notice != "" {
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(m.notice))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("↑/↓: navigate • space: toggle • ◂/▸: change column • enter: continue • esc: back"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewOutputName() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Output File"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Saved into %s/ (overwrites an existing file of the same name)", m.cfg.Output.Dir)))
	s.WriteString("\n\n")
	s.WriteString(m.outName.View())

	if m.notice != "" {
		s.WriteString("\n\n")
		s.WriteString(ErrorStyle.Render(m.notice))
	}

	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("enter: convert • esc: back"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewConverting() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Converting..."))
	s.WriteString("\n\n")
	s.WriteString(m.spinner.View())
	s.WriteString(fmt.Sprintf(" Processing sheet %q", m.sheet))

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Conversion Complete"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Sheet:   %s\n", m.result.SheetName))
	s.WriteString(fmt.Sprintf("Columns: %s\n", strings.Join(m.result.Columns, ", ")))
	s.WriteString(fmt.Sprintf("Rows:    %d\n", m.result.RowsOut))
	s.WriteString(SuccessStyle.Render(fmt.Sprintf("Saved:   %s", m.result.OutputFile)))
	s.WriteString("\n\n")

	preview := m.result.CSVData
	if lines := strings.Split(preview, "\n"); len(lines) > converter.PreviewRows {
		preview = strings.Join(lines[:converter.PreviewRows], "\n") + "\n…"
	}
	if preview != "" {
		s.WriteString(SubtitleStyle.Render("Output preview:"))
		s.WriteString("\n")
		s.WriteString(preview)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("esc: convert again • q/enter: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	if m.err != nil {
		s.WriteString(m.err.Error())
	}
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("esc: back • q/enter: quit"))

	return BoxStyle.Render(s.String())
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
