package tui

import (
	"fmt"
	"strings"

	"github.com/dfrestrepo/claustro/internal/tui/formatter"
)

// DefaultPageSize is the number of rows shown per table page.
const DefaultPageSize = 10

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Row is one table line. ID ties the row back to the record it renders.
type Row struct {
	ID    string
	Cells []string
}

// tableModel is the generic paginated, searchable table every section
// list is built on. It is a pure component: key handling lives in the
// section view that owns it.
//
// The search filter is derived from the full row set on every change, so
// applying the same query twice yields the same result, and replacing
// the data re-applies whatever query is active.
type tableModel struct {
	columns  []Column
	rows     []Row
	visible  []Row
	search   string
	page     int // 1-based
	pageSize int
	cursor   int // index into the current page
}

func newTableModel(columns []Column) tableModel {
	return tableModel{
		columns:  columns,
		page:     1,
		pageSize: DefaultPageSize,
	}
}

// UpdateData replaces the full row set, jumps back to the first page,
// and re-applies the active search.
func (t *tableModel) UpdateData(rows []Row) {
	t.rows = rows
	t.page = 1
	t.cursor = 0
	t.applyFilter()
}

// SetSearch filters rows whose cells contain the query, case-insensitive
// across every column. An empty query restores the full set.
func (t *tableModel) SetSearch(query string) {
	t.search = query
	t.page = 1
	t.cursor = 0
	t.applyFilter()
}

func (t *tableModel) Search() string { return t.search }

func (t *tableModel) applyFilter() {
	if t.search == "" {
		t.visible = t.rows
		return
	}
	q := strings.ToLower(t.search)
	var filtered []Row
	for _, r := range t.rows {
		for _, cell := range r.Cells {
			if strings.Contains(strings.ToLower(cell), q) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	t.visible = filtered
}

// PageCount reports the number of pages; an empty table still has one.
func (t *tableModel) PageCount() int {
	if len(t.visible) == 0 {
		return 1
	}
	return (len(t.visible) + t.pageSize - 1) / t.pageSize
}

// SetPage clamps the requested page into the valid range.
func (t *tableModel) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := t.PageCount(); page > max {
		page = max
	}
	t.page = page
	t.cursor = 0
}

func (t *tableModel) Page() int { return t.page }

func (t *tableModel) NextPage() { t.SetPage(t.page + 1) }
func (t *tableModel) PrevPage() { t.SetPage(t.page - 1) }

// pageRows returns the slice of visible rows on the current page.
func (t *tableModel) pageRows() []Row {
	start := (t.page - 1) * t.pageSize
	if start >= len(t.visible) {
		return nil
	}
	end := start + t.pageSize
	if end > len(t.visible) {
		end = len(t.visible)
	}
	return t.visible[start:end]
}

func (t *tableModel) CursorUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *tableModel) CursorDown() {
	if t.cursor < len(t.pageRows())-1 {
		t.cursor++
	}
}

// SelectedRow returns the row under the cursor, or nil on an empty page.
func (t *tableModel) SelectedRow() *Row {
	rows := t.pageRows()
	if t.cursor < 0 || t.cursor >= len(rows) {
		return nil
	}
	return &rows[t.cursor]
}

// VisibleRows returns every row matching the current search, across all
// pages, in display order. Exports use this, not just the current page.
func (t *tableModel) VisibleRows() []Row {
	return t.visible
}

// Header returns the column titles in order.
func (t *tableModel) Header() []string {
	titles := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = c.Title
	}
	return titles
}

// View renders the table: header, rows of the current page, and a footer
// with the page position and record count.
func (t *tableModel) View() string {
	var b strings.Builder

	var heads []string
	for _, c := range t.columns {
		heads = append(heads, formatter.PadRight(c.Title, c.Width))
	}
	b.WriteString("  " + formatter.Bold(strings.Join(heads, "  ")) + "\n")

	rows := t.pageRows()
	if len(rows) == 0 {
		b.WriteString("\n  " + formatter.Dim("Sin registros.") + "\n")
	}
	for i, r := range rows {
		cursor := "  "
		style := formatter.StyleFg
		if i == t.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		var cells []string
		for j, c := range t.columns {
			val := ""
			if j < len(r.Cells) {
				val = r.Cells[j]
			}
			cells = append(cells, formatter.PadRight(val, c.Width))
		}
		b.WriteString(cursor + style.Render(strings.Join(cells, "  ")) + "\n")
	}

	footer := fmt.Sprintf("Página %d/%d · %d registros",
		t.page, t.PageCount(), len(t.visible))
	if t.search != "" {
		footer += fmt.Sprintf(" · filtro: %q", t.search)
	}
	b.WriteString("\n  " + formatter.Dim(footer) + "\n")
	return b.String()
}
