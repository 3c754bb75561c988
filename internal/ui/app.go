package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/catalog"
	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/logging"
	"github.com/PhilTech-Hub/DQ-Product-Dashboard/internal/view"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen selects which view the app is showing.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenNotFound
)

// Defaults for the skeleton delays when none are configured. A fast
// response settles before the delay fires and no skeleton flashes.
const (
	DefaultListSkeletonDelay   = 300 * time.Millisecond
	DefaultDetailSkeletonDelay = 500 * time.Millisecond
)

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT own an HTTP client. It receives fetch results
// via messages; the command constructors are injected so tests can
// drive the model without a network.
type App struct {
	fetchAll func(gen int) tea.Cmd
	fetchOne func(gen, id int) tea.Cmd

	// Fetch slots, independent per the last-write-wins rule.
	list   catalog.ListState
	detail catalog.DetailState

	controls view.Controls
	derived  view.Derived
	pageSize int

	listDelay   time.Duration
	detailDelay time.Duration

	screen    Screen
	cursor    int
	search    textinput.Model
	searching bool
	spin      spinner.Model

	listSkeleton   bool
	detailSkeleton bool

	width  int
	height int
	ready  bool
}

// NewApp creates the root model with the given fetch command constructors.
// fetchAll(gen) must produce a ProductsLoaded carrying gen back;
// fetchOne(gen, id) a ProductLoaded. pageSize <= 0 falls back to the
// pipeline default.
func NewApp(fetchAll func(gen int) tea.Cmd, fetchOne func(gen, id int) tea.Cmd, pageSize int) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	if pageSize <= 0 {
		pageSize = view.DefaultPageSize
	}

	return App{
		fetchAll:    fetchAll,
		fetchOne:    fetchOne,
		controls:    view.NewControls(),
		pageSize:    pageSize,
		listDelay:   DefaultListSkeletonDelay,
		detailDelay: DefaultDetailSkeletonDelay,
		spin:        s,
		search:      ti,
	}
}

// WithSkeletonDelays overrides the skeleton delays (used by config).
func (a App) WithSkeletonDelays(list, detail time.Duration) App {
	if list > 0 {
		a.listDelay = list
	}
	if detail > 0 {
		a.detailDelay = detail
	}
	return a
}

// initMsg kicks off the first fetch. Init runs on a copy of the model,
// so the fetch slot transition has to happen in Update to stick.
type initMsg struct{}

// Init schedules the first catalog fetch.
func (a App) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

// startListFetch begins a new list fetch slot generation and returns
// the commands that resolve it: the fetch itself, the skeleton delay
// tick bound to this generation, and the spinner.
func (a App) startListFetch() (catalog.ListState, bool, tea.Cmd) {
	list := a.list
	gen := list.Begin()

	cmds := []tea.Cmd{a.spin.Tick}
	if a.fetchAll != nil {
		cmds = append(cmds, a.fetchAll(gen))
	}
	cmds = append(cmds, tea.Tick(a.listDelay, func(time.Time) tea.Msg {
		return listSkeletonMsg{gen: gen}
	}))

	return list, false, tea.Batch(cmds...)
}

// startDetailFetch begins a detail fetch for the given product id.
func (a App) startDetailFetch(id int) (catalog.DetailState, bool, tea.Cmd) {
	detail := a.detail
	gen := detail.Begin(id)

	cmds := []tea.Cmd{a.spin.Tick}
	if a.fetchOne != nil {
		cmds = append(cmds, a.fetchOne(gen, id))
	}
	cmds = append(cmds, tea.Tick(a.detailDelay, func(time.Time) tea.Msg {
		return detailSkeletonMsg{gen: gen}
	}))

	return detail, false, tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		var cmd tea.Cmd
		a.list, a.listSkeleton, cmd = a.startListFetch()
		return a, cmd

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		// Keep the spinner animated only while something is loading.
		if a.list.Status() == catalog.StatusLoading || a.detail.Status() == catalog.StatusLoading {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case listSkeletonMsg:
		// Only the latest generation, still loading, may reveal skeletons.
		if msg.gen == a.list.Generation() && a.list.Status() == catalog.StatusLoading {
			a.listSkeleton = true
		}
		return a, nil

	case detailSkeletonMsg:
		if msg.gen == a.detail.Generation() && a.detail.Status() == catalog.StatusLoading {
			a.detailSkeleton = true
		}
		return a, nil

	case ProductsLoaded:
		if !a.list.Resolve(msg.Gen, msg.Products, msg.Total, msg.Err) {
			logging.Debug("Discarded stale product list", "gen", msg.Gen, "current", a.list.Generation())
			return a, nil
		}
		a.listSkeleton = false
		if msg.Err != nil {
			logging.Error("Product list fetch failed", "error", msg.Err)
		} else {
			logging.Info("Product list loaded", "count", len(msg.Products), "total", msg.Total)
		}
		a.recompute()
		return a, nil

	case ProductLoaded:
		if !a.detail.Resolve(msg.Gen, msg.Product, msg.Err) {
			logging.Debug("Discarded stale product detail", "gen", msg.Gen, "current", a.detail.Generation())
			return a, nil
		}
		a.detailSkeleton = false
		if a.detail.Status() == catalog.StatusNotFound {
			a.screen = ScreenNotFound
		}
		return a, nil
	}

	return a, nil
}

// handleKeyMsg processes keyboard input for the current screen.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere except while typing a search term.
	if !a.searching {
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		}
	} else if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.screen {
	case ScreenDetail:
		return a.handleDetailKeys(msg)
	case ScreenNotFound:
		return a.handleNotFoundKeys(msg)
	default:
		return a.handleListKeys(msg)
	}
}

func (a App) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		return a.handleSearchInput(msg)
	}

	switch msg.String() {
	case "/":
		a.searching = true
		a.search.Focus()
		return a, textinput.Blink

	case "c":
		a.controls = a.controls.WithCategory(a.nextCategory(1))
		a.recompute()
		return a, nil

	case "C":
		a.controls = a.controls.WithCategory("")
		a.recompute()
		return a, nil

	case "s":
		a.controls = a.controls.WithSort(a.controls.Sort.Next())
		a.recompute()
		return a, nil

	case "left", "h":
		if a.controls.Page > 1 {
			a.controls = a.controls.WithPage(a.controls.Page - 1)
			a.cursor = 0
			a.recompute()
		}
		return a, nil

	case "right", "l":
		if a.controls.Page < a.derived.DisplayPages() {
			a.controls = a.controls.WithPage(a.controls.Page + 1)
			a.cursor = 0
			a.recompute()
		}
		return a, nil

	case "j", "down":
		if a.cursor < len(a.derived.PageSlice)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "g", "home":
		a.cursor = 0
		return a, nil

	case "G", "end":
		if n := len(a.derived.PageSlice); n > 0 {
			a.cursor = n - 1
		}
		return a, nil

	case "enter":
		if a.cursor < len(a.derived.PageSlice) {
			id := a.derived.PageSlice[a.cursor].ID
			var cmd tea.Cmd
			a.detail, a.detailSkeleton, cmd = a.startDetailFetch(id)
			a.screen = ScreenDetail
			logging.Info("Opening product detail", "id", id)
			return a, cmd
		}
		return a, nil

	case "r":
		var cmd tea.Cmd
		a.list, a.listSkeleton, cmd = a.startListFetch()
		return a, cmd
	}

	return a, nil
}

// handleSearchInput routes keys to the search field. Every keystroke is
// a searchTerm-changed event: the pipeline recomputes immediately and
// the page snaps back to 1.
func (a App) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.searching = false
		a.search.Blur()
		return a, nil
	}

	before := a.search.Value()
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)

	if after := a.search.Value(); after != before {
		a.controls = a.controls.WithSearch(after)
		a.cursor = 0
		a.recompute()
	}
	return a, cmd
}

func (a App) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "backspace":
		a.screen = ScreenList
		return a, nil

	case "r":
		// Retry is user-initiated only; never automatic.
		if id := a.detail.ID(); id > 0 {
			var cmd tea.Cmd
			a.detail, a.detailSkeleton, cmd = a.startDetailFetch(id)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleNotFoundKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "enter", "backspace":
		a.screen = ScreenList
		return a, nil
	}
	return a, nil
}

// nextCategory cycles the category filter through "" (all) and each
// derived category, stepping by delta.
func (a App) nextCategory(delta int) string {
	categories := a.derived.Categories
	if len(categories) == 0 {
		return ""
	}

	// Options are: "" followed by the categories in first-seen order.
	current := 0
	for i, c := range categories {
		if c == a.controls.Category {
			current = i + 1
			break
		}
	}

	next := (current + delta + len(categories) + 1) % (len(categories) + 1)
	if next == 0 {
		return ""
	}
	return categories[next-1]
}

// recompute re-runs the view pipeline from the current inputs. This is
// the explicit recomputation call: derived state is never stored as an
// independent source of truth.
func (a *App) recompute() {
	a.derived = view.Derive(a.list.Products(), a.controls, a.pageSize)
	a.controls.Page = a.derived.Page
	if a.cursor >= len(a.derived.PageSlice) {
		a.cursor = len(a.derived.PageSlice) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.screen {
	case ScreenDetail:
		return a.viewDetail()
	case ScreenNotFound:
		return a.viewNotFound()
	default:
		return a.viewList()
	}
}

func (a App) viewList() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderControlBar())
	b.WriteString("\n")

	switch a.list.Status() {
	case catalog.StatusLoading:
		if !a.listSkeleton {
			// Fast responses settle before the delay: just the spinner.
			b.WriteString(HelpStyle.Render(a.spin.View() + " Loading products..."))
			b.WriteString("\n")
		} else {
			b.WriteString(RenderSkeletons(a.width))
		}

	case catalog.StatusFailed:
		b.WriteString(ErrorStyle.Render("Failed to load products: " + a.list.Reason()))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press 'r' to retry."))
		b.WriteString("\n")

	case catalog.StatusReady:
		b.WriteString(RenderProducts(a.derived.PageSlice, a.cursor, a.width))
		b.WriteString(RenderPagination(a.derived.Page, a.derived.DisplayPages(), a.width))
		b.WriteString("\n")
	}

	b.WriteString(RenderListStatusBar(a.cursor, len(a.derived.PageSlice), a.width, a.list.Status() == catalog.StatusLoading))
	return b.String()
}

func (a App) viewDetail() string {
	var b strings.Builder

	b.WriteString(Header.Width(a.width).Render("← Back to Products (esc)"))
	b.WriteString("\n\n")

	switch a.detail.Status() {
	case catalog.StatusLoading:
		if !a.detailSkeleton {
			b.WriteString(HelpStyle.Render(a.spin.View() + " Loading product..."))
			b.WriteString("\n")
		} else {
			b.WriteString(RenderDetailSkeleton(a.width))
		}

	case catalog.StatusFailed:
		b.WriteString(ErrorStyle.Render("Failed to load product: " + a.detail.Reason()))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press 'r' to retry, 'esc' to go back."))
		b.WriteString("\n")

	case catalog.StatusReady:
		b.WriteString(RenderDetail(a.detail.Product(), a.width))
	}

	b.WriteString("\n")
	b.WriteString(RenderDetailStatusBar(a.width))
	return b.String()
}

func (a App) viewNotFound() string {
	var b strings.Builder
	b.WriteString(Header.Width(a.width).Render("← Back to Products (esc)"))
	b.WriteString("\n\n")
	b.WriteString(RenderNotFound(a.detail.ID(), a.width))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderHeader() string {
	left := "PRODUCT DASHBOARD"
	if a.list.Status() == catalog.StatusReady {
		left = fmt.Sprintf("PRODUCT DASHBOARD │ %d of %d products", len(a.derived.Filtered), a.list.Total())
	}

	right := ""
	if a.list.Status() == catalog.StatusLoading {
		right = a.spin.View() + " loading"
	}

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 0 {
		padding = 0
	}
	return Header.Width(a.width).Render(left + strings.Repeat(" ", padding) + right)
}

// renderControlBar shows the search box and the active category/sort.
func (a App) renderControlBar() string {
	var parts []string

	if a.searching {
		parts = append(parts, a.search.View())
	} else if term := a.controls.SearchTerm; term != "" {
		parts = append(parts, FilterLabel.Render("/"+term))
	} else {
		parts = append(parts, StatusBarText.Render("/ search"))
	}

	category := a.controls.Category
	if category == "" {
		category = "All Categories"
	}
	parts = append(parts, FilterLabel.Render(category))
	parts = append(parts, FilterLabel.Render(a.controls.Sort.String()))

	return FilterBar.Width(a.width).Render(strings.Join(parts, StatusBarText.Render("  │  ")))
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Controls returns the current view controls (for testing).
func (a App) Controls() view.Controls {
	return a.controls
}

// Derived returns the last recomputed view (for testing).
func (a App) Derived() view.Derived {
	return a.derived
}

// CurrentScreen returns the active screen (for testing).
func (a App) CurrentScreen() Screen {
	return a.screen
}

// ListStatus returns the list slot status (for testing).
func (a App) ListStatus() catalog.Status {
	return a.list.Status()
}

// DetailStatus returns the detail slot status (for testing).
func (a App) DetailStatus() catalog.Status {
	return a.detail.Status()
}

// ListSkeletonVisible reports whether list skeletons are showing (for testing).
func (a App) ListSkeletonVisible() bool {
	return a.listSkeleton
}
