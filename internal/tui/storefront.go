package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/bookstorectl/internal/store"
	"github.com/blackwell-systems/bookstorectl/internal/util"
)

// StorefrontResult carries the customer's selection out of the
// storefront screen.
type StorefrontResult struct {
	// Selected holds indices into the book slice the screen was
	// launched with.
	Selected []int
	// Redeem is true when the customer chose to apply loyalty
	// points to this purchase.
	Redeem bool
}

type storefrontModel struct {
	shopName     string
	customerName string
	points       int
	status       string
	books        []*store.Book
	selected     map[int]bool
	cursor       int
	result       *StorefrontResult
	canceled     bool
	errMsg       string
}

func newStorefront(shopName, customerName string, points int, status string, books []*store.Book) storefrontModel {
	return storefrontModel{
		shopName:     shopName,
		customerName: customerName,
		points:       points,
		status:       status,
		books:        books,
		selected:     make(map[int]bool),
	}
}

func (m storefrontModel) Init() tea.Cmd {
	return nil
}

func (m storefrontModel) finish(redeem bool) (tea.Model, tea.Cmd) {
	if len(m.selected) == 0 {
		m.errMsg = "select at least one book first"
		return m, nil
	}
	var picks []int
	for i := range m.books {
		if m.selected[i] {
			picks = append(picks, i)
		}
	}
	m.result = &StorefrontResult{Selected: picks, Redeem: redeem}
	return m, tea.Quit
}

func (m storefrontModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.books)-1 {
				m.cursor++
			}

		case " ":
			if len(m.books) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
				m.errMsg = ""
			}

		case "b", "enter":
			return m.finish(false)

		case "r":
			return m.finish(true)
		}
	}
	return m, nil
}

func (m storefrontModel) View() string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(m.shopName))
	b.WriteString("\n")

	statusLine := fmt.Sprintf("%s · %d points · %s member",
		m.customerName, m.points, m.status)
	b.WriteString(StyleStatus.Render(statusLine))
	b.WriteString("\n\n")

	if len(m.books) == 0 {
		b.WriteString(StyleHelp.Render("The shelves are empty. Check back later."))
		b.WriteString("\n")
	}

	for i, bk := range m.books {
		cursor := "  "
		if i == m.cursor {
			cursor = StyleHighlight.Render("› ")
		}

		check := "[ ]"
		if m.selected[i] {
			check = StyleHighlight.Render("[x]")
		}

		title := util.Truncate(bk.Title, 34)
		author := util.Truncate(bk.Author, 22)
		line := fmt.Sprintf("%s%s %-34s %-22s %s",
			cursor, check, title, author,
			StylePrice.Render(fmt.Sprintf("$%.2f", bk.Price)))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("space select · b buy · r redeem points and buy · q quit"))
	b.WriteString("\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// RunStorefront shows the customer storefront and blocks until the
// customer checks out or quits. A nil result with nil error means the
// customer left without buying.
func RunStorefront(shopName, customerName string, points int, status string, books []*store.Book) (*StorefrontResult, error) {
	p := tea.NewProgram(newStorefront(shopName, customerName, points, status, books), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running storefront: %w", err)
	}

	fm, ok := finalModel.(storefrontModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled || fm.result == nil {
		return nil, nil
	}
	return fm.result, nil
}
