package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/busrayesinn/eventra/internal/engine"
	"github.com/busrayesinn/eventra/internal/ui"
)

// RunShop opens the interactive rewards board.
func RunShop(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newShopModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type shopModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	balance int
	streak  int
	views   []engine.RewardView

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	balance int
	streak  int
	views   []engine.RewardView
	err     error
}

type purchasedMsg struct {
	reward *engine.Reward
	err    error
}

func newShopModel(ctx context.Context, svc *engine.Service) shopModel {
	return shopModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m shopModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m shopModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		balance, err := m.svc.Balance(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		streak, err := m.svc.Streak(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		views, err := m.svc.RewardViews(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{balance: balance, streak: streak, views: views}
	}
}

func (m shopModel) purchaseCmd(id string) tea.Cmd {
	return func() tea.Msg {
		reward, err := m.svc.Purchase(m.ctx, id)
		return purchasedMsg{reward: reward, err: err}
	}
}

func (m shopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.balance = msg.balance
		m.streak = msg.streak
		m.views = msg.views
		if m.selected >= len(m.views) {
			m.selected = len(m.views) - 1
		}
		return m, nil
	case purchasedMsg:
		if msg.err != nil {
			m.lastLog = "Purchase failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Unlocked %s!", msg.reward.Title)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.views)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.views) {
				return m, nil
			}
			v := m.views[m.selected]
			if v.Owned {
				m.lastLog = "Already owned."
				return m, nil
			}
			if v.Type != engine.RewardShop {
				m.lastLog = "Streak badges unlock on their own; keep the streak going."
				return m, nil
			}
			if v.Locked {
				m.lastLog = fmt.Sprintf("Not enough points (%d needed).", v.Cost)
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Buying %s…", v.Title)
			return m, m.purchaseCmd(v.ID)
		}
	}
	return m, nil
}

func (m shopModel) View() string {
	if m.loading {
		return "Loading rewards…\n"
	}
	if m.err != nil {
		return ui.Bad.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTrophy, "Rewards"))
	b.WriteString("  ")
	b.WriteString(ui.Points(m.balance))
	b.WriteString("  ")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("%s streak %d", ui.IconFire, m.streak)))
	b.WriteString("\n\n")

	for i, v := range m.views {
		line := fmt.Sprintf("%s %-16s %s", v.Icon, v.Title, rewardTag(v))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · enter buy · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	return ui.Panel.Render(b.String()) + "\n"
}

func rewardTag(v engine.RewardView) string {
	switch {
	case v.Owned:
		return ui.Good.Render("owned ✅")
	case v.Type == engine.RewardStreak:
		return ui.Muted.Render(fmt.Sprintf("%s %d-day streak", ui.IconLock, v.StreakRequired))
	case v.Locked:
		return ui.Bad.Render(fmt.Sprintf("%s %d pts", ui.IconLock, v.Cost))
	default:
		return ui.Gold.Render(fmt.Sprintf("%d pts", v.Cost))
	}
}
