package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/fitness/trainer"
)

// refreshChat re-renders the conversation into the chat viewport and
// scrolls to the newest message.
func (m *Model) refreshChat() {
	history := m.trainer.History()

	blocks := make([]string, 0, len(history))
	for _, msg := range history {
		stamp := styles.TextMutedStyle.Render(msg.Timestamp.Format("15:04"))
		if msg.Sender == fitness.SenderUser {
			blocks = append(blocks, styles.ChatUserStyle.Render("You")+" "+stamp+"\n"+msg.Text)
			continue
		}
		blocks = append(blocks, styles.ChatBotStyle.Render(styles.IconChat+" Coach")+" "+stamp+"\n"+m.renderMarkdown(msg.Text))
	}

	m.chatView.SetContent(strings.Join(blocks, "\n\n"))
	m.chatView.GotoBottom()
}

func (m Model) renderTrainer() string {
	parts := []string{m.chatView.View(), ""}

	if m.pendingReplies > 0 {
		parts = append(parts, m.spinner.View()+" "+styles.TextMutedStyle.Render("Coach is typing..."))
	}

	if m.state == stateChatting {
		parts = append(parts, m.chatInput.View())
	} else {
		parts = append(parts, styles.TextMutedStyle.Render("Press i to write a message, or enter to ask a suggested question:"))
		for i, q := range trainer.SuggestedQuestions {
			if i == m.suggestion {
				parts = append(parts, styles.SelectedStyle.Render("› "+q))
				continue
			}
			parts = append(parts, "  "+q)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
