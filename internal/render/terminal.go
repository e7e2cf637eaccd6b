package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/valpere/mtcompare/internal/compare"
)

type terminalTheme struct {
	banner    lipgloss.Style
	complete  lipgloss.Style
	header    lipgloss.Style
	panel     lipgloss.Style
	name      lipgloss.Style
	nameZh    lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	errorText lipgloss.Style
	message   lipgloss.Style
	status    map[compare.Status]lipgloss.Style
}

func newTerminalTheme() terminalTheme {
	purple := lipgloss.Color("#764ba2")
	indigo := lipgloss.Color("#667eea")
	green := lipgloss.Color("#4caf50")
	amber := lipgloss.Color("#ffc107")
	red := lipgloss.Color("#f44336")
	grey := lipgloss.Color("#9e9e9e")

	return terminalTheme{
		banner:    lipgloss.NewStyle().Foreground(indigo).Bold(true),
		complete:  lipgloss.NewStyle().Foreground(green).Bold(true),
		header:    lipgloss.NewStyle().Foreground(purple).Bold(true),
		panel:     lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(indigo).Padding(0, 1),
		name:      lipgloss.NewStyle().Bold(true),
		nameZh:    lipgloss.NewStyle().Foreground(grey),
		text:      lipgloss.NewStyle().PaddingLeft(3),
		muted:     lipgloss.NewStyle().PaddingLeft(3).Foreground(grey).Italic(true),
		errorText: lipgloss.NewStyle().PaddingLeft(3).Foreground(red),
		message:   lipgloss.NewStyle().Foreground(red).Bold(true),
		status: map[compare.Status]lipgloss.Style{
			compare.StatusPending: lipgloss.NewStyle().Foreground(grey),
			compare.StatusRunning: lipgloss.NewStyle().Foreground(amber),
			compare.StatusSuccess: lipgloss.NewStyle().Foreground(green),
			compare.StatusError:   lipgloss.NewStyle().Foreground(red),
		},
	}
}

var theme = newTerminalTheme()

var terminalIcons = map[compare.Status]string{
	compare.StatusPending: "⏳",
	compare.StatusRunning: "🔄",
	compare.StatusSuccess: "✅",
	compare.StatusError:   "❌",
}

// Terminal renders s as styled text. width caps the panel width; zero or
// less leaves it unbounded.
func Terminal(s compare.Snapshot, width int) string {
	if s.Message != "" {
		return theme.message.Render("❌ " + s.Message)
	}

	var lines []string
	switch {
	case s.Current != "":
		lines = append(lines,
			theme.banner.Render("🔄 Translating Term... 術語翻譯中..."),
			fmt.Sprintf("Processing: %s (%d/%d completed)", s.Current, s.Completed(), s.Total()),
			"",
		)
	case s.Finished():
		lines = append(lines,
			theme.complete.Render("✅ Complete! 完成!")+fmt.Sprintf(" %d/%d engines successful", s.Succeeded(), s.Total()),
			"",
		)
	}

	lines = append(lines, theme.header.Render("📊 Term Translation Results 術語翻譯結果"))
	for _, r := range s.Results {
		icon := theme.status[r.Status].Render(terminalIcons[r.Status])
		lines = append(lines, fmt.Sprintf("%s %s %s", icon, theme.name.Render(r.Engine), theme.nameZh.Render("("+r.EngineZh+")")))

		switch r.Status {
		case compare.StatusRunning:
			lines = append(lines, theme.muted.Render("⏳ "+TextTranslating))
		case compare.StatusSuccess:
			lines = append(lines, theme.text.Render(r.TranslatedText+"  "+theme.nameZh.Render("⏱️ "+Seconds(r.Elapsed))))
		case compare.StatusError:
			lines = append(lines, theme.errorText.Render("⚠️ "+ErrorText(r.ErrorMessage)))
		default:
			lines = append(lines, theme.muted.Render(TextWaiting))
		}
	}

	panel := theme.panel
	if width > 0 {
		panel = panel.MaxWidth(width)
	}
	return panel.Render(strings.Join(lines, "\n"))
}
