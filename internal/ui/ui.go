// Package ui renders the session surfaces for the terminal: the
// recommendation cards, the active filter chips, and chat transcript
// lines.
package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"careerpilot/internal/prefs"
	"careerpilot/internal/recommend"
)

const bannerText = `
 ██████╗ █████╗ ██████╗ ███████╗███████╗██████╗ ██████╗ ██╗██╗      ██████╗ ████████╗
██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗██╔══██╗██║██║     ██╔═══██╗╚══██╔══╝
██║     ███████║██████╔╝█████╗  █████╗  ██████╔╝██████╔╝██║██║     ██║   ██║   ██║
██║     ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗██╔═══╝ ██║██║     ██║   ██║   ██║
╚██████╗██║  ██║██║  ██║███████╗███████╗██║  ██║██║     ██║███████╗╚██████╔╝   ██║
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝ ╚═════╝    ╚═╝
`

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		pterm.FgCyan.Println(bannerText)
	}
}

// slotHeading maps a card slot to its section heading.
func slotHeading(kind recommend.Kind) string {
	switch kind {
	case recommend.KindCourse:
		return "Recommended Course"
	case recommend.KindJob:
		return "Job Opportunity"
	case recommend.KindEvent:
		return "Upcoming Event"
	case recommend.KindWorkshop:
		return "Workshop"
	}
	return "Recommendation"
}

// RenderCard renders one recommendation card as a boxed panel.
func RenderCard(card recommend.Card) string {
	var body strings.Builder

	body.WriteString(pterm.Bold.Sprint(card.Title))
	body.WriteString("\n")
	if card.DisplayType != "" {
		body.WriteString(pterm.FgLightMagenta.Sprint(card.DisplayType))
		body.WriteString("\n")
	}
	if card.Description != "" {
		body.WriteString(card.Description)
		body.WriteString("\n")
	}

	for _, detail := range card.Details {
		if detail != "" {
			body.WriteString(pterm.FgGray.Sprint("• "))
			body.WriteString(detail)
			body.WriteString("\n")
		}
	}

	if card.ActionLabel != "" {
		body.WriteString("\n")
		action := card.ActionLabel
		if card.ActionLink != "" {
			action = fmt.Sprintf("%s → %s", card.ActionLabel, card.ActionLink)
		}
		body.WriteString(pterm.FgLightBlue.Sprint(action))
	}

	return pterm.DefaultBox.
		WithTitle(slotHeading(card.Kind)).
		Sprint(strings.TrimRight(body.String(), "\n"))
}

// RenderDeck renders the visible deck, slot by slot in fixed order.
// A hidden deck renders nothing.
func RenderDeck(deck *recommend.Deck) string {
	if !deck.Visible() {
		return ""
	}

	var out strings.Builder
	for kind := recommend.Kind(0); kind < recommend.NumSlots; kind++ {
		card, ok := deck.Card(kind)
		if !ok {
			continue
		}
		out.WriteString(RenderCard(card))
		out.WriteString("\n")
	}
	return out.String()
}

// RenderChips renders the active filter chips on one line.
func RenderChips(chips []prefs.Chip) string {
	if len(chips) == 0 {
		return pterm.FgGray.Sprint("(no active filters)")
	}

	parts := make([]string, 0, len(chips))
	for _, chip := range chips {
		var styled string
		switch chip.Kind {
		case prefs.ChipInterest:
			styled = pterm.FgLightCyan.Sprintf("[%s]", chip.Label)
		case prefs.ChipCareerLevel:
			styled = pterm.FgLightYellow.Sprintf("[%s]", chip.Label)
		case prefs.ChipGoal:
			styled = pterm.FgLightGreen.Sprintf("[%s]", chip.Label)
		default:
			styled = fmt.Sprintf("[%s]", chip.Label)
		}
		parts = append(parts, styled)
	}
	return strings.Join(parts, " ")
}

// RenderEntry renders one transcript line with a role prefix.
func RenderEntry(entry recommend.Entry) string {
	if entry.Typing {
		return pterm.FgGray.Sprint("assistant is typing...")
	}

	switch entry.Role {
	case recommend.RoleUser:
		return pterm.FgCyan.Sprint("you: ") + entry.Text
	case recommend.RoleAssistant:
		return pterm.FgGreen.Sprint("assistant: ") + entry.Text
	}
	return entry.Text
}

// PrintTranscript prints the full transcript in order.
func PrintTranscript(transcript *recommend.Transcript) {
	for _, entry := range transcript.Entries() {
		pterm.Println(RenderEntry(entry))
	}
}

// PrintError prints an error line.
func PrintError(message string) {
	pterm.Error.Println(message)
}

// PrintInfo prints an informational line.
func PrintInfo(message string) {
	pterm.Info.Println(message)
}
