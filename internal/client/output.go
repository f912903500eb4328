package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/charmbracelet/lipgloss"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(20)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Output renders command results as lipgloss text or indented JSON.
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates an Output writing to w. Unknown formats fall back to
// text.
func NewOutput(w io.Writer, format string) *Output {
	if format != FormatJSON {
		format = FormatText
	}
	return &Output{w: w, format: format}
}

// PrintProfile renders the profile card.
func (o *Output) PrintProfile(p models.UserProfile) {
	if o.format == FormatJSON {
		o.printJSON(p)
		return
	}
	fmt.Fprintln(o.w, renderProfile(p))
}

// PrintOutcome renders a resolved operation.
func (o *Output) PrintOutcome(outcome models.Outcome) {
	if o.format == FormatJSON {
		o.printJSON(outcomeView{
			Operation: string(outcome.Operation),
			TraceID:   outcome.TraceID,
			Success:   outcome.Success,
			Reason:    outcome.Reason,
			Profile:   profileOrNil(outcome),
		})
		return
	}

	if !outcome.Success {
		fmt.Fprintln(o.w, errorStyle.Render(string(outcome.Operation)+" failed: ")+outcome.Reason)
		return
	}
	fmt.Fprintln(o.w, okStyle.Render(string(outcome.Operation)+" ok"))
	if !outcome.Profile.IsZero() {
		fmt.Fprintln(o.w, renderProfile(outcome.Profile))
	}
}

// PrintMessage writes a plain message.
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(v any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

type outcomeView struct {
	Operation string              `json:"operation"`
	TraceID   string              `json:"trace_id"`
	Success   bool                `json:"success"`
	Reason    string              `json:"reason,omitempty"`
	Profile   *models.UserProfile `json:"profile,omitempty"`
}

func profileOrNil(outcome models.Outcome) *models.UserProfile {
	if outcome.Profile.IsZero() {
		return nil
	}
	p := outcome.Profile
	return &p
}

func renderProfile(p models.UserProfile) string {
	rows := []struct{ label, value string }{
		{"User id", fmt.Sprint(p.ID)},
		{"Registered", orDash(p.RegisteredAt)},
		{"Last played", orDash(p.LastPlayed)},
		{"Enemies eliminated", fmt.Sprint(p.EnemiesEliminated)},
		{"Defeats", fmt.Sprint(p.Defeats)},
		{"Wins", fmt.Sprint(p.Wins)},
		{"Time played", p.FormattedTimePlayed()},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Username))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(row.value)
	}

	return cardStyle.Render(b.String())
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
