package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/scheme"
)

const shortIDLen = 8

// ShortID is the prefix of an id shown next to each exercise. It is enough to
// select the exercise in show-ex and delete-exercise.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

func FormatMax(max float64) string {
	return strconv.FormatFloat(max, 'f', -1, 64)
}

func JoinReps(reps []int) string {
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " - ")
}

// RenderHistory prints groups in the given order, with a boxed header.
func RenderHistory(w io.Writer, groups []models.ExerciseGroup) {
	if len(groups) == 0 {
		magenta := color.New(color.FgMagenta).SprintFunc()
		fmt.Fprintln(w, magenta("No exercises saved yet."))
		return
	}

	printBoxedHeader(w, "HISTORY")
	fmt.Fprintln(w)
	for _, g := range groups {
		RenderGroup(w, g)
		fmt.Fprintln(w)
	}
}

func RenderGroup(w io.Writer, g models.ExerciseGroup) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()

	fmt.Fprintf(w, "%s  %s\n", boldGreen(g.Name), blue("("+ShortID(g.ID)+")"))
	fmt.Fprintf(w, "  %s %s reps\n", boldCyan("Max:"), FormatMax(g.Max))
	for _, r := range g.Records {
		fmt.Fprintf(w, "  %s %s\n", yellow(fmt.Sprintf("%-6s", scheme.Label(r.Day))), JoinReps(r.Reps))
	}
	fmt.Fprintf(w, "  %s %s\n", boldCyan("Created:"), g.Timestamp)
}

// RenderPreview prints the progression for max without saving anything.
func RenderPreview(w io.Writer, max float64) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()

	fmt.Fprintf(w, "%s %s reps\n", boldGreen("Scheme for a max of"), FormatMax(max))
	for _, day := range scheme.TrainingDays {
		pct := 50 + 5*day
		fmt.Fprintf(w, "  %s %s  %s\n",
			yellow(fmt.Sprintf("%-6s", scheme.Label(day))),
			JoinReps(scheme.Compute(max, day)),
			magenta(fmt.Sprintf("(%d%%)", pct)),
		)
	}
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}
