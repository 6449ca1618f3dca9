package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/overload/internal/models"
)

// Form collects the exercise name and max, prompting for whatever was not given
// up front.
type Form struct {
	Name string
	Max  string

	in  *bufio.Scanner
	out io.Writer
}

func NewForm(in io.Reader, out io.Writer, name, max string) *Form {
	return &Form{
		Name: name,
		Max:  max,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Fill prompts for missing fields until the input validates. A prompted max is asked
// again after a rejection. An empty name aborts before the max is asked for. A rejected
// max passed up front or the end of input also aborts with the *models.InputError.
func (f *Form) Fill() error {
	if f.Name == "" {
		f.Name = f.prompt("Exercise name")
		if strings.TrimSpace(f.Name) == "" {
			return &models.InputError{Kind: models.EmptyName}
		}
	}

	prompted := false
	if f.Max == "" {
		f.Max = f.prompt("Maximum")
		prompted = true
	}

	for {
		_, err := models.ParseExerciseInput(f.Name, f.Max)
		if err == nil {
			return nil
		}

		var inErr *models.InputError
		if !errors.As(err, &inErr) || inErr.Field() != "max" || !prompted {
			return err
		}

		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintln(f.out, red(inErr.Error()))

		next, ok := f.read("Maximum")
		if !ok {
			return err
		}
		f.Max = next
	}
}

func (f *Form) prompt(label string) string {
	line, _ := f.read(label)
	return line
}

func (f *Form) read(label string) (string, bool) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(f.out, "%s: ", cyan(label))
	if !f.in.Scan() {
		return "", false
	}
	return f.in.Text(), true
}
