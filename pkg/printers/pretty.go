package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/quietfield/drift/pkg/signal"
)

const excerptLen = 48

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" signal")
	default:
		_, _ = c.Println(" signals")
	}
}

// Signals prints the loaded sequence in presentation order.
func (pp *PrettyPrint) Signals(signals ...*signal.Signal) {
	if len(signals) == 0 {
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "

	if pp.ShowID {
		tbl.AddRow(bold.Sprint("#"), bold.Sprint("ID"), bold.Sprint("Section"), bold.Sprint("Order"), bold.Sprint("Text"), bold.Sprint("Image"))
	} else {
		tbl.AddRow(bold.Sprint("#"), bold.Sprint("Section"), bold.Sprint("Order"), bold.Sprint("Text"), bold.Sprint("Image"))
	}

	for i, s := range signals {
		img := ""
		if s.ImageURL != "" {
			img = "✓"
		}
		if pp.ShowID {
			tbl.AddRow(i, s.ID, string(s.Section), s.Order, excerpt(s.Text), img)
		} else {
			tbl.AddRow(i, string(s.Section), s.Order, excerpt(s.Text), img)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}

func excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= excerptLen {
		return text
	}
	return string(runes[:excerptLen-1]) + "…"
}
