package event

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Row returns the columns used by table printers: id, title, provenance.
func (e *Event) Row(showID bool) []interface{} {
	tag := ""
	if e.BacklogSource != LevelNone && e.BacklogSource != e.BacklogLevel {
		tag = fmt.Sprintf("(from %s)", e.BacklogSource)
	}
	if showID {
		return []interface{}{e.ID, e.Title, tag}
	}
	return []interface{}{e.Title, tag}
}

// PrettyPrint renders a titled table of events to color.Output.
func PrettyPrint(title string, showID bool, events ...*Event) {
	fmt.Println(Underline(Bold(title)))
	if len(events) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, e := range events {
		if e == nil {
			continue
		}
		tbl.AddRow(e.Row(showID)...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
