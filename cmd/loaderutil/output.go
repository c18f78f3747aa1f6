package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

type role int

const (
	rolePlain role = iota
	roleSource
	roleToken
	roleKey
	roleError
)

var palette = map[role]*color.Color{
	rolePlain:  color.New(color.Reset),
	roleSource: color.New(color.FgBlue),
	roleToken:  color.New(color.FgGreen),
	roleKey:    color.New(color.FgCyan),
	roleError:  color.New(color.FgRed),
}

// printer writes two-column listings. The left column is padded to a common
// display width, which may differ from the byte length for emoji or East
// Asian text.
type printer struct {
	w         io.Writer
	lineWidth int // 0 for unbounded lines
	context   *uax11.Context
}

// newPrinter creates a printer for w. Colors and the terminal line length are
// used only if w is an interactive terminal. Other output keeps every entry
// in full.
func newPrinter(w io.Writer, disableColor bool) *printer {
	grapheme.SetupGraphemeClasses()
	p := &printer{w: w, context: uax11.LatinContext}
	f, isFile := w.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
		return p
	}
	color.NoColor = disableColor
	p.lineWidth = terminalWidth(int(f.Fd()))
	p.context = uax11.ContextFromEnvironment()
	tracer().Debugf("setting line length to %d en", p.lineWidth)
	return p
}

// terminalWidth is the usable line length of terminal fd in fixed-width positions.
func terminalWidth(fd int) int {
	w, _, err := term.GetSize(fd)
	switch {
	case err != nil:
		return 65
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}

func (p *printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

// elide shortens s from the left to at most limit display positions.
func (p *printer) elide(s string, limit int) string {
	if limit < 2 || p.width(s) <= limit {
		return s
	}
	for s != "" && p.width(s) > limit-1 {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return "…" + s
}

// column computes the common width of the left column. On a terminal, long
// entries are elided so that the left column takes at most half of the line.
func (p *printer) column(lefts []string) int {
	col := 0
	for _, l := range lefts {
		col = max(col, p.width(l))
	}
	if p.lineWidth <= 0 {
		return col
	}
	return min(col, max(p.lineWidth/2, 10))
}

func (p *printer) pair(col int, left string, lrole role, right string, rrole role) {
	if p.lineWidth > 0 {
		left = p.elide(left, col)
	}
	pad := strings.Repeat(" ", max(0, col-p.width(left)))
	palette[lrole].Fprint(p.w, left)
	fmt.Fprint(p.w, pad, "  ")
	palette[rrole].Fprintln(p.w, right)
}

func (p *printer) line(r role, s string) {
	palette[r].Fprintln(p.w, s)
}
