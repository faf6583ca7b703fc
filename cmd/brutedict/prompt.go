package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Line markers for the interactive flow. The color package downgrades to
// plain text on non-TTY output and honors NO_COLOR.
var (
	markPlus = color.New(color.FgGreen).Sprint("[+]")
	markStar = color.New(color.FgGreen).Sprint("[*]")
	markBang = color.New(color.FgRed).Sprint("[!]")

	labelColor  = color.New(color.FgCyan)
	titleColor  = color.New(color.FgMagenta)
	numberColor = color.New(color.FgYellow)
	optionColor = color.New(color.FgGreen)
)

// prompter wraps an input reader and output writer so the interactive flow
// stays testable.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints a "[+] Label [default]: " prompt and returns the trimmed
// answer, falling back to def on empty input.
func (p *prompter) ask(label, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s %s [%s]: ", markPlus, labelColor.Sprint(label), def)
	} else {
		fmt.Fprintf(p.out, "%s %s: ", markPlus, labelColor.Sprint(label))
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// askList prompts for a comma-separated list.
func (p *prompter) askList(label string) []string {
	return splitList(p.ask(label, ""))
}

// askYesNo prompts for a y/n answer; anything starting with "y" counts as
// yes, empty input selects the default.
func (p *prompter) askYesNo(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer := strings.ToLower(p.ask(fmt.Sprintf("%s (%s)", label, hint), ""))
	if answer == "" {
		return def
	}
	return strings.HasPrefix(answer, "y")
}

func (p *prompter) infof(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", markPlus, fmt.Sprintf(format, args...))
}

func (p *prompter) notef(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", markStar, fmt.Sprintf(format, args...))
}

func (p *prompter) warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", markBang, fmt.Sprintf(format, args...))
}

// splitList splits a comma-separated answer, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
