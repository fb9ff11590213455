package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/corey/ridecheck/internal/domain/access"
	"github.com/corey/ridecheck/internal/domain/limits"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// printer writes to w, adding ANSI colors when enabled.
type printer struct {
	w     io.Writer
	color bool
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + colorReset
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// formatVerdict renders a check result.
//
//	✓ Ana may ride Kiddie Slide (children)
//	✗ Ben may not ride Kiddie Slide (children)
//	    age 15 not in 4–14
func (p *printer) formatVerdict(a *access.Attraction, v access.Visitor, vd access.Verdict) string {
	who := v.Name
	if who == "" {
		who = "visitor"
	}
	profile := "no profile"
	if a.Profile != nil {
		profile = a.Profile.Name()
	}

	var sb strings.Builder
	if vd.Allowed {
		sb.WriteString(fmt.Sprintf("%s %s may ride %s %s\n",
			p.paint(colorGreen, "✓"), who, p.paint(colorBold, a.Name), p.paint(colorGray, "("+profile+")")))
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("%s %s may not ride %s %s\n",
		p.paint(colorRed, "✗"), who, p.paint(colorBold, a.Name), p.paint(colorGray, "("+profile+")")))
	for _, r := range vd.Reasons() {
		sb.WriteString("    " + p.paint(colorYellow, r) + "\n")
	}
	return sb.String()
}

// formatProfile renders one profile row.
//
//	children   age 4–14     weight 20–50    height 80–120
func (p *printer) formatProfile(pr *limits.Profile) string {
	return fmt.Sprintf("  %s  age %-8s  weight %-8s  height %s\n",
		p.paint(colorCyan, fmt.Sprintf("%-10s", pr.Name())),
		pr.Age(), pr.Weight(), pr.Height())
}
