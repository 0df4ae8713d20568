package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vulnverified/prowl/internal/report"
)

// WriteText renders the report as a host table followed by the findings and
// a short summary.
func WriteText(w io.Writer, rep *report.Report, noColor bool) {
	v1 := rep.V1
	if v1 == nil {
		fmt.Fprintln(w, "Empty report.")
		return
	}

	rows := hostRows(v1)

	fmt.Fprintln(w)
	if noColor {
		writeSimpleTable(w, rows)
	} else {
		writeStyledTable(w, rows)
	}

	writeFindings(w, v1, noColor)
	writeSummary(w, v1, noColor)
}

func hostRows(v1 *report.V1) [][]string {
	var rows [][]string
	for _, host := range v1.Hosts {
		var ports []string
		for _, p := range host.Ports {
			ports = append(ports, strconv.Itoa(int(p.Port)))
		}
		rows = append(rows, []string{
			host.Domain,
			strconv.FormatBool(host.Resolves),
			strings.Join(host.IPs, ", "),
			strings.Join(ports, ","),
		})
	}
	return rows
}

var textHeaders = []string{"Host", "Resolves", "IPs", "Open ports"}

func writeStyledTable(w io.Writer, rows [][]string) {
	t := table.New().
		Headers(textHeaders...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
			}
			return lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		})

	for _, row := range rows {
		t.Row(row...)
	}

	fmt.Fprintln(w, t.Render())
}

func writeSimpleTable(w io.Writer, rows [][]string) {
	widths := make([]int, len(textHeaders))
	for i, h := range textHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range textHeaders {
		if i > 0 {
			fmt.Fprint(w, " | ")
		}
		fmt.Fprintf(w, "%-*s", widths[i], h)
	}
	fmt.Fprintln(w)

	for i, width := range widths {
		if i > 0 {
			fmt.Fprint(w, "-+-")
		}
		fmt.Fprint(w, strings.Repeat("-", width))
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, " | ")
			}
			fmt.Fprintf(w, "%-*s", widths[i], cell)
		}
		fmt.Fprintln(w)
	}
}

func writeFindings(w io.Writer, v1 *report.V1, noColor bool) {
	count := 0
	for _, host := range v1.Hosts {
		for _, port := range host.Ports {
			for _, finding := range port.Findings {
				if count == 0 {
					fmt.Fprintln(w)
					if noColor {
						fmt.Fprintln(w, "Findings:")
					} else {
						fmt.Fprintln(w, "\033[1mFindings:\033[0m")
					}
				}
				count++
				fmt.Fprintf(w, "  [%s] %s (%s): %s\n",
					finding.Severity, finding.Module, finding.ModuleVersion, finding.Result.URL)
			}
		}
	}
}

func writeSummary(w io.Writer, v1 *report.V1, noColor bool) {
	resolving := 0
	openPorts := 0
	findings := 0
	for _, host := range v1.Hosts {
		if host.Resolves {
			resolving++
		}
		openPorts += len(host.Ports)
		for _, port := range host.Ports {
			findings += len(port.Findings)
		}
	}

	fmt.Fprintln(w)
	if noColor {
		fmt.Fprintf(w, "Target: %s\n", v1.Target)
		fmt.Fprintf(w, "Hosts: %d discovered, %d resolving\n", len(v1.Hosts), resolving)
		fmt.Fprintf(w, "Open ports: %d, findings: %d\n", openPorts, findings)
		fmt.Fprintf(w, "Duration: %dms\n", v1.DurationMs)
	} else {
		fmt.Fprintf(w, "\033[1mTarget:\033[0m %s\n", v1.Target)
		fmt.Fprintf(w, "\033[1mHosts:\033[0m %d discovered, %d resolving\n", len(v1.Hosts), resolving)
		fmt.Fprintf(w, "\033[1mOpen ports:\033[0m %d, findings: %d\n", openPorts, findings)
		fmt.Fprintf(w, "\033[1mDuration:\033[0m %dms\n", v1.DurationMs)
	}
}
