// Package output renders benchmark results for the terminal. The engine
// itself performs no I/O; everything printable comes through here.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/wesleyorama2/fetchbench/internal/bench/engine"
	"github.com/wesleyorama2/fetchbench/internal/bench/strategy"
)

const ruleWidth = 46

// logoLeft and logoRight are joined line by line, each half styled with
// its own color.
var logoLeft = []string{
	`  ___     _       _   `,
	` |  _|___| |_ ___| |_ `,
	` |  _| -_|  _|  _|   |`,
	` |_| |___|_| |___|_|_|`,
	``,
}

var logoRight = []string{
	` _               _   `,
	`| |_ ___ ___ ___| |_ `,
	`| . | -_|   |  _|   |`,
	`|___|___|_|_|___|_|_|`,
	``,
}

// PrintLogo writes the startup logo to w.
func PrintLogo(w io.Writer, scheme *ColorScheme) {
	for i := range logoLeft {
		fmt.Fprintf(w, "%s%s\n",
			scheme.LogoLeft.Sprint(logoLeft[i]),
			scheme.LogoRight.Sprint(logoRight[i]))
	}
}

// FormatResult renders one run's result as a bordered report.
func FormatResult(res *engine.Result, scheme *ColorScheme) string {
	var sb strings.Builder
	rule := scheme.Border.Sprint(strings.Repeat("━", ruleWidth))

	sb.WriteString(rule + "\n")
	sb.WriteString(" " + scheme.Title.Sprint("Benchmark Report") + "\n")
	sb.WriteString(rule + "\n")

	sb.WriteString(formatLine(scheme, "Strategy", describeStrategy(res)))
	sb.WriteString(formatLine(scheme, "Units", fmt.Sprintf("%d", res.Count)))
	sb.WriteString(formatLine(scheme, "Elapsed", scheme.Highlight.Sprint(FormatDuration(res.Elapsed))))
	sb.WriteString(formatLine(scheme, "Throughput", fmt.Sprintf("%.1f units/s", res.Throughput())))
	if res.Stats.GateWait > 0 {
		sb.WriteString(formatLine(scheme, "Gate wait", FormatDuration(res.Stats.GateWait)))
	}
	sb.WriteString(formatLine(scheme, "Latency", fmt.Sprintf("p50 %s  p95 %s  max %s",
		FormatDuration(res.Stats.Latency.P50),
		FormatDuration(res.Stats.Latency.P95),
		FormatDuration(res.Stats.Latency.Max))))

	sb.WriteString(formatLine(scheme, "Success", scheme.Success.Sprintf("%d", res.Stats.Success)))
	sb.WriteString(formatLine(scheme, "Partial", scheme.Partial.Sprintf("%d", res.Stats.Partial)))
	sb.WriteString(formatLine(scheme, "Failed", scheme.Failure.Sprintf("%d", res.Stats.Failed)))

	sb.WriteString(rule + "\n")
	return sb.String()
}

// FormatComparison renders results from multiple strategies side by side,
// with speedup computed against the sequential result when present, or
// the first result otherwise.
func FormatComparison(results []*engine.Result, scheme *ColorScheme) string {
	if len(results) == 0 {
		return ""
	}

	baseline := results[0]
	for _, res := range results {
		if res.Strategy == strategy.TypeSequential {
			baseline = res
			break
		}
	}

	var sb strings.Builder
	rule := scheme.Border.Sprint(strings.Repeat("━", ruleWidth))
	sb.WriteString(rule + "\n")
	sb.WriteString(" " + scheme.Title.Sprint("Strategy Comparison") + "\n")
	sb.WriteString(rule + "\n")

	tw := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, scheme.Label.Sprint(" STRATEGY\tELAPSED\tTHROUGHPUT\tP95\tSPEEDUP"))
	for _, res := range results {
		speedup := 1.0
		if res.Elapsed > 0 {
			speedup = float64(baseline.Elapsed) / float64(res.Elapsed)
		}
		fmt.Fprintf(tw, " %s\t%s\t%.1f/s\t%s\t%s\n",
			res.Strategy,
			FormatDuration(res.Elapsed),
			res.Throughput(),
			FormatDuration(res.Stats.Latency.P95),
			scheme.Highlight.Sprintf("%.2fx", speedup))
	}
	tw.Flush()

	sb.WriteString(rule + "\n")
	return sb.String()
}

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatDuration renders a duration at a precision that reads well for
// benchmark output.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}

func formatLine(scheme *ColorScheme, label, value string) string {
	return fmt.Sprintf(" %s %s\n", scheme.Label.Sprintf("%-12s", label+":"), value)
}

func describeStrategy(res *engine.Result) string {
	if res.Strategy == strategy.TypeParallel && res.Workers > 0 {
		return fmt.Sprintf("%s (%d workers)", res.Strategy, res.Workers)
	}
	return string(res.Strategy)
}
