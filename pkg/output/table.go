package output

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Outcome summarises one reader invocation for the comparison table.
type Outcome struct {
	Strategy  string
	Succeeded bool
	ErrorType string
	Kind      string
	CauseKept bool
}

func PrintTable(w io.Writer, outcomes []Outcome) {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Strategy", "Result", "Error Type", "Kind", "Cause Kept"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, o := range outcomes {
		if o.Succeeded {
			table.Append([]string{o.Strategy, green("ok"), "-", "-", "-"})
			continue
		}

		kept := red("no")
		if o.CauseKept {
			kept = green("yes")
		}

		table.Append([]string{
			o.Strategy,
			yellow("failed"),
			formatValue(o.ErrorType),
			formatValue(o.Kind),
			kept,
		})
	}

	table.Render()
}

func formatValue(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
