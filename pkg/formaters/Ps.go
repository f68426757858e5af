package formaters

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fleetci/fleetci/pkg/reconcile"
	"github.com/fleetci/fleetci/pkg/static"
	"github.com/rodaine/table"
)

// Ps renders the fleet listing: one row per member, excess members flagged,
// fleet totals as a caption.
func Ps(result *reconcile.ListResult) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("GROUP", "MEMBER", "LABELS", "STATUS")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, group := range result.Groups {
		labels := strings.Join(group.Labels, ",")

		for _, member := range group.Members {
			tbl.AddRow(group.ID, member.Name, labels, statusText(member.Status))
		}

		for _, member := range group.Extra {
			tbl.AddRow(group.ID, member.Name, labels, statusText(member.Status))
		}
	}

	tbl.Print()

	fmt.Printf("\n%d/%d runners running\n", result.Total.Running, result.Total.Count)
}

func statusText(status string) string {
	switch status {
	case static.STATUS_RUNNING:
		return color.GreenString(status)
	case static.STATUS_STOPPED:
		return color.YellowString(status)
	case static.STATUS_ABSENT:
		return color.RedString(status)
	case static.STATUS_WILL_BE_REMOVED, static.STATUS_RUNNING_WILL_BE_REMOVED:
		return color.MagentaString(status)
	default:
		return status
	}
}
