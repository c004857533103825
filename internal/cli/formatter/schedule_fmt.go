package formatter

import (
	"fmt"
	"strings"

	"github.com/shiftopt/dayplan/internal/app"
)

// RenderSchedule renders the optimized day as a timeline table followed by
// the unachievable-items list and any warnings, for a terminal caller (the
// `dayplan optimize` command's default, non-JSON output).
func RenderSchedule(resp app.OptimizeResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n\n", StyleBold.Render("Schedule for"), resp.NurseID, resp.ScheduleDate)

	rows := make([][]string, 0, len(resp.OptimizedSchedule))
	for _, e := range resp.OptimizedSchedule {
		rows = append(rows, []string{
			e.SlotStartTime,
			e.SlotEndTime,
			ActivityTypeStyle(e.ActivityType).Render(e.ActivityType),
			e.Title,
		})
	}
	b.WriteString(RenderTable([]string{"Start", "End", "Type", "Title"}, rows))

	if len(resp.UnachievableItems) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render("Unachievable"))
		b.WriteString("\n")
		urows := make([][]string, 0, len(resp.UnachievableItems))
		for _, u := range resp.UnachievableItems {
			urows = append(urows, []string{u.ItemID, u.ItemType, ReasonStyle(u.Reason).Render(u.Reason)})
		}
		b.WriteString(RenderTable([]string{"Item", "Type", "Reason"}, urows))
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Warnings"))
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	fmt.Fprintf(&b, "\n%s %.1f\n", StyleDim.Render("optimization score:"), resp.OptimizationScore)

	return b.String()
}
