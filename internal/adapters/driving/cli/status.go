package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and merged submissions",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if praiseRunner == nil {
		return errors.New("pipeline not configured")
	}

	status, err := praiseRunner.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderStatus(status))
	return nil
}

func renderStatus(s *driving.PipelineStatus) string {
	rows := []string{
		titleStyle.Render("Praise Status"),
		"",
		field("Template", orUnset(s.TemplateID)),
		field("Target", orUnset(s.TargetID)),
	}

	if s.ConfigError != nil {
		rows = append(rows, field("Configuration", errorStyle.Render(s.ConfigError.Error())))
	} else {
		rows = append(rows,
			field("Source", describeSource(s.Source)),
			field("Configuration", successStyle.Render("complete")),
		)
	}

	rows = append(rows, field("Merged", fmt.Sprintf("%d submission(s)", s.ProcessedCount)))
	if len(s.RecentIDs) > 0 {
		rows = append(rows, field("Most recent", strings.Join(s.RecentIDs, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func describeSource(src domain.SourceConfig) string {
	var where string
	switch src.Kind {
	case domain.SourceWorkbook:
		where = src.Path
	default:
		where = "spreadsheet " + src.SpreadsheetID
	}
	desc := fmt.Sprintf("%s, sheet %q", where, src.Sheet)
	if src.Location != nil {
		desc += " (" + src.Location.String() + ")"
	}
	return desc
}

func orUnset(v string) string {
	if v == "" {
		return errorStyle.Render("not set")
	}
	return v
}
