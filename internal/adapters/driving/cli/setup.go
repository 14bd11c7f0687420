package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure presentations and the response sheet",
	Long: `Stores the template and target presentation IDs, the response source and
the credentials file in the configuration file.

Values can be given as flags, read from the spreadsheet's Setup tab with
--from-sheet, or entered at the prompts when run in a terminal without flags.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

// setupFlags maps flag names to configuration keys.
var setupFlags = []struct {
	name  string
	key   string
	usage string
}{
	{"template", domain.KeyTemplateID, "Template presentation ID"},
	{"target", domain.KeyTargetID, "Target presentation ID"},
	{"spreadsheet", domain.KeySpreadsheetID, "Response spreadsheet ID"},
	{"workbook", domain.KeyWorkbookPath, "Local .xlsx workbook instead of a spreadsheet"},
	{"sheet", domain.KeySheetName, "Sheet holding the form responses"},
	{"timezone", domain.KeyTimeZone, "Time zone of zone-less timestamps, e.g. America/Chicago"},
	{"credentials", domain.KeyCredentialsFile, "Service account or authorised user JSON file"},
}

// promptKeys are asked for, in order, when a required key is missing.
var promptKeys = []struct {
	key    string
	prompt string
}{
	{domain.KeyTemplateID, "Template presentation ID"},
	{domain.KeyTargetID, "Target presentation ID"},
	{domain.KeySpreadsheetID, "Response spreadsheet ID"},
	{domain.KeyWorkbookPath, "Workbook path"},
}

var (
	setupFromSheet bool
	setupSet       map[string]string
	setupValues    = map[string]*string{}

	// isTerminal reports whether prompts can be shown.
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func init() {
	for _, f := range setupFlags {
		setupValues[f.key] = setupCmd.Flags().String(f.name, "", f.usage)
	}
	setupCmd.Flags().StringToStringVar(&setupSet, "set", nil, "Set any configuration key, e.g. --set watch.interval=10m")
	setupCmd.Flags().BoolVar(&setupFromSheet, "from-sheet", false, "Import settings from the spreadsheet's Setup tab")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if setupService == nil {
		return errors.New("setup service not configured")
	}

	values := flagValues(cmd)
	if len(values) > 0 {
		if err := setupService.Configure(values); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		cmd.Printf("Saved %d setting(s).\n", len(values))
	}

	if setupFromSheet {
		keys, err := setupService.ImportSetupSheet(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to import setup sheet: %w", err)
		}
		if len(keys) == 0 {
			cmd.Println("No recognised settings found in the setup sheet.")
		}
		for _, key := range keys {
			cmd.Printf("Imported %s\n", key)
		}
	}

	if len(values) == 0 && !setupFromSheet && isTerminal() {
		if err := promptMissing(cmd, bufio.NewReader(cmd.InOrStdin())); err != nil {
			return err
		}
	}

	if missing := setupService.Missing(); len(missing) > 0 {
		cmd.Printf("Still missing: %s\n", strings.Join(missing, ", "))
		return nil
	}
	cmd.Println("Configuration complete. Run 'praise run' to add slides.")
	return nil
}

// flagValues collects the setup flags that were given on the command line.
func flagValues(cmd *cobra.Command) map[string]string {
	values := make(map[string]string)
	for _, f := range setupFlags {
		if cmd.Flags().Changed(f.name) {
			values[f.key] = *setupValues[f.key]
		}
	}
	for key, value := range setupSet {
		values[key] = value
	}
	return values
}

// promptMissing asks for each missing required key. An empty answer leaves
// the key unset. The spreadsheet and workbook prompts are alternatives; only
// the one the configuration reports missing is asked.
func promptMissing(cmd *cobra.Command, reader *bufio.Reader) error {
	missing := make(map[string]bool)
	for _, key := range setupService.Missing() {
		missing[key] = true
	}
	if len(missing) == 0 {
		return nil
	}

	cmd.Println("Praise Setup")
	cmd.Println("============")
	for _, p := range promptKeys {
		if !missing[p.key] {
			continue
		}
		cmd.Printf("%s: ", p.prompt)
		answer, err := readLine(reader)
		if err != nil {
			return err
		}
		if answer == "" {
			continue
		}
		if err := setupService.Configure(map[string]string{p.key: answer}); err != nil {
			return fmt.Errorf("failed to save %s: %w", p.key, err)
		}
	}
	return nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
