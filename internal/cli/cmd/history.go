package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/qualzed/qb/internal/cli/model"
	"github.com/qualzed/qb/internal/domain/entity"
	"github.com/qualzed/qb/internal/logging"
)

var (
	historyJSON bool
	historyMax  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Pick a page from history and open it",
	Long: `Interactive picker over the history log, newest first.

Press enter to open the selected page in a new qb window, / to filter.
With --json the entries are printed instead.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print entries as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", 0, "maximum entries to print with --json (0 for all)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}

	if historyJSON {
		entries, err := app.Stack.HistoryUC.List(app.Ctx())
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		return writeHistoryJSON(cmd.OutOrStdout(), entries, historyMax)
	}

	m := model.NewHistoryPicker(app.Ctx(), app.Theme, app.Stack.HistoryUC)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	picker, ok := final.(model.HistoryPicker)
	if !ok {
		return errors.New("unexpected model type")
	}
	if picker.Err() != nil {
		return picker.Err()
	}
	if picker.Chosen() == "" {
		return nil
	}
	return launchBrowser(app.Ctx(), picker.Chosen())
}

func writeHistoryJSON(w io.Writer, entries []entity.HistoryEntry, limit int) error {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []entity.HistoryEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// launchBrowser starts a detached `qb browse <url>`.
func launchBrowser(ctx context.Context, url string) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate qb executable: %w", err)
	}
	c := exec.Command(self, "browse", url)
	if err := c.Start(); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("pid", c.Process.Pid).Str("url", url).Msg("browser launched")
	return c.Process.Release()
}
