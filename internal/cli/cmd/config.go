package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qualzed/qb/internal/cli"
	"github.com/qualzed/qb/internal/cli/styles"
	"github.com/qualzed/qb/internal/infrastructure/config"
)

const schemaFilePerm = 0o644

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved settings and the stored user config",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings file",
	Long: `Print the JSON schema of settings.toml.

With --write the schema is saved next to the settings file so editors with
TOML schema support can validate it.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write the schema next to the settings file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), renderConfig(app))
	return err
}

func renderConfig(app *cli.App) string {
	r := styles.NewConfigRenderer(app.Theme)

	settingsPath := ""
	if app.ConfigManager != nil {
		settingsPath = app.ConfigManager.GetConfigFile()
	}
	settings := r.RenderSection("Settings", settingsPath, settingsRows(app.Config))

	user := app.Stack.SettingsUC.Config()
	width, height := user.Geometry()
	stored := r.RenderSection("User config", app.Stack.ConfigRepo.Path(), []styles.Setting{
		{Key: "language", Value: string(user.Language) + " (" + user.Language.DisplayName() + ")"},
		{Key: "window", Value: strconv.Itoa(width) + "x" + strconv.Itoa(height)},
		{Key: "history", Value: app.Stack.HistoryRepo.Path()},
	})

	return r.RenderSections(settings, stored)
}

func settingsRows(cfg *config.Config) []styles.Setting {
	voiceCmd := strings.Join(cfg.Voice.CaptureCommand, " ")
	return []styles.Setting{
		{Key: "search.template", Value: cfg.Search.Template},
		{Key: "search.home_url", Value: cfg.Search.HomeURL},
		{Key: "window.default_width", Value: strconv.Itoa(cfg.Window.DefaultWidth)},
		{Key: "window.default_height", Value: strconv.Itoa(cfg.Window.DefaultHeight)},
		{Key: "voice.enabled", Value: strconv.FormatBool(cfg.Voice.Enabled)},
		{Key: "voice.capture_command", Value: voiceCmd},
		{Key: "voice.endpoint", Value: cfg.Voice.Endpoint},
		{Key: "voice.timeout_seconds", Value: strconv.Itoa(cfg.Voice.TimeoutSeconds)},
		{Key: "appearance.color_scheme", Value: cfg.Appearance.ColorScheme},
		{Key: "logging.level", Value: cfg.Logging.Level},
		{Key: "logging.format", Value: cfg.Logging.Format},
		{Key: "paths.base_dir", Value: cfg.Paths.BaseDir},
	}
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	if !schemaWrite {
		return writeSchema(cmd.OutOrStdout(), schema)
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	path := filepath.Join(dir, config.SchemaFileName())
	if err := os.WriteFile(path, append(schema, '\n'), schemaFilePerm); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

func writeSchema(w io.Writer, schema []byte) error {
	_, err := fmt.Fprintf(w, "%s\n", schema)
	return err
}
