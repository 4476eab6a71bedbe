package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pharoslog/pharos/config"
	"github.com/pharoslog/pharos/pkg/jsonschema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <configfile>",
	Short: "Validate a Pharos configuration file",
	Long: `Check a configuration file for errors. JSON files are additionally
validated against the configuration schema, reporting every violation.

Examples:
  pharos validate pharos.yaml
  pharos validate pharos.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func runValidate(cmd *cobra.Command, path string) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if valid, errs := jsonschema.ValidateWithErrors(string(data), config.Schema); !valid {
			for _, e := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
			return fmt.Errorf("%s: %d schema violation(s)", path, len(errs))
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (level=%s, format=%s)\n",
		path, cfg.Level, cfg.Format)
	return nil
}
