package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var schemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check config files against a schema of declared sections and keys",
	Long: `validate scans every --config file against a JSON schema file that
maps declared section names to arrays of declared key names, e.g.

	{"compile": ["opt_level", "defines"], "test": ["timeout"]}

and reports unknown sections and keys in file order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", schemaPath, err)
		}
		var schema map[string][]string
		if err := json.Unmarshal(data, &schema); err != nil {
			return fmt.Errorf("parsing schema %s: %w", schemaPath, err)
		}

		violations := stack.Validate(schema)
		for _, v := range violations {
			fmt.Println(v)
		}
		if len(violations) > 0 {
			log.Error().Int("violations", len(violations)).Msg("config does not conform to schema")
			return fmt.Errorf("%d schema violation(s)", len(violations))
		}
		log.Info().Msg("config conforms to schema")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&schemaPath, "schema", "", "path to the JSON schema of declared sections and keys")
	_ = validateCmd.MarkFlagRequired("schema")
}
