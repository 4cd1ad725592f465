package cmd

import (
	"fmt"

	"github.com/abhisek/modelcheck/internal/document"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema model documents are checked against",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := document.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
