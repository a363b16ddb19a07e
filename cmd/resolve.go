package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/contact-cli/internal/model"
)

var (
	resolveName    string
	resolveCompany string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a contact phone number for one person",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("resolve"); err != nil {
			return err
		}

		r, err := initResolver()
		if err != nil {
			return err
		}

		query := model.ContactQuery{
			PersonName:  resolveName,
			CompanyName: resolveCompany,
		}

		contact := r.Resolve(cmd.Context(), query)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(contact.Flatten()); err != nil {
			return eris.Wrap(err, "encode result")
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveName, "name", "", "person's full name (required)")
	resolveCmd.Flags().StringVar(&resolveCompany, "company", "", "employer name (required)")
	_ = resolveCmd.MarkFlagRequired("name")
	_ = resolveCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(resolveCmd)
}
