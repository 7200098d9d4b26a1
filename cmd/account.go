package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kontigo/kontigo/internal/app"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the accounts seen so far",
	}

	accountCmd.AddCommand(newAccountListCmd(application))

	return accountCmd
}

func newAccountListCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := application.Store.ListAccounts()
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			tableData := pterm.TableData{{"ID", "Bank", "Login", "Number", "IBAN", "BIC"}}
			for _, acc := range accounts {
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", acc.ID),
					acc.BLZ, acc.User, acc.Number,
					strOrEmpty(acc.IBAN), strOrEmpty(acc.BIC),
				})
			}

			pterm.DefaultSection.Printf("Account List")
			pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
			pterm.Info.Printf("Total: %d accounts\n", len(accounts))
			return nil
		},
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
