package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kontigo/kontigo/internal/app"
)

func NewTransactionCmd(application *app.App) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Inspect the stored transactions",
	}

	transactionCmd.AddCommand(newTransactionListCmd(application))

	return transactionCmd
}

func newTransactionListCmd(application *app.App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			statements, err := application.Store.RecentStatements(limit)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			tableData := pterm.TableData{{"Day", "#", "Amount", "Counterparty", "Posting Text", "Balance"}}
			for _, row := range statements {
				amount := row.Amount.StringFixed(2)
				colored := pterm.Green(amount)
				if row.Amount.IsNegative() {
					colored = pterm.Red(amount)
				}
				tableData = append(tableData, []string{
					row.Day,
					fmt.Sprintf("%d", row.IntradayNum),
					colored,
					strOrEmpty(row.ApplicantName),
					strOrEmpty(row.PostingText),
					row.BalanceAfter.StringFixed(2),
				})
			}

			pterm.DefaultSection.Printf("Recent Transactions")
			pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
			pterm.Info.Printf("Total: %d transactions\n", len(statements))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of transactions to show")

	return cmd
}
