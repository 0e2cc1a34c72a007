package views

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/sultanbank/teller/internal/constants"
	"github.com/sultanbank/teller/internal/model"
)

type HistoryView struct{}

func NewHistoryView() *HistoryView {
	return &HistoryView{}
}

// Render lists the account's journal oldest-first.
func (v *HistoryView) Render(txs []*model.Transaction, formatAmount func(int64) string) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions yet.")
		return nil
	}

	pterm.DefaultSection.Println("Transaction History")

	tableData := pterm.TableData{
		{"#", "Date", "Type", "Amount"},
	}

	for i, tx := range txs {
		amount := formatAmount(tx.AmountCents)

		var coloredType, coloredAmount string
		switch tx.Kind {
		case constants.TxKindWithdrawal:
			coloredType = pterm.Red(tx.Kind)
			coloredAmount = pterm.Red(amount)
		case constants.TxKindDeposit:
			coloredType = pterm.Green(tx.Kind)
			coloredAmount = pterm.Green(amount)
		default:
			coloredType = tx.Kind
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			time.Unix(tx.CreatedAt, 0).Format("2006-01-02 15:04:05"),
			coloredType,
			coloredAmount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
