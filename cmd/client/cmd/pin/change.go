// cmd/client/cmd/pin/change.go
package pin

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pingate/cmd/client/cmd/types"
	"pingate/internal/app/client"
)

var ChangeCmd = &cobra.Command{
	Use:   "change",
	Short: "Сменить PIN",
	Long:  `Сначала запрашивает текущий PIN, затем новый PIN и подтверждение.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if _, err := app.ChangePin(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка смены PIN: %w", err)
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✅ PIN изменен")
		return nil
	},
}
