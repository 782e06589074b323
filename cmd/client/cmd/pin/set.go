// cmd/client/cmd/pin/set.go
package pin

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pingate/cmd/client/cmd/types"
	"pingate/internal/app/client"
)

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Задать PIN",
	Long: `Открывает форму создания PIN: PIN вводится дважды.

Если PIN уже задан и приложение закрыто, используйте pingate pin change.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		// Без Initialize гейт не знает о сохраненной записи
		app.Status(cmd.Context())

		if _, err := app.SetPin(cmd.Context()); err != nil {
			return fmt.Errorf("ошибка сохранения PIN: %w", err)
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✅ PIN сохранен")
		return nil
	},
}
