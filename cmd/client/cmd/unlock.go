// cmd/client/cmd/unlock.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pingate/cmd/client/cmd/types"
	"pingate/internal/app/client"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Открыть приложение",
	Long: `Запрашивает PIN, пока он не будет введен верно.

Число попыток ограничивается параметром PIN_MAX_ATTEMPTS (0 - без ограничения).
Если PIN не задан или хранилище недоступно, приложение открывается сразу.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if _, err := app.Unlock(cmd.Context()); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✅ Приложение открыто")
		return nil
	},
}
