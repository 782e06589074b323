// cmd/client/cmd/status.go
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pingate/cmd/client/cmd/types"
	"pingate/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние гейта",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		state := app.Status(cmd.Context())
		out := cmd.OutOrStdout()

		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		}

		switch {
		case state.Locked():
			color.New(color.FgYellow).Fprintln(out, "🔒 Приложение закрыто, требуется PIN")
		case state.PinRecordExists:
			color.New(color.FgGreen).Fprintln(out, "🔓 Приложение открыто")
		default:
			fmt.Fprintln(out, "PIN не задан. Задайте его командой: pingate pin set")
		}
		return nil
	},
}
