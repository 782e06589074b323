// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"pingate/cmd/client/cmd/pin"
	"pingate/cmd/client/cmd/types"
	"pingate/internal/app"
	"pingate/internal/app/client"
	"pingate/internal/config"
	"pingate/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	core       *app.Core
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "pingate",
	Short: "PinGate - доступ к приложению по PIN-коду",
	Long: `PinGate закрывает приложение, пока не введен сохраненный PIN.

Если PIN не задан, приложение открыто. PIN хранится в выбранном
хранилище (sqlite, postgres, файл, NATS KV, S3) в виде хеша.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log = logger.New(cfg.Env, cfg.Logger.LogLevel)

	core, err = app.Build(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	reader := client.NewTerminalReader(os.Stdin, cmd.OutOrStdout())
	cli := client.New(core.Gate, reader, cmd.OutOrStdout(), cfg.Gate.MaxAttempts, log)
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, cli))

	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if core == nil {
		return nil
	}
	return core.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")

	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(pin.PinCmd)
	pin.PinCmd.AddCommand(pin.SetCmd)
	pin.PinCmd.AddCommand(pin.ChangeCmd)
}
