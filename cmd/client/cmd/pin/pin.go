package pin

import (
	"github.com/spf13/cobra"
)

// PinCmd - родительская команда для операций с PIN-кодом
var PinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Управление PIN-кодом",
	Long:  `Создание и смена PIN-кода. PIN состоит из 6-20 цифр.`,
}
