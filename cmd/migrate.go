package cmd

import (
	"github.com/spf13/cobra"

	"fyyur/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Создать или обновить таблицы venues, artists и shows",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err := storage.Migrate(a.db); err != nil {
			return err
		}
		a.log.Info("Миграция выполнена")
		return nil
	},
}
