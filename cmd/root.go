// Package cmd содержит команды CLI: serve, migrate и seed.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyur/internal/config"
	"fyyur/internal/logger"
	"fyyur/internal/storage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "Fyyur - каталог площадок, исполнителей и концертов",
	Long: `Fyyur связывает площадки и исполнителей: списки, поиск,
карточки с прошедшими и предстоящими концертами, формы создания.

Без подкоманды запускает HTTP-сервер (то же, что fyyur serve).`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"путь к YAML-файлу конфигурации (по умолчанию $FYYUR_CONFIG или config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// Execute запускает корневую команду.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app общие для команд ресурсы: конфигурация, логгер и база.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	db    *gorm.DB
	close func()
}

func bootstrap() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, syncLog, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}

	db, err := storage.ConnectDatabase(cfg.Database, log)
	if err != nil {
		syncLog()
		return nil, err
	}

	return &app{
		cfg: cfg,
		log: log,
		db:  db,
		close: func() {
			if err := storage.Close(db); err != nil {
				log.Warn("Ошибка закрытия базы", zap.Error(err))
			}
			syncLog()
		},
	}, nil
}
