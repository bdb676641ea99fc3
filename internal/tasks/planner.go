package tasks

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SweepSpec расписание очистки flash-сессий: каждые 10 минут.
const SweepSpec = "0 */10 * * * *"

// Sweeper удаляет сессии старше maxAge и возвращает их число.
type Sweeper interface {
	Sweep(maxAge time.Duration) int
}

// SweepFlashSessions удаляет непрочитанные flash-сообщения старше maxAge.
func SweepFlashSessions(store Sweeper, maxAge time.Duration, log *zap.Logger) {
	removed := store.Sweep(maxAge)
	if removed > 0 {
		log.Info("Удалены устаревшие flash-сессии", zap.Int("count", removed))
	}
}

// InitScheduler инициализирует планировщик cron-задач. Если store равен nil
// (flash-сообщения хранятся в Redis с TTL), задача не добавляется.
// Вызывающий отвечает за Stop.
func InitScheduler(store Sweeper, maxAge time.Duration, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if store != nil {
		if _, err := c.AddFunc(SweepSpec, func() { SweepFlashSessions(store, maxAge, log) }); err != nil {
			return nil, fmt.Errorf("add cron job SweepFlashSessions: %w", err)
		}
	}

	c.Start()
	log.Info("Cron-планировщик запущен.", zap.Int("jobs", len(c.Entries())))
	return c, nil
}
