package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fyyur/internal/csrf"
	"fyyur/internal/events"
	"fyyur/internal/flash"
	"fyyur/internal/handlers"
	"fyyur/internal/schedule"
	"fyyur/internal/storage"
	"fyyur/internal/tasks"
	"fyyur/internal/ws"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP-сервер",
	RunE:  runServe,
}

// @Title		Fyyur
// @Version		1.0
// @Description	Каталог площадок, исполнителей и концертов
// @BasePath	/
func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()
	log := a.log

	if err := storage.Migrate(a.db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := storage.InitRedis(ctx, a.cfg.Redis)
	if err != nil {
		return err
	}

	var store flash.Store
	var sweeper tasks.Sweeper
	if rdb != nil {
		defer rdb.Close()
		store = flash.NewRedisStore(rdb, a.cfg.Flash.TTL)
		log.Info("Flash-сообщения хранятся в Redis", zap.String("addr", a.cfg.Redis.Addr))
	} else {
		mem := flash.NewMemoryStore()
		store, sweeper = mem, mem
		log.Info("Redis не настроен, flash-сообщения хранятся в памяти")
	}

	scheduler, err := tasks.InitScheduler(sweeper, a.cfg.Flash.TTL, log)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	publishers := events.Multi{hub}
	if a.cfg.AMQP.URL != "" {
		publishers = append(publishers, events.NewAMQPPublisher(a.cfg.AMQP.URL, a.cfg.AMQP.Queue))
		log.Info("События публикуются в RabbitMQ", zap.String("queue", a.cfg.AMQP.Queue))
	}

	var csrfManager *csrf.Manager
	if a.cfg.CSRF.Enabled {
		csrfManager = csrf.NewManager(a.cfg.SecretKey, a.cfg.CSRF.TTL)
	}

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handlers.New(handlers.Deps{
		DB:        a.db,
		Flash:     store,
		CSRF:      csrfManager,
		Events:    publishers,
		Formatter: schedule.NewFormatter(a.cfg.Locale),
		Log:       log,
	})
	r, err := handlers.NewRouter(h, handlers.RouterOptions{
		CORSOrigins:  a.cfg.CORS.Origins,
		SecureCookie: a.cfg.SecureCookie(),
		Listings:     hub.ServeListings,
		Swagger:      true,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Сервер запущен", zap.String("addr", srv.Addr), zap.String("env", a.cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Ошибка запуска сервера", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	log.Info("Остановка сервера...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Ошибка остановки сервера", zap.Error(err))
		return err
	}
	return nil
}
