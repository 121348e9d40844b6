package main

import (
	"os"
	"os/signal"
	"shift-planner-bot/internal/config"
	"shift-planner-bot/internal/handler"
	"shift-planner-bot/internal/repository"
	"shift-planner-bot/internal/service"
	"shift-planner-bot/pkg/telegram"
	"syscall"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign keys are off by default in SQLite.
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}

	shiftRepo, err := repository.NewGormShiftRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create shift repository")
	}

	staticShiftRepo, err := repository.NewGormStaticShiftRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create static shift repository")
	}

	weekStatusRepo, err := repository.NewGormWeekStatusRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create week status repository")
	}

	wantedCoverageRepo, err := repository.NewGormWantedCoverageRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create wanted coverage repository")
	}

	settingsRepo, err := repository.NewGormCompanySettingsRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create company settings repository")
	}

	employeeService := service.NewEmployeeService(employeeRepo)
	hourLimitService := service.NewHourLimitService(employeeRepo, settingsRepo, shiftRepo)
	shiftService := service.NewShiftService(shiftRepo, staticShiftRepo, hourLimitService)
	recurringService := service.NewRecurringService(staticShiftRepo, shiftRepo)
	coverageService := service.NewCoverageService(shiftService, wantedCoverageRepo)
	weekStatusService := service.NewWeekStatusService(weekStatusRepo, shiftRepo)

	// Promote (or create) the base manager from the config.
	if err := employeeService.InitializeManager(cfg.BaseManagerChatID); err != nil {
		logrus.Infof("Warning: Failed to initialize manager: %v", err)
	} else if cfg.BaseManagerChatID != 0 {
		logrus.Infof("Manager initialized with chat ID: %d", cfg.BaseManagerChatID)
	}

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		employeeService,
		shiftService,
		recurringService,
		coverageService,
		weekStatusService,
		hourLimitService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
