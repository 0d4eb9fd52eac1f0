package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"rulebot/internal/classifier"
	"rulebot/internal/config"
	"rulebot/internal/inputprocessor"
	"rulebot/internal/services"
)

type App struct {
	Config     *config.Config
	Classifier *classifier.Classifier

	ChatService    *services.ChatService
	InputProcessor inputprocessor.Processor
}

func NewApp(cfg *config.Config, inputProc inputprocessor.Processor) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("init app: config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if inputProc == nil {
		inputProc = inputprocessor.New()
	}

	app := &App{Config: cfg, InputProcessor: inputProc}
	if err := app.initLogging(); err != nil {
		return nil, err
	}
	app.initCoreServices()

	log.WithField("rules", len(app.Classifier.Rules())).Debug("Application initialization complete.")
	return app, nil
}

func (a *App) initLogging() error {
	level, err := log.ParseLevel(a.Config.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if a.Config.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	gin.SetMode(a.Config.Server.Mode)
	return nil
}

func (a *App) initCoreServices() {
	a.Classifier = classifier.New()
	a.ChatService = services.NewChatService(a.Classifier)
}
