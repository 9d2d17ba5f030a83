package main

import (
	"dependencySheet/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"io"
	"math/rand/v2"
	"time"
)

type ServiceContainer struct {
	Config            Config
	Database          *bbolt.DB
	Logger            contracts.Logger
	Metrics           *Metrics
	SheetStorage      contracts.SheetStorage
	WebhookDispatcher contracts.WebhookDispatcher
	SheetService      *SheetService
	SequenceService   contracts.SequenceService
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config Config, logOutput io.Writer) (container ServiceContainer, err error) {
	container.Config = config

	logger, err := NewTextLogger(logOutput, config.LogLevel)
	if err != nil {
		return
	}
	container.Logger = logger

	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	canonicalizer := NewCanonicalizer()
	container.Metrics = NewMetrics()
	container.SheetStorage = NewSheetStorage(container.Database, NewCellBinarySerializer())
	container.WebhookDispatcher = NewWebhookDispatcher(config.WebhookWorkers, logger)

	container.SheetService = NewSheetService(
		container.SheetStorage, canonicalizer, container.WebhookDispatcher,
		NewDependencySheetFactory(NewExpressionEvaluator()),
		container.Metrics, logger, config.SheetRows, config.SheetCols,
	)
	container.SequenceService = NewSequenceService(canonicalizer, container.Metrics, logger)

	container.ApiController = NewApiController(
		container.SheetService, container.SequenceService,
		NewGeneratorRegistry(rand.Uint64), NewCalculatorRegistry(),
	)

	container.Router = SetupRouter(container.ApiController, container.Metrics.Handler())

	return
}
