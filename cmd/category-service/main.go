package main

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-server/api"
	"github.com/carson-networks/budget-server/internal/config"
	"github.com/carson-networks/budget-server/internal/logging"
	"github.com/carson-networks/budget-server/internal/operator"
	"github.com/carson-networks/budget-server/internal/service"
	"github.com/carson-networks/budget-server/internal/storage"
	"github.com/carson-networks/budget-server/internal/token"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("category-service starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	delegator := operator.NewOperatorDelegator(dbStorage, 4)
	delegator.Start()
	defer delegator.Stop()

	tokens := token.NewService(envConfig.TokenSecret, time.Duration(envConfig.TokenTTLMinutes)*time.Minute)
	svc := service.NewService(dbStorage, delegator, tokens)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.CategoryServicePort,
			Handler: api.NewCategoryRouter(envConfig, logger, svc, tokens),
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
