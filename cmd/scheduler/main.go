package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventcal/internal/app/deps"
	"eventcal/internal/app/services"
	"eventcal/internal/core/domain/logging"
	fireduetriggers "eventcal/internal/core/services/fire_due_triggers"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.TriggerPollPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic trigger scheduler.",
		logging.Entry("periodSeconds", (deps.Config.TriggerPollPeriod).Seconds()),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic trigger scheduler.")
			break loop
		case <-ticker.C:
			result, err := services.FireDueTriggers.Run(context.Background(), fireduetriggers.Input{})
			if err != nil {
				log.Error(context.Background(), "Trigger firing service returned an error.", logging.Entry("err", err))
				continue
			}
			if result.DispatchedCount > 0 {
				log.Info(
					context.Background(),
					"Due triggers fired.",
					logging.Entry("dispatchedCount", result.DispatchedCount),
				)
			}
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
