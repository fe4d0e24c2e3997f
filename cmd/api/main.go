package main

import (
	"context"
	"sync"
	"time"

	"github.com/budhip/go-fp-ledger/cmd/setup"
	"github.com/budhip/go-fp-ledger/internal/common/graceful"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/deliveries/http"
)

func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(s.Config, s.NewRelic,
		s.Service.Account,
		s.Service.Balance,
		s.Service.TransactionGroup,
		s.Service.Recurrence,
		s.Service.Operations,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Info(ctx, "http server stopped!")
}
