package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/budhip/go-fp-ledger/internal/common/log"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

// StartProcessAtBackground runs every starter on its own goroutine. A starter
// that fails is logged, the others keep running.
func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil {
				log.Error(context.Background(), "[GRACEFUL] process exited", log.Err(err))
			}
		}(p)
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 and then
// runs the stoppers.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	received := <-sig
	log.Info(context.Background(), "[GRACEFUL] signal received", log.String("signal", received.String()))

	_ = StopProcess(duration, ps...)
}

// StopProcess runs the stoppers in reverse registration order, each bounded by
// duration, and returns every failure.
func StopProcess(duration time.Duration, ps ...ProcessStopper) error {
	var errs *multierror.Error

	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i] == nil {
			continue
		}
		if err := stopOne(duration, ps[i]); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		log.Warn(context.Background(), "[GRACEFUL] stopped with errors", log.Err(err))
		return err
	}
	return nil
}

func stopOne(duration time.Duration, stop ProcessStopper) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()
	return stop(ctx)
}
