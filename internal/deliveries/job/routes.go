package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/flag"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	v1recurrence "github.com/budhip/go-fp-ledger/internal/deliveries/job/v1/recurrence"
	"github.com/budhip/go-fp-ledger/internal/services"
)

var ErrUnknownJob = errors.New("invalid version or job name")

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
	now    func() time.Time
}

func New(recurrenceSrv services.RecurrenceService) *Job {
	jobRoutes := JobRoutes{
		"v1": v1recurrence.Routes(recurrenceSrv),
		// add other version routes
	}

	return &Job{Routes: jobRoutes, now: time.Now}
}

// Names lists the registered jobs per version.
func (j *Job) Names() map[string][]string {
	out := make(map[string][]string, len(j.Routes))
	for version, routes := range j.Routes {
		for name := range routes {
			out[version] = append(out[version], name)
		}
	}
	return out
}

func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	ctx = log.WithCorrelationID(ctx, uuid.New().String())
	defer func() {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, err)
	}()

	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		return ErrUnknownJob
	}

	runningDate := common.StartOfDay(j.now())
	if flag.Date != "" {
		runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, flag.Date)
		if err != nil {
			return err
		}
	}

	return fn(ctx, runningDate, flag)
}
