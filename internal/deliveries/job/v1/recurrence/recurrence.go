package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/flag"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/services"
)

type recurrenceHandler struct {
	recurrenceSrv services.RecurrenceService
}

func Routes(rs services.RecurrenceService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := recurrenceHandler{recurrenceSrv: rs}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"MaterializeRecurrences": handler.MaterializeRecurrences,
		// add more job here
	}
}

// MaterializeRecurrences creates the transaction groups due on date. A run
// with failed recurrences returns an error so the worker exits non zero.
func (rh *recurrenceHandler) MaterializeRecurrences(ctx context.Context, date time.Time, flag flag.Job) error {
	if flag.DryRun {
		due, err := rh.recurrenceSrv.ListDue(ctx, date)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(due))
		for _, ref := range due {
			ids = append(ids, ref.ID)
		}
		log.Info(ctx, "MaterializeRecurrences dry run",
			log.String("date", common.FormatDate(date)),
			log.Int("due", len(due)),
			log.Any("recurrenceIds", ids))
		return nil
	}

	result, err := rh.recurrenceSrv.MaterializeDue(ctx, date)
	if err != nil {
		return err
	}

	log.Info(ctx, "MaterializeRecurrences", log.Any("result", result))
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d recurrences failed: %v", result.Failed, result.Due, result.FailedIDs)
	}

	return nil
}
