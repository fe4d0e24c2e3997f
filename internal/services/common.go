package services

import (
	"context"
	"errors"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/common/metrics"
	"github.com/budhip/go-fp-ledger/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

// isRetryable reports whether a failed materialization may succeed on a later attempt.
// Mapped database errors are retried, every other mapped error is final.
func isRetryable(err error) bool {
	var detail models.ErrorDetail
	if errors.As(err, &detail) {
		return detail.Code == models.MapErrors[models.ErrKeyDatabaseError].Code
	}
	return !common.IsPermanent(err)
}

func (s *Services) balanceMetrics() *metrics.BalancePrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetBalancePrometheus()
}

func (s *Services) recurrenceMetrics() *metrics.RecurrencePrometheusMetrics {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.GetRecurrencePrometheus()
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// logCleanupFailure records a failed delete of a dependent row. The primary
// write is not affected so the error is not returned.
func logCleanupFailure(ctx context.Context, entity string, id int64, err error) {
	log.Warn(ctx, "[SERVICE] cleanup failed", log.String("entity", entity), log.Int64("id", id), log.Err(err))
}
