package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/common/metrics"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
	"github.com/budhip/go-fp-ledger/internal/repositories"
)

//go:generate mockgen -source=recurrence.go -destination=mock/recurrence_mock.go -package=mock

const (
	defaultMaxPerRun     = 500
	defaultRunLockTTL    = 10 * time.Minute
	materializeLockKey   = "lock:materialize-recurrences:%s"
	materializeRunPrefix = "materialize"
)

type RecurrenceService interface {
	Store(ctx context.Context, owner int64, in models.StoreRecurrenceIn) (*models.Recurrence, error)
	Update(ctx context.Context, owner, id int64, in models.UpdateRecurrenceIn) (*models.Recurrence, error)
	Get(ctx context.Context, owner, id int64) (*models.Recurrence, error)
	Delete(ctx context.Context, owner, id int64) error
	// Materialize creates the transaction group of one occurrence. A date that
	// is not an occurrence, or was already materialized, is rejected.
	Materialize(ctx context.Context, owner, id int64, date time.Time) (*models.TransactionGroup, error)
	// MaterializeDue materializes every active recurrence due on date. Only one
	// run per date proceeds at a time.
	MaterializeDue(ctx context.Context, date time.Time) (models.MaterializeResult, error)
	ListDue(ctx context.Context, date time.Time) ([]models.RecurrenceRef, error)
}

type recurrence service

var _ RecurrenceService = (*recurrence)(nil)

func (rs *recurrence) Store(ctx context.Context, owner int64, in models.StoreRecurrenceIn) (result *models.Recurrence, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = validateRecurrence(in.Rules, in.Transactions); err != nil {
		return nil, err
	}

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		rec, errTx := rs.store(ctx, r, owner, in)
		if errTx != nil {
			return errTx
		}
		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (rs *recurrence) Update(ctx context.Context, owner, id int64, in models.UpdateRecurrenceIn) (result *models.Recurrence, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if in.Rules != nil || in.Transactions != nil {
		if err = validateChildren(in.Rules, in.Transactions); err != nil {
			return nil, err
		}
	}

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		rec, errTx := rs.update(ctx, r, owner, id, in)
		if errTx != nil {
			return errTx
		}
		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (rs *recurrence) Get(ctx context.Context, owner, id int64) (result *models.Recurrence, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result, err = rs.srv.sqlRepo.GetRecurrenceRepository().Get(ctx, owner, id)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}

	return result, nil
}

func (rs *recurrence) Delete(ctx context.Context, owner, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		recRepo := r.GetRecurrenceRepository()
		rec, errGet := recRepo.Get(ctx, owner, id)
		if errGet != nil {
			return checkDatabaseError(errGet)
		}

		if errDel := recRepo.DeleteMetaByRecurrence(ctx, rec.ID); errDel != nil {
			logCleanupFailure(ctx, "recurrence transaction meta", rec.ID, errDel)
		}
		if errDel := recRepo.DeleteTransactions(ctx, rec.ID); errDel != nil {
			logCleanupFailure(ctx, "recurrence transactions", rec.ID, errDel)
		}
		if errDel := recRepo.DeleteRepetitions(ctx, rec.ID); errDel != nil {
			logCleanupFailure(ctx, "recurrence repetitions", rec.ID, errDel)
		}
		if errDel := r.GetReferenceRepository().DeleteNote(ctx, models.NoteableRecurrence, rec.ID); errDel != nil && !errors.Is(errDel, common.ErrNoRows) {
			logCleanupFailure(ctx, "recurrence note", rec.ID, errDel)
		}

		if errDel := recRepo.Delete(ctx, owner, rec.ID); errDel != nil {
			return checkDatabaseError(errDel)
		}
		return nil
	})
}

func (rs *recurrence) Materialize(ctx context.Context, owner, id int64, date time.Time) (result *models.TransactionGroup, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result, err = rs.materialize(ctx, owner, id, date)
	if err != nil {
		return nil, err
	}
	rs.srv.recurrenceMetrics().Record(metrics.MaterializeCreated)

	return result, nil
}

func (rs *recurrence) MaterializeDue(ctx context.Context, date time.Time) (result models.MaterializeResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	date = common.StartOfDay(date)
	result.Date = common.FormatDate(date)

	release, acquired, err := rs.acquireRunLock(ctx, result.Date)
	if err != nil {
		return result, err
	}
	if !acquired {
		log.Info(ctx, "[SERVICE] materialize run already in progress", log.String("date", result.Date))
		return result, nil
	}
	defer release()

	due, err := rs.listDue(ctx, date)
	if err != nil {
		return result, err
	}
	result.Due = len(due)

	recMetrics := rs.srv.recurrenceMetrics()
	for _, ref := range due {
		errRun := rs.srv.retryer.Retry(ctx, func() error {
			if _, errMat := rs.materialize(ctx, ref.UserID, ref.ID, date); errMat != nil {
				if !isRetryable(errMat) {
					return rs.srv.retryer.StopRetryWithErr(errMat)
				}
				return errMat
			}
			return nil
		}, func(err error) error {
			return err
		})

		switch {
		case errRun == nil:
			result.Created++
			recMetrics.Record(metrics.MaterializeCreated)
		case isSkippedOccurrence(errRun):
			result.Skipped++
			recMetrics.Record(metrics.MaterializeSkipped)
			log.Debug(ctx, "[SERVICE] recurrence skipped", log.Int64("recurrenceId", ref.ID), log.Err(errRun))
		default:
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, ref.ID)
			recMetrics.Record(metrics.MaterializeFailed)
			log.Error(ctx, "[SERVICE] failed to materialize recurrence",
				log.Int64("recurrenceId", ref.ID), log.Int64("owner", ref.UserID), log.Err(errRun))
		}
	}

	log.Info(ctx, "[SERVICE] materialize run finished",
		log.String("date", result.Date),
		log.Int("due", result.Due),
		log.Int("created", result.Created),
		log.Int("skipped", result.Skipped),
		log.Int("failed", result.Failed))

	return result, nil
}

func (rs *recurrence) ListDue(ctx context.Context, date time.Time) (result []models.RecurrenceRef, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return rs.listDue(ctx, common.StartOfDay(date))
}

func (rs *recurrence) listDue(ctx context.Context, date time.Time) ([]models.RecurrenceRef, error) {
	limit := rs.srv.conf.Recurrence.MaxPerRun
	if limit <= 0 {
		limit = defaultMaxPerRun
	}
	due, err := rs.srv.sqlRepo.GetRecurrenceRepository().ListDue(ctx, date, limit)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	return due, nil
}

func isSkippedOccurrence(err error) bool {
	return errors.Is(err, common.ErrNotAnOccurrence) ||
		errors.Is(err, common.ErrAlreadyMaterialized) ||
		errors.Is(err, common.ErrRecurrenceInactive)
}

// acquireRunLock takes the per date run lock. Without a cache repository
// every run proceeds.
func (rs *recurrence) acquireRunLock(ctx context.Context, date string) (release func(), acquired bool, err error) {
	if rs.srv.cacheRepo == nil {
		return func() {}, true, nil
	}

	ttl := rs.srv.conf.Recurrence.LockTTL
	if ttl <= 0 {
		ttl = defaultRunLockTTL
	}
	key := fmt.Sprintf(materializeLockKey, date)
	runID := rs.srv.idgenerator.Generate(materializeRunPrefix)

	acquired, err = rs.srv.cacheRepo.SetIfNotExists(ctx, key, runID, ttl)
	if err != nil {
		return nil, false, models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}
	if !acquired {
		return nil, false, nil
	}

	return func() {
		if errDel := rs.srv.cacheRepo.Del(context.WithoutCancel(ctx), key); errDel != nil {
			log.Warn(ctx, "[SERVICE] failed to release materialize lock", log.String("key", key), log.Err(errDel))
		}
	}, true, nil
}

func (rs *recurrence) materialize(ctx context.Context, owner, id int64, date time.Time) (result *models.TransactionGroup, err error) {
	date = common.StartOfDay(date)
	dateStr := common.FormatDate(date)

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		// the row lock makes a concurrent run for the same recurrence wait and
		// then see the recurrence_date meta committed here.
		if errLock := r.GetRecurrenceRepository().Lock(ctx, owner, id); errLock != nil {
			return checkDatabaseError(errLock)
		}
		rec, errGet := r.GetRecurrenceRepository().Get(ctx, owner, id)
		if errGet != nil {
			return checkDatabaseError(errGet)
		}

		txRepo := r.GetTransactionRepository()
		exists, errTx := txRepo.RecurrenceDateExists(ctx, rec.ID, dateStr)
		if errTx != nil {
			return checkDatabaseError(errTx)
		}
		if exists {
			return fmt.Errorf("%w: recurrence %d on %s", common.ErrAlreadyMaterialized, rec.ID, dateStr)
		}
		count, errTx := txRepo.CountRecurrenceGroups(ctx, rec.ID)
		if errTx != nil {
			return checkDatabaseError(errTx)
		}
		if errTx = rec.IsDue(date, count); errTx != nil {
			return errTx
		}

		in, errTx := occurrenceGroup(rec, date)
		if errTx != nil {
			return errTx
		}
		group, errTx := rs.srv.TransactionGroup.store(ctx, r, owner, in)
		if errTx != nil {
			return errTx
		}

		if errTx = r.GetRecurrenceRepository().UpdateLatestDate(ctx, rec.ID, date); errTx != nil {
			return checkDatabaseError(errTx)
		}
		result = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	rs.srv.balanceMetrics().RecordJournals(result.Journals)

	return result, nil
}

// occurrenceGroup builds the group of one occurrence, one journal per template.
func occurrenceGroup(rec *models.Recurrence, date time.Time) (models.StoreTransactionGroupIn, error) {
	in := models.StoreTransactionGroupIn{GroupTitle: rec.Title}
	for _, rt := range rec.Transactions {
		description := rt.Description
		if strings.TrimSpace(description) == "" {
			description = rec.Title
		}
		j := models.StoreJournalIn{
			Type:              rec.Type,
			Date:              date,
			Amount:            rt.Amount,
			Description:       description,
			CurrencyID:        &rt.CurrencyID,
			ForeignCurrencyID: rt.ForeignCurrencyID,
			ForeignAmount:     rt.ForeignAmount,
			SourceID:          &rt.SourceID,
			DestinationID:     &rt.DestinationID,
			Meta: map[string]string{
				models.JournalMetaRecurrenceID:   strconv.FormatInt(rec.ID, 10),
				models.JournalMetaRecurrenceDate: common.FormatDate(date),
			},
		}

		if v, ok := rt.MetaValue(models.RecurrenceMetaBudgetID); ok {
			if budgetID, errParse := strconv.ParseInt(v, 10, 64); errParse == nil {
				j.BudgetID = &budgetID
			}
		}
		if v, ok := rt.MetaValue(models.RecurrenceMetaCategoryName); ok {
			j.CategoryName = v
		}
		if v, ok := rt.MetaValue(models.RecurrenceMetaPiggyBankID); ok {
			if piggyID, errParse := strconv.ParseInt(v, 10, 64); errParse == nil {
				j.PiggyBankID = &piggyID
			}
		}
		if v, ok := rt.MetaValue(models.RecurrenceMetaTags); ok && v != "" {
			if err := json.Unmarshal([]byte(v), &j.Tags); err != nil {
				return in, fmt.Errorf("decode tags of recurrence transaction %d: %w", rt.ID, err)
			}
		}

		in.Transactions = append(in.Transactions, j)
	}
	return in, nil
}

func validateRecurrence(rules []models.RecurrenceRepetitionIn, transactions []models.RecurrenceTransactionIn) error {
	if len(rules) == 0 {
		return fmt.Errorf("%w: recurrence has no repetitions", common.ErrInvalidRepetition)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: recurrence has no transactions", common.ErrValidation)
	}
	return validateChildren(rules, transactions)
}

func validateChildren(rules []models.RecurrenceRepetitionIn, transactions []models.RecurrenceTransactionIn) error {
	for _, rule := range rules {
		rule = rule.WithDefaults()
		rep := models.RecurrenceRepetition{Type: rule.Type, Moment: rule.Moment, Skip: rule.Skip, Weekend: rule.Weekend}
		if err := rep.Validate(); err != nil {
			return err
		}
	}
	for i, t := range transactions {
		if t.Amount.IsZero() {
			return fmt.Errorf("%w: recurrence transaction %d has a zero amount", common.ErrInvalidAmount, i)
		}
	}
	return nil
}

func (rs *recurrence) store(ctx context.Context, repo repositories.SQLRepository, owner int64, in models.StoreRecurrenceIn) (*models.Recurrence, error) {
	typeID, err := repo.GetTransactionRepository().GetTransactionTypeID(ctx, in.Type)
	if errors.Is(err, common.ErrNoRows) {
		return nil, common.NewConfigurationError("resolve transaction type "+in.Type.String(), common.ErrValidation)
	}
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	rec := &models.Recurrence{
		UserID:            owner,
		TransactionTypeID: typeID,
		Type:              in.Type,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		FirstDate:         common.StartOfDay(in.FirstDate),
		RepeatUntil:       in.RepeatUntil,
		Repetitions:       in.Repetitions,
		ApplyRules:        in.ApplyRules,
		Active:            in.Active,
	}
	if err = repo.GetRecurrenceRepository().Create(ctx, rec); err != nil {
		return nil, checkDatabaseError(err)
	}

	if rec.RepetitionRules, err = rs.storeRepetitions(ctx, repo, rec.ID, in.Rules); err != nil {
		return nil, err
	}
	if rec.Transactions, err = rs.storeTransactions(ctx, repo, owner, rec, in.Transactions); err != nil {
		return nil, err
	}

	if err = updateNote(ctx, repo, models.NoteableRecurrence, rec.ID, in.Notes); err != nil {
		return nil, err
	}
	if note := strings.TrimSpace(in.Notes); note != "" {
		rec.Notes = &note
	}

	return rec, nil
}

func (rs *recurrence) update(ctx context.Context, repo repositories.SQLRepository, owner, id int64, in models.UpdateRecurrenceIn) (*models.Recurrence, error) {
	recRepo := repo.GetRecurrenceRepository()
	rec, err := recRepo.Get(ctx, owner, id)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	if in.Title != nil {
		rec.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}
	if in.FirstDate != nil {
		rec.FirstDate = common.StartOfDay(*in.FirstDate)
	}
	switch {
	case in.ClearRepeatUntil:
		rec.RepeatUntil = nil
	case in.RepeatUntil != nil:
		rec.RepeatUntil = in.RepeatUntil
	}
	if in.Repetitions != nil {
		rec.Repetitions = *in.Repetitions
	}
	if in.ApplyRules != nil {
		rec.ApplyRules = *in.ApplyRules
	}
	if in.Active != nil {
		rec.Active = *in.Active
	}
	if err = recRepo.Update(ctx, rec); err != nil {
		if errors.Is(err, common.ErrNoRowsAffected) {
			return nil, models.GetErrMap(models.ErrKeyDataNotFound)
		}
		return nil, checkDatabaseError(err)
	}

	if in.Rules != nil {
		if err = recRepo.DeleteRepetitions(ctx, rec.ID); err != nil {
			return nil, checkDatabaseError(err)
		}
		if rec.RepetitionRules, err = rs.storeRepetitions(ctx, repo, rec.ID, in.Rules); err != nil {
			return nil, err
		}
	}

	if in.Transactions != nil {
		if err = recRepo.DeleteMetaByRecurrence(ctx, rec.ID); err != nil {
			return nil, checkDatabaseError(err)
		}
		if err = recRepo.DeleteTransactions(ctx, rec.ID); err != nil {
			return nil, checkDatabaseError(err)
		}
		if rec.Transactions, err = rs.storeTransactions(ctx, repo, owner, rec, in.Transactions); err != nil {
			return nil, err
		}
	}

	if in.Notes != nil {
		if err = updateNote(ctx, repo, models.NoteableRecurrence, rec.ID, *in.Notes); err != nil {
			return nil, err
		}
		rec.Notes = nil
		if note := strings.TrimSpace(*in.Notes); note != "" {
			rec.Notes = &note
		}
	}

	return rec, nil
}

func (rs *recurrence) storeRepetitions(ctx context.Context, repo repositories.SQLRepository, recurrenceID int64, rules []models.RecurrenceRepetitionIn) ([]models.RecurrenceRepetition, error) {
	out := make([]models.RecurrenceRepetition, 0, len(rules))
	for _, rule := range rules {
		rule = rule.WithDefaults()
		rep := models.RecurrenceRepetition{
			RecurrenceID: recurrenceID,
			Type:         rule.Type,
			Moment:       rule.Moment,
			Skip:         rule.Skip,
			Weekend:      rule.Weekend,
		}
		if err := repo.GetRecurrenceRepository().CreateRepetition(ctx, &rep); err != nil {
			return nil, checkDatabaseError(err)
		}
		out = append(out, rep)
	}
	return out, nil
}

// storeTransactions resolves and validates the accounts of every template the
// same way the group builder does, then stores the template and its meta.
func (rs *recurrence) storeTransactions(ctx context.Context, repo repositories.SQLRepository, owner int64, rec *models.Recurrence, ins []models.RecurrenceTransactionIn) ([]models.RecurrenceTransaction, error) {
	out := make([]models.RecurrenceTransaction, 0, len(ins))
	for i, in := range ins {
		leg, err := rs.srv.resolveLeg(ctx, repo, owner, rec.Type, i, legRefs{
			SourceID:            in.SourceID,
			SourceName:          in.SourceName,
			DestinationID:       in.DestinationID,
			DestinationName:     in.DestinationName,
			CurrencyID:          in.CurrencyID,
			CurrencyCode:        in.CurrencyCode,
			ForeignCurrencyID:   in.ForeignCurrencyID,
			ForeignCurrencyCode: in.ForeignCurrencyCode,
		})
		if err != nil {
			return nil, err
		}
		foreignCurrencyID, foreignAmount := leg.foreignAmount(in.ForeignAmount)

		rt := models.RecurrenceTransaction{
			RecurrenceID:      rec.ID,
			CurrencyID:        leg.currency.ID,
			ForeignCurrencyID: foreignCurrencyID,
			SourceID:          leg.source.ID,
			DestinationID:     leg.destination.ID,
			Amount:            in.Amount.Abs(),
			ForeignAmount:     foreignAmount,
			Description:       in.Description,
		}
		if err = repo.GetRecurrenceRepository().CreateTransaction(ctx, &rt); err != nil {
			return nil, checkDatabaseError(err)
		}

		if rt.Meta, err = rs.storeTransactionMeta(ctx, repo, owner, rt.ID, in); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, nil
}

// storeTransactionMeta keeps budget, category, piggy bank and tags of a
// template. Budgets and piggy banks that do not exist are not stored.
func (rs *recurrence) storeTransactionMeta(ctx context.Context, repo repositories.SQLRepository, owner, rtID int64, in models.RecurrenceTransactionIn) ([]models.RecurrenceTransactionMeta, error) {
	refRepo := repo.GetReferenceRepository()
	meta := make([]models.RecurrenceTransactionMeta, 0, 4)
	add := func(name, value string) {
		meta = append(meta, models.RecurrenceTransactionMeta{RecurrenceTransactionID: rtID, Name: name, Value: value})
	}

	if id := int64Value(in.BudgetID); id > 0 {
		budget, err := refRepo.GetBudget(ctx, owner, id)
		switch {
		case err == nil:
			add(models.RecurrenceMetaBudgetID, strconv.FormatInt(budget.ID, 10))
		case errors.Is(err, common.ErrNoRows):
			log.Warn(ctx, "[SERVICE] budget not found, recurrence stored without it", log.Int64("budgetId", id))
		default:
			return nil, checkDatabaseError(err)
		}
	}

	category, err := rs.srv.TransactionGroup.findOrCreateCategory(ctx, repo, owner, nil, in.CategoryName)
	if err != nil {
		return nil, err
	}
	if category != nil {
		add(models.RecurrenceMetaCategoryName, category.Name)
	}

	if id := int64Value(in.PiggyBankID); id > 0 {
		piggy, err := refRepo.GetPiggyBank(ctx, owner, id)
		switch {
		case err == nil:
			add(models.RecurrenceMetaPiggyBankID, strconv.FormatInt(piggy.ID, 10))
		case errors.Is(err, common.ErrNoRows):
			log.Warn(ctx, "[SERVICE] piggy bank not found, recurrence stored without it", log.Int64("piggyBankId", id))
		default:
			return nil, checkDatabaseError(err)
		}
	}

	if len(in.Tags) > 0 {
		tags, err := json.Marshal(in.Tags)
		if err != nil {
			return nil, err
		}
		add(models.RecurrenceMetaTags, string(tags))
	}

	recRepo := repo.GetRecurrenceRepository()
	for _, m := range meta {
		if err = recRepo.UpsertTransactionMeta(ctx, rtID, m.Name, m.Value); err != nil {
			return nil, checkDatabaseError(err)
		}
	}

	return meta, nil
}
