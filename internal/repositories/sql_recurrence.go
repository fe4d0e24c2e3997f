package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_recurrence.go -destination=mock/sql_recurrence_mock.go -package=mock

type RecurrenceRepository interface {
	Create(ctx context.Context, in *models.Recurrence) (err error)
	Update(ctx context.Context, in *models.Recurrence) (err error)
	UpdateLatestDate(ctx context.Context, id int64, date time.Time) (err error)
	// Get loads the recurrence with its repetitions, transactions and their meta.
	Get(ctx context.Context, userID, id int64) (result *models.Recurrence, err error)
	// Lock takes a row lock on the recurrence until the surrounding
	// transaction ends. Concurrent materializations of one recurrence queue here.
	Lock(ctx context.Context, userID, id int64) (err error)
	Delete(ctx context.Context, userID, id int64) (err error)
	// ListDue returns active recurrences whose first date and repeat until
	// bounds include date. Whether date is an occurrence is not checked.
	ListDue(ctx context.Context, date time.Time, limit int) (result []models.RecurrenceRef, err error)

	CreateRepetition(ctx context.Context, in *models.RecurrenceRepetition) (err error)
	DeleteRepetitions(ctx context.Context, recurrenceID int64) (err error)

	CreateTransaction(ctx context.Context, in *models.RecurrenceTransaction) (err error)
	DeleteTransactions(ctx context.Context, recurrenceID int64) (err error)

	UpsertTransactionMeta(ctx context.Context, rtID int64, name, value string) (err error)
	DeleteTransactionMeta(ctx context.Context, rtID int64, name string) (err error)
	DeleteMetaByRecurrence(ctx context.Context, recurrenceID int64) (err error)
}

type recurrenceRepository sqlRepo

var _ RecurrenceRepository = (*recurrenceRepository)(nil)

func (rr *recurrenceRepository) Create(ctx context.Context, in *models.Recurrence) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryRecurrenceCreate,
		in.UserID,
		in.TransactionTypeID,
		in.Title,
		in.Description,
		in.FirstDate,
		timeArg(in.RepeatUntil),
		timeArg(in.LatestDate),
		in.Repetitions,
		in.ApplyRules,
		in.Active,
	).Scan(&in.ID)
	return
}

func (rr *recurrenceRepository) Update(ctx context.Context, in *models.Recurrence) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	res, err := db.ExecContext(ctx, queryRecurrenceUpdate,
		in.UserID,
		in.ID,
		in.Title,
		in.Description,
		in.FirstDate,
		timeArg(in.RepeatUntil),
		in.Repetitions,
		in.ApplyRules,
		in.Active,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (rr *recurrenceRepository) UpdateLatestDate(ctx context.Context, id int64, date time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryRecurrenceUpdateLatestDate, id, date)
	return
}

func (rr *recurrenceRepository) Lock(ctx context.Context, userID, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)

	var locked int64
	err = db.QueryRowContext(ctx, queryRecurrenceLock, userID, id).Scan(&locked)
	return
}

func (rr *recurrenceRepository) Get(ctx context.Context, userID, id int64) (result *models.Recurrence, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxRead(ctx)

	var (
		rec         models.Recurrence
		repeatUntil sql.NullTime
		latestDate  sql.NullTime
		notes       sql.NullString
	)
	err = db.QueryRowContext(ctx, queryRecurrenceGet, userID, id).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.TransactionTypeID,
		&rec.Type,
		&rec.Title,
		&rec.Description,
		&rec.FirstDate,
		&repeatUntil,
		&latestDate,
		&rec.Repetitions,
		&rec.ApplyRules,
		&rec.Active,
		&notes,
	)
	if err != nil {
		return nil, err
	}
	rec.RepeatUntil = nullTimePtr(repeatUntil)
	rec.LatestDate = nullTimePtr(latestDate)
	rec.Notes = nullStringPtr(notes)

	if rec.RepetitionRules, err = rr.getRepetitions(ctx, db, rec.ID); err != nil {
		return nil, err
	}
	if rec.Transactions, err = rr.getTransactions(ctx, db, rec.ID); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (rr *recurrenceRepository) getRepetitions(ctx context.Context, db sqlTx, recurrenceID int64) ([]models.RecurrenceRepetition, error) {
	rows, err := db.QueryContext(ctx, queryRepetitionsByRecurrence, recurrenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.RecurrenceRepetition
	for rows.Next() {
		var rep models.RecurrenceRepetition
		if err = rows.Scan(&rep.ID, &rep.RecurrenceID, &rep.Type, &rep.Moment, &rep.Skip, &rep.Weekend); err != nil {
			return nil, err
		}
		result = append(result, rep)
	}

	return result, rows.Err()
}

func (rr *recurrenceRepository) getTransactions(ctx context.Context, db sqlTx, recurrenceID int64) ([]models.RecurrenceTransaction, error) {
	rows, err := db.QueryContext(ctx, queryRecurrenceTransactionsByRecurrence, recurrenceID)
	if err != nil {
		return nil, err
	}

	var result []models.RecurrenceTransaction
	for rows.Next() {
		var (
			rt                models.RecurrenceTransaction
			foreignCurrencyID sql.NullInt64
			foreignAmount     decimal.NullDecimal
		)
		err = rows.Scan(
			&rt.ID,
			&rt.RecurrenceID,
			&rt.CurrencyID,
			&foreignCurrencyID,
			&rt.SourceID,
			&rt.DestinationID,
			&rt.Amount,
			&foreignAmount,
			&rt.Description,
		)
		if err != nil {
			rows.Close()
			return nil, err
		}
		rt.ForeignCurrencyID = nullInt64Ptr(foreignCurrencyID)
		rt.ForeignAmount = nullDecimalPtr(foreignAmount)
		result = append(result, rt)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	metaRows, err := db.QueryContext(ctx, queryRecurrenceMetaByRecurrence, recurrenceID)
	if err != nil {
		return nil, err
	}
	defer metaRows.Close()

	index := make(map[int64]int, len(result))
	for i := range result {
		index[result[i].ID] = i
	}
	for metaRows.Next() {
		var meta models.RecurrenceTransactionMeta
		if err = metaRows.Scan(&meta.ID, &meta.RecurrenceTransactionID, &meta.Name, &meta.Value); err != nil {
			return nil, err
		}
		if i, ok := index[meta.RecurrenceTransactionID]; ok {
			result[i].Meta = append(result[i].Meta, meta)
		}
	}

	return result, metaRows.Err()
}

func (rr *recurrenceRepository) Delete(ctx context.Context, userID, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	res, err := db.ExecContext(ctx, queryRecurrenceSoftDelete, userID, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRows
	}

	return nil
}

func (rr *recurrenceRepository) ListDue(ctx context.Context, date time.Time, limit int) (result []models.RecurrenceRef, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryRecurrenceListDue, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref models.RecurrenceRef
		if err = rows.Scan(&ref.ID, &ref.UserID); err != nil {
			return nil, err
		}
		result = append(result, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (rr *recurrenceRepository) CreateRepetition(ctx context.Context, in *models.RecurrenceRepetition) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryRepetitionCreate,
		in.RecurrenceID, string(in.Type), in.Moment, in.Skip, int(in.Weekend),
	).Scan(&in.ID)
	return
}

func (rr *recurrenceRepository) DeleteRepetitions(ctx context.Context, recurrenceID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryRepetitionsDelete, recurrenceID)
	return
}

func (rr *recurrenceRepository) CreateTransaction(ctx context.Context, in *models.RecurrenceTransaction) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryRecurrenceTransactionCreate,
		in.RecurrenceID,
		in.CurrencyID,
		int64Arg(in.ForeignCurrencyID),
		in.SourceID,
		in.DestinationID,
		in.Amount,
		decimalArg(in.ForeignAmount),
		in.Description,
	).Scan(&in.ID)
	return
}

func (rr *recurrenceRepository) DeleteTransactions(ctx context.Context, recurrenceID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryRecurrenceTransactionsDelete, recurrenceID)
	return
}

func (rr *recurrenceRepository) UpsertTransactionMeta(ctx context.Context, rtID int64, name, value string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryRecurrenceMetaUpsert, rtID, name, value)
	return
}

func (rr *recurrenceRepository) DeleteTransactionMeta(ctx context.Context, rtID int64, name string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryRecurrenceMetaDelete, rtID, name)
	return
}

func (rr *recurrenceRepository) DeleteMetaByRecurrence(ctx context.Context, recurrenceID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryRecurrenceMetaDeleteByRecurrence, recurrenceID)
	return
}
