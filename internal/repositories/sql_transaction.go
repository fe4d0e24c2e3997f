package repositories

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_transaction.go -destination=mock/sql_transaction_mock.go -package=mock

type TransactionRepository interface {
	GetTransactionTypeID(ctx context.Context, txType models.TransactionType) (id int64, err error)

	CreateGroup(ctx context.Context, group *models.TransactionGroup) (err error)
	CreateJournal(ctx context.Context, journal *models.TransactionJournal) (err error)
	CreateTransaction(ctx context.Context, leg *models.Transaction) (err error)
	StoreJournalMeta(ctx context.Context, journalID int64, name, data string) (err error)
	AttachBudget(ctx context.Context, journalID, budgetID int64) (err error)
	AttachCategory(ctx context.Context, journalID, categoryID int64) (err error)
	// AttachTags creates missing tags for the user and links all of them.
	AttachTags(ctx context.Context, userID, journalID int64, tags []string) (err error)

	GetGroup(ctx context.Context, userID, groupID int64) (result *models.TransactionGroup, err error)
	// DeleteGroup soft deletes the group with its journals, legs and journal meta.
	DeleteGroup(ctx context.Context, userID, groupID int64) (err error)

	FindOpeningBalanceGroupID(ctx context.Context, accountID int64) (groupID int64, err error)
	CountRecurrenceGroups(ctx context.Context, recurrenceID int64) (count int, err error)
	RecurrenceDateExists(ctx context.Context, recurrenceID int64, date string) (exists bool, err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (tr *transactionRepository) GetTransactionTypeID(ctx context.Context, txType models.TransactionType) (id int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryTransactionTypeGetID, txType.String()).Scan(&id)
	return
}

func (tr *transactionRepository) CreateGroup(ctx context.Context, group *models.TransactionGroup) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryTransactionGroupCreate, group.UserID, group.Title).Scan(&group.ID, &group.CreatedAt)
	return
}

func (tr *transactionRepository) CreateJournal(ctx context.Context, journal *models.TransactionJournal) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryTransactionJournalCreate,
		journal.UserID,
		journal.TransactionGroupID,
		journal.TransactionTypeID,
		journal.CurrencyID,
		journal.Description,
		journal.Date,
		journal.Order,
	).Scan(&journal.ID)
	return
}

func (tr *transactionRepository) CreateTransaction(ctx context.Context, leg *models.Transaction) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryTransactionCreate,
		leg.TransactionJournalID,
		leg.AccountID,
		leg.CurrencyID,
		leg.Amount,
		int64Arg(leg.ForeignCurrencyID),
		decimalArg(leg.ForeignAmount),
		leg.Identifier,
	).Scan(&leg.ID)
	return
}

func (tr *transactionRepository) StoreJournalMeta(ctx context.Context, journalID int64, name, data string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryJournalMetaCreate, journalID, name, data)
	return
}

func (tr *transactionRepository) AttachBudget(ctx context.Context, journalID, budgetID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryJournalAttachBudget, budgetID, journalID)
	return
}

func (tr *transactionRepository) AttachCategory(ctx context.Context, journalID, categoryID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryJournalAttachCategory, categoryID, journalID)
	return
}

func (tr *transactionRepository) AttachTags(ctx context.Context, userID, journalID int64, tags []string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)
	for _, tag := range tags {
		if tag == "" {
			continue
		}

		var tagID int64
		if err = db.QueryRowContext(ctx, queryTagUpsert, userID, tag).Scan(&tagID); err != nil {
			return err
		}
		if _, err = db.ExecContext(ctx, queryJournalAttachTag, tagID, journalID); err != nil {
			return err
		}
	}

	return nil
}

func (tr *transactionRepository) GetGroup(ctx context.Context, userID, groupID int64) (result *models.TransactionGroup, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)

	var (
		group models.TransactionGroup
		title sql.NullString
	)
	err = db.QueryRowContext(ctx, queryTransactionGroupGet, userID, groupID).Scan(&group.ID, &group.UserID, &title, &group.CreatedAt)
	if err != nil {
		return nil, err
	}
	group.Title = nullStringPtr(title)

	if group.Journals, err = tr.getJournals(ctx, db, group.ID); err != nil {
		return nil, err
	}

	journalIDs := make([]int64, 0, len(group.Journals))
	byID := make(map[int64]*models.TransactionJournal, len(group.Journals))
	for i := range group.Journals {
		journalIDs = append(journalIDs, group.Journals[i].ID)
		byID[group.Journals[i].ID] = &group.Journals[i]
	}
	if len(journalIDs) == 0 {
		return &group, nil
	}

	if err = tr.fillLegs(ctx, db, journalIDs, byID); err != nil {
		return nil, err
	}
	if err = tr.fillMeta(ctx, db, journalIDs, byID); err != nil {
		return nil, err
	}

	return &group, nil
}

func (tr *transactionRepository) getJournals(ctx context.Context, db sqlTx, groupID int64) ([]models.TransactionJournal, error) {
	rows, err := db.QueryContext(ctx, queryTransactionJournalsByGroup, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var journals []models.TransactionJournal
	for rows.Next() {
		var (
			j          models.TransactionJournal
			budgetID   sql.NullInt64
			categoryID sql.NullInt64
			notes      sql.NullString
			tags       pq.StringArray
		)
		err = rows.Scan(
			&j.ID,
			&j.UserID,
			&j.TransactionGroupID,
			&j.TransactionTypeID,
			&j.Type,
			&j.CurrencyID,
			&j.Description,
			&j.Date,
			&j.Order,
			&budgetID,
			&categoryID,
			&tags,
			&notes,
		)
		if err != nil {
			return nil, err
		}
		j.BudgetID = nullInt64Ptr(budgetID)
		j.CategoryID = nullInt64Ptr(categoryID)
		j.Notes = nullStringPtr(notes)
		j.Tags = tags
		journals = append(journals, j)
	}

	return journals, rows.Err()
}

func (tr *transactionRepository) fillLegs(ctx context.Context, db sqlTx, journalIDs []int64, byID map[int64]*models.TransactionJournal) error {
	rows, err := db.QueryContext(ctx, queryTransactionsByJournals, pq.Array(journalIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			leg               models.Transaction
			foreignCurrencyID sql.NullInt64
			foreignAmount     decimal.NullDecimal
		)
		err = rows.Scan(
			&leg.ID,
			&leg.TransactionJournalID,
			&leg.AccountID,
			&leg.CurrencyID,
			&leg.Amount,
			&foreignCurrencyID,
			&foreignAmount,
			&leg.Identifier,
		)
		if err != nil {
			return err
		}
		leg.ForeignCurrencyID = nullInt64Ptr(foreignCurrencyID)
		leg.ForeignAmount = nullDecimalPtr(foreignAmount)

		if j, ok := byID[leg.TransactionJournalID]; ok {
			j.Transactions = append(j.Transactions, leg)
			if j.ForeignCurrencyID == nil {
				j.ForeignCurrencyID = leg.ForeignCurrencyID
			}
		}
	}

	return rows.Err()
}

func (tr *transactionRepository) fillMeta(ctx context.Context, db sqlTx, journalIDs []int64, byID map[int64]*models.TransactionJournal) error {
	rows, err := db.QueryContext(ctx, queryJournalMetaByJournals, pq.Array(journalIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			journalID  int64
			name, data string
		)
		if err = rows.Scan(&journalID, &name, &data); err != nil {
			return err
		}
		if j, ok := byID[journalID]; ok {
			if j.Meta == nil {
				j.Meta = map[string]string{}
			}
			j.Meta[name] = data
		}
	}

	return rows.Err()
}

func (tr *transactionRepository) DeleteGroup(ctx context.Context, userID, groupID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryTransactionGroupSoftDelete, userID, groupID)
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

	for _, query := range []string{queryTransactionsSoftDeleteByGroup, queryJournalMetaSoftDeleteByGroup, queryJournalsSoftDeleteByGroup} {
		if _, err = db.ExecContext(ctx, query, groupID); err != nil {
			return err
		}
	}

	log.Debug(ctx, "[REPOSITORY] transaction group deleted", log.Int64("group_id", groupID))
	return nil
}

func (tr *transactionRepository) FindOpeningBalanceGroupID(ctx context.Context, accountID int64) (groupID int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryOpeningBalanceGroupByAccount, accountID).Scan(&groupID)
	return
}

func (tr *transactionRepository) CountRecurrenceGroups(ctx context.Context, recurrenceID int64) (count int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryCountRecurrenceGroups, strconv.FormatInt(recurrenceID, 10)).Scan(&count)
	return
}

func (tr *transactionRepository) RecurrenceDateExists(ctx context.Context, recurrenceID int64, date string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := tr.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryRecurrenceDateExists, strconv.FormatInt(recurrenceID, 10), date).Scan(&exists)
	return
}
