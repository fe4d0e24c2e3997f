package repositories

import (
	"context"

	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_reference.go -destination=mock/sql_reference_mock.go -package=mock

// ReferenceRepository covers the records journals and recurrences point to:
// budgets, categories, piggy banks and notes.
type ReferenceRepository interface {
	GetBudget(ctx context.Context, userID, id int64) (result *models.Budget, err error)
	GetCategory(ctx context.Context, userID, id int64) (result *models.Category, err error)
	FindCategoryByName(ctx context.Context, userID int64, name string) (result *models.Category, err error)
	CreateCategory(ctx context.Context, in *models.Category) (err error)
	GetPiggyBank(ctx context.Context, userID, id int64) (result *models.PiggyBank, err error)

	UpsertNote(ctx context.Context, noteableType string, noteableID int64, text string) (err error)
	DeleteNote(ctx context.Context, noteableType string, noteableID int64) (err error)
}

type referenceRepository sqlRepo

var _ ReferenceRepository = (*referenceRepository)(nil)

func (rf *referenceRepository) GetBudget(ctx context.Context, userID, id int64) (result *models.Budget, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxRead(ctx)
	var b models.Budget
	if err = db.QueryRowContext(ctx, queryBudgetGet, userID, id).Scan(&b.ID, &b.UserID, &b.Name, &b.Active); err != nil {
		return nil, err
	}
	return &b, nil
}

func (rf *referenceRepository) GetCategory(ctx context.Context, userID, id int64) (result *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxRead(ctx)
	var c models.Category
	if err = db.QueryRowContext(ctx, queryCategoryGet, userID, id).Scan(&c.ID, &c.UserID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (rf *referenceRepository) FindCategoryByName(ctx context.Context, userID int64, name string) (result *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxRead(ctx)
	var c models.Category
	if err = db.QueryRowContext(ctx, queryCategoryFindByName, userID, name).Scan(&c.ID, &c.UserID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (rf *referenceRepository) CreateCategory(ctx context.Context, in *models.Category) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryCategoryCreate, in.UserID, in.Name).Scan(&in.ID)
	return
}

func (rf *referenceRepository) GetPiggyBank(ctx context.Context, userID, id int64) (result *models.PiggyBank, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxRead(ctx)
	var p models.PiggyBank
	if err = db.QueryRowContext(ctx, queryPiggyBankGet, userID, id).Scan(&p.ID, &p.AccountID, &p.Name); err != nil {
		return nil, err
	}
	return &p, nil
}

func (rf *referenceRepository) UpsertNote(ctx context.Context, noteableType string, noteableID int64, text string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryNoteUpsert, noteableID, noteableType, text)
	return
}

func (rf *referenceRepository) DeleteNote(ctx context.Context, noteableType string, noteableID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rf.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryNoteDelete, noteableID, noteableType)
	return
}
