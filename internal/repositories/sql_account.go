package repositories

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_account.go -destination=mock/sql_account_mock.go -package=mock

type AccountRepository interface {
	GetAccountTypeByID(ctx context.Context, id int64) (result models.AccountTypeRow, err error)
	// GetFirstAccountType returns the first stored type among names.
	GetFirstAccountType(ctx context.Context, names []string) (result models.AccountTypeRow, err error)

	// GetByID and FindByName return common.ErrNoRows when nothing matches.
	GetByID(ctx context.Context, userID, id int64) (result *models.Account, err error)
	FindByName(ctx context.Context, userID int64, name string, types []accounttype.AccountType) (result *models.Account, err error)
	List(ctx context.Context, userID int64, types []accounttype.AccountType) (result []models.Account, err error)

	Create(ctx context.Context, in *models.Account) (err error)
	// MaxOrder is the highest order below the default order among accounts of types.
	MaxOrder(ctx context.Context, userID int64, types []accounttype.AccountType) (order int, err error)
	UpdateOrder(ctx context.Context, id int64, order int) (err error)

	StoreMeta(ctx context.Context, accountID int64, name, data string) (err error)
	DeleteMeta(ctx context.Context, accountID int64, name string) (err error)
	GetMeta(ctx context.Context, accountID int64, name string) (data string, err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) GetAccountTypeByID(ctx context.Context, id int64) (result models.AccountTypeRow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryAccountTypeGetByID, id).Scan(&result.ID, &result.Type)
	return
}

func (ar *accountRepository) GetFirstAccountType(ctx context.Context, names []string) (result models.AccountTypeRow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryAccountTypeGetFirstByNames, pq.Array(names)).Scan(&result.ID, &result.Type)
	return
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		account    models.Account
		virtual    decimal.NullDecimal
		iban       sql.NullString
		currencyID sql.NullInt64
	)
	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.AccountTypeID,
		&account.AccountType,
		&account.Name,
		&virtual,
		&iban,
		&account.Active,
		&account.Order,
		&currencyID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.VirtualBalance = nullDecimalPtr(virtual)
	account.IBAN = nullStringPtr(iban)
	account.CurrencyID = nullInt64Ptr(currencyID)

	return &account, nil
}

func (ar *accountRepository) GetByID(ctx context.Context, userID, id int64) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	return scanAccount(db.QueryRowContext(ctx, queryAccountGetByID, userID, id))
}

func (ar *accountRepository) FindByName(ctx context.Context, userID int64, name string, types []accounttype.AccountType) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	return scanAccount(db.QueryRowContext(ctx, queryAccountFindByName, userID, name, accountTypesArg(types)))
}

func (ar *accountRepository) List(ctx context.Context, userID int64, types []accounttype.AccountType) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryAccountListByTypes, userID, accountTypesArg(types))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, *account)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (ar *accountRepository) Create(ctx context.Context, in *models.Account) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryAccountCreate,
		in.UserID,
		in.AccountTypeID,
		in.Name,
		decimalArg(in.VirtualBalance),
		in.IBAN,
		in.Active,
		in.Order,
	).Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
	return
}

func (ar *accountRepository) MaxOrder(ctx context.Context, userID int64, types []accounttype.AccountType) (order int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryAccountMaxOrder, userID, accountTypesArg(types), models.DefaultAccountOrder).Scan(&order)
	return
}

func (ar *accountRepository) UpdateOrder(ctx context.Context, id int64, order int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)
	res, err := db.ExecContext(ctx, queryAccountUpdateOrder, id, order)
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

func (ar *accountRepository) StoreMeta(ctx context.Context, accountID int64, name, data string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryAccountMetaUpsert, accountID, name, data)
	return
}

func (ar *accountRepository) DeleteMeta(ctx context.Context, accountID int64, name string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)
	_, err = db.ExecContext(ctx, queryAccountMetaDelete, accountID, name)
	return
}

func (ar *accountRepository) GetMeta(ctx context.Context, accountID int64, name string) (data string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryAccountMetaGet, accountID, name).Scan(&data)
	return
}
