package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/config"
)

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main_mock.go -package=mock

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ar  *accountRepository
	cr  *currencyRepository
	tr  *transactionRepository
	br  *balanceRepository
	rr  *recurrenceRepository
	or  *operationsRepository
	ref *referenceRepository
}

func NewSQLRepository(dbWrite, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.cr = (*currencyRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.br = (*balanceRepository)(&rtx.common)
	rtx.rr = (*recurrenceRepository)(&rtx.common)
	rtx.or = (*operationsRepository)(&rtx.common)
	rtx.ref = (*referenceRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	// Atomic runs steps in one database transaction. Every repository obtained
	// from r inside steps uses that transaction; any error rolls everything back.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetAccountRepository() AccountRepository
	GetCurrencyRepository() CurrencyRepository
	GetTransactionRepository() TransactionRepository
	GetBalanceRepository() BalanceRepository
	GetRecurrenceRepository() RecurrenceRepository
	GetOperationsRepository() OperationsRepository
	GetReferenceRepository() ReferenceRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(sqlTx); ok {
		// already inside a transaction, join it
		return steps(ctx, r)
	}

	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
				return
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()

	err = steps(injectTx(ctx, tx), r)
	return
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetCurrencyRepository() CurrencyRepository {
	return r.cr
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetBalanceRepository() BalanceRepository {
	return r.br
}

func (r *Repository) GetRecurrenceRepository() RecurrenceRepository {
	return r.rr
}

func (r *Repository) GetOperationsRepository() OperationsRepository {
	return r.or
}

func (r *Repository) GetReferenceRepository() ReferenceRepository {
	return r.ref
}
