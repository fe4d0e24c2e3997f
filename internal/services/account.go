package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
	"github.com/budhip/go-fp-ledger/internal/repositories"
)

//go:generate mockgen -source=account.go -destination=mock/account_mock.go -package=mock

type AccountService interface {
	// Find is a plain lookup by (owner, type, name). It never creates and
	// returns nil when the account does not exist.
	Find(ctx context.Context, owner int64, name string, accountType accounttype.AccountType) (*models.Account, error)
	GetByID(ctx context.Context, owner, id int64) (*models.Account, error)
	List(ctx context.Context, owner int64, identifier string) ([]models.Account, error)
	ResolveType(ctx context.Context, typeID *int64, identifier string) (models.AccountTypeRow, error)
	// Create returns the existing account unchanged when one with the same
	// owner, type and name exists.
	Create(ctx context.Context, owner int64, in models.CreateAccountIn) (*models.Account, error)
	FindOrCreate(ctx context.Context, owner int64, name string, accountType accounttype.AccountType) (*models.Account, error)
	GetCashAccount(ctx context.Context, owner int64) (*models.Account, error)
}

type account service

var _ AccountService = (*account)(nil)

func (as *account) Find(ctx context.Context, owner int64, name string, accountType accounttype.AccountType) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return as.find(ctx, as.srv.sqlRepo, owner, name, []accounttype.AccountType{accountType})
}

func (as *account) GetByID(ctx context.Context, owner, id int64) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result, err = as.srv.sqlRepo.GetAccountRepository().GetByID(ctx, owner, id)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}

	return result, nil
}

// List returns the owner's accounts of the types an identifier such as
// "asset" or "liabilities" stands for. An empty identifier lists every type.
func (as *account) List(ctx context.Context, owner int64, identifier string) (result []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	types := accounttype.All()
	if identifier = strings.TrimSpace(identifier); identifier != "" {
		types = as.srv.accountTypes.Resolve(identifier)
		if len(types) == 0 && as.srv.accountTypes.IsKnown(accounttype.AccountType(identifier)) {
			types = []accounttype.AccountType{accounttype.AccountType(identifier)}
		}
		if len(types) == 0 {
			err = common.NewConfigurationError("list accounts", common.ErrInvalidAccountType)
			return nil, err
		}
	}

	result, err = as.srv.sqlRepo.GetAccountRepository().List(ctx, owner, types)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}

	return result, nil
}

func (as *account) ResolveType(ctx context.Context, typeID *int64, identifier string) (result models.AccountTypeRow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return as.resolveType(ctx, as.srv.sqlRepo, typeID, identifier)
}

func (as *account) Create(ctx context.Context, owner int64, in models.CreateAccountIn) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	in.ApplyLiability()

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		created, errTx := as.create(ctx, r, owner, in)
		if errTx != nil {
			return errTx
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (as *account) FindOrCreate(ctx context.Context, owner int64, name string, accountType accounttype.AccountType) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		found, errTx := as.findOrCreate(ctx, r, owner, name, accountType, nil)
		if errTx != nil {
			return errTx
		}
		result = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (as *account) GetCashAccount(ctx context.Context, owner int64) (result *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return as.FindOrCreate(ctx, owner, as.srv.accountTypes.CashAccountName(), accounttype.Cash)
}

func (as *account) find(ctx context.Context, repo repositories.SQLRepository, owner int64, name string, types []accounttype.AccountType) (*models.Account, error) {
	if strings.TrimSpace(name) == "" || len(types) == 0 {
		return nil, nil
	}

	found, err := repo.GetAccountRepository().FindByName(ctx, owner, name, types)
	if errors.Is(err, common.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	return found, nil
}

// findOrCreate creates a missing account from a minimal payload. A nil
// currencyID uses the owner's default currency.
func (as *account) findOrCreate(ctx context.Context, repo repositories.SQLRepository, owner int64, name string, accountType accounttype.AccountType, currencyID *int64) (*models.Account, error) {
	found, err := as.find(ctx, repo, owner, name, []accounttype.AccountType{accountType})
	if err != nil || found != nil {
		return found, err
	}

	log.Info(ctx, "[SERVICE] account not found, creating it",
		log.Int64("owner", owner), log.String("name", name), log.String("type", accountType.String()))

	return as.create(ctx, repo, owner, models.CreateAccountIn{
		Name:            name,
		AccountTypeName: accountType.String(),
		CurrencyID:      currencyID,
		VirtualBalance:  "0",
		Active:          true,
	})
}

// resolve finds the account a journal leg refers to: by id, then by name
// among the expected types, then by creating it under the first expected type
// that may be created implicitly. The owner's cash account is the last resort.
func (as *account) resolve(ctx context.Context, repo repositories.SQLRepository, owner int64, expected []accounttype.AccountType, accountID *int64, name string) (*models.Account, error) {
	if id := int64Value(accountID); id > 0 {
		found, err := repo.GetAccountRepository().GetByID(ctx, owner, id)
		if err == nil {
			return found, nil
		}
		if !errors.Is(err, common.ErrNoRows) {
			return nil, checkDatabaseError(err)
		}
	}

	found, err := as.find(ctx, repo, owner, name, expected)
	if err != nil || found != nil {
		return found, err
	}

	if strings.TrimSpace(name) != "" {
		for _, t := range expected {
			if !t.CanAutoCreate() {
				continue
			}
			return as.findOrCreate(ctx, repo, owner, name, t, nil)
		}
	}

	log.Debug(ctx, "[SERVICE] falling back to cash account",
		log.Int64("owner", owner), log.Int64("accountId", int64Value(accountID)), log.String("name", name))

	return as.findOrCreate(ctx, repo, owner, as.srv.accountTypes.CashAccountName(), accounttype.Cash, nil)
}

func (as *account) resolveType(ctx context.Context, repo repositories.SQLRepository, typeID *int64, identifier string) (models.AccountTypeRow, error) {
	accountRepo := repo.GetAccountRepository()

	if id := int64Value(typeID); id > 0 {
		row, err := accountRepo.GetAccountTypeByID(ctx, id)
		if err == nil {
			return row, nil
		}
		if !errors.Is(err, common.ErrNoRows) {
			return row, checkDatabaseError(err)
		}
	}

	// configured identifier first, then the identifier as a full type name
	identifier = strings.TrimSpace(identifier)
	lookups := [][]string{accounttype.Strings(as.srv.accountTypes.Resolve(identifier))}
	if identifier != "" {
		lookups = append(lookups, []string{identifier})
	}
	for _, names := range lookups {
		if len(names) == 0 {
			continue
		}
		row, err := accountRepo.GetFirstAccountType(ctx, names)
		if err == nil {
			return row, nil
		}
		if !errors.Is(err, common.ErrNoRows) {
			return row, checkDatabaseError(err)
		}
	}

	log.Warn(ctx, "[SERVICE] no account type found",
		log.Int64("typeId", int64Value(typeID)), log.String("identifier", identifier))

	return models.AccountTypeRow{}, common.NewConfigurationError("resolve account type", common.ErrInvalidAccountType)
}

func (as *account) create(ctx context.Context, repo repositories.SQLRepository, owner int64, in models.CreateAccountIn) (*models.Account, error) {
	typeRow, err := as.resolveType(ctx, repo, in.AccountTypeID, in.AccountTypeName)
	if err != nil {
		return nil, err
	}

	existing, err := as.find(ctx, repo, owner, in.Name, []accounttype.AccountType{typeRow.Type})
	if err != nil || existing != nil {
		return existing, err
	}

	cur, err := as.srv.Currency.resolve(ctx, repo, owner, in.CurrencyID, in.CurrencyCode)
	if err != nil {
		return nil, err
	}

	created := &models.Account{
		UserID:        owner,
		AccountTypeID: typeRow.ID,
		AccountType:   typeRow.Type,
		Name:          in.Name,
		IBAN:          models.FilterIBAN(in.IBAN),
		Active:        in.Active,
		Order:         models.DefaultAccountOrder,
		CurrencyID:    &cur.ID,
	}
	if typeRow.Type.CanHaveVirtualBalance() {
		if created.VirtualBalance, err = models.ParseOptionalAmount(in.VirtualBalance); err != nil {
			return nil, err
		}
	}

	accountRepo := repo.GetAccountRepository()
	if err = accountRepo.Create(ctx, created); err != nil {
		return nil, checkDatabaseError(err)
	}

	if err = as.storeMeta(ctx, repo, created, in); err != nil {
		return nil, err
	}

	if typeRow.Type.CanHaveVirtualBalance() {
		if in.HasValidOpeningBalance() {
			amount, errAmount := models.ParseAmount(in.OpeningBalance)
			if errAmount != nil {
				return nil, errAmount
			}
			if _, err = as.srv.TransactionGroup.storeOpeningBalance(ctx, repo, created, amount, *in.OpeningBalanceDate); err != nil {
				return nil, err
			}
		} else {
			as.srv.TransactionGroup.deleteOpeningBalance(ctx, repo, created)
		}
	}

	if err = updateNote(ctx, repo, models.NoteableAccount, created.ID, in.Notes); err != nil {
		return nil, err
	}

	maxOrder, err := accountRepo.MaxOrder(ctx, owner, []accounttype.AccountType{typeRow.Type})
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	created.Order = nextOrder(maxOrder, in.Order)
	if err = accountRepo.UpdateOrder(ctx, created.ID, created.Order); err != nil {
		return nil, checkDatabaseError(err)
	}

	return created, nil
}

// nextOrder places the account after the others of its type unless a smaller
// non zero order is requested.
func nextOrder(maxOrder int, requested *int) int {
	if requested == nil || *requested == 0 || *requested > maxOrder {
		return maxOrder + 1
	}
	return *requested
}

func (as *account) storeMeta(ctx context.Context, repo repositories.SQLRepository, acc *models.Account, in models.CreateAccountIn) error {
	meta := map[string]string{
		models.AccountMetaCurrencyID:    strconv.FormatInt(*acc.CurrencyID, 10),
		models.AccountMetaAccountNumber: strings.TrimSpace(in.AccountNumber),
		models.AccountMetaBIC:           strings.TrimSpace(in.BIC),
	}
	if acc.AccountType == accounttype.Asset || acc.AccountType == accounttype.CreditCard {
		meta[models.AccountMetaAccountRole] = strings.TrimSpace(in.AccountRole)
	}
	if acc.AccountType.IsLiability() {
		meta[models.AccountMetaInterest] = strings.TrimSpace(in.Interest)
		meta[models.AccountMetaInterestPeriod] = strings.TrimSpace(in.InterestPeriod)
	}
	if in.IncludeNetWorth != nil {
		meta[models.AccountMetaIncludeNetWorth] = "0"
		if *in.IncludeNetWorth {
			meta[models.AccountMetaIncludeNetWorth] = "1"
		}
	}

	accountRepo := repo.GetAccountRepository()
	for _, name := range []string{
		models.AccountMetaCurrencyID,
		models.AccountMetaAccountRole,
		models.AccountMetaAccountNumber,
		models.AccountMetaBIC,
		models.AccountMetaInterest,
		models.AccountMetaInterestPeriod,
		models.AccountMetaIncludeNetWorth,
	} {
		data, ok := meta[name]
		if !ok || data == "" {
			continue
		}
		if err := accountRepo.StoreMeta(ctx, acc.ID, name, data); err != nil {
			return checkDatabaseError(err)
		}
	}

	return nil
}

// updateNote stores a trimmed note or removes the existing one when empty.
// A failed removal is logged and swallowed.
func updateNote(ctx context.Context, repo repositories.SQLRepository, noteableType string, noteableID int64, note string) error {
	referenceRepo := repo.GetReferenceRepository()

	if note = strings.TrimSpace(note); note == "" {
		if err := referenceRepo.DeleteNote(ctx, noteableType, noteableID); err != nil {
			logCleanupFailure(ctx, "note", noteableID, err)
		}
		return nil
	}

	if err := referenceRepo.UpsertNote(ctx, noteableType, noteableID, note); err != nil {
		return checkDatabaseError(err)
	}
	return nil
}
