package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
	"github.com/budhip/go-fp-ledger/internal/repositories"
)

//go:generate mockgen -source=transaction_group.go -destination=mock/transaction_group_mock.go -package=mock

type TransactionGroupService interface {
	// Store writes the group, its journals, legs and links in one database
	// transaction. Nothing is written when any journal fails.
	Store(ctx context.Context, owner int64, in models.StoreTransactionGroupIn) (*models.TransactionGroup, error)
	Get(ctx context.Context, owner, groupID int64) (*models.TransactionGroup, error)
	Delete(ctx context.Context, owner, groupID int64) error
}

type transactionGroup service

var _ TransactionGroupService = (*transactionGroup)(nil)

func (ts *transactionGroup) Store(ctx context.Context, owner int64, in models.StoreTransactionGroupIn) (result *models.TransactionGroup, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = ts.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		group, errTx := ts.store(ctx, r, owner, in)
		if errTx != nil {
			return errTx
		}
		result = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	ts.srv.balanceMetrics().RecordJournals(result.Journals)

	return result, nil
}

func (ts *transactionGroup) Get(ctx context.Context, owner, groupID int64) (result *models.TransactionGroup, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result, err = ts.srv.sqlRepo.GetTransactionRepository().GetGroup(ctx, owner, groupID)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}

	return result, nil
}

func (ts *transactionGroup) Delete(ctx context.Context, owner, groupID int64) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = ts.srv.sqlRepo.GetTransactionRepository().DeleteGroup(ctx, owner, groupID); err != nil {
		err = checkDatabaseError(err)
		return err
	}

	return nil
}

func validateGroup(in models.StoreTransactionGroupIn) error {
	if len(in.Transactions) == 0 {
		return common.ErrEmptyGroup
	}
	txType := in.Transactions[0].Type
	for i, j := range in.Transactions {
		if j.Type != txType {
			return fmt.Errorf("%w: journal %d is a %s, expected %s", common.ErrMixedGroupTypes, i, j.Type, txType)
		}
		if j.Amount.IsZero() {
			return fmt.Errorf("%w: journal %d has a zero amount", common.ErrInvalidAmount, i)
		}
	}
	return nil
}

func (ts *transactionGroup) store(ctx context.Context, repo repositories.SQLRepository, owner int64, in models.StoreTransactionGroupIn) (*models.TransactionGroup, error) {
	if err := validateGroup(in); err != nil {
		return nil, err
	}

	txType := in.Transactions[0].Type
	typeID, err := repo.GetTransactionRepository().GetTransactionTypeID(ctx, txType)
	if errors.Is(err, common.ErrNoRows) {
		return nil, common.NewConfigurationError("resolve transaction type "+txType.String(), common.ErrValidation)
	}
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	group := &models.TransactionGroup{UserID: owner}
	if title := strings.TrimSpace(in.GroupTitle); title != "" {
		group.Title = &title
	}
	if err = repo.GetTransactionRepository().CreateGroup(ctx, group); err != nil {
		return nil, checkDatabaseError(err)
	}

	for i, j := range in.Transactions {
		journal, errJournal := ts.storeJournal(ctx, repo, owner, group.ID, typeID, i, j)
		if errJournal != nil {
			return nil, errJournal
		}
		group.Journals = append(group.Journals, *journal)
	}

	return group, nil
}

// legRefs names the accounts and currencies of one journal or recurrence template.
type legRefs struct {
	SourceID            *int64
	SourceName          string
	DestinationID       *int64
	DestinationName     string
	CurrencyID          *int64
	CurrencyCode        string
	ForeignCurrencyID   *int64
	ForeignCurrencyCode string
}

type resolvedLeg struct {
	source      *models.Account
	destination *models.Account
	currency    *models.Currency
	foreign     *models.Currency
}

// resolveLeg runs the account resolver chain for both sides, resolves the
// currencies and validates the accounts against the transaction type.
func (s *Services) resolveLeg(ctx context.Context, repo repositories.SQLRepository, owner int64, txType models.TransactionType, index int, refs legRefs) (resolvedLeg, error) {
	registry := s.accountTypes
	name := txType.String()

	source, err := s.Account.resolve(ctx, repo, owner, registry.ExpectedTypes(name, accounttype.RoleSource), refs.SourceID, refs.SourceName)
	if err != nil {
		return resolvedLeg{}, err
	}
	destination, err := s.Account.resolve(ctx, repo, owner, registry.ExpectedTypes(name, accounttype.RoleDestination), refs.DestinationID, refs.DestinationName)
	if err != nil {
		return resolvedLeg{}, err
	}

	cur, err := s.Currency.resolve(ctx, repo, owner, refs.CurrencyID, refs.CurrencyCode)
	if err != nil {
		return resolvedLeg{}, err
	}
	foreign, err := s.Currency.find(ctx, repo, refs.ForeignCurrencyID, refs.ForeignCurrencyCode)
	if err != nil {
		return resolvedLeg{}, err
	}

	validator := newAccountValidator(repo, registry, owner, txType)
	if !validator.ValidateSource(ctx, source.ID) {
		if storageErr := validator.StorageError(); storageErr != nil {
			return resolvedLeg{}, storageErr
		}
		return resolvedLeg{}, common.NewInvalidLegError(index, "Source", validator.SourceError())
	}
	if !validator.ValidateDestination(ctx, destination.ID) {
		if storageErr := validator.StorageError(); storageErr != nil {
			return resolvedLeg{}, storageErr
		}
		return resolvedLeg{}, common.NewInvalidLegError(index, "Destination", validator.DestinationError())
	}

	return resolvedLeg{source: source, destination: destination, currency: cur, foreign: foreign}, nil
}

// foreignAmount keeps the foreign side only when it names a currency other
// than the native one.
func (l resolvedLeg) foreignAmount(amount *decimal.Decimal) (*int64, *decimal.Decimal) {
	if l.foreign == nil || amount == nil || l.foreign.ID == l.currency.ID {
		return nil, nil
	}
	return &l.foreign.ID, amount
}

func (ts *transactionGroup) storeJournal(ctx context.Context, repo repositories.SQLRepository, owner, groupID, typeID int64, index int, in models.StoreJournalIn) (*models.TransactionJournal, error) {
	leg, err := ts.srv.resolveLeg(ctx, repo, owner, in.Type, index, legRefs{
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

	journal := &models.TransactionJournal{
		UserID:             owner,
		TransactionGroupID: groupID,
		TransactionTypeID:  typeID,
		Type:               in.Type,
		CurrencyID:         leg.currency.ID,
		ForeignCurrencyID:  foreignCurrencyID,
		Description:        in.Description,
		Date:               in.Date,
		Order:              index,
		Tags:               in.Tags,
		Meta:               in.Meta,
		Transactions:       models.NewJournalLegs(leg.source.ID, leg.destination.ID, leg.currency.ID, in.Amount, foreignCurrencyID, foreignAmount),
	}
	if err = journal.CheckBalanced(); err != nil {
		return nil, err
	}

	txRepo := repo.GetTransactionRepository()
	if err = txRepo.CreateJournal(ctx, journal); err != nil {
		return nil, checkDatabaseError(err)
	}
	for i := range journal.Transactions {
		journal.Transactions[i].TransactionJournalID = journal.ID
		if err = txRepo.CreateTransaction(ctx, &journal.Transactions[i]); err != nil {
			return nil, checkDatabaseError(err)
		}
	}

	if err = ts.storeLinks(ctx, repo, owner, journal, in); err != nil {
		return nil, err
	}

	return journal, nil
}

// storeLinks attaches meta, piggy bank, budget, category, tags and notes.
// Missing budgets and piggy banks are skipped, a missing category name is created.
func (ts *transactionGroup) storeLinks(ctx context.Context, repo repositories.SQLRepository, owner int64, journal *models.TransactionJournal, in models.StoreJournalIn) error {
	txRepo := repo.GetTransactionRepository()
	refRepo := repo.GetReferenceRepository()

	meta := make(map[string]string, len(in.Meta)+1)
	for name, data := range in.Meta {
		meta[name] = data
	}
	if id := int64Value(in.PiggyBankID); id > 0 {
		piggy, err := refRepo.GetPiggyBank(ctx, owner, id)
		switch {
		case err == nil:
			meta[models.JournalMetaPiggyBankID] = strconv.FormatInt(piggy.ID, 10)
		case !errors.Is(err, common.ErrNoRows):
			return checkDatabaseError(err)
		}
	}
	names := make([]string, 0, len(meta))
	for name := range meta {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := txRepo.StoreJournalMeta(ctx, journal.ID, name, meta[name]); err != nil {
			return checkDatabaseError(err)
		}
	}
	journal.Meta = meta

	if id := int64Value(in.BudgetID); id > 0 {
		budget, err := refRepo.GetBudget(ctx, owner, id)
		switch {
		case err == nil:
			if err = txRepo.AttachBudget(ctx, journal.ID, budget.ID); err != nil {
				return checkDatabaseError(err)
			}
			journal.BudgetID = &budget.ID
		case errors.Is(err, common.ErrNoRows):
			log.Warn(ctx, "[SERVICE] budget not found, journal stored without it", log.Int64("budgetId", id))
		default:
			return checkDatabaseError(err)
		}
	}

	category, err := ts.findOrCreateCategory(ctx, repo, owner, in.CategoryID, in.CategoryName)
	if err != nil {
		return err
	}
	if category != nil {
		if err = txRepo.AttachCategory(ctx, journal.ID, category.ID); err != nil {
			return checkDatabaseError(err)
		}
		journal.CategoryID = &category.ID
	}

	if len(in.Tags) > 0 {
		if err = txRepo.AttachTags(ctx, owner, journal.ID, in.Tags); err != nil {
			return checkDatabaseError(err)
		}
	}

	if note := strings.TrimSpace(in.Notes); note != "" {
		if err = refRepo.UpsertNote(ctx, models.NoteableTransactionJournal, journal.ID, note); err != nil {
			return checkDatabaseError(err)
		}
		journal.Notes = &note
	}

	return nil
}

// findOrCreateCategory looks a category up by id, then by name, creating it
// from the name as a last resort. Nil means no category was asked for.
func (ts *transactionGroup) findOrCreateCategory(ctx context.Context, repo repositories.SQLRepository, owner int64, categoryID *int64, name string) (*models.Category, error) {
	refRepo := repo.GetReferenceRepository()

	if id := int64Value(categoryID); id > 0 {
		category, err := refRepo.GetCategory(ctx, owner, id)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, common.ErrNoRows) {
			return nil, checkDatabaseError(err)
		}
	}

	if name = strings.TrimSpace(name); name == "" {
		return nil, nil
	}
	category, err := refRepo.FindCategoryByName(ctx, owner, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, common.ErrNoRows) {
		return nil, checkDatabaseError(err)
	}

	category = &models.Category{UserID: owner, Name: name}
	if err = refRepo.CreateCategory(ctx, category); err != nil {
		return nil, checkDatabaseError(err)
	}
	return category, nil
}

// storeOpeningBalance books amount between the account and its
// "<name> initial balance" counter account. A positive amount flows into the account.
func (ts *transactionGroup) storeOpeningBalance(ctx context.Context, repo repositories.SQLRepository, acc *models.Account, amount decimal.Decimal, date time.Time) (*models.TransactionGroup, error) {
	counter, err := ts.srv.Account.findOrCreate(ctx, repo, acc.UserID, acc.Name+" initial balance", accounttype.InitialBalance, acc.CurrencyID)
	if err != nil {
		return nil, err
	}

	sourceID, destinationID := counter.ID, acc.ID
	if amount.IsNegative() {
		sourceID, destinationID = acc.ID, counter.ID
	}

	txRepo := repo.GetTransactionRepository()
	typeID, err := txRepo.GetTransactionTypeID(ctx, models.TransactionTypeOpeningBalance)
	if errors.Is(err, common.ErrNoRows) {
		return nil, common.NewConfigurationError("resolve transaction type "+models.TransactionTypeOpeningBalance.String(), common.ErrValidation)
	}
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	group := &models.TransactionGroup{UserID: acc.UserID}
	if err = txRepo.CreateGroup(ctx, group); err != nil {
		return nil, checkDatabaseError(err)
	}

	journal := models.TransactionJournal{
		UserID:             acc.UserID,
		TransactionGroupID: group.ID,
		TransactionTypeID:  typeID,
		Type:               models.TransactionTypeOpeningBalance,
		CurrencyID:         int64Value(acc.CurrencyID),
		Description:        fmt.Sprintf("Initial balance for %q", acc.Name),
		Date:               common.StartOfDay(date),
		Transactions:       models.NewJournalLegs(sourceID, destinationID, int64Value(acc.CurrencyID), amount, nil, nil),
	}
	if err = journal.CheckBalanced(); err != nil {
		return nil, err
	}
	if err = txRepo.CreateJournal(ctx, &journal); err != nil {
		return nil, checkDatabaseError(err)
	}
	for i := range journal.Transactions {
		journal.Transactions[i].TransactionJournalID = journal.ID
		if err = txRepo.CreateTransaction(ctx, &journal.Transactions[i]); err != nil {
			return nil, checkDatabaseError(err)
		}
	}

	group.Journals = []models.TransactionJournal{journal}
	return group, nil
}

// deleteOpeningBalance removes the account's opening balance group, if any.
func (ts *transactionGroup) deleteOpeningBalance(ctx context.Context, repo repositories.SQLRepository, acc *models.Account) {
	txRepo := repo.GetTransactionRepository()

	groupID, err := txRepo.FindOpeningBalanceGroupID(ctx, acc.ID)
	if errors.Is(err, common.ErrNoRows) {
		return
	}
	if err != nil {
		logCleanupFailure(ctx, "opening balance", acc.ID, err)
		return
	}
	if err = txRepo.DeleteGroup(ctx, acc.UserID, groupID); err != nil {
		logCleanupFailure(ctx, "opening balance", acc.ID, err)
	}
}
