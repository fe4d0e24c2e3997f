package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/repositories"
)

// AccountValidator checks that accounts may take part in a transaction of one
// type. It holds the state of a single journal and must not be reused.
type AccountValidator struct {
	repo     repositories.SQLRepository
	registry *accounttype.Registry
	owner    int64
	txType   models.TransactionType

	source      *models.Account
	sourceError string
	destError   string
	storageErr  error
}

func (s *Services) NewAccountValidator(owner int64, txType models.TransactionType) *AccountValidator {
	return newAccountValidator(s.sqlRepo, s.accountTypes, owner, txType)
}

func newAccountValidator(repo repositories.SQLRepository, registry *accounttype.Registry, owner int64, txType models.TransactionType) *AccountValidator {
	return &AccountValidator{
		repo:     repo,
		registry: registry,
		owner:    owner,
		txType:   txType,
	}
}

func (v *AccountValidator) ValidateSource(ctx context.Context, accountID int64) bool {
	acc, msg := v.check(ctx, accountID, accounttype.RoleSource)
	if msg != "" {
		v.sourceError = msg
		return false
	}
	v.source = acc
	return true
}

// ValidateDestination must run after ValidateSource for transfers, which
// reject a destination equal to the source.
func (v *AccountValidator) ValidateDestination(ctx context.Context, accountID int64) bool {
	_, msg := v.check(ctx, accountID, accounttype.RoleDestination)
	if msg != "" {
		v.destError = msg
		return false
	}
	if v.txType == models.TransactionTypeTransfer && v.source != nil && v.source.ID == accountID {
		v.destError = "source and destination of a transfer must be different accounts"
		return false
	}
	return true
}

func (v *AccountValidator) SourceError() string {
	return v.sourceError
}

func (v *AccountValidator) DestinationError() string {
	return v.destError
}

// StorageError is the repository failure that prevented a check, if any.
func (v *AccountValidator) StorageError() error {
	return v.storageErr
}

func (v *AccountValidator) check(ctx context.Context, accountID int64, role accounttype.Role) (*models.Account, string) {
	if accountID <= 0 {
		return nil, "no account given"
	}

	acc, err := v.repo.GetAccountRepository().GetByID(ctx, v.owner, accountID)
	if errors.Is(err, common.ErrNoRows) {
		return nil, fmt.Sprintf("account #%d does not exist", accountID)
	}
	if err != nil {
		v.storageErr = checkDatabaseError(err)
		return nil, fmt.Sprintf("account #%d could not be loaded", accountID)
	}

	txType := v.txType.String()
	expected := v.registry.ExpectedTypes(txType, role)
	if !v.registry.IsExpected(txType, role, acc.AccountType) {
		return nil, fmt.Sprintf("account %q is a %s, a %s %s must be one of [%s]",
			acc.Name, acc.AccountType, strings.ToLower(txType), role, strings.Join(accounttype.Strings(expected), ", "))
	}

	return acc, ""
}
