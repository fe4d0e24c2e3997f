package accounttype

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/budhip/go-fp-ledger/internal/config"
)

type AccountType string

const (
	Asset           AccountType = "Asset account"
	Expense         AccountType = "Expense account"
	Revenue         AccountType = "Revenue account"
	Cash            AccountType = "Cash account"
	InitialBalance  AccountType = "Initial balance account"
	Reconciliation  AccountType = "Reconciliation account"
	Loan            AccountType = "Loan"
	Debt            AccountType = "Debt"
	Mortgage        AccountType = "Mortgage"
	CreditCard      AccountType = "Credit card"
	LiabilityCredit AccountType = "Liability credit account"
)

// Role is the side of a journal an account is checked for.
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

var (
	// CanHaveVirtual lists the types that may carry a virtual or opening balance.
	CanHaveVirtual = []AccountType{Asset, Debt, Loan, Mortgage, CreditCard}

	// CannotAutoCreate lists the types that are never created implicitly from a name.
	CannotAutoCreate = []AccountType{Asset, Debt, Loan, Mortgage, CreditCard}

	Liabilities = []AccountType{Loan, Debt, Mortgage}

	AssetLike = []AccountType{Asset, Loan, Debt, Mortgage}

	all = []AccountType{Asset, Expense, Revenue, Cash, InitialBalance, Reconciliation, Loan, Debt, Mortgage, CreditCard, LiabilityCredit}
)

func (t AccountType) String() string {
	return string(t)
}

func (t AccountType) CanHaveVirtualBalance() bool {
	return slices.Contains(CanHaveVirtual, t)
}

func (t AccountType) CanAutoCreate() bool {
	return !slices.Contains(CannotAutoCreate, t)
}

func (t AccountType) IsLiability() bool {
	return slices.Contains(Liabilities, t)
}

// Registry answers account type questions from the configured compatibility matrix.
// It is read only after construction.
type Registry struct {
	byIdentifier    map[string][]AccountType
	source          map[string][]AccountType
	destination     map[string][]AccountType
	cashAccountName string
}

func NewRegistry(cfg config.AccountTypes) *Registry {
	r := &Registry{
		byIdentifier:    toTypeMap(cfg.ByIdentifier),
		source:          toTypeMap(cfg.ExpectedTypes.Source),
		destination:     toTypeMap(cfg.ExpectedTypes.Destination),
		cashAccountName: cfg.CashAccountName,
	}
	if r.cashAccountName == "" {
		r.cashAccountName = string(Cash)
	}
	return r
}

func toTypeMap(in map[string][]string) map[string][]AccountType {
	out := make(map[string][]AccountType, len(in))
	for key, names := range in {
		types := make([]AccountType, 0, len(names))
		for _, name := range names {
			types = append(types, AccountType(name))
		}
		out[normalizeKey(key)] = types
	}
	return out
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// ExpectedTypes returns the account types allowed for role in a transaction of
// txType. An unknown pair yields an empty set.
func (r *Registry) ExpectedTypes(txType string, role Role) []AccountType {
	var matrix map[string][]AccountType
	switch role {
	case RoleSource:
		matrix = r.source
	case RoleDestination:
		matrix = r.destination
	default:
		return nil
	}
	return slices.Clone(matrix[normalizeKey(txType)])
}

// IsExpected reports whether t may be used as role in a txType transaction.
func (r *Registry) IsExpected(txType string, role Role, t AccountType) bool {
	return slices.Contains(r.ExpectedTypes(txType, role), t)
}

// Resolve maps a short identifier such as "asset" or "liabilities" to types.
func (r *Registry) Resolve(identifier string) []AccountType {
	return slices.Clone(r.byIdentifier[normalizeKey(identifier)])
}

func (r *Registry) IsKnown(t AccountType) bool {
	return slices.Contains(all, t)
}

// All returns every account type.
func All() []AccountType {
	return slices.Clone(all)
}

func (r *Registry) CashAccountName() string {
	return r.cashAccountName
}

// Strings converts types for use in SQL array parameters.
func Strings(types []AccountType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}
