package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/models"
)

var (
	checking = &models.Account{ID: 10, UserID: testOwner, Name: "Checking", AccountType: accounttype.Asset, CurrencyID: int64Ptr(eurID)}
	savings  = &models.Account{ID: 12, UserID: testOwner, Name: "Savings", AccountType: accounttype.Asset, CurrencyID: int64Ptr(eurID)}
	coffee   = &models.Account{ID: 41, UserID: testOwner, Name: "Coffee Shop", AccountType: accounttype.Expense, CurrencyID: int64Ptr(eurID)}
	cash     = &models.Account{ID: 5, UserID: testOwner, Name: "Cash account", AccountType: accounttype.Cash, CurrencyID: int64Ptr(eurID)}
)

func (h testServiceHelper) expectAccounts(accounts ...*models.Account) {
	for _, acc := range accounts {
		h.mockAccRepository.EXPECT().GetByID(gomock.Any(), testOwner, acc.ID).Return(acc, nil).AnyTimes()
	}
}

// expectGroupHeader covers the type lookup and group row of a Store call.
func (h testServiceHelper) expectGroupHeader(txType models.TransactionType, groupID int64) {
	h.mockTrxRepository.EXPECT().GetTransactionTypeID(gomock.Any(), txType).Return(int64(1), nil)
	h.mockTrxRepository.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.TransactionGroup) error {
			g.ID = groupID
			return nil
		})
}

// expectJournalRows records the legs written for each journal.
func (h testServiceHelper) expectJournalRows(journalID int64, legs *[]models.Transaction) {
	h.mockTrxRepository.EXPECT().CreateJournal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j *models.TransactionJournal) error {
			j.ID = journalID
			return nil
		})
	h.mockTrxRepository.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, leg *models.Transaction) error {
			*legs = append(*legs, *leg)
			return nil
		}).Times(2)
}

func TestTransactionGroupService_Store(t *testing.T) {
	withdrawalTypes := []accounttype.AccountType{accounttype.Expense, accounttype.Cash, accounttype.Loan, accounttype.Debt, accounttype.Mortgage}

	tests := []struct {
		name    string
		in      models.StoreTransactionGroupIn
		doMock  func(h testServiceHelper, legs *[]models.Transaction)
		check   func(t *testing.T, got *models.TransactionGroup, legs []models.Transaction)
		wantErr error
	}{
		{
			name: "withdrawal creates the missing expense account",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{{
				Type:            models.TransactionTypeWithdrawal,
				Date:            date("2024-01-02"),
				Amount:          decimal.RequireFromString("25.50"),
				Description:     "Coffee",
				SourceID:        int64Ptr(checking.ID),
				DestinationName: "Coffee Shop",
			}}},
			doMock: func(h testServiceHelper, legs *[]models.Transaction) {
				h.expectDefaultCurrency()
				h.expectAccounts(checking)
				h.expectGroupHeader(models.TransactionTypeWithdrawal, 50)
				h.mockAccRepository.EXPECT().FindByName(gomock.Any(), testOwner, "Coffee Shop", withdrawalTypes).Return(nil, common.ErrNoRows)
				h.expectAutoCreate("Coffee Shop", accounttype.Expense, coffee.ID)
				h.expectAccounts(coffee)
				h.expectJournalRows(60, legs)
			},
			check: func(t *testing.T, got *models.TransactionGroup, legs []models.Transaction) {
				require.Len(t, got.Journals, 1)
				assert.Equal(t, int64(50), got.ID)
				assert.Equal(t, eurID, got.Journals[0].CurrencyID)
				require.Len(t, legs, 2)
				assert.Equal(t, checking.ID, legs[0].AccountID)
				assert.True(t, decimal.RequireFromString("-25.50").Equal(legs[0].Amount))
				assert.Equal(t, coffee.ID, legs[1].AccountID)
				assert.True(t, decimal.RequireFromString("25.50").Equal(legs[1].Amount))
			},
		},
		{
			name: "asset like source is never created from a name",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{{
				Type:          models.TransactionTypeWithdrawal,
				Date:          date("2024-01-02"),
				Amount:        decimal.NewFromInt(5),
				Description:   "Lunch",
				SourceName:    "Wallet",
				DestinationID: int64Ptr(coffee.ID),
			}}},
			doMock: func(h testServiceHelper, legs *[]models.Transaction) {
				h.expectDefaultCurrency()
				h.expectAccounts(coffee, cash)
				h.expectGroupHeader(models.TransactionTypeWithdrawal, 50)
				h.mockAccRepository.EXPECT().FindByName(gomock.Any(), testOwner, "Wallet", gomock.Any()).Return(nil, common.ErrNoRows)
				h.mockAccRepository.EXPECT().FindByName(gomock.Any(), testOwner, "Cash account", []accounttype.AccountType{accounttype.Cash}).Return(cash, nil)
			},
			wantErr: common.ErrInvalidLeg,
		},
		{
			name: "transfer to the same account",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{{
				Type:          models.TransactionTypeTransfer,
				Date:          date("2024-01-02"),
				Amount:        decimal.NewFromInt(5),
				Description:   "Loop",
				SourceID:      int64Ptr(checking.ID),
				DestinationID: int64Ptr(checking.ID),
			}}},
			doMock: func(h testServiceHelper, legs *[]models.Transaction) {
				h.expectDefaultCurrency()
				h.expectAccounts(checking)
				h.expectGroupHeader(models.TransactionTypeTransfer, 50)
			},
			wantErr: common.ErrInvalidLeg,
		},
		{
			name: "foreign currency equal to the native one is dropped",
			in: models.StoreTransactionGroupIn{GroupTitle: "Split", Transactions: []models.StoreJournalIn{{
				Type:                models.TransactionTypeTransfer,
				Date:                date("2024-01-02"),
				Amount:              decimal.NewFromInt(10),
				Description:         "Move",
				CurrencyCode:        "EUR",
				ForeignCurrencyCode: "EUR",
				ForeignAmount:       decimalPtr("11"),
				SourceID:            int64Ptr(checking.ID),
				DestinationID:       int64Ptr(savings.ID),
			}}},
			doMock: func(h testServiceHelper, legs *[]models.Transaction) {
				h.expectDefaultCurrency()
				h.expectAccounts(checking, savings)
				h.expectGroupHeader(models.TransactionTypeTransfer, 50)
				h.expectJournalRows(61, legs)
			},
			check: func(t *testing.T, got *models.TransactionGroup, legs []models.Transaction) {
				require.NotNil(t, got.Title)
				assert.Equal(t, "Split", *got.Title)
				assert.Nil(t, got.Journals[0].ForeignCurrencyID)
				for _, leg := range legs {
					assert.Nil(t, leg.ForeignAmount)
				}
			},
		},
		{
			name: "foreign amount is mirrored on both legs",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{{
				Type:                models.TransactionTypeTransfer,
				Date:                date("2024-01-02"),
				Amount:              decimal.NewFromInt(10),
				Description:         "Move",
				ForeignCurrencyCode: "USD",
				ForeignAmount:       decimalPtr("11"),
				SourceID:            int64Ptr(checking.ID),
				DestinationID:       int64Ptr(savings.ID),
			}}},
			doMock: func(h testServiceHelper, legs *[]models.Transaction) {
				h.expectDefaultCurrency()
				h.expectAccounts(checking, savings)
				h.expectGroupHeader(models.TransactionTypeTransfer, 50)
				h.expectJournalRows(62, legs)
			},
			check: func(t *testing.T, got *models.TransactionGroup, legs []models.Transaction) {
				require.Len(t, legs, 2)
				assert.Equal(t, usdID, *legs[0].ForeignCurrencyID)
				assert.True(t, decimal.NewFromInt(-11).Equal(*legs[0].ForeignAmount))
				assert.True(t, decimal.NewFromInt(11).Equal(*legs[1].ForeignAmount))
			},
		},
		{
			name:    "empty group",
			in:      models.StoreTransactionGroupIn{},
			wantErr: common.ErrEmptyGroup,
		},
		{
			name: "mixed transaction types",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{
				{Type: models.TransactionTypeWithdrawal, Amount: decimal.NewFromInt(1)},
				{Type: models.TransactionTypeDeposit, Amount: decimal.NewFromInt(1)},
			}},
			wantErr: common.ErrMixedGroupTypes,
		},
		{
			name: "zero amount",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{
				{Type: models.TransactionTypeWithdrawal, Amount: decimal.Zero},
			}},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name: "transaction type missing from storage",
			in: models.StoreTransactionGroupIn{Transactions: []models.StoreJournalIn{
				{Type: models.TransactionTypeDeposit, Amount: decimal.NewFromInt(1)},
			}},
			doMock: func(h testServiceHelper, legs *[]models.Transaction) {
				h.mockTrxRepository.EXPECT().GetTransactionTypeID(gomock.Any(), models.TransactionTypeDeposit).Return(int64(0), common.ErrNoRows)
			},
			wantErr: common.ErrValidation,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			var legs []models.Transaction
			if tc.doMock != nil {
				tc.doMock(h, &legs)
			}

			got, err := h.transactionGroupService.Store(context.Background(), testOwner, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, got, legs)
			}
		})
	}
}

func TestTransactionGroupService_Store_InvalidLegNamesTheSide(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectDefaultCurrency()
	h.expectAccounts(checking)
	h.expectGroupHeader(models.TransactionTypeTransfer, 50)

	_, err := h.transactionGroupService.Store(context.Background(), testOwner, models.StoreTransactionGroupIn{
		Transactions: []models.StoreJournalIn{{
			Type:          models.TransactionTypeTransfer,
			Amount:        decimal.NewFromInt(1),
			SourceID:      int64Ptr(checking.ID),
			DestinationID: int64Ptr(checking.ID),
		}},
	})

	var legErr *common.ValidationError
	require.True(t, errors.As(err, &legErr))
	assert.Equal(t, "Destination", legErr.Role)
	assert.Equal(t, 0, legErr.Leg)
	assert.Contains(t, err.Error(), "Destination invalid")
}

func TestTransactionGroupService_Store_Links(t *testing.T) {
	h := serviceTestHelper(t)
	h.expectDefaultCurrency()
	h.expectAccounts(checking, coffee)
	h.expectGroupHeader(models.TransactionTypeWithdrawal, 50)
	var legs []models.Transaction
	h.expectJournalRows(63, &legs)

	h.mockReferenceRepository.EXPECT().GetPiggyBank(gomock.Any(), testOwner, int64(7)).Return(&models.PiggyBank{ID: 7}, nil)
	h.mockTrxRepository.EXPECT().StoreJournalMeta(gomock.Any(), int64(63), models.JournalMetaPiggyBankID, "7").Return(nil)
	h.mockTrxRepository.EXPECT().StoreJournalMeta(gomock.Any(), int64(63), "external_id", "abc").Return(nil)
	h.mockReferenceRepository.EXPECT().GetBudget(gomock.Any(), testOwner, int64(3)).Return(nil, common.ErrNoRows)
	h.mockReferenceRepository.EXPECT().FindCategoryByName(gomock.Any(), testOwner, "Food").Return(nil, common.ErrNoRows)
	h.mockReferenceRepository.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) error {
			c.ID = 8
			return nil
		})
	h.mockTrxRepository.EXPECT().AttachCategory(gomock.Any(), int64(63), int64(8)).Return(nil)
	h.mockTrxRepository.EXPECT().AttachTags(gomock.Any(), testOwner, int64(63), []string{"morning"}).Return(nil)
	h.mockReferenceRepository.EXPECT().UpsertNote(gomock.Any(), models.NoteableTransactionJournal, int64(63), "double shot").Return(nil)

	got, err := h.transactionGroupService.Store(context.Background(), testOwner, models.StoreTransactionGroupIn{
		Transactions: []models.StoreJournalIn{{
			Type:          models.TransactionTypeWithdrawal,
			Date:          date("2024-01-02"),
			Amount:        decimal.NewFromInt(3),
			Description:   "Coffee",
			SourceID:      int64Ptr(checking.ID),
			DestinationID: int64Ptr(coffee.ID),
			BudgetID:      int64Ptr(3),
			CategoryName:  "Food",
			PiggyBankID:   int64Ptr(7),
			Tags:          []string{"morning"},
			Notes:         " double shot ",
			Meta:          map[string]string{"external_id": "abc"},
		}},
	})
	require.NoError(t, err)

	journal := got.Journals[0]
	assert.Nil(t, journal.BudgetID)
	require.NotNil(t, journal.CategoryID)
	assert.Equal(t, int64(8), *journal.CategoryID)
	require.NotNil(t, journal.Notes)
	assert.Equal(t, "double shot", *journal.Notes)
}

func TestTransactionGroupService_GetDelete(t *testing.T) {
	h := serviceTestHelper(t)
	h.mockTrxRepository.EXPECT().GetGroup(gomock.Any(), testOwner, int64(50)).Return(&models.TransactionGroup{ID: 50}, nil)
	h.mockTrxRepository.EXPECT().GetGroup(gomock.Any(), testOwner, int64(51)).Return(nil, common.ErrNoRows)
	h.mockTrxRepository.EXPECT().DeleteGroup(gomock.Any(), testOwner, int64(50)).Return(nil)
	h.mockTrxRepository.EXPECT().DeleteGroup(gomock.Any(), testOwner, int64(51)).Return(assert.AnError)

	got, err := h.transactionGroupService.Get(context.Background(), testOwner, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.ID)

	_, err = h.transactionGroupService.Get(context.Background(), testOwner, 51)
	assert.Error(t, err)

	assert.NoError(t, h.transactionGroupService.Delete(context.Background(), testOwner, 50))
	assert.Error(t, h.transactionGroupService.Delete(context.Background(), testOwner, 51))
}
