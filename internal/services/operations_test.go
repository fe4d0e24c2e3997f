package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
)

func journalRow(id int64, cur *models.Currency, amount string) models.JournalRow {
	return models.JournalRow{
		TransactionJournalID:  id,
		TransactionGroupID:    id,
		Date:                  date("2024-01-10"),
		CurrencyID:            cur.ID,
		CurrencyCode:          cur.Code,
		CurrencySymbol:        cur.Symbol,
		CurrencyDecimalPlaces: cur.DecimalPlaces,
		Amount:                decimal.RequireFromString(amount),
		SourceAccountID:       checking.ID,
		DestinationAccountID:  coffee.ID,
	}
}

func TestOperationsService_SumExpenses(t *testing.T) {
	start, end := date("2024-01-01"), date("2024-01-31")

	tests := []struct {
		name       string
		currencyID *int64
		doMock     func(h testServiceHelper)
		want       map[int64]string
		wantErr    bool
	}{
		{
			name:       "journal found by both passes is counted once",
			currencyID: int64Ptr(eurID),
			doMock: func(h testServiceHelper) {
				gomock.InOrder(
					h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, f models.JournalFilter) ([]models.JournalRow, error) {
							assert.Equal(t, int64Ptr(eurID), f.CurrencyID)
							assert.Nil(t, f.ForeignCurrencyID)
							assert.Equal(t, []int64{checking.ID}, f.SourceAccounts)
							assert.Nil(t, f.DestinationAccounts)
							assert.Equal(t, []models.TransactionType{models.TransactionTypeWithdrawal}, f.Types)
							assert.Equal(t, start, f.Start)
							assert.Equal(t, common.EndOfDay(end), f.End)
							return []models.JournalRow{journalRow(1, eur, "-10"), journalRow(2, eur, "-8")}, nil
						}),
					h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, f models.JournalFilter) ([]models.JournalRow, error) {
							assert.Nil(t, f.CurrencyID)
							assert.Equal(t, int64Ptr(eurID), f.ForeignCurrencyID)
							return []models.JournalRow{journalRow(2, eur, "-8")}, nil
						}),
				)
			},
			want: map[int64]string{eurID: "-18"},
		},
		{
			name:       "foreign pass row wins on collision",
			currencyID: int64Ptr(eurID),
			doMock: func(h testServiceHelper) {
				plain := journalRow(5, usd, "-3")
				withForeign := plain
				withForeign.ForeignCurrencyID = int64Ptr(eurID)
				withForeign.ForeignCurrencyCode = "EUR"
				withForeign.ForeignAmount = decimalPtr("-2.70")

				gomock.InOrder(
					h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
						Return([]models.JournalRow{plain}, nil),
					h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
						Return([]models.JournalRow{withForeign}, nil),
				)
			},
			want: map[int64]string{usdID: "-3", eurID: "-2.70"},
		},
		{
			name: "without a currency only the native pass runs",
			doMock: func(h testServiceHelper) {
				h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
					Return([]models.JournalRow{journalRow(1, eur, "4"), journalRow(2, usd, "-6")}, nil).Times(1)
			},
			want: map[int64]string{eurID: "-4", usdID: "-6"},
		},
		{
			name:       "foreign pass fails",
			currencyID: int64Ptr(eurID),
			doMock: func(h testServiceHelper) {
				gomock.InOrder(
					h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).Return(nil, nil),
					h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).Return(nil, assert.AnError),
				)
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tc.doMock(h)

			got, err := h.operationsService.SumExpenses(context.Background(), testOwner, start, end, []int64{checking.ID}, nil, tc.currencyID)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for curID, want := range tc.want {
				require.Contains(t, got, curID)
				assert.True(t, decimal.RequireFromString(want).Equal(got[curID].Sum), "currency %d: want %s got %s", curID, want, got[curID].Sum)
			}
		})
	}
}

func TestOperationsService_SumIncomeAndTransfers(t *testing.T) {
	h := serviceTestHelper(t)
	start, end := date("2024-01-01"), date("2024-01-31")
	employer := int64(60)

	h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.JournalFilter) ([]models.JournalRow, error) {
			assert.Equal(t, []models.TransactionType{models.TransactionTypeDeposit}, f.Types)
			assert.Equal(t, []int64{employer}, f.SourceAccounts)
			assert.Equal(t, []int64{checking.ID}, f.DestinationAccounts)
			return []models.JournalRow{journalRow(1, eur, "-2500")}, nil
		})
	income, err := h.operationsService.SumIncome(context.Background(), testOwner, start, end, []int64{checking.ID}, []int64{employer}, nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2500).Equal(income[eurID].Sum))

	h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.JournalFilter) ([]models.JournalRow, error) {
			assert.Equal(t, []models.TransactionType{models.TransactionTypeTransfer}, f.Types)
			assert.Equal(t, []int64{checking.ID, savings.ID}, f.EitherAccounts)
			return []models.JournalRow{journalRow(3, eur, "-100")}, nil
		})
	transfers, err := h.operationsService.SumTransfers(context.Background(), testOwner, start, end, []int64{checking.ID, savings.ID}, nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(transfers[eurID].Sum))
}

func TestOperationsService_ListExpenses(t *testing.T) {
	h := serviceTestHelper(t)
	start, end := date("2024-01-01"), date("2024-01-31")

	h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.JournalFilter) ([]models.JournalRow, error) {
			assert.Nil(t, f.EitherAccounts)
			assert.Nil(t, f.CurrencyID)
			return []models.JournalRow{journalRow(1, eur, "12.5"), journalRow(2, usd, "-3")}, nil
		})

	got, err := h.operationsService.ListExpenses(context.Background(), testOwner, start, end, []int64{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, decimal.RequireFromString("-12.5").Equal(got[eurID].TransactionJournals[1].Amount))
	assert.True(t, decimal.NewFromInt(-3).Equal(got[usdID].TransactionJournals[2].Amount))
	assert.Equal(t, "EUR", got[eurID].CurrencyCode)
}

func TestOperationsService_ListIncome(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(h testServiceHelper)
		want    string
		wantErr bool
	}{
		{
			name: "amounts are reported positive",
			doMock: func(h testServiceHelper) {
				h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).
					Return([]models.JournalRow{journalRow(7, eur, "-40")}, nil)
			},
			want: "40",
		},
		{
			name: "query fails",
			doMock: func(h testServiceHelper) {
				h.mockOperationsRepository.EXPECT().ListJournals(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tc.doMock(h)

			got, err := h.operationsService.ListIncome(context.Background(), testOwner, date("2024-01-01"), date("2024-01-31"), []int64{checking.ID})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got[eurID].TransactionJournals[7].Amount))
		})
	}
}
