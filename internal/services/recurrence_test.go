package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
)

func monthlyRent() *models.Recurrence {
	return &models.Recurrence{
		ID:          70,
		UserID:      testOwner,
		Type:        models.TransactionTypeTransfer,
		Title:       "Rent",
		FirstDate:   date("2024-01-01"),
		Active:      true,
		Repetitions: 0,
		RepetitionRules: []models.RecurrenceRepetition{
			{ID: 1, RecurrenceID: 70, Type: models.RepetitionMonthly, Moment: "1", Weekend: models.WeekendAsIs},
		},
		Transactions: []models.RecurrenceTransaction{{
			ID:            80,
			RecurrenceID:  70,
			CurrencyID:    eurID,
			SourceID:      checking.ID,
			DestinationID: savings.ID,
			Amount:        decimal.NewFromInt(100),
			Meta: []models.RecurrenceTransactionMeta{
				{Name: models.RecurrenceMetaCategoryName, Value: "Housing"},
				{Name: models.RecurrenceMetaTags, Value: `["rent"]`},
			},
		}},
	}
}

// expectMaterialized registers a successful materialization of rec on day.
func (h testServiceHelper) expectMaterialized(rec *models.Recurrence, day time.Time, count int) {
	h.expectMaterializedLegs(rec, day, count, nil)
}

// expectMaterializedLegs is expectMaterialized that copies every stored leg
// into legs when it is not nil. It returns the UpdateLatestDate call.
func (h testServiceHelper) expectMaterializedLegs(rec *models.Recurrence, day time.Time, count int, legs *[]models.Transaction) *gomock.Call {
	h.expectDefaultCurrency()
	h.expectAccounts(checking, savings)
	h.mockRecurrenceRepository.EXPECT().Lock(gomock.Any(), testOwner, rec.ID).Return(nil)
	h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, rec.ID).Return(rec, nil)
	h.mockTrxRepository.EXPECT().RecurrenceDateExists(gomock.Any(), rec.ID, common.FormatDate(day)).Return(false, nil)
	h.mockTrxRepository.EXPECT().CountRecurrenceGroups(gomock.Any(), rec.ID).Return(count, nil)
	h.mockTrxRepository.EXPECT().GetTransactionTypeID(gomock.Any(), rec.Type).Return(int64(3), nil)
	h.mockTrxRepository.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.TransactionGroup) error {
			g.ID = 90
			return nil
		})
	h.mockTrxRepository.EXPECT().CreateJournal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j *models.TransactionJournal) error {
			j.ID = 91
			return nil
		})
	h.mockTrxRepository.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, leg *models.Transaction) error {
			if legs != nil {
				*legs = append(*legs, *leg)
			}
			return nil
		}).Times(2)
	h.mockTrxRepository.EXPECT().StoreJournalMeta(gomock.Any(), int64(91), models.JournalMetaRecurrenceID, "70").Return(nil)
	h.mockTrxRepository.EXPECT().StoreJournalMeta(gomock.Any(), int64(91), models.JournalMetaRecurrenceDate, common.FormatDate(day)).Return(nil)
	h.mockReferenceRepository.EXPECT().FindCategoryByName(gomock.Any(), testOwner, "Housing").Return(&models.Category{ID: 9, Name: "Housing"}, nil)
	h.mockTrxRepository.EXPECT().AttachCategory(gomock.Any(), int64(91), int64(9)).Return(nil)
	h.mockTrxRepository.EXPECT().AttachTags(gomock.Any(), testOwner, int64(91), []string{"rent"}).Return(nil)
	return h.mockRecurrenceRepository.EXPECT().UpdateLatestDate(gomock.Any(), rec.ID, day).Return(nil)
}

func TestRecurrenceService_Store(t *testing.T) {
	validIn := func() models.StoreRecurrenceIn {
		return models.StoreRecurrenceIn{
			Type:      models.TransactionTypeTransfer,
			Title:     "Rent",
			FirstDate: date("2024-01-01"),
			Active:    true,
			Rules:     []models.RecurrenceRepetitionIn{{Type: models.RepetitionMonthly, Moment: "1"}},
			Transactions: []models.RecurrenceTransactionIn{{
				Amount:        decimal.NewFromInt(100),
				SourceID:      int64Ptr(checking.ID),
				DestinationID: int64Ptr(savings.ID),
				Description:   "Monthly rent",
				BudgetID:      int64Ptr(3),
				CategoryName:  "Housing",
				PiggyBankID:   int64Ptr(4),
				Tags:          []string{"rent"},
			}},
		}
	}

	tests := []struct {
		name    string
		in      func() models.StoreRecurrenceIn
		doMock  func(h testServiceHelper)
		check   func(t *testing.T, got *models.Recurrence)
		wantErr error
	}{
		{
			name: "monthly transfer",
			in:   validIn,
			doMock: func(h testServiceHelper) {
				h.expectDefaultCurrency()
				h.expectAccounts(checking, savings)
				h.mockTrxRepository.EXPECT().GetTransactionTypeID(gomock.Any(), models.TransactionTypeTransfer).Return(int64(3), nil)
				h.mockRecurrenceRepository.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *models.Recurrence) error {
						rec.ID = 70
						return nil
					})
				h.mockRecurrenceRepository.EXPECT().CreateRepetition(gomock.Any(), gomock.Any()).Return(nil)
				h.mockRecurrenceRepository.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rt *models.RecurrenceTransaction) error {
						rt.ID = 80
						return nil
					})
				h.mockReferenceRepository.EXPECT().GetBudget(gomock.Any(), testOwner, int64(3)).Return(&models.Budget{ID: 3}, nil)
				h.mockReferenceRepository.EXPECT().FindCategoryByName(gomock.Any(), testOwner, "Housing").Return(&models.Category{ID: 9, Name: "Housing"}, nil)
				h.mockReferenceRepository.EXPECT().GetPiggyBank(gomock.Any(), testOwner, int64(4)).Return(nil, common.ErrNoRows)
				h.mockRecurrenceRepository.EXPECT().UpsertTransactionMeta(gomock.Any(), int64(80), models.RecurrenceMetaBudgetID, "3").Return(nil)
				h.mockRecurrenceRepository.EXPECT().UpsertTransactionMeta(gomock.Any(), int64(80), models.RecurrenceMetaCategoryName, "Housing").Return(nil)
				h.mockRecurrenceRepository.EXPECT().UpsertTransactionMeta(gomock.Any(), int64(80), models.RecurrenceMetaTags, `["rent"]`).Return(nil)
				h.mockReferenceRepository.EXPECT().DeleteNote(gomock.Any(), models.NoteableRecurrence, int64(70)).Return(nil)
			},
			check: func(t *testing.T, got *models.Recurrence) {
				assert.Equal(t, int64(70), got.ID)
				require.Len(t, got.RepetitionRules, 1)
				assert.Equal(t, models.WeekendAsIs, got.RepetitionRules[0].Weekend)
				require.Len(t, got.Transactions, 1)
				rt := got.Transactions[0]
				assert.Equal(t, eurID, rt.CurrencyID)
				_, hasPiggy := rt.MetaValue(models.RecurrenceMetaPiggyBankID)
				assert.False(t, hasPiggy)
				tags, _ := rt.MetaValue(models.RecurrenceMetaTags)
				assert.Equal(t, `["rent"]`, tags)
			},
		},
		{
			name: "invalid moment",
			in: func() models.StoreRecurrenceIn {
				in := validIn()
				in.Rules[0].Moment = "32"
				return in
			},
			wantErr: common.ErrInvalidRepetition,
		},
		{
			name: "no transactions",
			in: func() models.StoreRecurrenceIn {
				in := validIn()
				in.Transactions = nil
				return in
			},
			wantErr: common.ErrValidation,
		},
		{
			name: "transfer to the same account",
			in: func() models.StoreRecurrenceIn {
				in := validIn()
				in.Transactions[0].DestinationID = int64Ptr(checking.ID)
				return in
			},
			doMock: func(h testServiceHelper) {
				h.expectDefaultCurrency()
				h.expectAccounts(checking)
				h.mockTrxRepository.EXPECT().GetTransactionTypeID(gomock.Any(), models.TransactionTypeTransfer).Return(int64(3), nil)
				h.mockRecurrenceRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				h.mockRecurrenceRepository.EXPECT().CreateRepetition(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: common.ErrInvalidLeg,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			if tc.doMock != nil {
				tc.doMock(h)
			}

			got, err := h.recurrenceService.Store(context.Background(), testOwner, tc.in())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestRecurrenceService_Update(t *testing.T) {
	tests := []struct {
		name    string
		in      models.UpdateRecurrenceIn
		doMock  func(h testServiceHelper)
		check   func(t *testing.T, got *models.Recurrence)
		wantErr bool
	}{
		{
			name: "title and rules are replaced",
			in: models.UpdateRecurrenceIn{
				Title: func() *string { s := "Rent v2"; return &s }(),
				Rules: []models.RecurrenceRepetitionIn{{Type: models.RepetitionWeekly, Moment: "5", Weekend: models.WeekendToMonday}},
				Notes: func() *string { s := "new lease"; return &s }(),
			},
			doMock: func(h testServiceHelper) {
				h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(monthlyRent(), nil)
				h.mockRecurrenceRepository.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *models.Recurrence) error {
						assert.Equal(t, "Rent v2", rec.Title)
						return nil
					})
				h.mockRecurrenceRepository.EXPECT().DeleteRepetitions(gomock.Any(), int64(70)).Return(nil)
				h.mockRecurrenceRepository.EXPECT().CreateRepetition(gomock.Any(), gomock.Any()).Return(nil)
				h.mockReferenceRepository.EXPECT().UpsertNote(gomock.Any(), models.NoteableRecurrence, int64(70), "new lease").Return(nil)
			},
			check: func(t *testing.T, got *models.Recurrence) {
				require.Len(t, got.RepetitionRules, 1)
				assert.Equal(t, models.RepetitionWeekly, got.RepetitionRules[0].Type)
				require.Len(t, got.Transactions, 1)
				require.NotNil(t, got.Notes)
				assert.Equal(t, "new lease", *got.Notes)
			},
		},
		{
			name: "end date is cleared",
			in:   models.UpdateRecurrenceIn{ClearRepeatUntil: true},
			doMock: func(h testServiceHelper) {
				rec := monthlyRent()
				until := date("2024-06-01")
				rec.RepeatUntil = &until
				h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(rec, nil)
				h.mockRecurrenceRepository.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *models.Recurrence) error {
						assert.Nil(t, rec.RepeatUntil)
						return nil
					})
			},
			check: func(t *testing.T, got *models.Recurrence) {
				assert.Nil(t, got.RepeatUntil)
			},
		},
		{
			name: "not found",
			doMock: func(h testServiceHelper) {
				h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(nil, common.ErrNoRows)
			},
			wantErr: true,
		},
		{
			name: "invalid replacement rule",
			in: models.UpdateRecurrenceIn{
				Rules: []models.RecurrenceRepetitionIn{{Type: models.RepetitionNdom, Moment: "6,1"}},
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			if tc.doMock != nil {
				tc.doMock(h)
			}

			got, err := h.recurrenceService.Update(context.Background(), testOwner, 70, tc.in)
			assert.Equal(t, tc.wantErr, err != nil)
			if tc.check != nil {
				tc.check(t, got)
			}
		})
	}
}

func TestRecurrenceService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(h testServiceHelper)
		wantErr bool
	}{
		{
			name: "dependent cleanup failures do not block the delete",
			doMock: func(h testServiceHelper) {
				h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(monthlyRent(), nil)
				h.mockRecurrenceRepository.EXPECT().DeleteMetaByRecurrence(gomock.Any(), int64(70)).Return(assert.AnError)
				h.mockRecurrenceRepository.EXPECT().DeleteTransactions(gomock.Any(), int64(70)).Return(nil)
				h.mockRecurrenceRepository.EXPECT().DeleteRepetitions(gomock.Any(), int64(70)).Return(nil)
				h.mockReferenceRepository.EXPECT().DeleteNote(gomock.Any(), models.NoteableRecurrence, int64(70)).Return(nil)
				h.mockRecurrenceRepository.EXPECT().Delete(gomock.Any(), testOwner, int64(70)).Return(nil)
			},
		},
		{
			name: "recurrence of another owner",
			doMock: func(h testServiceHelper) {
				h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(nil, common.ErrNoRows)
			},
			wantErr: true,
		},
		{
			name: "delete fails",
			doMock: func(h testServiceHelper) {
				h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(monthlyRent(), nil)
				h.mockRecurrenceRepository.EXPECT().DeleteMetaByRecurrence(gomock.Any(), int64(70)).Return(nil)
				h.mockRecurrenceRepository.EXPECT().DeleteTransactions(gomock.Any(), int64(70)).Return(nil)
				h.mockRecurrenceRepository.EXPECT().DeleteRepetitions(gomock.Any(), int64(70)).Return(nil)
				h.mockReferenceRepository.EXPECT().DeleteNote(gomock.Any(), models.NoteableRecurrence, int64(70)).Return(nil)
				h.mockRecurrenceRepository.EXPECT().Delete(gomock.Any(), testOwner, int64(70)).Return(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tc.doMock(h)

			err := h.recurrenceService.Delete(context.Background(), testOwner, 70)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestRecurrenceService_Materialize(t *testing.T) {
	day := date("2024-02-01")

	h := serviceTestHelper(t)
	h.expectMaterialized(monthlyRent(), day, 1)

	got, err := h.recurrenceService.Materialize(context.Background(), testOwner, 70, day)
	require.NoError(t, err)
	require.Len(t, got.Journals, 1)

	journal := got.Journals[0]
	require.NotNil(t, got.Title)
	assert.Equal(t, "Rent", *got.Title)
	assert.Equal(t, "Rent", journal.Description)
	assert.Equal(t, day, journal.Date)
	assert.Equal(t, "70", journal.Meta[models.JournalMetaRecurrenceID])
	assert.Equal(t, "2024-02-01", journal.Meta[models.JournalMetaRecurrenceDate])
	assert.Equal(t, []string{"rent"}, journal.Tags)
}

func TestRecurrenceService_Materialize_MonthlyRun(t *testing.T) {
	march, april := date("2024-03-01"), date("2024-04-01")
	rec := monthlyRent()
	rec.Transactions[0].Amount = decimal.NewFromInt(50)

	h := serviceTestHelper(t)
	var marchLegs, aprilLegs []models.Transaction
	gomock.InOrder(
		h.expectMaterializedLegs(rec, march, 0, &marchLegs),
		h.expectMaterializedLegs(rec, april, 1, &aprilLegs),
	)
	h.mockRecurrenceRepository.EXPECT().Lock(gomock.Any(), testOwner, rec.ID).Return(nil)
	h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, rec.ID).Return(rec, nil)
	h.mockTrxRepository.EXPECT().RecurrenceDateExists(gomock.Any(), rec.ID, "2024-03-01").Return(true, nil)

	for _, day := range []time.Time{march, april} {
		got, err := h.recurrenceService.Materialize(context.Background(), testOwner, rec.ID, day)
		require.NoError(t, err)
		require.Len(t, got.Journals, 1)
		assert.Equal(t, day, got.Journals[0].Date)
		assert.Equal(t, common.FormatDate(day), got.Journals[0].Meta[models.JournalMetaRecurrenceDate])
	}

	for _, legs := range [][]models.Transaction{marchLegs, aprilLegs} {
		require.Len(t, legs, 2)
		sum := legs[0].Amount.Add(legs[1].Amount)
		assert.True(t, sum.IsZero(), "legs sum to %s", sum)
		assert.True(t, legs[0].Amount.Abs().Equal(decimal.NewFromInt(50)))
	}

	_, err := h.recurrenceService.Materialize(context.Background(), testOwner, rec.ID, march)
	assert.ErrorIs(t, err, common.ErrAlreadyMaterialized)
}

func TestRecurrenceService_Materialize_LockFails(t *testing.T) {
	h := serviceTestHelper(t)
	h.mockRecurrenceRepository.EXPECT().Lock(gomock.Any(), testOwner, int64(70)).Return(assert.AnError)

	_, err := h.recurrenceService.Materialize(context.Background(), testOwner, 70, date("2024-02-01"))
	var detail models.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, models.MapErrors[models.ErrKeyDatabaseError].Code, detail.Code)
}

func TestRecurrenceService_Materialize_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		day     time.Time
		rec     func() *models.Recurrence
		exists  bool
		count   int
		wantErr error
	}{
		{name: "not an occurrence", day: date("2024-02-02"), rec: monthlyRent, wantErr: common.ErrNotAnOccurrence},
		{name: "before the first date", day: date("2023-12-01"), rec: monthlyRent, wantErr: common.ErrNotAnOccurrence},
		{name: "already materialized", day: date("2024-02-01"), rec: monthlyRent, exists: true, wantErr: common.ErrAlreadyMaterialized},
		{
			name: "repetition limit reached",
			day:  date("2024-03-01"),
			rec: func() *models.Recurrence {
				rec := monthlyRent()
				rec.Repetitions = 2
				return rec
			},
			count:   2,
			wantErr: common.ErrNotAnOccurrence,
		},
		{
			name: "inactive",
			day:  date("2024-02-01"),
			rec: func() *models.Recurrence {
				rec := monthlyRent()
				rec.Active = false
				return rec
			},
			wantErr: common.ErrRecurrenceInactive,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			h.mockRecurrenceRepository.EXPECT().Lock(gomock.Any(), testOwner, int64(70)).Return(nil)
			h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(70)).Return(tc.rec(), nil)
			h.mockTrxRepository.EXPECT().RecurrenceDateExists(gomock.Any(), int64(70), common.FormatDate(tc.day)).Return(tc.exists, nil)
			h.mockTrxRepository.EXPECT().CountRecurrenceGroups(gomock.Any(), int64(70)).Return(tc.count, nil).AnyTimes()

			_, err := h.recurrenceService.Materialize(context.Background(), testOwner, 70, tc.day)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRecurrenceService_MaterializeDue(t *testing.T) {
	day := date("2024-02-01")
	lockKey := "lock:materialize-recurrences:2024-02-01"

	t.Run("created, skipped and failed are counted", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.mockCacheRepository.EXPECT().SetIfNotExists(gomock.Any(), lockKey, gomock.Any(), time.Minute).Return(true, nil)
		h.mockCacheRepository.EXPECT().Del(gomock.Any(), lockKey).Return(nil)
		h.mockRecurrenceRepository.EXPECT().ListDue(gomock.Any(), day, 10).Return([]models.RecurrenceRef{
			{ID: 70, UserID: testOwner},
			{ID: 71, UserID: testOwner},
			{ID: 72, UserID: testOwner},
		}, nil)

		h.expectMaterialized(monthlyRent(), day, 0)

		inactive := monthlyRent()
		inactive.ID, inactive.Active = 71, false
		h.mockRecurrenceRepository.EXPECT().Lock(gomock.Any(), testOwner, int64(71)).Return(nil)
		h.mockRecurrenceRepository.EXPECT().Get(gomock.Any(), testOwner, int64(71)).Return(inactive, nil)
		h.mockTrxRepository.EXPECT().RecurrenceDateExists(gomock.Any(), int64(71), "2024-02-01").Return(false, nil)
		h.mockTrxRepository.EXPECT().CountRecurrenceGroups(gomock.Any(), int64(71)).Return(0, nil)

		h.mockRecurrenceRepository.EXPECT().Lock(gomock.Any(), testOwner, int64(72)).Return(assert.AnError).MinTimes(1)

		got, err := h.recurrenceService.MaterializeDue(context.Background(), day)
		require.NoError(t, err)
		assert.Equal(t, models.MaterializeResult{
			Date:      "2024-02-01",
			Due:       3,
			Created:   1,
			Skipped:   1,
			Failed:    1,
			FailedIDs: []int64{72},
		}, got)
	})

	t.Run("concurrent run holds the lock", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.mockCacheRepository.EXPECT().SetIfNotExists(gomock.Any(), lockKey, gomock.Any(), time.Minute).Return(false, nil)

		got, err := h.recurrenceService.MaterializeDue(context.Background(), day)
		require.NoError(t, err)
		assert.Equal(t, models.MaterializeResult{Date: "2024-02-01"}, got)
	})

	t.Run("listing fails", func(t *testing.T) {
		h := serviceTestHelper(t)
		h.mockCacheRepository.EXPECT().SetIfNotExists(gomock.Any(), lockKey, gomock.Any(), time.Minute).Return(true, nil)
		h.mockCacheRepository.EXPECT().Del(gomock.Any(), lockKey).Return(assert.AnError)
		h.mockRecurrenceRepository.EXPECT().ListDue(gomock.Any(), day, 10).Return(nil, assert.AnError)

		_, err := h.recurrenceService.MaterializeDue(context.Background(), day)
		assert.Error(t, err)
	})
}

func TestRecurrenceService_ListDue(t *testing.T) {
	h := serviceTestHelper(t)
	day := date("2024-02-01")
	refs := []models.RecurrenceRef{{ID: 70, UserID: testOwner}}

	h.mockRecurrenceRepository.EXPECT().ListDue(gomock.Any(), day, gomock.Any()).Return(refs, nil)
	got, err := h.recurrenceService.ListDue(context.Background(), day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, refs, got)

	h.mockRecurrenceRepository.EXPECT().ListDue(gomock.Any(), day, gomock.Any()).Return(nil, assert.AnError)
	_, err = h.recurrenceService.ListDue(context.Background(), day)
	assert.Error(t, err)
}
