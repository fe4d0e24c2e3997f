package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
)

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(transactionTestSuite))
}

type transactionTestSuite struct {
	repoSuite
	tr TransactionRepository
}

func (s *transactionTestSuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.tr = s.repo.GetTransactionRepository()
}

func (s *transactionTestSuite) TestCreateGroupJournalAndLegs() {
	t := s.T()
	ctx := context.Background()
	now := time.Now()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionTypeGetID)).
		WithArgs("Withdrawal").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	typeID, err := s.tr.GetTransactionTypeID(ctx, models.TransactionTypeWithdrawal)
	require.NoError(t, err)
	assert.Equal(t, int64(1), typeID)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionGroupCreate)).
		WithArgs(int64(1), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(20, now))
	group := &models.TransactionGroup{UserID: 1}
	require.NoError(t, s.tr.CreateGroup(ctx, group))
	assert.Equal(t, int64(20), group.ID)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionJournalCreate)).
		WithArgs(int64(1), int64(20), int64(1), int64(7), "Groceries", date, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	journal := &models.TransactionJournal{
		UserID:             1,
		TransactionGroupID: 20,
		TransactionTypeID:  1,
		CurrencyID:         7,
		Description:        "Groceries",
		Date:               date,
	}
	require.NoError(t, s.tr.CreateJournal(ctx, journal))
	assert.Equal(t, int64(30), journal.ID)

	foreign := decimal.RequireFromString("-11")
	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionCreate)).
		WithArgs(int64(30), int64(2), int64(7), "-10", int64(8), "-11", 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(40))
	leg := &models.Transaction{
		TransactionJournalID: 30,
		AccountID:            2,
		CurrencyID:           7,
		Amount:               decimal.RequireFromString("-10"),
		ForeignCurrencyID:    int64Ptr(8),
		ForeignAmount:        &foreign,
	}
	require.NoError(t, s.tr.CreateTransaction(ctx, leg))
	assert.Equal(t, int64(40), leg.ID)
	s.expectationsMet(t)
}

func (s *transactionTestSuite) TestAttachments() {
	t := s.T()
	ctx := context.Background()

	s.mock.ExpectExec(regexp.QuoteMeta(queryJournalMetaCreate)).
		WithArgs(int64(30), models.JournalMetaRecurrenceID, "5").
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, s.tr.StoreJournalMeta(ctx, 30, models.JournalMetaRecurrenceID, "5"))

	s.mock.ExpectExec(regexp.QuoteMeta(queryJournalAttachBudget)).
		WithArgs(int64(3), int64(30)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, s.tr.AttachBudget(ctx, 30, 3))

	s.mock.ExpectExec(regexp.QuoteMeta(queryJournalAttachCategory)).
		WithArgs(int64(4), int64(30)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, s.tr.AttachCategory(ctx, 30, 4))
	s.expectationsMet(t)
}

func (s *transactionTestSuite) TestAttachTags() {
	t := s.T()
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(queryTagUpsert)).
		WithArgs(int64(1), "food").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	s.mock.ExpectExec(regexp.QuoteMeta(queryJournalAttachTag)).
		WithArgs(int64(11), int64(30)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryTagUpsert)).
		WithArgs(int64(1), "weekly").
		WillReturnError(assert.AnError)

	err := s.tr.AttachTags(ctx, 1, 30, []string{"food", "", "weekly"})
	assert.ErrorIs(t, err, assert.AnError)
	s.expectationsMet(t)
}

func (s *transactionTestSuite) TestGetGroup() {
	t := s.T()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionGroupGet)).
		WithArgs(int64(1), int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "created_at"}).AddRow(20, 1, nil, now))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionJournalsByGroup)).
		WithArgs(int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "transaction_group_id", "transaction_type_id", "type",
			"transaction_currency_id", "description", "date", "order",
			"budget_id", "category_id", "tags", "notes",
		}).AddRow(30, 1, 20, 1, "Withdrawal", 7, "Groceries", now, 0, 3, nil, "{food,weekly}", "paid cash"))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionsByJournals)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "transaction_journal_id", "account_id", "transaction_currency_id", "amount",
			"foreign_currency_id", "foreign_amount", "identifier",
		}).
			AddRow(40, 30, 2, 7, "-10", 8, "-11", 0).
			AddRow(41, 30, 3, 7, "10", 8, "11", 0))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryJournalMetaByJournals)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_journal_id", "name", "data"}).
			AddRow(30, models.JournalMetaRecurrenceID, "5"))

	got, err := s.tr.GetGroup(ctx, 1, 20)
	require.NoError(t, err)
	assert.Nil(t, got.Title)
	require.Len(t, got.Journals, 1)

	journal := got.Journals[0]
	assert.Equal(t, models.TransactionTypeWithdrawal, journal.Type)
	assert.Equal(t, int64Ptr(3), journal.BudgetID)
	assert.Nil(t, journal.CategoryID)
	assert.Equal(t, []string{"food", "weekly"}, journal.Tags)
	assert.Equal(t, stringPtr("paid cash"), journal.Notes)
	assert.Equal(t, int64Ptr(8), journal.ForeignCurrencyID)
	assert.Equal(t, map[string]string{models.JournalMetaRecurrenceID: "5"}, journal.Meta)
	require.Len(t, journal.Transactions, 2)
	assert.NoError(t, journal.CheckBalanced())
	s.expectationsMet(t)
}

func (s *transactionTestSuite) TestGetGroup_NotFound() {
	t := s.T()
	s.mock.ExpectQuery(regexp.QuoteMeta(queryTransactionGroupGet)).
		WithArgs(int64(1), int64(20)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.tr.GetGroup(context.Background(), 1, 20)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	s.expectationsMet(t)
}

func (s *transactionTestSuite) TestDeleteGroup() {
	t := s.T()

	s.Run("success", func() {
		s.mock.ExpectExec(regexp.QuoteMeta(queryTransactionGroupSoftDelete)).
			WithArgs(int64(1), int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectExec(regexp.QuoteMeta(queryTransactionsSoftDeleteByGroup)).
			WithArgs(int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		s.mock.ExpectExec(regexp.QuoteMeta(queryJournalMetaSoftDeleteByGroup)).
			WithArgs(int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		s.mock.ExpectExec(regexp.QuoteMeta(queryJournalsSoftDeleteByGroup)).
			WithArgs(int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.tr.DeleteGroup(context.Background(), 1, 20))
	})

	s.Run("other owner", func() {
		s.mock.ExpectExec(regexp.QuoteMeta(queryTransactionGroupSoftDelete)).
			WithArgs(int64(2), int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.tr.DeleteGroup(context.Background(), 2, 20), common.ErrNoRows)
	})
	s.expectationsMet(t)
}

func (s *transactionTestSuite) TestRecurrenceLookups() {
	t := s.T()
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(queryCountRecurrenceGroups)).
		WithArgs("5").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	count, err := s.tr.CountRecurrenceGroups(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceDateExists)).
		WithArgs("5", "2024-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := s.tr.RecurrenceDateExists(ctx, 5, "2024-03-01")
	assert.NoError(t, err)
	assert.True(t, exists)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryOpeningBalanceGroupByAccount)).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)
	_, err = s.tr.FindOpeningBalanceGroupID(ctx, 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	s.expectationsMet(t)
}
