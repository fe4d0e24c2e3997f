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

func TestRecurrenceTestSuite(t *testing.T) {
	suite.Run(t, new(recurrenceTestSuite))
}

type recurrenceTestSuite struct {
	repoSuite
	rr RecurrenceRepository
}

func (s *recurrenceTestSuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.rr = s.repo.GetRecurrenceRepository()
}

func (s *recurrenceTestSuite) TestCreateAndUpdate() {
	t := s.T()
	ctx := context.Background()
	first := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	in := &models.Recurrence{
		UserID:            1,
		TransactionTypeID: 1,
		Title:             "Rent",
		FirstDate:         first,
		ApplyRules:        true,
		Active:            true,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceCreate)).
		WithArgs(int64(1), int64(1), "Rent", "", first, nil, nil, 0, true, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	require.NoError(t, s.rr.Create(ctx, in))
	assert.Equal(t, int64(5), in.ID)

	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceUpdate)).
		WithArgs(int64(1), int64(5), "Rent", "", first, nil, 12, true, true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	in.Repetitions = 12
	assert.ErrorIs(t, s.rr.Update(ctx, in), common.ErrNoRowsAffected)

	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceUpdateLatestDate)).
		WithArgs(int64(5), first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.rr.UpdateLatestDate(ctx, 5, first))
	s.expectationsMet(t)
}

func (s *recurrenceTestSuite) TestGet() {
	t := s.T()
	first := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceGet)).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "transaction_type_id", "type", "title", "description",
			"first_date", "repeat_until", "latest_date", "repetitions", "apply_rules", "active", "notes",
		}).AddRow(5, 1, 1, "Withdrawal", "Rent", "", first, nil, first, 0, true, true, nil))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryRepetitionsByRecurrence)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recurrence_id", "type", "moment", "skip", "weekend"}).
			AddRow(1, 5, "monthly", "31", 0, 3))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceTransactionsByRecurrence)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "recurrence_id", "currency_id", "foreign_currency_id", "source_id",
			"destination_id", "amount", "foreign_amount", "description",
		}).AddRow(9, 5, 7, nil, 2, 3, "950", nil, "Rent"))
	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceMetaByRecurrence)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rt_id", "name", "value"}).
			AddRow(1, 9, models.RecurrenceMetaCategoryName, "Housing"))

	got, err := s.rr.Get(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeWithdrawal, got.Type)
	assert.Nil(t, got.RepeatUntil)
	assert.Equal(t, &first, got.LatestDate)
	require.Len(t, got.RepetitionRules, 1)
	assert.Equal(t, models.RepetitionMonthly, got.RepetitionRules[0].Type)
	assert.Equal(t, models.WeekendToFriday, got.RepetitionRules[0].Weekend)
	require.Len(t, got.Transactions, 1)
	assert.True(t, decimal.NewFromInt(950).Equal(got.Transactions[0].Amount))
	value, ok := got.Transactions[0].MetaValue(models.RecurrenceMetaCategoryName)
	assert.True(t, ok)
	assert.Equal(t, "Housing", value)
	s.expectationsMet(t)
}

func (s *recurrenceTestSuite) TestGet_NotFound() {
	t := s.T()
	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceGet)).
		WithArgs(int64(1), int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.rr.Get(context.Background(), 1, 5)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	s.expectationsMet(t)
}

func (s *recurrenceTestSuite) TestLock() {
	t := s.T()
	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceLock)).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	require.NoError(t, s.rr.Lock(context.Background(), 1, 5))

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceLock)).
		WithArgs(int64(1), int64(6)).
		WillReturnError(sql.ErrNoRows)

	assert.ErrorIs(t, s.rr.Lock(context.Background(), 1, 6), sql.ErrNoRows)
	s.expectationsMet(t)
}

func (s *recurrenceTestSuite) TestDelete() {
	t := s.T()
	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceSoftDelete)).
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.rr.Delete(context.Background(), 1, 5))

	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceSoftDelete)).
		WithArgs(int64(2), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.rr.Delete(context.Background(), 2, 5), common.ErrNoRows)
	s.expectationsMet(t)
}

func (s *recurrenceTestSuite) TestListDue() {
	t := s.T()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceListDue)).
		WithArgs(date, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(5, 1).AddRow(6, 2))

	got, err := s.rr.ListDue(context.Background(), date, 50)
	require.NoError(t, err)
	assert.Equal(t, []models.RecurrenceRef{{ID: 5, UserID: 1}, {ID: 6, UserID: 2}}, got)
	s.expectationsMet(t)
}

func (s *recurrenceTestSuite) TestChildren() {
	t := s.T()
	ctx := context.Background()

	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceMetaDeleteByRecurrence)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceTransactionsDelete)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec(regexp.QuoteMeta(queryRepetitionsDelete)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.rr.DeleteMetaByRecurrence(ctx, 5))
	require.NoError(t, s.rr.DeleteTransactions(ctx, 5))
	require.NoError(t, s.rr.DeleteRepetitions(ctx, 5))

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRepetitionCreate)).
		WithArgs(int64(5), "weekly", "1", 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	rep := &models.RecurrenceRepetition{RecurrenceID: 5, Type: models.RepetitionWeekly, Moment: "1", Skip: 1, Weekend: models.WeekendSkip}
	require.NoError(t, s.rr.CreateRepetition(ctx, rep))
	assert.Equal(t, int64(11), rep.ID)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryRecurrenceTransactionCreate)).
		WithArgs(int64(5), int64(7), nil, int64(2), int64(3), "950", nil, "Rent").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	rt := &models.RecurrenceTransaction{
		RecurrenceID:  5,
		CurrencyID:    7,
		SourceID:      2,
		DestinationID: 3,
		Amount:        decimal.NewFromInt(950),
		Description:   "Rent",
	}
	require.NoError(t, s.rr.CreateTransaction(ctx, rt))
	assert.Equal(t, int64(12), rt.ID)

	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceMetaUpsert)).
		WithArgs(int64(12), models.RecurrenceMetaTags, `["rent"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectExec(regexp.QuoteMeta(queryRecurrenceMetaDelete)).
		WithArgs(int64(12), models.RecurrenceMetaBudgetID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.rr.UpsertTransactionMeta(ctx, 12, models.RecurrenceMetaTags, `["rent"]`))
	require.NoError(t, s.rr.DeleteTransactionMeta(ctx, 12, models.RecurrenceMetaBudgetID))
	s.expectationsMet(t)
}
