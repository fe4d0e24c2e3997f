package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/budhip/go-fp-ledger/internal/models"
)

func TestBalanceTestSuite(t *testing.T) {
	suite.Run(t, new(balanceTestSuite))
}

type balanceTestSuite struct {
	repoSuite
	br BalanceRepository
}

func (s *balanceTestSuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.br = s.repo.GetBalanceRepository()
}

func (s *balanceTestSuite) TestGetSums() {
	t := s.T()
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryBalanceSums)).
		WithArgs(int64(1), end, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"native", "foreign"}).AddRow("150.25", "-20"))

	got, err := s.br.GetSums(context.Background(), 1, end, 7)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150.25").Equal(got.Native))
	assert.True(t, decimal.RequireFromString("-20").Equal(got.Foreign))

	s.mock.ExpectQuery(regexp.QuoteMeta(queryBalanceSums)).WillReturnError(assert.AnError)
	_, err = s.br.GetSums(context.Background(), 1, end, 7)
	assert.ErrorIs(t, err, assert.AnError)
	s.expectationsMet(t)
}

func (s *balanceTestSuite) TestGetRangeRows() {
	t := s.T()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	query, _, err := buildBalanceRangeQuery(1, start, end)
	require.NoError(t, err)

	s.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"day", "currency_id", "foreign_currency_id", "amount", "foreign_amount"}).
			AddRow(start, 7, nil, "100", "0").
			AddRow(start.AddDate(0, 0, 3), 8, 7, "-5", "-4.5"))

	got, err := s.br.GetRangeRows(context.Background(), 1, start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].ForeignCurrencyID)
	assert.Equal(t, int64Ptr(7), got[1].ForeignCurrencyID)
	assert.True(t, decimal.RequireFromString("-4.5").Equal(got[1].Delta(7)))
	s.expectationsMet(t)
}

func (s *balanceTestSuite) TestGetRangeRows_ForeignEqualsNative() {
	t := s.T()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	query, _, err := buildBalanceRangeQuery(1, start, end)
	require.NoError(t, err)

	s.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(int64(1), start, end).
		WillReturnRows(sqlmock.NewRows([]string{"day", "currency_id", "foreign_currency_id", "amount", "foreign_amount"}).
			AddRow(start, 7, 7, "100", "90"))

	got, err := s.br.GetRangeRows(context.Background(), 1, start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64Ptr(7), got[0].ForeignCurrencyID)
	assert.True(t, decimal.NewFromInt(100).Equal(got[0].Delta(7)), "native amount is kept, got %s", got[0].Delta(7))
	s.expectationsMet(t)
}

func (s *balanceTestSuite) TestGetSums_ForeignEqualsNative() {
	t := s.T()
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	// the foreign sum only takes legs whose native currency differs, so a leg
	// in currency 7 with a foreign amount in 7 is counted once as native
	assert.Contains(t, queryBalanceSums, `t."transaction_currency_id" <> $3`)
	s.mock.ExpectQuery(regexp.QuoteMeta(queryBalanceSums)).
		WithArgs(int64(1), end, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"native", "foreign"}).AddRow("100", "0"))

	got, err := s.br.GetSums(context.Background(), 1, end, 7)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Native.Add(got.Foreign)))
	s.expectationsMet(t)
}

func (s *balanceTestSuite) TestGetPerCurrency() {
	t := s.T()
	end := time.Now()

	s.mock.ExpectQuery(regexp.QuoteMeta(queryBalancePerCurrency)).
		WithArgs(int64(1), end).
		WillReturnRows(sqlmock.NewRows([]string{"currency_id", "sum"}).
			AddRow(7, "10").
			AddRow(8, "-3"))

	got, err := s.br.GetPerCurrency(context.Background(), 1, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(8), got[1].CurrencyID)
	assert.True(t, decimal.RequireFromString("-3").Equal(got[1].Balance))
	s.expectationsMet(t)
}

func (s *balanceTestSuite) TestGetLastActivities() {
	t := s.T()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	got, err := s.br.GetLastActivities(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	query, _, err := buildLastActivityQuery([]int64{1, 2})
	require.NoError(t, err)
	s.mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "max"}).AddRow(1, date))

	got, err = s.br.GetLastActivities(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []models.LastActivity{{AccountID: 1, Date: date}}, got)
	s.expectationsMet(t)
}

func TestBuildBalanceRangeQuery(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query, args, err := buildBalanceRangeQuery(5, start, end)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(5), start, end}, args)
	assert.Contains(t, query, `t."account_id" = $1`)
	assert.Contains(t, query, `j."date" >= $2`)
	assert.Contains(t, query, `j."date" <= $3`)
	assert.Contains(t, query, `GROUP BY "day", t."transaction_currency_id", t."foreign_currency_id"`)
	assert.Contains(t, query, `t."deleted_at" IS NULL`)
}

func TestBuildLastActivityQuery(t *testing.T) {
	query, args, err := buildLastActivityQuery([]int64{3, 4})
	require.NoError(t, err)
	assert.Len(t, args, 1)
	assert.Contains(t, query, `t."account_id" = ANY($1)`)
	assert.Contains(t, query, `MAX(j."date")`)
}
