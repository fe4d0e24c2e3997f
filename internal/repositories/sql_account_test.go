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
	"github.com/stretchr/testify/suite"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/models"
)

var accountRowColumns = []string{
	"id", "user_id", "account_type_id", "type", "name", "virtual_balance",
	"iban", "active", "order", "currency_id", "created_at", "updated_at",
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(accountTestSuite))
}

type accountTestSuite struct {
	repoSuite
	ar AccountRepository
}

func (s *accountTestSuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.ar = s.repo.GetAccountRepository()
}

func (s *accountTestSuite) TestGetByID() {
	t := s.T()
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	type args struct {
		userID int64
		id     int64
	}
	testCases := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    *models.Account
		wantErr error
	}{
		{
			name: "success with currency and virtual balance",
			args: args{userID: 1, id: 10},
			doMock: func(args args) {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
					WithArgs(args.userID, args.id).
					WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(
						10, 1, 3, "Asset account", "Checking", "12.50",
						"NL02ABNA0123456789", true, 2, 7, now, now,
					))
			},
			want: &models.Account{
				ID:             10,
				UserID:         1,
				AccountTypeID:  3,
				AccountType:    accounttype.Asset,
				Name:           "Checking",
				VirtualBalance: decimalPtr("12.50"),
				IBAN:           stringPtr("NL02ABNA0123456789"),
				Active:         true,
				Order:          2,
				CurrencyID:     int64Ptr(7),
				CreatedAt:      now,
				UpdatedAt:      now,
			},
		},
		{
			name: "success without optional columns",
			args: args{userID: 1, id: 11},
			doMock: func(args args) {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
					WithArgs(args.userID, args.id).
					WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(
						11, 1, 4, "Expense account", "Groceries", nil,
						nil, true, 0, nil, now, now,
					))
			},
			want: &models.Account{
				ID:            11,
				UserID:        1,
				AccountTypeID: 4,
				AccountType:   accounttype.Expense,
				Name:          "Groceries",
				Active:        true,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		{
			name: "not found",
			args: args{userID: 1, id: 12},
			doMock: func(args args) {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
					WithArgs(args.userID, args.id).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrNoRows,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock(tc.args)

			got, err := s.ar.GetByID(context.Background(), tc.args.userID, tc.args.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.want.VirtualBalanceOrZero().Equal(got.VirtualBalanceOrZero()))
			got.VirtualBalance, tc.want.VirtualBalance = nil, nil
			assert.Equal(t, tc.want, got)
		})
	}
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestFindByName() {
	t := s.T()
	now := time.Now()
	types := []accounttype.AccountType{accounttype.Expense, accounttype.Cash}

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountFindByName)).
		WithArgs(int64(1), "Shop", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(
			5, 1, 4, "Expense account", "Shop", nil, nil, true, 0, nil, now, now,
		))

	got, err := s.ar.FindByName(context.Background(), 1, "Shop", types)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, accounttype.Expense, got.AccountType)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountFindByName)).
		WithArgs(int64(1), "Nope", sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err = s.ar.FindByName(context.Background(), 1, "Nope", types)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestList() {
	t := s.T()
	now := time.Now()

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountListByTypes)).
		WithArgs(int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(1, 1, 3, "Asset account", "A", nil, nil, true, 1, 7, now, now).
			AddRow(2, 1, 3, "Asset account", "B", nil, nil, true, 2, 7, now, now))

	got, err := s.ar.List(context.Background(), 1, []accounttype.AccountType{accounttype.Asset})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Name)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountListByTypes)).WillReturnError(assert.AnError)
	_, err = s.ar.List(context.Background(), 1, nil)
	assert.Error(t, err)
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestCreate() {
	t := s.T()
	now := time.Now()
	virtual := decimal.RequireFromString("0")
	in := &models.Account{
		UserID:         1,
		AccountTypeID:  4,
		Name:           "Shop",
		VirtualBalance: &virtual,
		Active:         true,
		Order:          0,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountCreate)).
		WithArgs(int64(1), int64(4), "Shop", sqlmock.AnyArg(), nil, true, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(99, now, now))

	err := s.ar.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, int64(99), in.ID)
	assert.Equal(t, now, in.CreatedAt)
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestMaxOrder() {
	t := s.T()
	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountMaxOrder)).
		WithArgs(int64(1), sqlmock.AnyArg(), models.DefaultAccountOrder).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(4))

	got, err := s.ar.MaxOrder(context.Background(), 1, []accounttype.AccountType{accounttype.Asset})
	assert.NoError(t, err)
	assert.Equal(t, 4, got)
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestUpdateOrder() {
	t := s.T()
	testCases := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "success",
			doMock: func() {
				s.mock.ExpectExec(regexp.QuoteMeta(queryAccountUpdateOrder)).
					WithArgs(int64(1), 3).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no rows affected",
			doMock: func() {
				s.mock.ExpectExec(regexp.QuoteMeta(queryAccountUpdateOrder)).
					WithArgs(int64(1), 3).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: common.ErrNoRowsAffected,
		},
		{
			name: "exec error",
			doMock: func() {
				s.mock.ExpectExec(regexp.QuoteMeta(queryAccountUpdateOrder)).
					WithArgs(int64(1), 3).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.doMock()
			err := s.ar.UpdateOrder(context.Background(), 1, 3)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestMeta() {
	t := s.T()
	ctx := context.Background()

	s.mock.ExpectExec(regexp.QuoteMeta(queryAccountMetaUpsert)).
		WithArgs(int64(1), models.AccountMetaAccountRole, "defaultAsset").
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, s.ar.StoreMeta(ctx, 1, models.AccountMetaAccountRole, "defaultAsset"))

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountMetaGet)).
		WithArgs(int64(1), models.AccountMetaAccountRole).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow("defaultAsset"))
	data, err := s.ar.GetMeta(ctx, 1, models.AccountMetaAccountRole)
	assert.NoError(t, err)
	assert.Equal(t, "defaultAsset", data)

	s.mock.ExpectExec(regexp.QuoteMeta(queryAccountMetaDelete)).
		WithArgs(int64(1), models.AccountMetaAccountRole).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.ar.DeleteMeta(ctx, 1, models.AccountMetaAccountRole))
	s.expectationsMet(t)
}

func (s *accountTestSuite) TestAccountTypes() {
	t := s.T()
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountTypeGetByID)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(3, "Asset account"))
	got, err := s.ar.GetAccountTypeByID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, models.AccountTypeRow{ID: 3, Type: accounttype.Asset}, got)

	s.mock.ExpectQuery(regexp.QuoteMeta(queryAccountTypeGetFirstByNames)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type"}).AddRow(8, "Debt"))
	got, err = s.ar.GetFirstAccountType(ctx, []string{"Debt", "Loan"})
	assert.NoError(t, err)
	assert.Equal(t, accounttype.Debt, got.Type)
	s.expectationsMet(t)
}
