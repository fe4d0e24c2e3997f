package transaction

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budhip/go-fp-ledger/internal/common"
	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/http/middleware"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/config"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/services/mock"
)

const owner = int64(4)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testTransactionHelper struct {
	router           *echo.Echo
	mockGroupService *mock.MockTransactionGroupService
}

func transactionTestHelper(t *testing.T) testTransactionHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockGroupSvc := mock.NewMockTransactionGroupService(mockCtrl)

	app := echo.New()
	m := middleware.NewMiddleware(config.Config{})
	New(app.Group("/api/v1", m.Owner()), mockGroupSvc)

	return testTransactionHelper{router: app, mockGroupService: mockGroupSvc}
}

func (h testTransactionHelper) do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(commonhttp.HeaderUserID, "4")

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, strings.TrimSuffix(string(b), "\n")
}

const withdrawalBody = `{"transactions":[{"type":"withdrawal","date":"2024-01-02","amount":"25.50","description":"Coffee","sourceId":10,"destinationName":"Coffee Shop","tags":["coffee"]}]}`

func Test_Handler_storeGroup(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		doMock   func(h testTransactionHelper)
		wantCode int
		check    func(t *testing.T, body string)
	}{
		{
			name: "withdrawal",
			body: withdrawalBody,
			doMock: func(h testTransactionHelper) {
				h.mockGroupService.EXPECT().Store(gomock.AssignableToTypeOf(context.Background()), owner, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, in models.StoreTransactionGroupIn) (*models.TransactionGroup, error) {
						require.Len(t, in.Transactions, 1)
						j := in.Transactions[0]
						assert.Equal(t, models.TransactionTypeWithdrawal, j.Type)
						assert.True(t, decimal.RequireFromString("25.50").Equal(j.Amount))
						assert.Equal(t, "Coffee Shop", j.DestinationName)
						assert.Equal(t, []string{"coffee"}, j.Tags)
						return &models.TransactionGroup{
							ID:     50,
							UserID: owner,
							Journals: []models.TransactionJournal{{
								ID:           60,
								Type:         models.TransactionTypeWithdrawal,
								Description:  "Coffee",
								Transactions: models.NewJournalLegs(10, 41, 1, j.Amount, nil, nil),
							}},
						}, nil
					})
			},
			wantCode: http.StatusCreated,
			check: func(t *testing.T, body string) {
				var got models.TransactionGroup
				require.NoError(t, json.Unmarshal([]byte(body), &got))
				assert.Equal(t, int64(50), got.ID)
				require.Len(t, got.Journals, 1)
				require.Len(t, got.Journals[0].Transactions, 2)
				assert.True(t, decimal.RequireFromString("-25.50").Equal(got.Journals[0].Transactions[0].Amount))
			},
		},
		{
			name:     "unknown type",
			body:     `{"transactions":[{"type":"reconciliation","date":"2024-01-02","amount":"1","description":"x"}]}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "no journals",
			body:     `{"transactions":[]}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid leg",
			body: withdrawalBody,
			doMock: func(h testTransactionHelper) {
				h.mockGroupService.EXPECT().Store(gomock.Any(), owner, gomock.Any()).
					Return(nil, common.NewInvalidLegError(0, "Destination", "could not find a valid destination account"))
			},
			wantCode: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body string) {
				assert.Equal(t, `{"status":"error","code":422,"message":"Destination invalid: could not find a valid destination account"}`, body)
			},
		},
		{
			name: "storage failure",
			body: withdrawalBody,
			doMock: func(h testTransactionHelper) {
				h.mockGroupService.EXPECT().Store(gomock.Any(), owner, gomock.Any()).Return(nil, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := transactionTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			code, body := h.do(t, http.MethodPost, "/api/v1/transactions", tt.body)
			require.Equal(t, tt.wantCode, code, body)
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}

func Test_Handler_getAndDeleteGroup(t *testing.T) {
	h := transactionTestHelper(t)

	h.mockGroupService.EXPECT().Get(gomock.Any(), owner, int64(50)).Return(&models.TransactionGroup{ID: 50, UserID: owner}, nil)
	code, body := h.do(t, http.MethodGet, "/api/v1/transactions/50", "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Contains(t, body, `"id":50`)

	h.mockGroupService.EXPECT().Get(gomock.Any(), owner, int64(51)).Return(nil, models.GetErrMap(models.ErrKeyDataNotFound))
	code, _ = h.do(t, http.MethodGet, "/api/v1/transactions/51", "")
	assert.Equal(t, http.StatusNotFound, code)

	h.mockGroupService.EXPECT().Delete(gomock.Any(), owner, int64(50)).Return(nil)
	code, body = h.do(t, http.MethodDelete, "/api/v1/transactions/50", "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Empty(t, body)

	h.mockGroupService.EXPECT().Delete(gomock.Any(), owner, int64(52)).Return(models.GetErrMap(models.ErrKeyDataNotFound))
	code, _ = h.do(t, http.MethodDelete, "/api/v1/transactions/52", "")
	assert.Equal(t, http.StatusNotFound, code)
}
