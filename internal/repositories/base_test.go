package repositories

import (
	"database/sql"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/config"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

// repoSuite is embedded by every SQL repository suite.
type repoSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo *Repository
}

func (s *repoSuite) SetupTest() {
	var err error
	s.db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.repo = NewSQLRepository(s.db, s.db, config.Config{})
}

func (s *repoSuite) TearDownTest() {
	s.db.Close()
}

func (s *repoSuite) expectationsMet(t *testing.T) {
	t.Helper()
	if err := s.mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
