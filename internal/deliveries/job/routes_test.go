package job

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/budhip/go-fp-ledger/internal/common/flag"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/services/mock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func TestJob_Start(t *testing.T) {
	today := time.Date(2024, 3, 5, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name    string
		flag    flag.Job
		doMock  func(m *mock.MockRecurrenceService)
		wantErr error
		anyErr  bool
	}{
		{
			name: "explicit date",
			flag: flag.Job{Version: "v1", JobName: "MaterializeRecurrences", Date: "2024-02-29"},
			doMock: func(m *mock.MockRecurrenceService) {
				m.EXPECT().MaterializeDue(gomock.Any(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)).
					Return(models.MaterializeResult{}, nil)
			},
		},
		{
			name: "date defaults to today",
			flag: flag.Job{Version: "v1", JobName: "MaterializeRecurrences"},
			doMock: func(m *mock.MockRecurrenceService) {
				m.EXPECT().MaterializeDue(gomock.Any(), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)).
					Return(models.MaterializeResult{}, nil)
			},
		},
		{
			name:   "invalid date",
			flag:   flag.Job{Version: "v1", JobName: "MaterializeRecurrences", Date: "05-03-2024"},
			anyErr: true,
		},
		{
			name:    "unknown job",
			flag:    flag.Job{Version: "v1", JobName: "Nope"},
			wantErr: ErrUnknownJob,
		},
		{
			name:    "unknown version",
			flag:    flag.Job{Version: "v9", JobName: "MaterializeRecurrences"},
			wantErr: ErrUnknownJob,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv := mock.NewMockRecurrenceService(ctrl)
			if tt.doMock != nil {
				tt.doMock(srv)
			}

			j := New(srv)
			j.now = func() time.Time { return today }

			err := j.Start(context.Background(), tt.flag)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestJob_Names(t *testing.T) {
	j := New(mock.NewMockRecurrenceService(gomock.NewController(t)))
	assert.Equal(t, map[string][]string{"v1": {"MaterializeRecurrences"}}, j.Names())
}
