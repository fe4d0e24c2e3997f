package models

import (
	"strings"
	"time"

	"github.com/budhip/go-fp-ledger/internal/common"
)

func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDate(value string) (time.Time, error) {
	return common.ParseStringToDatetime(common.DateFormatYYYYMMDD, strings.TrimSpace(value))
}
