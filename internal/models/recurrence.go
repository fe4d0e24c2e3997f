package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
)

type RepetitionType string

const (
	RepetitionDaily   RepetitionType = "daily"
	RepetitionWeekly  RepetitionType = "weekly"
	RepetitionNdom    RepetitionType = "ndom"
	RepetitionMonthly RepetitionType = "monthly"
	RepetitionYearly  RepetitionType = "yearly"
)

// WeekendPolicy decides what happens to an occurrence on a Saturday or Sunday.
type WeekendPolicy int

const (
	WeekendAsIs     WeekendPolicy = 1
	WeekendSkip     WeekendPolicy = 2
	WeekendToFriday WeekendPolicy = 3
	WeekendToMonday WeekendPolicy = 4
)

const maxOccurrenceScan = 100000

// Recurrence transaction meta keys.
const (
	RecurrenceMetaBudgetID     = "budget_id"
	RecurrenceMetaCategoryName = "category_name"
	RecurrenceMetaPiggyBankID  = "piggy_bank_id"
	RecurrenceMetaTags         = "tags"
)

type Recurrence struct {
	ID                int64                   `json:"id"`
	UserID            int64                   `json:"userId"`
	TransactionTypeID int64                   `json:"transactionTypeId"`
	Type              TransactionType         `json:"type"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	FirstDate         time.Time               `json:"firstDate"`
	RepeatUntil       *time.Time              `json:"repeatUntil"`
	LatestDate        *time.Time              `json:"latestDate"`
	Repetitions       int                     `json:"repetitions"`
	ApplyRules        bool                    `json:"applyRules"`
	Active            bool                    `json:"active"`
	Notes             *string                 `json:"notes"`
	RepetitionRules   []RecurrenceRepetition  `json:"repetitionRules"`
	Transactions      []RecurrenceTransaction `json:"transactions"`
}

// RecurrenceRef identifies a recurrence together with its owner.
type RecurrenceRef struct {
	ID     int64
	UserID int64
}

type RecurrenceRepetition struct {
	ID           int64          `json:"id"`
	RecurrenceID int64          `json:"recurrenceId"`
	Type         RepetitionType `json:"type"`
	Moment       string         `json:"moment"`
	Skip         int            `json:"skip"`
	Weekend      WeekendPolicy  `json:"weekend"`
}

type RecurrenceTransaction struct {
	ID                int64                       `json:"id"`
	RecurrenceID      int64                       `json:"recurrenceId"`
	CurrencyID        int64                       `json:"currencyId"`
	ForeignCurrencyID *int64                      `json:"foreignCurrencyId"`
	SourceID          int64                       `json:"sourceId"`
	DestinationID     int64                       `json:"destinationId"`
	Amount            decimal.Decimal             `json:"amount"`
	ForeignAmount     *decimal.Decimal            `json:"foreignAmount"`
	Description       string                      `json:"description"`
	Meta              []RecurrenceTransactionMeta `json:"meta"`
}

func (rt RecurrenceTransaction) MetaValue(name string) (string, bool) {
	for _, m := range rt.Meta {
		if m.Name == name {
			return m.Value, true
		}
	}
	return "", false
}

type RecurrenceTransactionMeta struct {
	ID                      int64  `json:"id"`
	RecurrenceTransactionID int64  `json:"recurrenceTransactionId"`
	Name                    string `json:"name"`
	Value                   string `json:"value"`
}

// Validate checks that the moment matches the repetition type.
func (r RecurrenceRepetition) Validate() error {
	_, err := r.parseMoment()
	return err
}

type moment struct {
	weekday time.Weekday
	week    int
	day     int
	month   time.Month
}

func (r RecurrenceRepetition) parseMoment() (moment, error) {
	invalid := func() (moment, error) {
		return moment{}, fmt.Errorf("%w: %s moment %q", common.ErrInvalidRepetition, r.Type, r.Moment)
	}
	switch r.Type {
	case RepetitionDaily:
		return moment{}, nil
	case RepetitionWeekly:
		n, err := strconv.Atoi(strings.TrimSpace(r.Moment))
		if err != nil || n < 1 || n > 7 {
			return invalid()
		}
		return moment{weekday: isoWeekday(n)}, nil
	case RepetitionNdom:
		parts := strings.Split(r.Moment, ",")
		if len(parts) != 2 {
			return invalid()
		}
		week, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		wd, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil || week < 1 || week > 5 || wd < 1 || wd > 7 {
			return invalid()
		}
		return moment{week: week, weekday: isoWeekday(wd)}, nil
	case RepetitionMonthly:
		n, err := strconv.Atoi(strings.TrimSpace(r.Moment))
		if err != nil || n < 1 || n > 31 {
			return invalid()
		}
		return moment{day: n}, nil
	case RepetitionYearly:
		d, err := time.Parse(common.DateFormatYYYYMMDD, strings.TrimSpace(r.Moment))
		if err != nil {
			return invalid()
		}
		return moment{month: d.Month(), day: d.Day()}, nil
	}
	return invalid()
}

// isoWeekday maps 1 (Monday) .. 7 (Sunday).
func isoWeekday(n int) time.Weekday {
	return time.Weekday(n % 7)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Occurrences lists the dates in [from, to] on which the repetition fires for a
// recurrence starting at first. Skip keeps every (skip+1)-th candidate counted
// from first, after which the weekend policy is applied.
func (r RecurrenceRepetition) Occurrences(first, from, to time.Time) ([]time.Time, error) {
	m, err := r.parseMoment()
	if err != nil {
		return nil, err
	}
	first, from, to = common.StartOfDay(first), common.StartOfDay(from), common.StartOfDay(to)
	// weekend shifting moves a date by at most two days
	scanEnd := to.AddDate(0, 0, 2)

	next := r.generator(m, first)
	var (
		out     []time.Time
		seen    = map[string]bool{}
		attempt int
	)
	for i := 0; i < maxOccurrenceScan; i++ {
		candidate, ok := next()
		if !ok || candidate.After(scanEnd) {
			break
		}
		if candidate.Before(first) {
			continue
		}
		keep := attempt%(r.Skip+1) == 0
		attempt++
		if !keep {
			continue
		}

		date, ok := applyWeekend(candidate, r.Weekend)
		if !ok || date.Before(from) || date.After(to) {
			continue
		}
		key := common.FormatDate(date)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, date)
	}
	return out, nil
}

// generator yields ascending candidate dates starting from the period of first.
func (r RecurrenceRepetition) generator(m moment, first time.Time) func() (time.Time, bool) {
	loc := first.Location()
	switch r.Type {
	case RepetitionDaily:
		cur := first.AddDate(0, 0, -1)
		return func() (time.Time, bool) {
			cur = cur.AddDate(0, 0, 1)
			return cur, true
		}
	case RepetitionWeekly:
		offset := (int(m.weekday) - int(first.Weekday()) + 7) % 7
		cur := first.AddDate(0, 0, offset-7)
		return func() (time.Time, bool) {
			cur = cur.AddDate(0, 0, 7)
			return cur, true
		}
	case RepetitionNdom:
		year, month := first.Year(), first.Month()-1
		return func() (time.Time, bool) {
			for {
				month++
				if month > time.December {
					month, year = time.January, year+1
				}
				firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
				offset := (int(m.weekday) - int(firstOfMonth.Weekday()) + 7) % 7
				d := 1 + offset + (m.week-1)*7
				if d <= daysIn(year, month, loc) {
					return time.Date(year, month, d, 0, 0, 0, 0, loc), true
				}
			}
		}
	case RepetitionMonthly:
		year, month := first.Year(), first.Month()-1
		return func() (time.Time, bool) {
			month++
			if month > time.December {
				month, year = time.January, year+1
			}
			d := min(m.day, daysIn(year, month, loc))
			return time.Date(year, month, d, 0, 0, 0, 0, loc), true
		}
	case RepetitionYearly:
		year := first.Year() - 1
		return func() (time.Time, bool) {
			year++
			d := min(m.day, daysIn(year, m.month, loc))
			return time.Date(year, m.month, d, 0, 0, 0, 0, loc), true
		}
	}
	return func() (time.Time, bool) { return time.Time{}, false }
}

func applyWeekend(date time.Time, policy WeekendPolicy) (time.Time, bool) {
	wd := date.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return date, true
	}
	switch policy {
	case WeekendSkip:
		return date, false
	case WeekendToFriday:
		if wd == time.Saturday {
			return date.AddDate(0, 0, -1), true
		}
		return date.AddDate(0, 0, -2), true
	case WeekendToMonday:
		if wd == time.Saturday {
			return date.AddDate(0, 0, 2), true
		}
		return date.AddDate(0, 0, 1), true
	}
	return date, true
}

// OccursOn reports whether any repetition of the recurrence fires on date.
func (r Recurrence) OccursOn(date time.Time) (bool, error) {
	date = common.StartOfDay(date)
	for _, rep := range r.RepetitionRules {
		dates, err := rep.Occurrences(r.FirstDate, date, date)
		if err != nil {
			return false, err
		}
		if len(dates) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// IsDue checks activity, the first date and repeat until bounds and the
// schedule. materialized is the number of groups created so far and is
// compared with the repetitions limit when one is set.
func (r Recurrence) IsDue(date time.Time, materialized int) error {
	date = common.StartOfDay(date)
	if !r.Active {
		return common.ErrRecurrenceInactive
	}
	if date.Before(common.StartOfDay(r.FirstDate)) {
		return fmt.Errorf("%w: before first date", common.ErrNotAnOccurrence)
	}
	if r.RepeatUntil != nil && date.After(common.StartOfDay(*r.RepeatUntil)) {
		return fmt.Errorf("%w: after repeat until", common.ErrNotAnOccurrence)
	}
	if r.Repetitions > 0 && materialized >= r.Repetitions {
		return fmt.Errorf("%w: repetition limit reached", common.ErrNotAnOccurrence)
	}
	ok, err := r.OccursOn(date)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrNotAnOccurrence
	}
	return nil
}

// StoreRecurrenceIn is the input for creating a recurrence.
type StoreRecurrenceIn struct {
	Type         TransactionType
	Title        string
	Description  string
	FirstDate    time.Time
	RepeatUntil  *time.Time
	Repetitions  int
	ApplyRules   bool
	Active       bool
	Notes        string
	Rules        []RecurrenceRepetitionIn
	Transactions []RecurrenceTransactionIn
}

type RecurrenceRepetitionIn struct {
	Type    RepetitionType
	Moment  string
	Skip    int
	Weekend WeekendPolicy
}

// WithDefaults fills moment "", skip 0 and weekend policy 1 when unset.
func (in RecurrenceRepetitionIn) WithDefaults() RecurrenceRepetitionIn {
	if in.Skip < 0 {
		in.Skip = 0
	}
	if in.Weekend == 0 {
		in.Weekend = WeekendAsIs
	}
	return in
}

type RecurrenceTransactionIn struct {
	Amount              decimal.Decimal
	ForeignAmount       *decimal.Decimal
	CurrencyID          *int64
	CurrencyCode        string
	ForeignCurrencyID   *int64
	ForeignCurrencyCode string
	SourceID            *int64
	SourceName          string
	DestinationID       *int64
	DestinationName     string
	Description         string
	BudgetID            *int64
	CategoryName        string
	PiggyBankID         *int64
	Tags                []string
}

// UpdateRecurrenceIn patches scalar fields. Non nil Rules or Transactions
// replace the existing children wholesale. ClearRepeatUntil removes the end
// date and wins over RepeatUntil.
type UpdateRecurrenceIn struct {
	Title            *string
	Description      *string
	FirstDate        *time.Time
	RepeatUntil      *time.Time
	ClearRepeatUntil bool
	Repetitions      *int
	ApplyRules       *bool
	Active           *bool
	Notes            *string
	Rules            []RecurrenceRepetitionIn
	Transactions     []RecurrenceTransactionIn
}

type StoreRecurrenceRequest struct {
	Type         string                         `json:"type" validate:"required,oneof=withdrawal deposit transfer"`
	Title        string                         `json:"title" validate:"required,max=255"`
	Description  string                         `json:"description"`
	FirstDate    string                         `json:"firstDate" validate:"required,date"`
	RepeatUntil  string                         `json:"repeatUntil" validate:"omitempty,date"`
	Repetitions  int                            `json:"nrOfRepetitions" validate:"min=0"`
	ApplyRules   bool                           `json:"applyRules"`
	Active       *bool                          `json:"active"`
	Notes        string                         `json:"notes"`
	Repetition   []RecurrenceRepetitionRequest  `json:"repetitions" validate:"required,min=1,dive"`
	Transactions []RecurrenceTransactionRequest `json:"transactions" validate:"required,min=1,dive"`
}

type RecurrenceRepetitionRequest struct {
	Type    string `json:"type" validate:"required,oneof=daily weekly ndom monthly yearly"`
	Moment  string `json:"moment"`
	Skip    int    `json:"skip" validate:"min=0,max=31"`
	Weekend int    `json:"weekend" validate:"omitempty,min=1,max=4"`
}

type RecurrenceTransactionRequest struct {
	Amount              string   `json:"amount" validate:"required,decimal"`
	ForeignAmount       string   `json:"foreignAmount" validate:"omitempty,decimal"`
	CurrencyID          *int64   `json:"currencyId"`
	CurrencyCode        string   `json:"currencyCode" validate:"omitempty,len=3"`
	ForeignCurrencyID   *int64   `json:"foreignCurrencyId"`
	ForeignCurrencyCode string   `json:"foreignCurrencyCode" validate:"omitempty,len=3"`
	SourceID            *int64   `json:"sourceId"`
	SourceName          string   `json:"sourceName"`
	DestinationID       *int64   `json:"destinationId"`
	DestinationName     string   `json:"destinationName"`
	Description         string   `json:"description" validate:"required"`
	BudgetID            *int64   `json:"budgetId"`
	CategoryName        string   `json:"categoryName"`
	PiggyBankID         *int64   `json:"piggyBankId"`
	Tags                []string `json:"tags"`
}

type UpdateRecurrenceRequest struct {
	Title            *string                        `json:"title" validate:"omitempty,max=255"`
	Description      *string                        `json:"description"`
	FirstDate        *string                        `json:"firstDate" validate:"omitempty,date"`
	RepeatUntil      *string                        `json:"repeatUntil" validate:"omitempty,date"`
	ClearRepeatUntil bool                           `json:"clearRepeatUntil"`
	Repetitions      *int                           `json:"nrOfRepetitions" validate:"omitempty,min=0"`
	ApplyRules       *bool                          `json:"applyRules"`
	Active           *bool                          `json:"active"`
	Notes            *string                        `json:"notes"`
	Repetition       []RecurrenceRepetitionRequest  `json:"repetitions" validate:"omitempty,dive"`
	Transactions     []RecurrenceTransactionRequest `json:"transactions" validate:"omitempty,dive"`
}

func (req StoreRecurrenceRequest) ToStoreIn() (StoreRecurrenceIn, error) {
	txType, err := ParseTransactionType(req.Type)
	if err != nil {
		return StoreRecurrenceIn{}, err
	}
	first, err := parseDate(req.FirstDate)
	if err != nil {
		return StoreRecurrenceIn{}, err
	}
	until, err := parseOptionalDate(req.RepeatUntil)
	if err != nil {
		return StoreRecurrenceIn{}, err
	}
	rules, err := toRepetitionIns(req.Repetition)
	if err != nil {
		return StoreRecurrenceIn{}, err
	}
	transactions, err := toRecurrenceTransactionIns(req.Transactions)
	if err != nil {
		return StoreRecurrenceIn{}, err
	}

	in := StoreRecurrenceIn{
		Type:         txType,
		Title:        req.Title,
		Description:  req.Description,
		FirstDate:    first,
		RepeatUntil:  until,
		Repetitions:  req.Repetitions,
		ApplyRules:   req.ApplyRules,
		Active:       true,
		Notes:        req.Notes,
		Rules:        rules,
		Transactions: transactions,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	return in, nil
}

func (req UpdateRecurrenceRequest) ToUpdateIn() (UpdateRecurrenceIn, error) {
	in := UpdateRecurrenceIn{
		Title:            req.Title,
		Description:      req.Description,
		ClearRepeatUntil: req.ClearRepeatUntil,
		Repetitions:      req.Repetitions,
		ApplyRules:       req.ApplyRules,
		Active:           req.Active,
		Notes:            req.Notes,
	}
	if req.FirstDate != nil {
		first, err := parseDate(*req.FirstDate)
		if err != nil {
			return in, err
		}
		in.FirstDate = &first
	}
	if req.RepeatUntil != nil {
		until, err := parseOptionalDate(*req.RepeatUntil)
		if err != nil {
			return in, err
		}
		in.RepeatUntil = until
		if until == nil {
			in.ClearRepeatUntil = true
		}
	}

	var err error
	if req.Repetition != nil {
		if in.Rules, err = toRepetitionIns(req.Repetition); err != nil {
			return in, err
		}
	}
	if req.Transactions != nil {
		if in.Transactions, err = toRecurrenceTransactionIns(req.Transactions); err != nil {
			return in, err
		}
	}
	return in, nil
}

func toRepetitionIns(reqs []RecurrenceRepetitionRequest) ([]RecurrenceRepetitionIn, error) {
	out := make([]RecurrenceRepetitionIn, 0, len(reqs))
	for _, r := range reqs {
		in := RecurrenceRepetitionIn{
			Type:    RepetitionType(r.Type),
			Moment:  r.Moment,
			Skip:    r.Skip,
			Weekend: WeekendPolicy(r.Weekend),
		}.WithDefaults()
		rule := RecurrenceRepetition{Type: in.Type, Moment: in.Moment}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func toRecurrenceTransactionIns(reqs []RecurrenceTransactionRequest) ([]RecurrenceTransactionIn, error) {
	out := make([]RecurrenceTransactionIn, 0, len(reqs))
	for _, r := range reqs {
		amount, err := ParseAmount(r.Amount)
		if err != nil {
			return nil, err
		}
		foreign, err := ParseOptionalAmount(r.ForeignAmount)
		if err != nil {
			return nil, err
		}
		out = append(out, RecurrenceTransactionIn{
			Amount:              amount,
			ForeignAmount:       foreign,
			CurrencyID:          r.CurrencyID,
			CurrencyCode:        r.CurrencyCode,
			ForeignCurrencyID:   r.ForeignCurrencyID,
			ForeignCurrencyCode: r.ForeignCurrencyCode,
			SourceID:            r.SourceID,
			SourceName:          r.SourceName,
			DestinationID:       r.DestinationID,
			DestinationName:     r.DestinationName,
			Description:         r.Description,
			BudgetID:            r.BudgetID,
			CategoryName:        r.CategoryName,
			PiggyBankID:         r.PiggyBankID,
			Tags:                r.Tags,
		})
	}
	return out, nil
}

// MaterializeResult summarizes one worker run.
type MaterializeResult struct {
	Date      string  `json:"date"`
	Due       int     `json:"due"`
	Created   int     `json:"created"`
	Skipped   int     `json:"skipped"`
	Failed    int     `json:"failed"`
	FailedIDs []int64 `json:"failedIds,omitempty"`
}
