package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DocumentRef identifies a journal document in the document store.
type DocumentRef struct {
	ID   string
	Name string
}

// DateRange is a civil date range, inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

const dateLayout = "2006-01-02"

func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := time.ParseInLocation(dateLayout, start, time.UTC)
	if err != nil {
		return DateRange{}, errors.Wrapf(err, "could not parse start date '%s'", start)
	}

	endDate, err := time.ParseInLocation(dateLayout, end, time.UTC)
	if err != nil {
		return DateRange{}, errors.Wrapf(err, "could not parse end date '%s'", end)
	}

	return DateRange{Start: startDate, End: endDate}, nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ReportName returns the name of the report document generated for the range.
func (r DateRange) ReportName() string {
	return fmt.Sprintf("レポート_%s_%s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// Journal filenames start with a localized date prefix, e.g. "2024年1月2日木曜日".
var journalNamePattern = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日`)

// ParseJournalDate extracts the date from a journal document name.
//
// The second return value reports whether the name matched the expected
// pattern at all. A name that matches but carries an impossible calendar
// date (e.g. month 13) yields an error.
func ParseJournalDate(name string) (time.Time, bool, error) {
	match := journalNamePattern.FindStringSubmatch(name)
	if match == nil {
		return time.Time{}, false, nil
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range components instead of failing
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, true, errors.Errorf("name '%s' matched but date is invalid", name)
	}

	return date, true, nil
}
