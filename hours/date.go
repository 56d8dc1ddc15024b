package hours

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var stockholmLoc *time.Location

func init() {
	var err error
	stockholmLoc, err = time.LoadLocation("Europe/Stockholm")
	if err != nil {
		panic(fmt.Sprintf("failed to load Stockholm location: %v", err))
	}
}

// Stockholm is the timezone all Swedish price areas trade in.
func Stockholm() *time.Location {
	return stockholmLoc
}

// Date is a calendar day in the Europe/Stockholm timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return d.Start().Format(dateLayout)
}

// Start returns midnight at the beginning of the day, Stockholm time.
func (d Date) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, stockholmLoc)
}

func (d Date) Next() Date {
	return FromTime(d.Start().AddDate(0, 0, 1))
}

// Hours returns the number of wall-clock hours in the day: 24 normally,
// 23 or 25 on DST transition days.
func (d Date) Hours() int {
	return int(d.Next().Start().Sub(d.Start()) / time.Hour)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	t = t.In(stockholmLoc)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func Today() Date {
	return FromTime(time.Now())
}

func ParseDate(str string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, str, stockholmLoc)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", str, err)
	}
	return FromTime(t), nil
}
