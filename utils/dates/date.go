package dates

import "time"

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "02.01.2006 15:04"
)

func FormatInLocation(t time.Time, location *time.Location) string {
	return t.In(location).Format(DateTimeFormat)
}

func StringToDate(from string, dateFormat string) (time.Time, error) {
	return time.Parse(dateFormat, from)
}

func DateToString(from time.Time, dateFormat string) string {
	return from.Format(dateFormat)
}
