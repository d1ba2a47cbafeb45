package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date string format")

	// ErrUnsupportedScanType возвращается, когда значение из БД нельзя преобразовать в дату
	ErrUnsupportedScanType = errors.New("unsupported scan type for date")
)

// Date календарная дата без времени и часового пояса.
// Нулевое значение означает "дата не указана".
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создает дату из года, месяца и дня (значения нормализуются как в time.Date)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарную дату момента t в его собственном часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// MustParseDate как ParseDate, но паникует при ошибке. Только для констант и тестов.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

// Time возвращает полночь этой даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays возвращает дату, сдвинутую на n дней
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysUntil возвращает количество дней от d до o (отрицательное, если o раньше)
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Scan реализует sql.Scanner. lib/pq отдает DATE как time.Time.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := parseDBDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := parseDBDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// parseDBDate принимает как "2006-01-02", так и полный RFC3339 (драйверы отдают по-разному)
func parseDBDate(s string) (Date, error) {
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return DateOf(t), nil
		}
		s = s[:len(DateLayout)]
	}
	return ParseDate(s)
}
