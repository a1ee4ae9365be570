package types

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateString возвращается при некорректном формате даты
	ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// DateString календарная дата в формате "YYYY-MM-DD" (ISO-8601, без времени и зоны).
// Все сравнения дат в системе выполняются строковым сравнением этого типа:
// удалённое хранилище оперирует именно строками дат, и строковое равенство
// исключает расхождения из-за сдвига часовых поясов.
type DateString string

// NewDateString создает DateString из time.Time в локальной зоне
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return d == ""
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// Time парсит дату в time.Time (полночь, локальная зона)
func (d DateString) Time() (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Weekday возвращает день недели даты.
// Используется соглашение Go: Sunday = 0 ... Saturday = 6.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// AddDays возвращает дату, сдвинутую на n календарных дней
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}

// IsBefore возвращает true, если дата d раньше other.
// Формат YYYY-MM-DD лексикографически упорядочен, сравниваем строки.
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter возвращает true, если дата d позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// DaysBetween возвращает количество календарных дней от d до other включительно
func (d DateString) DaysBetween(other DateString) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}
