// Package types содержит общие типы-обёртки для API моделей.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD), без времени и таймзоны
const DateFormat = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("types: invalid date string format, expected YYYY-MM-DD")
)

// DateString календарная дата в строковом представлении "2006-01-02".
// Используется в HTTP моделях: даты заезда/выезда приходят без таймзоны.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	_, err := d.Time()
	return err
}

// Time конвертирует DateString в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// UnmarshalJSON парсит дату из JSON строки с валидацией формата
func (d *DateString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := NewDateStringFromString(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
