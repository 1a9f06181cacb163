// Package money содержит хелперы для денежной арифметики расчётного каскада.
//
// Все суммы — целые единицы валюты (int64). Процентные вычеты округляются
// математически (half-up) до целой единицы, чтобы сумма строк отчёта сходилась
// с отображаемым итогом.
package money

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAmount возвращается при отрицательной сумме или отрицательном проценте
	ErrInvalidAmount = errors.New("money: invalid amount")
)

// ApplyPercent вычисляет percent процентов от amount с округлением half-up
// до целой единицы валюты. Отрицательные входные значения недопустимы.
func ApplyPercent(amount int64, percent float64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount must be non-negative, got %d", ErrInvalidAmount, amount)
	}
	if percent < 0 {
		return 0, fmt.Errorf("%w: percent must be non-negative, got %g", ErrInvalidAmount, percent)
	}

	return int64(math.Floor(float64(amount)*percent/100.0 + 0.5)), nil
}

// SubtractAll вычитает из total все amounts по порядку и возвращает остаток.
// Входные значения должны быть неотрицательными, но остаток может уйти в минус —
// отрицательный результат это валидное состояние (владелец должен денег).
func SubtractAll(total int64, amounts ...int64) (int64, error) {
	if total < 0 {
		return 0, fmt.Errorf("%w: total must be non-negative, got %d", ErrInvalidAmount, total)
	}

	remainder := total
	for _, a := range amounts {
		if a < 0 {
			return 0, fmt.Errorf("%w: deduction must be non-negative, got %d", ErrInvalidAmount, a)
		}
		remainder -= a
	}

	return remainder, nil
}
