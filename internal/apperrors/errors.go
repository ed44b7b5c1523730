package apperrors

import (
	"errors"
	"fmt"
)

// Типизированные ошибки ядра. Сервисы оборачивают их через %w,
// хэндлеры ветвятся по errors.Is при выборе HTTP-статуса.
var (
	// ErrNotFound - агрегат с таким id не существует
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidState - нарушено предусловие на текущее состояние
	// (например, волонтер недоступен)
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict - условное обновление не применилось: гонку выиграл другой
	ErrConflict = errors.New("resource conflict")

	// ErrForbidden - актор не является назначенным волонтером заявки
	ErrForbidden = errors.New("authorization denied")
)

// ErrInvalidTransition - запрошен недопустимый переход статуса.
// Частный случай ErrInvalidState: errors.Is(err, ErrInvalidState) тоже истинно.
var ErrInvalidTransition = fmt.Errorf("invalid transition: %w", ErrInvalidState)
