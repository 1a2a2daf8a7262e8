package usecase

import "errors"

var (
	// ErrBusy — мутация отклонена: предыдущая операция ещё в полёте
	// (политика busy=reject).
	ErrBusy = errors.New("cart mutation already in flight")

	// ErrInvalidQuantity — количество меньше единицы; до гейтвея такой
	// запрос не доходит (удаление позиции — отдельная операция).
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrIdentityUnavailable — не удалось получить токен корзины;
	// операция не начиналась.
	ErrIdentityUnavailable = errors.New("cart identity unavailable")
)
