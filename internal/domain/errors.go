package domain

import "errors"

var (
	// Ошибка отсутствующего имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка отсутствующей метки размера.
	ErrSizeLabelRequired = errors.New("size label is required")
	// Ошибка отрицательного остатка по размеру.
	ErrSizeQuantityNegative = errors.New("size quantity must be non-negative")
	// Ошибка повторяющейся метки размера внутри одного товара.
	ErrSizeLabelDuplicate = errors.New("size labels must be unique within a product")
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserRequired = errors.New("userId is required")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отсутствующей ссылки на товар в позиции заказа.
	ErrItemProductRequired = errors.New("item productId is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item qty must be greater than zero")
	// Ошибка отрицательной суммы заказа.
	ErrTotalNegative = errors.New("order total must be non-negative")
	// Ошибка некорректного limit в параметрах страницы.
	ErrLimitInvalid = errors.New("limit must be greater than zero")
	// Ошибка отрицательного offset в параметрах страницы.
	ErrOffsetInvalid = errors.New("offset must be non-negative")
	// Ошибка некорректного шаблона фильтра по имени.
	ErrNamePatternInvalid = errors.New("name filter is not a valid pattern")
	// ErrProductNotFound возвращается, если товар не найден в хранилище.
	ErrProductNotFound = errors.New("product not found")
)

// validationErrs — ошибки, которые отклоняются на границе до обращения
// к хранилищу и трактуются как ошибки клиента.
var validationErrs = []error{
	ErrProductNameRequired,
	ErrProductPriceNegative,
	ErrSizeLabelRequired,
	ErrSizeQuantityNegative,
	ErrSizeLabelDuplicate,
	ErrUserRequired,
	ErrItemsRequired,
	ErrItemProductRequired,
	ErrItemQtyInvalid,
	ErrTotalNegative,
	ErrLimitInvalid,
	ErrOffsetInvalid,
	ErrNamePatternInvalid,
}

// IsValidation проверяет, относится ли ошибка к категории ошибок валидации.
func IsValidation(err error) bool {
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsNotFound проверяет, является ли ошибка отсутствием сущности по ссылке.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}
