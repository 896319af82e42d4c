package domain

// Size описывает один размер товара и доступное количество.
type Size struct {
	// Label — метка размера (например, "M" или "XL").
	Label string
	// Quantity — неотрицательный остаток по этому размеру.
	Quantity int32
}

// Product — товар каталога. После создания товар в рамках сервиса неизменяем.
type Product struct {
	// ID назначается хранилищем при вставке.
	ID    string
	Name  string
	Price float64
	Sizes []Size
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price < 0 {
		errs = append(errs, ErrProductPriceNegative)
	}

	// Метки размеров внутри одного товара обязаны быть уникальными.
	seen := make(map[string]struct{}, len(p.Sizes))
	for _, size := range p.Sizes {
		if size.Label == "" {
			errs = append(errs, ErrSizeLabelRequired)
			continue
		}
		if size.Quantity < 0 {
			errs = append(errs, ErrSizeQuantityNegative)
		}
		if _, dup := seen[size.Label]; dup {
			errs = append(errs, ErrSizeLabelDuplicate)
		}
		seen[size.Label] = struct{}{}
	}

	return errs
}

// HasSize сообщает, есть ли у товара размер с данной меткой.
func (p *Product) HasSize(label string) bool {
	for _, size := range p.Sizes {
		if size.Label == label {
			return true
		}
	}
	return false
}
