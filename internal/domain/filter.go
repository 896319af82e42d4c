package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ProductFilter — типизированный фильтр каталога: AND необязательного
// шаблона по имени и необязательного точного совпадения метки размера.
// Собирается только через NewProductFilter, поэтому шаблон всегда
// скомпилирован к моменту применения.
type ProductFilter struct {
	namePattern string
	nameRe      *regexp.Regexp
	sizeLabel   string
}

// NewProductFilter собирает фильтр из необязательных значений запроса.
// Пустая строка означает отсутствие предиката. Некорректный шаблон имени
// отклоняется с ErrNamePatternInvalid до какого-либо обращения к хранилищу.
func NewProductFilter(namePattern, sizeLabel string) (ProductFilter, error) {
	f := ProductFilter{namePattern: namePattern, sizeLabel: sizeLabel}
	if namePattern != "" {
		// Совпадение по подстроке без учёта регистра, как в публичном контракте API.
		re, err := regexp.Compile("(?i)" + namePattern)
		if err != nil {
			return ProductFilter{}, fmt.Errorf("%w: %q", ErrNamePatternInvalid, namePattern)
		}
		f.nameRe = re
	}
	return f, nil
}

// NamePattern возвращает шаблон имени и признак его наличия.
func (f ProductFilter) NamePattern() (string, bool) {
	return f.namePattern, f.namePattern != ""
}

// SizeLabel возвращает метку размера и признак её наличия.
func (f ProductFilter) SizeLabel() (string, bool) {
	return f.sizeLabel, f.sizeLabel != ""
}

// IsEmpty сообщает, что ни один предикат не задан.
func (f ProductFilter) IsEmpty() bool {
	return f.namePattern == "" && f.sizeLabel == ""
}

// Matches применяет фильтр к товару. Используется реализациями хранилищ,
// которые фильтруют на стороне процесса (in-memory).
func (f ProductFilter) Matches(p Product) bool {
	if f.nameRe != nil && !f.nameRe.MatchString(p.Name) {
		return false
	}
	if f.sizeLabel != "" && !p.HasSize(f.sizeLabel) {
		return false
	}
	return true
}

// String возвращает краткое описание фильтра для логов.
func (f ProductFilter) String() string {
	var parts []string
	if f.namePattern != "" {
		parts = append(parts, fmt.Sprintf("name~%q", f.namePattern))
	}
	if f.sizeLabel != "" {
		parts = append(parts, fmt.Sprintf("size=%q", f.sizeLabel))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " AND ")
}
