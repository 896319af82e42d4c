// Package pagination вычисляет окна выборки и дескрипторы страниц для
// списковых запросов API.
package pagination

import "github.com/vladislavdragonenkov/ecom/internal/domain"

// DefaultLimit применяется, когда клиент не передал limit.
const DefaultLimit = 10

// Params — запрошенное окно выборки.
type Params struct {
	Limit  int
	Offset int
}

// Default возвращает параметры страницы по умолчанию.
func Default() Params {
	return Params{Limit: DefaultLimit, Offset: 0}
}

// Validate отклоняет некорректное окно до обращения к хранилищу.
// Никакого приведения к допустимым значениям не выполняется.
func (p Params) Validate() error {
	if p.Limit <= 0 {
		return domain.ErrLimitInvalid
	}
	if p.Offset < 0 {
		return domain.ErrOffsetInvalid
	}
	return nil
}

// Page — дескриптор страницы в ответе спискового запроса.
//
// Next присутствует, только если страница была заполнена целиком и дальше
// может быть продолжение. Previous — всегда сырая арифметика offset-limit:
// отрицательное значение означает отсутствие предыдущей страницы и отдаётся
// клиенту как есть, это зафиксированный внешний контракт API.
type Page struct {
	Limit    int  `json:"limit"`
	Next     *int `json:"next,omitempty"`
	Previous int  `json:"previous"`
}

// BuildPage строит дескриптор страницы по окну выборки и фактическому числу
// возвращённых записей. Чистая функция без побочных эффектов; параметры
// предполагаются уже проверенными через Validate.
func BuildPage(params Params, returned int) Page {
	page := Page{
		Limit:    params.Limit,
		Previous: params.Offset - params.Limit,
	}
	// Эвристика "возможно, есть ещё": страница заполнена под завязку.
	if returned == params.Limit {
		next := params.Offset + params.Limit
		page.Next = &next
	}
	return page
}

// HasNext сообщает о наличии следующей страницы.
func (p Page) HasNext() bool {
	return p.Next != nil
}

// HasPrevious сообщает о наличии предыдущей страницы.
func (p Page) HasPrevious() bool {
	return p.Previous >= 0
}
