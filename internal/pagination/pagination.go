// Package pagination нарезает упорядоченный список на страницы фиксированного
// размера. Размер страницы один на все ленты и задаётся конфигурацией.
package pagination

import "strconv"

type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	TotalPages  int  `json:"totalPages"`
	Count       int  `json:"count"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// ParsePage разбирает параметр ?page=. Пустое, нечисловое или меньшее единицы
// значение означает первую страницу.
func ParsePage(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 1
	}
	return number
}

// Paginate возвращает страницу number (нумерация с единицы). Последняя
// страница содержит остаток; номер за последней страницей даёт пустую
// страницу, а не ошибку. Пустой список — одна валидная пустая страница.
func Paginate[T any](items []T, number, pageSize int) Page[T] {
	if number < 1 {
		number = 1
	}

	count := len(items)
	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	pageItems := items[start:end]
	if pageItems == nil {
		pageItems = []T{}
	}

	return Page[T]{
		Items:       pageItems,
		Number:      number,
		TotalPages:  totalPages,
		Count:       count,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
