package client

import (
	"context"
	"errors"
	"results_feed/internal/model"
)

var (
	// ErrFetch Сетевая ошибка или ответ со статусом не 2xx
	ErrFetch = errors.New("fetch failed")
	// ErrParse Некорректный JSON или элемент, который нельзя нормализовать
	ErrParse = errors.New("parse failed")
)

// ResultsClient Один запрос к внешнему источнику результатов, без повторов
type ResultsClient interface {
	Fetch(ctx context.Context) ([]model.Outcome, error)
}
