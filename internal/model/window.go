package model

import "time"

type WindowState string

const (
	// WindowStateLoading Данных ещё нет (до первого обновления)
	WindowStateLoading WindowState = "loading"
	// WindowStateReady Окно заполнено хотя бы одним обновлением
	WindowStateReady WindowState = "ready"
)

// Window Снимок отображаемых результатов, новые первыми.
// Каждое обновление заменяет снимок целиком.
type Window struct {
	State       WindowState
	Generation  uint64
	RefreshedAt time.Time
	Outcomes    []Outcome
}
