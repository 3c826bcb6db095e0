package repository

import "results_feed/internal/model"

// WindowRepository Текущий снимок окна результатов.
// Замена только целиком, частичного обновления нет.
type WindowRepository interface {
	Replace(outcomes []model.Outcome) model.Window
	Current() model.Window
}
