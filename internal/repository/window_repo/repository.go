package window_repo

import (
	"results_feed/internal/model"
	"slices"
	"sync"
	"time"
)

// WindowRepo Хранилище окна в памяти
type WindowRepo struct {
	mtx      sync.RWMutex
	capacity int
	now      func() time.Time
	window   model.Window
}

// NewWindowRepository capacity - потолок размера окна, обрезается до model.MaxWindow
func NewWindowRepository(capacity int) *WindowRepo {
	if capacity <= 0 || capacity > model.MaxWindow {
		capacity = model.MaxWindow
	}
	return &WindowRepo{
		capacity: capacity,
		now:      time.Now,
		window: model.Window{
			State:    model.WindowStateLoading,
			Outcomes: []model.Outcome{},
		},
	}
}

// Replace Собирает новый снимок из первых capacity элементов и подменяет текущий под блокировкой.
// Старый снимок виден читателям до момента подмены.
func (r *WindowRepo) Replace(outcomes []model.Outcome) model.Window {
	n := min(len(outcomes), r.capacity)
	next := make([]model.Outcome, n)
	copy(next, outcomes[:n])

	refreshedAt := r.now()

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.window = model.Window{
		State:       model.WindowStateReady,
		Generation:  r.window.Generation + 1,
		RefreshedAt: refreshedAt,
		Outcomes:    next,
	}
	return cloneWindow(r.window)
}

// Current Возвращает копию текущего снимка
func (r *WindowRepo) Current() model.Window {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return cloneWindow(r.window)
}

func (r *WindowRepo) Capacity() int {
	return r.capacity
}

func cloneWindow(w model.Window) model.Window {
	w.Outcomes = slices.Clone(w.Outcomes)
	return w
}
