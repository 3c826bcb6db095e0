package feed

import "time"

type WindowResponse struct {
	State       string            `json:"state"`        // loading | ready
	Generation  uint64            `json:"generation"`   // Номер обновления окна
	RefreshedAt *time.Time        `json:"refreshed_at"` // null до первого обновления
	Results     []OutcomeResponse `json:"results"`      // Новые первыми, не больше 20
}

type OutcomeResponse struct {
	ID        string    `json:"id"`
	Roll      int       `json:"roll"`       // 0-14
	Category  string    `json:"category"`   // white | red | black
	CreatedAt time.Time `json:"created_at"` // Время результата
	Time      string    `json:"time"`       // ЧЧ:ММ для подписи под результатом
	Synthetic bool      `json:"synthetic"`  // Сгенерирован локально
}

type HealthResponse struct {
	Status string `json:"status"`
}
