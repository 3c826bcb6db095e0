package model

import "time"

const (
	// MaxWindow Максимальное количество результатов в окне
	MaxWindow = 20

	MinRoll = 0
	MaxRoll = 14
)

type Category string

const (
	CategoryWhite Category = "white"
	CategoryRed   Category = "red"
	CategoryBlack Category = "black"
)

// Classify Определяет цвет по значению броска.
// Функция тотальная: всё, что не белое и не красное, считается чёрным,
// включая значения вне диапазона [MinRoll, MaxRoll].
func Classify(roll int) Category {
	if roll == 0 {
		return CategoryWhite
	}
	if roll >= 1 && roll <= 7 {
		return CategoryRed
	}
	return CategoryBlack
}

// Provenance Источник результата
type Provenance string

const (
	ProvenanceRemote    Provenance = "remote"
	ProvenanceSynthetic Provenance = "synthetic"
)

type Outcome struct {
	ID         string
	RollValue  int
	ObservedAt time.Time
	Provenance Provenance
}

// Category Цвет всегда вычисляется из RollValue и нигде не хранится
func (o Outcome) Category() Category {
	return Classify(o.RollValue)
}

func (o Outcome) Synthetic() bool {
	return o.Provenance == ProvenanceSynthetic
}
