package feed

import (
	"results_feed/internal/model"
	"results_feed/pkg/rng"
	"time"

	"github.com/google/uuid"
)

// SyntheticIDPrefix Префикс id у сгенерированных результатов
const SyntheticIDPrefix = "mock-"

// Generator Источник запасного окна, когда внешний источник недоступен
type Generator interface {
	Generate() []model.Outcome
}

type FallbackGenerator struct {
	src  rng.Source
	size int
	step time.Duration
	now  func() time.Time
}

// NewFallbackGenerator size - количество результатов в окне, step - шаг по времени между ними
func NewFallbackGenerator(src rng.Source, size int, step time.Duration) *FallbackGenerator {
	if size <= 0 || size > model.MaxWindow {
		size = model.MaxWindow
	}
	if step <= 0 {
		step = time.Minute
	}
	return &FallbackGenerator{
		src:  src,
		size: size,
		step: step,
		now:  time.Now,
	}
}

// Generate Всегда возвращает ровно size результатов, самый свежий первым.
// Время строго убывает с шагом step от текущего момента.
func (g *FallbackGenerator) Generate() []model.Outcome {
	now := g.now()
	out := make([]model.Outcome, g.size)
	for i := range out {
		out[i] = model.Outcome{
			ID:         SyntheticIDPrefix + uuid.NewString(),
			RollValue:  model.MinRoll + g.src.Intn(model.MaxRoll-model.MinRoll+1),
			ObservedAt: now.Add(-time.Duration(i) * g.step),
			Provenance: model.ProvenanceSynthetic,
		}
	}
	return out
}
