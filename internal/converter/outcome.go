package converter

import (
	"results_feed/internal/api/dto/feed"
	"results_feed/internal/model"
	"time"
)

// timeLabelLayout Часы и минуты, как подпись под результатом
const timeLabelLayout = "15:04"

// ToWindowResponse loc - часовой пояс для подписи времени
func ToWindowResponse(w model.Window, loc *time.Location) feed.WindowResponse {
	resp := feed.WindowResponse{
		State:      string(w.State),
		Generation: w.Generation,
		Results:    make([]feed.OutcomeResponse, len(w.Outcomes)),
	}
	if !w.RefreshedAt.IsZero() {
		refreshedAt := w.RefreshedAt
		resp.RefreshedAt = &refreshedAt
	}

	for i, o := range w.Outcomes {
		resp.Results[i] = toOutcomeResponse(o, loc)
	}
	return resp
}

func toOutcomeResponse(o model.Outcome, loc *time.Location) feed.OutcomeResponse {
	if loc == nil {
		loc = time.Local
	}
	return feed.OutcomeResponse{
		ID:        o.ID,
		Roll:      o.RollValue,
		Category:  string(o.Category()),
		CreatedAt: o.ObservedAt,
		Time:      o.ObservedAt.In(loc).Format(timeLabelLayout),
		Synthetic: o.Synthetic(),
	}
}
