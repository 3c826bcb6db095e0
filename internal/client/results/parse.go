package results

import (
	"errors"
	"fmt"
	"results_feed/internal/client"
	"results_feed/internal/model"
	"time"

	"github.com/tidwall/gjson"
)

var (
	// Поля-синонимы в порядке приоритета
	idFields   = []string{"id"}
	rollFields = []string{"roll", "rollValue", "value"}
	timeFields = []string{"created_at", "createdAt", "observedAt"}

	// Форматы времени в порядке проверки
	timeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02 15:04:05.999999999",
	}
)

// epochMillisThreshold Числа от 1e11 и выше считаются миллисекундами (1e11 секунд - это 5138 год)
const epochMillisThreshold = 100_000_000_000

// Parse Разбирает тело ответа. Поддерживаются формы: массив, {"results": [...]}, {"data": [...]}.
// Используется первая присутствующая форма, любая другая форма даёт пустой список без ошибки.
func Parse(body []byte) ([]model.Outcome, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", client.ErrParse)
	}

	items := locateItems(gjson.ParseBytes(body))
	if !items.IsArray() {
		return []model.Outcome{}, nil
	}

	elems := items.Array()
	outcomes := make([]model.Outcome, 0, len(elems))
	seen := make(map[string]struct{}, len(elems))

	for i, elem := range elems {
		o, err := normalize(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", client.ErrParse, i, err)
		}
		// Повторный id в одном ответе пропускаем, id уникален в пределах окна
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

func locateItems(root gjson.Result) gjson.Result {
	if root.IsArray() {
		return root
	}
	if !root.IsObject() {
		return gjson.Result{}
	}
	for _, key := range []string{"results", "data"} {
		if v := root.Get(key); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func normalize(elem gjson.Result) (model.Outcome, error) {
	if !elem.IsObject() {
		return model.Outcome{}, fmt.Errorf("expected object, got %s", elem.Type)
	}

	id := firstOf(elem, idFields)
	if id.Type != gjson.String && id.Type != gjson.Number {
		return model.Outcome{}, errors.New("missing id")
	}
	if id.String() == "" {
		return model.Outcome{}, errors.New("empty id")
	}

	roll := firstOf(elem, rollFields)
	if roll.Type != gjson.Number || roll.Num != float64(roll.Int()) {
		return model.Outcome{}, fmt.Errorf("roll must be an integer, got %q", roll.Raw)
	}

	observedAt, err := parseTimestamp(firstOf(elem, timeFields))
	if err != nil {
		return model.Outcome{}, err
	}

	return model.Outcome{
		ID:         id.String(),
		RollValue:  int(roll.Int()),
		ObservedAt: observedAt,
		Provenance: model.ProvenanceRemote,
	}, nil
}

func firstOf(elem gjson.Result, keys []string) gjson.Result {
	for _, k := range keys {
		if v := elem.Get(k); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// parseTimestamp ISO-8601 строка в одном из timeLayouts либо unix-время числом (секунды или миллисекунды).
// Значения без часового пояса считаются UTC.
func parseTimestamp(ts gjson.Result) (time.Time, error) {
	switch ts.Type {
	case gjson.String:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, ts.Str); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unsupported timestamp %q", ts.Str)
	case gjson.Number:
		if ts.Num != float64(ts.Int()) || ts.Int() <= 0 {
			return time.Time{}, fmt.Errorf("timestamp must be a positive integer, got %s", ts.Raw)
		}
		if ts.Int() >= epochMillisThreshold {
			return time.UnixMilli(ts.Int()).UTC(), nil
		}
		return time.Unix(ts.Int(), 0).UTC(), nil
	default:
		return time.Time{}, errors.New("missing timestamp")
	}
}
