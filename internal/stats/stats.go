package stats

import (
	"fmt"
	"math"

	"packlist/internal/model"
)

const (
	MessagePrepare = "Prepare your list for travel ✈"
	MessageReady   = "You are ready for travel ✈✈"
)

// Summarize counts packed items. An empty list has percentage 0 and the
// prepare message.
func Summarize(items []model.Item) model.Summary {
	total := len(items)
	if total == 0 {
		return model.Summary{Message: MessagePrepare}
	}

	packed := 0
	for _, it := range items {
		if it.Packed {
			packed++
		}
	}
	pct := int(math.Round(float64(packed) / float64(total) * 100))

	s := model.Summary{Total: total, Packed: packed, Percentage: pct}
	if pct == 100 {
		s.Message = MessageReady
	} else {
		s.Message = fmt.Sprintf("You have %d items in your list. You have packed %d items. (%d)%%", total, packed, pct)
	}
	return s
}
