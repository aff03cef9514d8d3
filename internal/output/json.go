package output

import (
	"encoding/json"
	"io"

	"github.com/pfrederiksen/wordladder/internal/ladder"
)

// ResultJSON represents a search result in JSON format
type ResultJSON struct {
	Start       string          `json:"start"`
	Destination string          `json:"destination"`
	Length      int             `json:"length"`
	Count       int             `json:"count"`
	Ladders     []ladder.Ladder `json:"ladders"`
	Stats       StatsJSON       `json:"stats"`
}

// StatsJSON mirrors ladder.Stats
type StatsJSON struct {
	Levels   int `json:"levels"`
	Expanded int `json:"expanded"`
	Enqueued int `json:"enqueued"`
}

// RenderJSON renders a search result as JSON
func RenderJSON(w io.Writer, start, destination string, res *ladder.Result) error {
	ladders := res.Ladders
	if ladders == nil {
		ladders = []ladder.Ladder{}
	}
	output := ResultJSON{
		Start:       start,
		Destination: destination,
		Length:      res.Stats.AnswerLength,
		Count:       len(ladders),
		Ladders:     ladders,
		Stats: StatsJSON{
			Levels:   res.Stats.Levels,
			Expanded: res.Stats.Expanded,
			Enqueued: res.Stats.Enqueued,
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
