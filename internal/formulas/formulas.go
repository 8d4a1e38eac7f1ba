// Package formulas serves the portal's formula-search tool from an
// embedded catalog. The data is reference material, not business state,
// so it ships with the binary instead of living in the database.
package formulas

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed catalog.json
var catalogJSON []byte

type Formula struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	Name        string `json:"name"`
	Formula     string `json:"formula"`
	Description string `json:"description"`
}

var catalog []Formula

func init() {
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		panic("formulas: bad embedded catalog: " + err.Error())
	}
}

// Topics lists the distinct topics in catalog order.
func Topics() []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range catalog {
		if !seen[f.Topic] {
			seen[f.Topic] = true
			out = append(out, f.Topic)
		}
	}
	return out
}

// Search filters the catalog by free-text query and/or topic, both
// case-insensitive. Empty arguments match everything.
func Search(query, topic string) []Formula {
	query = strings.ToLower(strings.TrimSpace(query))
	topic = strings.ToLower(strings.TrimSpace(topic))

	out := []Formula{}
	for _, f := range catalog {
		if topic != "" && strings.ToLower(f.Topic) != topic {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(f.Name + " " + f.Formula + " " + f.Description)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}
