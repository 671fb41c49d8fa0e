package classification

import (
	"strings"

	"github.com/msgdesk/pkg/entities"
)

// Classification is the decoded verdict for one piece of text. Tags are the
// model's free-text suggestions and are never turned into Tag rows.
type Classification struct {
	Priority entities.Priority `json:"priority"`
	Category entities.Category `json:"category"`
	Tags     []string          `json:"tags"`
}

// Default is used whenever the model reply cannot be decoded.
func Default() Classification {
	return Classification{
		Priority: entities.PriorityNormal,
		Category: entities.CategoryProfessional,
		Tags:     []string{},
	}
}

// reply mirrors the JSON object the model is asked for. Fields are plain
// strings so that off-vocabulary values still decode.
type reply struct {
	Priority string   `json:"priority"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

var priorityAliases = map[string]entities.Priority{
	"MEDIUM":   entities.PriorityNormal,
	"MED":      entities.PriorityNormal,
	"CRITICAL": entities.PriorityUrgent,
}

// normalize maps a decoded reply onto the canonical vocabulary. Unknown
// values fall back to the default classification's.
func (r reply) normalize() Classification {
	def := Default()
	out := Classification{
		Priority: NormalizePriority(r.Priority),
		Category: entities.Category(strings.ToUpper(strings.TrimSpace(r.Category))),
		Tags:     make([]string, 0, len(r.Tags)),
	}
	if !out.Category.Valid() {
		out.Category = def.Category
	}
	for _, tag := range r.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out.Tags = append(out.Tags, tag)
		}
	}
	return out
}

func NormalizePriority(raw string) entities.Priority {
	p := entities.Priority(strings.ToUpper(strings.TrimSpace(raw)))
	if p.Valid() {
		return p
	}
	if alias, ok := priorityAliases[string(p)]; ok {
		return alias
	}
	return entities.PriorityNormal
}
