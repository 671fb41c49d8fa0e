package message

import (
	"strings"

	"github.com/msgdesk/pkg/apperrors"
	"github.com/msgdesk/pkg/dtos"
	"github.com/msgdesk/pkg/entities"
)

// FilterAll is the query sentinel meaning "no constraint on this field".
const FilterAll = "all"

// Filter narrows List. A nil field places no constraint.
type Filter struct {
	Status   *entities.MessageStatus
	Priority *entities.Priority
	Category *entities.Category
	// Search is matched case-insensitively against message content and the
	// contact name.
	Search string
}

// ParseFilter converts raw query values. Empty values and "all" leave the
// field unconstrained; anything outside the enum is a validation error.
func ParseFilter(q dtos.ListMessagesQuery) (Filter, error) {
	var f Filter

	if v, ok := constraint(q.Status); ok {
		status := entities.MessageStatus(v)
		if !status.Valid() {
			return Filter{}, apperrors.Validation("status", "unknown value "+q.Status)
		}
		f.Status = &status
	}
	if v, ok := constraint(q.Priority); ok {
		priority := entities.Priority(v)
		if !priority.Valid() {
			return Filter{}, apperrors.Validation("priority", "unknown value "+q.Priority)
		}
		f.Priority = &priority
	}
	if v, ok := constraint(q.Category); ok {
		category := entities.Category(v)
		if !category.Valid() {
			return Filter{}, apperrors.Validation("category", "unknown value "+q.Category)
		}
		f.Category = &category
	}
	f.Search = strings.TrimSpace(q.Search)
	return f, nil
}

func constraint(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, FilterAll) {
		return "", false
	}
	return strings.ToUpper(raw), true
}
