package catalog

import (
	"fmt"

	"barbershop-catalog/internal/entities"
)

// ActionType names a user interaction on a catalog page.
type ActionType string

const (
	ActionSetQuery      ActionType = "set_query"
	ActionToggleTag     ActionType = "toggle_tag"
	ActionToggleRole    ActionType = "toggle_role"
	ActionClear         ActionType = "clear"
	ActionOpen          ActionType = "open"
	ActionClose         ActionType = "close"
	ActionToggleFilters ActionType = "toggle_filters"
	ActionSurprise      ActionType = "surprise"
)

// Action is one interaction with its argument, if any.
type Action struct {
	Type  ActionType
	Value string
}

// Reduce applies a to s. ActionSurprise needs the record list and is handled by the caller.
func Reduce(s State, a Action) (State, error) {
	switch a.Type {
	case ActionSetQuery:
		return s.SetQuery(a.Value), nil
	case ActionToggleTag, ActionToggleRole:
		if a.Value == "" {
			return s, fmt.Errorf("%w: %s requires a value", entities.ErrInvalidArgument, a.Type)
		}
		return s.ToggleTag(a.Value), nil
	case ActionClear:
		return s.ClearAll(), nil
	case ActionOpen:
		if a.Value == "" {
			return s, fmt.Errorf("%w: open requires an id", entities.ErrInvalidArgument)
		}
		return s.OpenDialog(a.Value), nil
	case ActionClose:
		return s.CloseDialog(), nil
	case ActionToggleFilters:
		return s.ToggleFilters(), nil
	default:
		return s, fmt.Errorf("%w: unsupported action %q", entities.ErrInvalidArgument, a.Type)
	}
}
