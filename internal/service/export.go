package service

import (
	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/export"
	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

// exportAliases maps the short names used by the HTTP routes and the CLI
// onto collection kinds.
var exportAliases = map[string]model.Kind{
	"checkins":  model.KindCheckins,
	"actions":   model.KindActions,
	"training":  model.KindTraining,
	"matrix":    model.KindMatrix,
	"bookings":  model.KindBookings,
	"resources": model.KindResources,
	"team":      model.KindTeam,
}

// ResolveKind accepts a short name or a collection name.
func ResolveKind(name string) (model.Kind, bool) {
	if k, ok := exportAliases[name]; ok {
		return k, true
	}
	for _, k := range model.Kinds {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// Export lists one collection through its service, so the table carries
// the same filtering, ordering and derived statuses as List.
func (s *Services) Export(name string, f model.Filter) (export.Table, error) {
	kind, ok := ResolveKind(name)
	if !ok {
		return export.Table{}, apperr.NotFound("collection", name)
	}
	switch kind {
	case model.KindCheckins:
		return export.Checkins(s.Checkins.List(f)), nil
	case model.KindActions:
		return export.Actions(s.Actions.List(f)), nil
	case model.KindTraining:
		return export.Training(s.Training.List(f)), nil
	case model.KindMatrix:
		return export.Matrix(s.Matrix.List(f)), nil
	case model.KindBookings:
		return export.Bookings(s.Bookings.List(f)), nil
	case model.KindResources:
		return export.Resources(s.Resources.List(f)), nil
	default:
		return export.Roster(s.Roster.Members()), nil
	}
}
