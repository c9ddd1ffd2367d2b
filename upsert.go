package pgqb

import (
	"strings"
)

type (
	sqlConflict struct {
		conflictTarget  string
		conflictUpdate  []string
		updateAll       bool
		updateAllExcept []string
	}
)

// SetOnConflict sets the conflict target and the fields updated from the
// EXCLUDED row. It replaces any previous conflict target. With no update
// fields the conflicting row is left untouched (DO NOTHING).
func (s *sqlConflict) SetOnConflict(target string, updateFields []string) {
	s.conflictTarget = target
	s.conflictUpdate = append([]string{}, updateFields...)
	s.updateAll = false
	s.updateAllExcept = nil
}

func (s sqlConflict) onConflict(fields []string) string {
	update := s.conflictUpdate
	if s.updateAll {
		update = nil
	outer:
		for _, field := range fields {
			for _, except := range s.updateAllExcept {
				if field == except {
					continue outer
				}
			}
			update = append(update, field)
		}
	}
	return onConflictClause(s.conflictTarget, update)
}

func onConflictClause(target string, updateFields []string) string {
	if target == "" {
		return ""
	}
	if len(updateFields) == 0 {
		return " ON CONFLICT (" + target + ") DO NOTHING"
	}
	actions := make([]string, 0, len(updateFields))
	for _, field := range updateFields {
		actions = append(actions, field+" = EXCLUDED."+field)
	}
	return " ON CONFLICT (" + target + ") DO UPDATE SET " + strings.Join(actions, ", ")
}
