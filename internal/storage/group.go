package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/misterclayt0n/overload/internal/models"
)

var (
	ErrNotFound    = errors.New("exercise not found")
	ErrAmbiguousID = errors.New("ambiguous exercise id")
)

// GroupByID rebuilds exercise groups from the flat record list. Groups keep the
// order in which their id first appears; records inside a group are sorted by day.
func GroupByID(records []models.ExerciseRecord) []models.ExerciseGroup {
	index := make(map[string]int)
	var groups []models.ExerciseGroup

	for _, r := range records {
		i, ok := index[r.ID]
		if !ok {
			groups = append(groups, models.ExerciseGroup{
				ID:        r.ID,
				Name:      r.Name,
				Max:       r.Max,
				Timestamp: r.Timestamp,
			})
			i = len(groups) - 1
			index[r.ID] = i
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	for i := range groups {
		recs := groups[i].Records
		sort.SliceStable(recs, func(a, b int) bool {
			return recs[a].Day < recs[b].Day
		})
	}

	return groups
}

// NewestFirst returns the groups in reverse creation order.
func NewestFirst(groups []models.ExerciseGroup) []models.ExerciseGroup {
	out := make([]models.ExerciseGroup, len(groups))
	for i, g := range groups {
		out[len(groups)-1-i] = g
	}
	return out
}

// FindGroup looks a group up by its full id or by a prefix matching exactly one id.
func FindGroup(groups []models.ExerciseGroup, idOrPrefix string) (models.ExerciseGroup, error) {
	if idOrPrefix == "" {
		return models.ExerciseGroup{}, ErrNotFound
	}

	var matches []models.ExerciseGroup
	for _, g := range groups {
		if g.ID == idOrPrefix {
			return g, nil
		}
		if strings.HasPrefix(g.ID, idOrPrefix) {
			matches = append(matches, g)
		}
	}

	switch len(matches) {
	case 0:
		return models.ExerciseGroup{}, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return models.ExerciseGroup{}, fmt.Errorf("%w: %s matches %d exercises", ErrAmbiguousID, idOrPrefix, len(matches))
	}
}
