// internal/services/reconcile.go
package services

import "github.com/google/uuid"

// ReconcileRefs computes the symmetric difference between a product's
// old and new reference sets: ids only in newRefs get their counter
// incremented, ids only in oldRefs get it decremented. Ids present in
// both are untouched. Duplicates in either input count once.
func ReconcileRefs(oldRefs, newRefs []uuid.UUID) (increments, decrements []uuid.UUID) {
	oldSet := toSet(oldRefs)
	newSet := toSet(newRefs)

	for id := range newSet {
		if !oldSet[id] {
			increments = append(increments, id)
		}
	}
	for id := range oldSet {
		if !newSet[id] {
			decrements = append(decrements, id)
		}
	}
	return increments, decrements
}

func toSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id != uuid.Nil {
			set[id] = true
		}
	}
	return set
}
