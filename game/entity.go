package game

import "slices"

// EntityID identifies an entity for the lifetime of the State that created it
type EntityID uint64

type identified interface {
	ID() EntityID
}

type idSet map[EntityID]struct{}

func (s idSet) add(id EntityID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s idSet) has(id EntityID) bool {
	_, ok := s[id]
	return ok
}

// removeIDs drops every entity whose ID is in ids, keeping the order of the rest
func removeIDs[T identified](items []T, ids idSet) []T {
	if len(ids) == 0 {
		return items
	}
	return slices.DeleteFunc(items, func(item T) bool {
		return ids.has(item.ID())
	})
}
