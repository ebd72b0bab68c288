package app

import (
	"sync"

	"github.com/Mitri45/estimator/internal/domain"
	"github.com/rs/zerolog/log"
)

// RoomRegistry is the authoritative RoomID -> Room mapping.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*domain.Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[domain.RoomID]*domain.Room)}
}

func (r *RoomRegistry) Insert(room *domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = room
	log.Info().Str("module", "app.rooms").Str("room_id", string(room.ID)).Str("name", string(room.Name)).Msg("room created")
}

// Get returns a copy so callers never read a room concurrently renamed
// under the registry lock.
func (r *RoomRegistry) Get(id domain.RoomID) (domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return domain.Room{}, false
	}
	return *room, true
}

// Rename mutates the display name in place. A missing room is a no-op.
func (r *RoomRegistry) Rename(id domain.RoomID, name domain.RoomName) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return false
	}
	room.Name = name
	log.Info().Str("module", "app.rooms").Str("room_id", string(id)).Str("name", string(name)).Msg("room renamed")
	return true
}

func (r *RoomRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// DeleteEmpty removes every room for which hasMembers reports false and
// returns how many were dropped.
func (r *RoomRegistry) DeleteEmpty(hasMembers func(domain.RoomID) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id := range r.rooms {
		if !hasMembers(id) {
			delete(r.rooms, id)
			count++
		}
	}
	return count
}
