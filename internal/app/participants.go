package app

import (
	"sync"

	"github.com/Mitri45/estimator/internal/core"
	"github.com/Mitri45/estimator/internal/domain"
	"github.com/rs/zerolog/log"
)

type participantEntry struct {
	participant *domain.Participant
	conn        core.SignalConnection
}

// ParticipantRegistry is the authoritative ConnectionID -> Participant
// mapping. A room's member set is computed on demand by filtering the
// whole registry; there is no secondary room index, which is fine at the
// intended connection counts.
type ParticipantRegistry struct {
	mu      sync.RWMutex
	entries map[core.ConnectionID]*participantEntry
}

func NewParticipantRegistry() *ParticipantRegistry {
	return &ParticipantRegistry{entries: make(map[core.ConnectionID]*participantEntry)}
}

// Bind creates or overwrites the participant for a connection. Joining a
// second room over the same connection replaces the old record.
func (r *ParticipantRegistry) Bind(id core.ConnectionID, p *domain.Participant, conn core.SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &participantEntry{participant: p, conn: conn}
	log.Info().Str("module", "app.participants").Str("conn_id", string(id)).Str("room_id", string(p.RoomID)).Str("name", p.Name).Msg("participant bound")
}

func (r *ParticipantRegistry) Get(id core.ConnectionID) (*domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.participant, true
}

// Update applies fn to the participant under the write lock so snapshot
// readers never observe a half-applied mutation. Reports the room the
// participant belongs to.
func (r *ParticipantRegistry) Update(id core.ConnectionID, fn func(*domain.Participant)) (domain.RoomID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	fn(e.participant)
	return e.participant.RoomID, true
}

// Remove drops the record and reports which room it belonged to.
func (r *ParticipantRegistry) Remove(id core.ConnectionID) (domain.RoomID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	delete(r.entries, id)
	log.Info().Str("module", "app.participants").Str("conn_id", string(id)).Msg("participant removed")
	return e.participant.RoomID, true
}

// SnapshotRoom returns deep copies of every participant in the room, safe
// to marshal or hand to readers outside the registry lock.
func (r *ParticipantRegistry) SnapshotRoom(roomID domain.RoomID) []domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Participant, 0, len(r.entries))
	for _, e := range r.entries {
		if e.participant.RoomID == roomID {
			out = append(out, e.participant.Clone())
		}
	}
	return out
}

type connSnap struct {
	ID   core.ConnectionID
	Conn core.SignalConnection
}

// ConnsOfRoom lists the live connections of a room's members.
func (r *ParticipantRegistry) ConnsOfRoom(roomID domain.RoomID) []connSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]connSnap, 0, len(r.entries))
	for id, e := range r.entries {
		if e.participant.RoomID == roomID {
			out = append(out, connSnap{ID: id, Conn: e.conn})
		}
	}
	return out
}

// EachInRoom applies fn to every member of the room under the write lock.
func (r *ParticipantRegistry) EachInRoom(roomID domain.RoomID, fn func(*domain.Participant)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.participant.RoomID == roomID {
			fn(e.participant)
		}
	}
}

func (r *ParticipantRegistry) HasMembers(roomID domain.RoomID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.participant.RoomID == roomID {
			return true
		}
	}
	return false
}

func (r *ParticipantRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
