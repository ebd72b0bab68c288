package app

import (
	"sync"

	"github.com/Mitri45/estimator/internal/core"
	"github.com/Mitri45/estimator/internal/domain"
	"github.com/rs/zerolog/log"
)

const msgRoomNotFound = "Room not found"

// Coordinator is the room/participant state machine: the sole mutator of
// both registries and the sole decision-maker of what gets broadcast.
// One mutex is held for each intent's full mutation plus broadcast, which
// keeps the registries single-writer-per-intent even though the websocket
// adapter drives it from many goroutines.
type Coordinator struct {
	mu           sync.Mutex
	rooms        *RoomRegistry
	participants *ParticipantRegistry
	policy       Policy
}

func NewCoordinator(rooms *RoomRegistry, participants *ParticipantRegistry, policy Policy) *Coordinator {
	return &Coordinator{rooms: rooms, participants: participants, policy: policy}
}

// CreateRoom mints a room, binds the caller as its first participant and
// answers with room_created plus a membership broadcast. Empty names are
// a silent guard: nothing is created and nothing is emitted.
func (c *Coordinator) CreateRoom(id core.ConnectionID, conn core.SignalConnection, roomName, userName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, err := domain.NewRoom(roomName)
	if err != nil {
		log.Warn().Str("module", "app.coordinator").Str("conn_id", string(id)).Err(err).Msg("create_room ignored")
		return
	}
	participant, err := domain.NewParticipant(string(id), userName, room.ID)
	if err != nil {
		log.Warn().Str("module", "app.coordinator").Str("conn_id", string(id)).Err(err).Msg("create_room ignored")
		return
	}

	c.rooms.Insert(room)
	c.participants.Bind(id, participant, conn)

	c.sendTo(id, conn, core.NewRoomCreated(room))
	c.broadcastRoom(room.ID, core.NewParticipantsUpdated(c.participants.SnapshotRoom(room.ID)))
}

// JoinRoom binds the caller into an existing room, overwriting any
// previous membership of the same connection. Unknown rooms answer the
// caller with a single error event and mutate nothing.
func (c *Coordinator) JoinRoom(id core.ConnectionID, conn core.SignalConnection, roomID domain.RoomID, userName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.rooms.Get(roomID)
	if !ok {
		log.Info().Str("module", "app.coordinator").Str("conn_id", string(id)).Str("room_id", string(roomID)).Msg("join against unknown room")
		c.sendTo(id, conn, core.NewError(msgRoomNotFound))
		return
	}
	participant, err := domain.NewParticipant(string(id), userName, roomID)
	if err != nil {
		log.Warn().Str("module", "app.coordinator").Str("conn_id", string(id)).Err(err).Msg("join_room ignored")
		return
	}

	c.participants.Bind(id, participant, conn)

	c.sendTo(id, conn, core.NewRoomJoined(&room))
	c.broadcastRoom(roomID, core.NewParticipantsUpdated(c.participants.SnapshotRoom(roomID)))
}

// RenameRoom mutates the display name in place and tells the room. Any
// member may rename; a missing room is a silent no-op.
func (c *Coordinator) RenameRoom(id core.ConnectionID, roomID domain.RoomID, newName domain.RoomName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.rooms.Rename(roomID, newName) {
		return
	}
	c.broadcastRoom(roomID, core.NewRoomNameChanged(roomID, newName))
}

// SubmitEstimates records one round's values for the calling connection.
// A connection without a participant record is silently dropped. The
// [1,10] range is not re-checked here: the view layer enforces it and the
// aggregate math tolerates anything integral.
func (c *Coordinator) SubmitEstimates(id core.ConnectionID, risk, effort, uncertainty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, ok := c.participants.Update(id, func(p *domain.Participant) {
		p.SetEstimates(risk, effort, uncertainty)
	})
	if !ok {
		log.Warn().Str("module", "app.coordinator").Str("conn_id", string(id)).Msg("submit without participant record")
		return
	}
	log.Info().Str("module", "app.coordinator").Str("conn_id", string(id)).Str("room_id", string(roomID)).Int("sum", risk+effort+uncertainty).Msg("estimates submitted")

	c.broadcastRoom(roomID, core.NewParticipantsUpdated(c.participants.SnapshotRoom(roomID)))
}

// ResetRound clears every member's estimates and starts the next round.
// Idempotent; a room with no members still gets an (empty) broadcast.
func (c *Coordinator) ResetRound(id core.ConnectionID, roomID domain.RoomID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.participants.EachInRoom(roomID, func(p *domain.Participant) {
		p.ClearEstimates()
	})
	log.Info().Str("module", "app.coordinator").Str("conn_id", string(id)).Str("room_id", string(roomID)).Msg("round reset")

	c.broadcastRoom(roomID, core.NewParticipantsUpdated(c.participants.SnapshotRoom(roomID)))
}

// Disconnect removes the participant keyed by the departed connection and
// tells its former room. Connections that never joined produce nothing.
func (c *Coordinator) Disconnect(id core.ConnectionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, ok := c.participants.Remove(id)
	if !ok || roomID == "" {
		return
	}
	c.broadcastRoom(roomID, core.NewParticipantsUpdated(c.participants.SnapshotRoom(roomID)))
}

// ReapEmptyRooms drops rooms with zero participants. Rooms otherwise live
// for the whole process; the reaper in cmd/server calls this on a ticker.
func (c *Coordinator) ReapEmptyRooms() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := c.rooms.DeleteEmpty(c.participants.HasMembers)
	if count > 0 {
		log.Info().Str("module", "app.coordinator").Int("count", count).Msg("reaped empty rooms")
	}
	return count
}

// RoomSnapshot is the read-only view for the REST endpoint. It rides on
// the registry locks alone; intents hold those same locks for writes.
func (c *Coordinator) RoomSnapshot(roomID domain.RoomID) (domain.Room, []domain.Participant, bool) {
	room, ok := c.rooms.Get(roomID)
	if !ok {
		return domain.Room{}, nil, false
	}
	return room, c.participants.SnapshotRoom(roomID), true
}

func (c *Coordinator) sendTo(id core.ConnectionID, conn core.SignalConnection, frame core.Frame) {
	if conn == nil {
		return
	}
	if err := conn.TrySend(frame); err != nil {
		log.Warn().Str("module", "app.coordinator").Str("conn_id", string(id)).Err(err).Msg("direct send failed")
	}
}

func (c *Coordinator) broadcastRoom(roomID domain.RoomID, frame core.Frame) core.PublishResult {
	res := core.PublishResult{}
	var dropped []connSnap
	for _, snap := range c.participants.ConnsOfRoom(roomID) {
		if snap.Conn == nil {
			continue
		}
		if err := snap.Conn.TrySend(frame); err != nil {
			res.Dropped = append(res.Dropped, snap.ID)
			dropped = append(dropped, snap)
			continue
		}
		res.SentTo++
	}
	log.Debug().Str("module", "app.coordinator").Str("room_id", string(roomID)).Int("sent_to", res.SentTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")

	for _, snap := range dropped {
		if c.policy == nil || c.policy.OnBackpressure(snap.ID) != DropConnection {
			continue
		}
		log.Warn().Str("module", "app.coordinator").Str("conn_id", string(snap.ID)).Msg("closing slow connection")
		snap.Conn.Close()
	}
	return res
}
