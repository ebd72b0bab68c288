package core

import (
	"encoding/json"

	"github.com/Mitri45/estimator/internal/domain"
)

// Client -> server intent types.
const (
	IntentCreateRoom      = "create_room"
	IntentJoinRoom        = "join_room"
	IntentChangeRoomName  = "change_room_name"
	IntentSubmitEstimates = "submit_estimates"
	IntentResetRoom       = "reset_room"
	IntentPing            = "ping"
)

// Server -> client event types.
const (
	EventRoomCreated         = "room_created"
	EventRoomJoined          = "room_joined"
	EventRoomNameChanged     = "room_name_changed"
	EventParticipantsUpdated = "participants_updated"
	EventError               = "error"
	EventPong                = "pong"
)

type RoomCreatedEvent struct {
	Type string       `json:"type"`
	Room *domain.Room `json:"room"`
}

type RoomJoinedEvent struct {
	Type string       `json:"type"`
	Room *domain.Room `json:"room"`
}

type RoomNameChangedEvent struct {
	Type        string          `json:"type"`
	RoomID      domain.RoomID   `json:"roomId"`
	NewRoomName domain.RoomName `json:"newRoomName"`
}

type ParticipantsUpdatedEvent struct {
	Type         string               `json:"type"`
	Participants []domain.Participant `json:"participants"`
}

type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// MustFrame marshals an event once so a broadcast writes identical bytes
// to every member. Payloads are plain structs and cannot fail to marshal;
// a failure here is a programming error.
func MustFrame(v any) Frame {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return Frame(b)
}

func NewRoomCreated(room *domain.Room) Frame {
	return MustFrame(RoomCreatedEvent{Type: EventRoomCreated, Room: room})
}

func NewRoomJoined(room *domain.Room) Frame {
	return MustFrame(RoomJoinedEvent{Type: EventRoomJoined, Room: room})
}

func NewRoomNameChanged(roomID domain.RoomID, name domain.RoomName) Frame {
	return MustFrame(RoomNameChangedEvent{Type: EventRoomNameChanged, RoomID: roomID, NewRoomName: name})
}

func NewParticipantsUpdated(ps []domain.Participant) Frame {
	return MustFrame(ParticipantsUpdatedEvent{Type: EventParticipantsUpdated, Participants: ps})
}

func NewError(msg string) Frame {
	return MustFrame(ErrorEvent{Type: EventError, Error: msg})
}
