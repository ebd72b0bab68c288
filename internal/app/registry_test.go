package app

import (
	"testing"

	"github.com/Mitri45/estimator/internal/domain"
)

func mustParticipant(t *testing.T, id, name string, roomID domain.RoomID) *domain.Participant {
	t.Helper()
	p, err := domain.NewParticipant(id, name, roomID)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRoomRegistry(t *testing.T) {
	reg := NewRoomRegistry()

	room, err := domain.NewRoom("Sprint 1")
	if err != nil {
		t.Fatal(err)
	}
	reg.Insert(room)

	got, ok := reg.Get(room.ID)
	if !ok || got.Name != "Sprint 1" {
		t.Fatalf("Get = %+v, %v", got, ok)
	}

	if !reg.Rename(room.ID, "Sprint 2") {
		t.Fatal("rename of existing room reported missing")
	}
	got, _ = reg.Get(room.ID)
	if got.Name != "Sprint 2" {
		t.Errorf("name after rename = %q", got.Name)
	}

	if reg.Rename("missing", "X") {
		t.Error("rename of missing room reported success")
	}
}

func TestRoomRegistryGetReturnsCopy(t *testing.T) {
	reg := NewRoomRegistry()
	room, _ := domain.NewRoom("Sprint 1")
	reg.Insert(room)

	got, _ := reg.Get(room.ID)
	got.Name = "tampered"

	fresh, _ := reg.Get(room.ID)
	if fresh.Name != "Sprint 1" {
		t.Error("registry room mutated through Get copy")
	}
}

func TestParticipantRegistryBindOverwrites(t *testing.T) {
	reg := NewParticipantRegistry()

	reg.Bind("conn-1", mustParticipant(t, "conn-1", "Alice", "room-a"), nil)
	reg.Bind("conn-1", mustParticipant(t, "conn-1", "Alice", "room-b"), nil)

	if reg.Len() != 1 {
		t.Fatalf("len = %d, want 1 (one connection, one participant)", reg.Len())
	}
	if reg.HasMembers("room-a") {
		t.Error("stale membership left after rebind")
	}
	if !reg.HasMembers("room-b") {
		t.Error("new membership missing after rebind")
	}
}

func TestSnapshotRoomFilters(t *testing.T) {
	reg := NewParticipantRegistry()
	reg.Bind("conn-1", mustParticipant(t, "conn-1", "Alice", "room-a"), nil)
	reg.Bind("conn-2", mustParticipant(t, "conn-2", "Bob", "room-a"), nil)
	reg.Bind("conn-3", mustParticipant(t, "conn-3", "Carol", "room-b"), nil)

	ps := reg.SnapshotRoom("room-a")
	if len(ps) != 2 {
		t.Fatalf("snapshot = %d participants, want 2", len(ps))
	}
	for _, p := range ps {
		if p.RoomID != "room-a" {
			t.Errorf("snapshot leaked participant from %s", p.RoomID)
		}
	}

	if got := reg.SnapshotRoom("missing"); len(got) != 0 {
		t.Errorf("snapshot of unknown room = %d participants", len(got))
	}
}

func TestSnapshotRoomReturnsDeepCopies(t *testing.T) {
	reg := NewParticipantRegistry()
	reg.Bind("conn-1", mustParticipant(t, "conn-1", "Alice", "room-a"), nil)
	reg.Update("conn-1", func(p *domain.Participant) {
		p.SetEstimates(3, 5, 2)
	})

	snap := reg.SnapshotRoom("room-a")
	*snap[0].Risk = 99

	fresh := reg.SnapshotRoom("room-a")
	if *fresh[0].Risk != 3 {
		t.Error("registry participant mutated through snapshot")
	}
}

func TestRemoveReportsFormerRoom(t *testing.T) {
	reg := NewParticipantRegistry()
	reg.Bind("conn-1", mustParticipant(t, "conn-1", "Alice", "room-a"), nil)

	roomID, ok := reg.Remove("conn-1")
	if !ok || roomID != "room-a" {
		t.Fatalf("Remove = %q, %v", roomID, ok)
	}
	if _, ok := reg.Remove("conn-1"); ok {
		t.Error("second remove reported success")
	}
}
