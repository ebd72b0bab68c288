package domain

import (
	"strings"
	"testing"
)

func TestNewRoom(t *testing.T) {
	room, err := NewRoom("Sprint 1")
	if err != nil {
		t.Fatal(err)
	}
	if room.Name != "Sprint 1" {
		t.Errorf("name = %q", room.Name)
	}
	if len(room.ID) != DefaultRoomTokenLen {
		t.Errorf("id length = %d, want %d", len(room.ID), DefaultRoomTokenLen)
	}
}

func TestNewRoomValidation(t *testing.T) {
	if _, err := NewRoom(""); err != ErrRoomNameEmpty {
		t.Errorf("err = %v, want ErrRoomNameEmpty", err)
	}
	if _, err := NewRoom(strings.Repeat("x", MaxRoomNameLen+1)); err != ErrRoomNameTooLong {
		t.Errorf("err = %v, want ErrRoomNameTooLong", err)
	}
}

func TestNewRoomID(t *testing.T) {
	seen := make(map[RoomID]bool)
	for i := 0; i < 1000; i++ {
		id := NewRoomID(7)
		if len(id) != 7 {
			t.Fatalf("token length = %d", len(id))
		}
		for _, r := range string(id) {
			if !strings.ContainsRune(roomTokenAlphabet, r) {
				t.Fatalf("token %q contains %q outside alphabet", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("token %q generated twice in 1000 draws", id)
		}
		seen[id] = true
	}
}
