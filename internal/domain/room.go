// Package domain contains entity without logic, just meta-data
package domain

import (
	"crypto/rand"
	"errors"
)

const (
	MaxRoomNameLen = 64

	// DefaultRoomTokenLen matches the short ids carried by share links.
	DefaultRoomTokenLen = 7
)

var (
	ErrRoomNameEmpty   = errors.New("room name empty")
	ErrRoomNameTooLong = errors.New("room name too long")
)

type (
	RoomID   string
	RoomName string
)

type Room struct {
	ID   RoomID   `json:"id"`
	Name RoomName `json:"name"`
}

// NewRoom validates the display name and assigns a fresh token id.
func NewRoom(name string) (*Room, error) {
	if len(name) == 0 {
		return nil, ErrRoomNameEmpty
	}
	if len(name) > MaxRoomNameLen {
		return nil, ErrRoomNameTooLong
	}
	return &Room{ID: NewRoomID(DefaultRoomTokenLen), Name: RoomName(name)}, nil
}

const roomTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewRoomID returns a short random alphanumeric token. Rejection sampling
// keeps the distribution uniform over the alphabet.
func NewRoomID(n int) RoomID {
	max := byte(255 - (256 % len(roomTokenAlphabet)))

	out := make([]byte, 0, n)
	buf := make([]byte, n*2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if b <= max {
				out = append(out, roomTokenAlphabet[int(b)%len(roomTokenAlphabet)])
				if len(out) == n {
					return RoomID(out)
				}
			}
		}
	}
	return RoomID(out)
}
