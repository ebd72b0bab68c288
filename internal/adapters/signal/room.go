package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/Mitri45/estimator/internal/core"
	"github.com/Mitri45/estimator/internal/domain"
)

func (ctl *Controller) handleCreateRoom(
	id core.ConnectionID,
	conn *wsConn,
	data []byte,
) {
	type createPayload struct {
		Type     string `json:"type"`
		RoomName string `json:"roomName"`
		UserName string `json:"userName"`
	}
	var p createPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad create_room payload")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "bad_payload",
		})
		return
	}

	if !ctl.createLimiter.Allow(id) {
		log.Warn().Str("module", "signal").Str("conn_id", string(id)).Msg("create_room rate limited")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "too many rooms created, slow down",
		})
		return
	}

	log.Info().Str("module", "signal").Str("conn_id", string(id)).Str("room_name", p.RoomName).Str("user_name", p.UserName).Msg("create_room")
	ctl.Coord.CreateRoom(id, conn, p.RoomName, p.UserName)
}

func (ctl *Controller) handleJoinRoom(
	id core.ConnectionID,
	conn *wsConn,
	data []byte,
) {
	type joinPayload struct {
		Type     string `json:"type"`
		RoomID   string `json:"roomId"`
		UserName string `json:"userName"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join_room payload")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "bad_payload",
		})
		return
	}

	log.Info().Str("module", "signal").Str("conn_id", string(id)).Str("room_id", p.RoomID).Msg("join_room")
	ctl.Coord.JoinRoom(id, conn, domain.RoomID(p.RoomID), p.UserName)
}

func (ctl *Controller) handleChangeRoomName(
	id core.ConnectionID,
	conn *wsConn,
	data []byte,
) {
	type renamePayload struct {
		Type        string `json:"type"`
		RoomID      string `json:"roomId"`
		NewRoomName string `json:"newRoomName"`
	}
	var p renamePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad change_room_name payload")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "bad_payload",
		})
		return
	}

	log.Info().Str("module", "signal").Str("conn_id", string(id)).Str("room_id", p.RoomID).Str("name", p.NewRoomName).Msg("change_room_name")
	ctl.Coord.RenameRoom(id, domain.RoomID(p.RoomID), domain.RoomName(p.NewRoomName))
}

func (ctl *Controller) handleResetRoom(
	id core.ConnectionID,
	conn *wsConn,
	data []byte,
) {
	type resetPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
	}
	var p resetPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad reset_room payload")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "bad_payload",
		})
		return
	}

	log.Info().Str("module", "signal").Str("conn_id", string(id)).Str("room_id", p.RoomID).Msg("reset_room")
	ctl.Coord.ResetRound(id, domain.RoomID(p.RoomID))
}
