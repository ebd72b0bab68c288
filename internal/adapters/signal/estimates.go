package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/Mitri45/estimator/internal/core"
)

func (ctl *Controller) handleSubmitEstimates(
	id core.ConnectionID,
	conn *wsConn,
	data []byte,
) {
	type submitPayload struct {
		Type        string `json:"type"`
		Risk        int    `json:"risk"`
		Effort      int    `json:"effort"`
		Uncertainty int    `json:"uncertainty"`
	}
	var p submitPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad submit_estimates payload")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "bad_payload",
		})
		return
	}

	log.Info().Str("module", "signal").Str("conn_id", string(id)).Int("risk", p.Risk).Int("effort", p.Effort).Int("uncertainty", p.Uncertainty).Msg("submit_estimates")
	ctl.Coord.SubmitEstimates(id, p.Risk, p.Effort, p.Uncertainty)
}
