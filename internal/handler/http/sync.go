// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/resto-sync/internal/app"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/utils"
	"github.com/MKhiriev/resto-sync/models"
)

// pull returns the changes recorded after the request cursor.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pullRequest models.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&pullRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Pull(ctx, pullRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error pulling changes")
		writeServiceError(w, err)
		return
	}
	if response.Changes == nil {
		response.Changes = models.ChangeSet{}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// push applies a batch of device changes. Per-record problems travel in the
// response body; only a refused request gets a non-2xx status.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Push(ctx, pushRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("error pushing changes")
		writeServiceError(w, err)
		return
	}

	log.Debug().Str("func", "*Handler.push").
		Int("accepted", len(response.Accepted)).
		Int("rejected", len(response.Rejected)).
		Int("conflicts", len(response.Conflicts)).
		Msg("push applied")

	utils.WriteJSON(w, response, http.StatusOK)
}
