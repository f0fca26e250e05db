// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/resto-sync/internal/app"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/utils"
)

// withHashing checks the HashSHA256 header of the request body and signs
// the response body with the same key. It is a pass-through when the server
// has no hash key.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if !h.signer.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			utils.WriteError(w, app.MsgReadBodyFailed, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Error().Str("func", "*Handler.withHashing").Msg("request is not signed")
			utils.WriteError(w, ErrMissingSignature.Error(), http.StatusBadRequest)
			return
		}
		if !h.signer.Verify(body, signature) {
			log.Error().Str("func", "*Handler.withHashing").
				Str("hash from request", signature).
				Str("hashed body", h.signer.Sign(body)).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		bw := &bufferedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		w.Header().Set(utils.HashHeader, h.signer.Sign(bw.body.Bytes()))
		bw.flush()
	})
}
