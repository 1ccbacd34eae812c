package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-pkgz/rest"

	"github.com/umputun/strikeguard/lib/moderation"
)

// learnHandler handles POST /learn/ham and POST /learn/spam requests.
// A request with reporter_id is a user report, it is kept for review and doesn't change learned patterns.
func (s *Server) learnHandler(spam bool) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			Text       string `json:"text"`
			ReporterID int64  `json:"reporter_id"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.sendError(w, http.StatusBadRequest, "can't decode request", err)
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			s.sendError(w, http.StatusBadRequest, "empty text", nil)
			return
		}

		if req.ReporterID != 0 {
			if err := s.Engine.AddReport(req.ReporterID, req.Text, spam); err != nil {
				s.sendError(w, http.StatusInternalServerError, "can't save report", err)
				return
			}
			rest.RenderJSON(w, rest.JSON{"reported": true, "reporter_id": req.ReporterID, "text": req.Text})
			return
		}

		learnFn := s.Engine.RecordFalsePositive
		if spam {
			learnFn = s.Engine.RecordFalseNegative
		}
		if err := learnFn(req.Text); err != nil {
			s.sendError(w, http.StatusInternalServerError, "can't save learned message", err)
			return
		}
		rest.RenderJSON(w, rest.JSON{"learned": true, "text": req.Text})
	}
}

// getLearningHandler handles GET /learn request
func (s *Server) getLearningHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"stats": s.Engine.LearningStats(), "keywords": s.Engine.LearnedKeywords(20)})
}

// resetLearningHandler handles DELETE /learn request
func (s *Server) resetLearningHandler(w http.ResponseWriter, _ *http.Request) {
	if err := s.Engine.ResetLearning(); err != nil {
		s.sendError(w, http.StatusInternalServerError, "can't save reset learning", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"reset": true})
}

// getSettingsHandler handles GET /settings request
func (s *Server) getSettingsHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, s.Engine.Settings())
}

// updateSettingsHandler handles PUT /settings request. Only fields present in the body are changed,
// out of range values are rejected and nothing is changed.
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	req := struct {
		StrikeLimit *int     `json:"strike_limit"`
		ResetHours  *int     `json:"reset_interval_hours"`
		Threshold   *float64 `json:"threshold"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "can't decode request", err)
		return
	}

	// all fields are validated before any is applied
	upd := s.Engine.Settings()
	if req.StrikeLimit != nil {
		upd.StrikeLimit = *req.StrikeLimit
	}
	if req.ResetHours != nil {
		upd.ResetHours = *req.ResetHours
	}
	if req.Threshold != nil {
		upd.Threshold = *req.Threshold
	}
	err := upd.Validate()
	if err == nil && req.StrikeLimit != nil {
		err = s.Engine.SetStrikeLimit(upd.StrikeLimit)
	}
	if err == nil && req.ResetHours != nil {
		err = s.Engine.SetResetWindow(upd.ResetHours)
	}
	if err == nil && req.Threshold != nil {
		err = s.Engine.SetThreshold(upd.Threshold)
	}

	switch {
	case errors.Is(err, moderation.ErrInvalidSetting):
		s.sendError(w, http.StatusBadRequest, "invalid setting", err)
		return
	case err != nil:
		s.sendError(w, http.StatusInternalServerError, "can't save settings", err)
		return
	}
	rest.RenderJSON(w, s.Engine.Settings())
}
