package webapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-pkgz/rest"

	"github.com/umputun/strikeguard/app/storage"
	"github.com/umputun/strikeguard/lib/strikes"
)

// getStrikesHandler handles GET /strikes/{id} request, unknown users get a clean record
func (s *Server) getStrikesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad user id", err)
		return
	}
	rec := s.Engine.GetStrikes(id)
	if rec.Reasons == nil {
		rec.Reasons = []strikes.Reason{}
	}
	rest.RenderJSON(w, rec)
}

// resetStrikesHandler handles POST /strikes/{id}/reset request
func (s *Server) resetStrikesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad user id", err)
		return
	}
	ok, err := s.Moderator.ResetStrikes(r.Context(), id, s.actor(r))
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "can't reset strikes", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"user_id": id, "reset": ok})
}

// banHandler handles POST /ban/{id} request. Body with user_name is optional.
func (s *Server) banHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.userFromRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad request", err)
		return
	}
	if err := s.Moderator.Ban(r.Context(), user, s.actor(r)); err != nil {
		s.sendError(w, http.StatusInternalServerError, "can't ban user", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"user_id": user.ID, "banned": true})
}

// unbanHandler handles POST /unban/{id} request
func (s *Server) unbanHandler(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad user id", err)
		return
	}
	ok, err := s.Moderator.Unban(r.Context(), id, s.actor(r))
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "can't unban user", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"user_id": id, "unbanned": ok})
}

// bannedHandler handles GET /banned request
func (s *Server) bannedHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"banned": s.Engine.Banned()})
}

// getWhitelistHandler handles GET /whitelist request
func (s *Server) getWhitelistHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"user_ids": s.Moderator.Whitelisted()})
}

// addWhitelistHandler handles POST /whitelist/{id} request. Body with user_name is optional.
func (s *Server) addWhitelistHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.userFromRequest(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad request", err)
		return
	}
	if err := s.Moderator.AddWhitelist(r.Context(), user, s.actor(r)); err != nil {
		s.sendError(w, http.StatusInternalServerError, "can't whitelist user", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"user_id": user.ID, "whitelisted": true})
}

// removeWhitelistHandler handles DELETE /whitelist/{id} request
func (s *Server) removeWhitelistHandler(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad user id", err)
		return
	}
	err = s.Moderator.RemoveWhitelist(r.Context(), id, s.actor(r))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.sendError(w, http.StatusNotFound, "user is not whitelisted", err)
		return
	case err != nil:
		s.sendError(w, http.StatusInternalServerError, "can't remove user from whitelist", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"user_id": id, "whitelisted": false})
}

// actionsHandler handles GET /actions?limit=N&user=ID request
func (s *Server) actionsHandler(w http.ResponseWriter, r *http.Request) {
	if s.Actions == nil {
		s.sendError(w, http.StatusNotImplemented, "action log is not available", nil)
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad limit", err)
		return
	}

	var acts []storage.Action
	if u := r.URL.Query().Get("user"); u != "" {
		id, perr := strconv.ParseInt(u, 10, 64)
		if perr != nil {
			s.sendError(w, http.StatusBadRequest, "bad user id", perr)
			return
		}
		acts, err = s.Actions.ReadUser(r.Context(), id, limit)
	} else {
		acts, err = s.Actions.Read(r.Context(), limit)
	}
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "can't read actions", err)
		return
	}
	rest.RenderJSON(w, acts)
}

// userFromRequest makes user from {id} path value and optional json body with user names
func (s *Server) userFromRequest(r *http.Request) (strikes.User, error) {
	id, err := userIDParam(r)
	if err != nil {
		return strikes.User{}, err
	}
	user := strikes.User{}
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil && !errors.Is(err, io.EOF) {
		return strikes.User{}, err
	}
	user.ID = id
	return user, nil
}
