// Package webapi provides the administrative web API of the moderation service.
package webapi

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/strikeguard/app/moderator"
	"github.com/umputun/strikeguard/app/storage"
	"github.com/umputun/strikeguard/lib/moderation"
	"github.com/umputun/strikeguard/lib/strikes"
	"github.com/umputun/strikeguard/lib/verdict"
)

//go:generate moq --out mocks/engine.go --pkg mocks --with-resets --skip-ensure . Engine
//go:generate moq --out mocks/moderator.go --pkg mocks --with-resets --skip-ensure . Moderator
//go:generate moq --out mocks/actions.go --pkg mocks --with-resets --skip-ensure . Actions
//go:generate moq --out mocks/snapshots.go --pkg mocks --with-resets --skip-ensure . Snapshots

// Server is a web API server.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	Version    string    // version to show in /ping
	ListenAddr string    // listen address
	Engine     Engine    // moderation engine
	Moderator  Moderator // message pipeline
	Actions    Actions   // moderation action log, optional
	Snapshots  Snapshots // snapshot storage, optional, used for stats
	AuthUser   string    // basic auth user, "strikeguard" if empty
	AuthPasswd string    // basic auth password, no auth if empty
	RateLimit  float64   // max requests per second per client, 0 - no limit
	Dbg        bool      // debug mode, logs all requests
}

// Engine is the moderation engine interface
type Engine interface {
	Score(text string, threshold float64) verdict.Verdict
	GetStrikes(userID int64) strikes.Record
	Banned() []int64
	RecordFalsePositive(msg string) error
	RecordFalseNegative(msg string) error
	AddReport(userID int64, msg string, spam bool) error
	ResetLearning() error
	LearningStats() moderation.LearningStats
	LearnedKeywords(n int) []string
	Settings() moderation.Settings
	SetStrikeLimit(n int) error
	SetResetWindow(hours int) error
	SetThreshold(f float64) error
}

// Moderator is the message pipeline interface
type Moderator interface {
	OnMessage(ctx context.Context, msg moderator.Message) moderator.Response
	Ban(ctx context.Context, user strikes.User, by string) error
	Unban(ctx context.Context, userID int64, by string) (bool, error)
	ResetStrikes(ctx context.Context, userID int64, by string) (bool, error)
	AddWhitelist(ctx context.Context, user strikes.User, by string) error
	RemoveWhitelist(ctx context.Context, userID int64, by string) error
	Whitelisted() []int64
	History(n int) []verdict.Record
	SpamHistory(n int) []verdict.Record
	Stats() moderator.Stats
}

// Actions is the moderation action log interface
type Actions interface {
	Read(ctx context.Context, limit int) ([]storage.Action, error)
	ReadUser(ctx context.Context, userID int64, limit int) ([]storage.Action, error)
}

// Snapshots lists stored engine snapshots
type Snapshots interface {
	List(ctx context.Context) ([]storage.SnapshotInfo, error)
}

const (
	defaultAuthUser = "strikeguard"
	defaultLimit    = 100
	maxLimit        = 1000
)

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	if config.AuthUser == "" {
		config.AuthUser = defaultAuthUser
	}
	return &Server{Config: config}
}

// Run starts the server and blocks until ctx is done
func (s *Server) Run(ctx context.Context) error {
	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server, user %q", s.AuthUser)
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	srv := &http.Server{Addr: s.ListenAddr, Handler: s.handler(), ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

// handler makes the router with all middlewares and routes
func (s *Server) handler() http.Handler {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.AppInfo("strikeguard", "umputun", s.Version), rest.Ping)
	if s.Dbg {
		router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}
	if s.RateLimit > 0 {
		lmt := tollbooth.NewLimiter(s.RateLimit, nil)
		lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
		router.Use(func(next http.Handler) http.Handler { return tollbooth.LimitHandler(lmt, next) })
	}
	router.Use(rest.SizeLimit(1024 * 1024)) // 1M max request size
	if s.AuthPasswd != "" {
		router.Use(rest.BasicAuthWithUserPasswd(s.AuthUser, s.AuthPasswd))
	}

	s.routes(router)
	return router
}

func (s *Server) routes(router *routegroup.Bundle) {
	router.HandleFunc("POST /check", s.checkHandler)     // score a message without side effects
	router.HandleFunc("POST /message", s.messageHandler) // run a message through the full pipeline
	router.HandleFunc("GET /history", s.historyHandler)  // recently checked messages
	router.HandleFunc("GET /stats", s.statsHandler)      // counters and state summary

	router.Route(func(users *routegroup.Bundle) { // strikes, bans and whitelist
		users.HandleFunc("GET /strikes/{id}", s.getStrikesHandler)
		users.HandleFunc("POST /strikes/{id}/reset", s.resetStrikesHandler)
		users.HandleFunc("POST /ban/{id}", s.banHandler)
		users.HandleFunc("POST /unban/{id}", s.unbanHandler)
		users.HandleFunc("GET /banned", s.bannedHandler)
		users.HandleFunc("GET /whitelist", s.getWhitelistHandler)
		users.HandleFunc("POST /whitelist/{id}", s.addWhitelistHandler)
		users.HandleFunc("DELETE /whitelist/{id}", s.removeWhitelistHandler)
		users.HandleFunc("GET /actions", s.actionsHandler)
	})

	router.Route(func(learn *routegroup.Bundle) { // learning and settings
		learn.HandleFunc("POST /learn/ham", s.learnHandler(false))
		learn.HandleFunc("POST /learn/spam", s.learnHandler(true))
		learn.HandleFunc("GET /learn", s.getLearningHandler)
		learn.HandleFunc("DELETE /learn", s.resetLearningHandler)
		learn.HandleFunc("GET /settings", s.getSettingsHandler)
		learn.HandleFunc("PUT /settings", s.updateSettingsHandler)
	})
}

// checkHandler handles POST /check request.
// It scores the text with an optional threshold and returns the verdict, no strikes are applied.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Text      string  `json:"text"`
		Threshold float64 `json:"threshold,omitempty"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "can't decode request", err)
		return
	}
	res := s.Engine.Score(req.Text, req.Threshold)
	log.Printf("[DEBUG] check %q: %s", req.Text, res)
	rest.RenderJSON(w, res)
}

// messageHandler handles POST /message request.
// It runs the message through the moderator and returns the action for the transport.
func (s *Server) messageHandler(w http.ResponseWriter, r *http.Request) {
	var msg moderator.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.sendError(w, http.StatusBadRequest, "can't decode request", err)
		return
	}
	if msg.User.ID == 0 {
		s.sendError(w, http.StatusBadRequest, "user id is required", nil)
		return
	}
	rest.RenderJSON(w, s.Moderator.OnMessage(r.Context(), msg))
}

// historyHandler handles GET /history?limit=N&spam=true request
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "bad limit", err)
		return
	}
	if r.URL.Query().Get("spam") == "true" {
		rest.RenderJSON(w, s.Moderator.SpamHistory(limit))
		return
	}
	rest.RenderJSON(w, s.Moderator.History(limit))
}

// statsHandler handles GET /stats request
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	resp := rest.JSON{
		"moderation": s.Moderator.Stats(),
		"learning":   s.Engine.LearningStats(),
		"settings":   s.Engine.Settings(),
		"banned":     len(s.Engine.Banned()),
		"whitelist":  len(s.Moderator.Whitelisted()),
	}
	if s.Snapshots != nil {
		snaps, err := s.Snapshots.List(r.Context())
		if err != nil {
			s.sendError(w, http.StatusInternalServerError, "can't list snapshots", err)
			return
		}
		resp["snapshots"] = snaps
	}
	rest.RenderJSON(w, resp)
}

// sendError renders json error with the status code
func (s *Server) sendError(w http.ResponseWriter, code int, msg string, err error) {
	resp := rest.JSON{"error": msg}
	if err != nil {
		resp["details"] = err.Error()
		log.Printf("[WARN] %s: %v", msg, err)
	}
	w.WriteHeader(code)
	rest.RenderJSON(w, resp)
}

// actor returns the name of the admin making the request, used in the action log
func (s *Server) actor(r *http.Request) string {
	if user, _, ok := r.BasicAuth(); ok && user != "" {
		return user
	}
	return "webapi"
}

// userIDParam parses {id} path value
func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", r.PathValue("id"), err)
	}
	if id == 0 {
		return 0, fmt.Errorf("user id can't be zero")
	}
	return id, nil
}

// limitParam parses optional limit query parameter
func limitParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive number, got %q", v)
	}
	return min(limit, maxLimit), nil
}

// GenerateRandomPassword generates a random password of a given length
func GenerateRandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+"

	var password strings.Builder
	charsetSize := big.NewInt(int64(len(charset)))
	for range length {
		n, err := rand.Int(rand.Reader, charsetSize)
		if err != nil {
			return "", err
		}
		password.WriteByte(charset[n.Int64()])
	}
	return password.String(), nil
}
