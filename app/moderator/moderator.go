// Package moderator runs incoming chat messages through the moderation engine and decides what the transport
// should do with them. It owns everything around the engine: whitelist, link and mention pre-checks,
// stats counters, the history of checked messages and the moderation action log.
package moderator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/forPelevin/gomoji"
	"github.com/hashicorp/go-multierror"

	"github.com/umputun/strikeguard/app/storage"
	"github.com/umputun/strikeguard/lib/moderation"
	"github.com/umputun/strikeguard/lib/strikes"
	"github.com/umputun/strikeguard/lib/verdict"
)

//go:generate moq --out mocks/engine.go --pkg mocks --skip-ensure --with-resets . Engine
//go:generate moq --out mocks/whitelist_store.go --pkg mocks --skip-ensure --with-resets . WhitelistStore
//go:generate moq --out mocks/action_store.go --pkg mocks --skip-ensure --with-resets . ActionStore

// Moderator checks messages and keeps whitelist, stats and history. Thread-safe.
type Moderator struct {
	Config
	engine    Engine
	whitelist WhitelistStore
	actions   ActionStore

	wlLock      sync.RWMutex
	whitelisted map[int64]struct{}

	stats   stats
	history *verdict.History
	logLock sync.Mutex
}

// Config is a set of parameters for Moderator
type Config struct {
	URLBlocking     bool          // delete messages with links and domain names
	MentionBlocking bool          // delete messages with @mentions
	Dry             bool          // detect and log only, no strikes and no actions
	HistorySize     int           // number of checked messages kept in history
	ActionsLog      io.Writer     // json lines log of moderation actions, optional
	StoreTimeout    time.Duration // timeout for whitelist and action store calls, 0 - no timeout
}

// Engine is the subset of moderation.Engine used by Moderator
type Engine interface {
	Check(text string) verdict.Verdict
	AddStrike(user strikes.User, reason, msg string) (count int, shouldBan bool, err error)
	Ban(userID int64) error
	Unban(userID int64) (bool, error)
	ResetStrikes(userID int64) (bool, error)
	IsBanned(userID int64) bool
	GetStrikes(userID int64) strikes.Record
	Settings() moderation.Settings
	ReloadLexicon(r io.Reader) (int, error)
}

// WhitelistStore is a durable store of whitelisted users
type WhitelistStore interface {
	Add(ctx context.Context, entry storage.WhitelistEntry) error
	Remove(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]storage.WhitelistEntry, error)
}

// ActionStore is a durable log of moderation actions
type ActionStore interface {
	Add(ctx context.Context, act storage.Action) error
}

// Message is a chat message to check
type Message struct {
	ID   int          `json:"id"`
	User strikes.User `json:"user"`
	Text string       `json:"text"`
}

// Action tells the transport what to do with the message
type Action string

// enum of all actions
const (
	ActionNone   Action = "none"
	ActionDelete Action = "delete" // delete the message and warn the user
	ActionBan    Action = "ban"    // delete the message and ban the user
)

// action kinds written to the action log besides Action values
const (
	kindUnban     = "unban"
	kindReset     = "reset"
	kindWhitelist = "whitelist"
	kindUnlist    = "unwhitelist"
)

// Response is the decision about a single message
type Response struct {
	Action    Action          `json:"action"`
	Reason    string          `json:"reason,omitempty"`
	Verdict   verdict.Verdict `json:"verdict"`
	Strikes   int             `json:"strikes,omitempty"`   // strike count after this message
	Limit     int             `json:"limit,omitempty"`     // strike limit
	Remaining int             `json:"remaining,omitempty"` // strikes left before ban
	Text      string          `json:"text,omitempty"`      // notification to post in the chat
	ReplyTo   int             `json:"reply_to,omitempty"`  // id of the message to delete
}

// New makes a moderator and loads the whitelist from the store. Both stores are optional.
func New(ctx context.Context, engine Engine, wl WhitelistStore, acts ActionStore, cfg Config) (*Moderator, error) {
	if engine == nil {
		return nil, fmt.Errorf("no engine provided")
	}
	res := &Moderator{
		Config:      cfg,
		engine:      engine,
		whitelist:   wl,
		actions:     acts,
		whitelisted: map[int64]struct{}{},
		history:     verdict.NewHistory(cfg.HistorySize),
	}
	if wl == nil {
		return res, nil
	}

	sctx, cancel := res.storeCtx(ctx)
	defer cancel()
	entries, err := wl.List(sctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load whitelist: %w", err)
	}
	for _, e := range entries {
		res.whitelisted[e.UserID] = struct{}{}
	}
	log.Printf("[INFO] loaded %d whitelisted users", len(entries))
	return res, nil
}

// OnMessage checks the message and returns the action to take.
// Banned and whitelisted users are not checked, system messages (user id 0) are ignored.
func (m *Moderator) OnMessage(ctx context.Context, msg Message) Response {
	if msg.User.ID == 0 || strings.TrimSpace(msg.Text) == "" {
		return Response{Action: ActionNone}
	}
	m.stats.scanned.Add(1)
	m.stats.emojis.Add(int64(len(gomoji.CollectAll(msg.Text))))

	if m.engine.IsBanned(msg.User.ID) {
		log.Printf("[DEBUG] skip message from banned user %s", msg.User)
		return Response{Action: ActionNone}
	}
	if m.IsWhitelisted(msg.User.ID) {
		log.Printf("[DEBUG] skip message from whitelisted user %s", msg.User)
		return Response{Action: ActionNone}
	}

	reason, v := m.precheck(msg.Text)
	if reason == "" {
		v = m.engine.Check(msg.Text)
		m.history.Push(verdict.Record{
			Request: verdict.Request{Msg: msg.Text, UserID: msg.User.ID, UserName: msg.User.Name()},
			Verdict: v,
		})
		if !v.Spam {
			log.Printf("[DEBUG] message from %s is fine, %s", msg.User, v)
			return Response{Action: ActionNone, Verdict: v}
		}
		reason = fmt.Sprintf("spam (%s)", v.Method)
		m.countSpam(v.Method)
	}

	log.Printf("[INFO] violation by %s: %s, %q", msg.User, reason, msg.Text)
	if m.Dry {
		return Response{Action: ActionNone, Reason: reason, Verdict: v}
	}
	return m.enforce(ctx, msg, reason, v)
}

// enforce applies a strike for the violation and bans the user once the limit is reached
func (m *Moderator) enforce(ctx context.Context, msg Message, reason string, v verdict.Verdict) Response {
	m.stats.deleted.Add(1)
	limit := m.engine.Settings().StrikeLimit
	resp := Response{Action: ActionDelete, Reason: reason, Verdict: v, Limit: limit, ReplyTo: msg.ID}

	count, shouldBan, err := m.engine.AddStrike(msg.User, reason, msg.Text)
	if err != nil {
		// the strike is applied in memory, only persisting failed
		log.Printf("[WARN] failed to save strike of %s: %v", msg.User, err)
	}
	resp.Strikes = count

	if shouldBan {
		if err := m.engine.Ban(msg.User.ID); err != nil {
			log.Printf("[WARN] failed to save ban of %s: %v", msg.User, err)
		}
		m.stats.banned.Add(1)
		resp.Action = ActionBan
		resp.Text = fmt.Sprintf("user %s banned, %d strikes reached", msg.User.Name(), limit)
		m.logAction(ctx, storage.Action{Kind: string(ActionBan), UserID: msg.User.ID, UserName: msg.User.Name(),
			Reason: reason, Message: msg.Text, Strikes: count})
		return resp
	}

	resp.Remaining = max(limit-count, 0)
	resp.Text = fmt.Sprintf("warning, strike %d/%d for %s: %s. %d strike(s) remaining before ban",
		count, limit, msg.User.Name(), reason, resp.Remaining)
	m.logAction(ctx, storage.Action{Kind: string(ActionDelete), UserID: msg.User.ID, UserName: msg.User.Name(),
		Reason: reason, Message: msg.Text, Strikes: count})
	return resp
}

// precheck runs link and mention checks, returns the reason if the message should be deleted.
// Returned verdict is a synthetic spam verdict, the engine is not consulted.
func (m *Moderator) precheck(text string) (reason string, v verdict.Verdict) {
	if m.URLBlocking {
		if kind, ok := containsURL(text); ok {
			m.stats.urlBlocked.Add(1)
			return fmt.Sprintf("url_blocked (%s)", kind), verdict.Verdict{Spam: true, Confidence: 1, Probability: -1}
		}
	}
	if m.MentionBlocking {
		if n := countMentions(text); n > 0 {
			m.stats.mentionBlocked.Add(1)
			return fmt.Sprintf("mention_blocked (%d mentions)", n), verdict.Verdict{Spam: true, Confidence: 1, Probability: -1}
		}
	}
	return "", verdict.Verdict{}
}

func (m *Moderator) countSpam(method verdict.Method) {
	m.stats.spam.Add(1)
	switch method {
	case verdict.MethodSevereKeywords:
		m.stats.severe.Add(1)
	case verdict.MethodExplicitKeywords, verdict.MethodKeywordFallback:
		m.stats.keyword.Add(1)
	case verdict.MethodMLModel, verdict.MethodCombined:
		m.stats.ml.Add(1)
	}
}

// Ban bans the user by admin request
func (m *Moderator) Ban(ctx context.Context, user strikes.User, by string) error {
	errs := new(multierror.Error)
	errs = multierror.Append(errs, m.engine.Ban(user.ID))
	m.stats.banned.Add(1)
	errs = multierror.Append(errs, m.logAction(ctx, storage.Action{Kind: string(ActionBan), UserID: user.ID,
		UserName: user.Name(), Reason: "banned by " + by}))
	return errs.ErrorOrNil()
}

// Unban lifts the ban, returns false if the user wasn't banned
func (m *Moderator) Unban(ctx context.Context, userID int64, by string) (bool, error) {
	ok, err := m.engine.Unban(userID)
	if !ok {
		return false, err
	}
	errs := multierror.Append(new(multierror.Error), err)
	errs = multierror.Append(errs, m.logAction(ctx, storage.Action{Kind: kindUnban, UserID: userID,
		Reason: "unbanned by " + by}))
	return true, errs.ErrorOrNil()
}

// ResetStrikes forgives all strikes of the user, returns false if there were none
func (m *Moderator) ResetStrikes(ctx context.Context, userID int64, by string) (bool, error) {
	rec := m.engine.GetStrikes(userID)
	ok, err := m.engine.ResetStrikes(userID)
	if !ok {
		return false, err
	}
	errs := multierror.Append(new(multierror.Error), err)
	errs = multierror.Append(errs, m.logAction(ctx, storage.Action{Kind: kindReset, UserID: userID,
		UserName: rec.UserName, Reason: "strikes reset by " + by, Strikes: rec.Count}))
	return true, errs.ErrorOrNil()
}

// IsWhitelisted reports whether the user bypasses checks
func (m *Moderator) IsWhitelisted(userID int64) bool {
	m.wlLock.RLock()
	defer m.wlLock.RUnlock()
	_, ok := m.whitelisted[userID]
	return ok
}

// AddWhitelist whitelists the user. The in-memory whitelist is updated only if the store accepted it.
func (m *Moderator) AddWhitelist(ctx context.Context, user strikes.User, by string) error {
	if user.ID == 0 {
		return fmt.Errorf("user id can't be zero")
	}
	if m.whitelist != nil {
		sctx, cancel := m.storeCtx(ctx)
		defer cancel()
		entry := storage.WhitelistEntry{UserID: user.ID, UserName: user.Name(), AddedBy: by}
		if err := m.whitelist.Add(sctx, entry); err != nil {
			return fmt.Errorf("failed to whitelist %s: %w", user, err)
		}
	}
	m.wlLock.Lock()
	m.whitelisted[user.ID] = struct{}{}
	m.wlLock.Unlock()
	log.Printf("[INFO] user %s whitelisted by %s", user, by)
	return m.logAction(ctx, storage.Action{Kind: kindWhitelist, UserID: user.ID, UserName: user.Name(),
		Reason: "whitelisted by " + by})
}

// RemoveWhitelist drops the user from the whitelist, storage.ErrNotFound if it wasn't there
func (m *Moderator) RemoveWhitelist(ctx context.Context, userID int64, by string) error {
	m.wlLock.Lock()
	_, known := m.whitelisted[userID]
	delete(m.whitelisted, userID)
	m.wlLock.Unlock()

	if m.whitelist != nil {
		sctx, cancel := m.storeCtx(ctx)
		defer cancel()
		if err := m.whitelist.Remove(sctx, userID); err != nil {
			return fmt.Errorf("failed to remove %d from whitelist: %w", userID, err)
		}
	} else if !known {
		return fmt.Errorf("user %d: %w", userID, storage.ErrNotFound)
	}
	log.Printf("[INFO] user %d removed from whitelist by %s", userID, by)
	return m.logAction(ctx, storage.Action{Kind: kindUnlist, UserID: userID, Reason: "removed from whitelist by " + by})
}

// Whitelisted returns ids of all whitelisted users, sorted
func (m *Moderator) Whitelisted() []int64 {
	m.wlLock.RLock()
	defer m.wlLock.RUnlock()
	res := make([]int64, 0, len(m.whitelisted))
	for id := range m.whitelisted {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// History returns up to n most recent checked messages, oldest first
func (m *Moderator) History(n int) []verdict.Record { return m.history.Last(n) }

// SpamHistory returns up to n most recent messages judged as spam, oldest first
func (m *Moderator) SpamHistory(n int) []verdict.Record { return m.history.Spam(n) }

// Stats returns the current counters
func (m *Moderator) Stats() Stats { return m.stats.get() }

// logAction writes the action to the store and to the actions log. Failures are logged and returned.
func (m *Moderator) logAction(ctx context.Context, act storage.Action) error {
	act.Timestamp = time.Now()
	act.Message = strikes.Excerpt(act.Message)
	errs := new(multierror.Error)

	if m.actions != nil {
		sctx, cancel := m.storeCtx(ctx)
		defer cancel()
		if err := m.actions.Add(sctx, act); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to store %s action: %w", act.Kind, err))
		}
	}

	if m.ActionsLog != nil {
		line, err := json.Marshal(act)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to marshal %s action: %w", act.Kind, err))
		} else {
			m.logLock.Lock()
			_, err = m.ActionsLog.Write(append(line, '\n'))
			m.logLock.Unlock()
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("failed to write %s action: %w", act.Kind, err))
			}
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		log.Printf("[WARN] %v", err)
		return err
	}
	return nil
}

func (m *Moderator) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.StoreTimeout == 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, m.StoreTimeout)
}
