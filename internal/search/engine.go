package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wajeht/bang/internal/domain"
	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/session"
)

// Responder abstracts the three ways a resolution can answer: a plain HTTP
// redirect, an inline-script HTML page, or a JSON payload.
type Responder interface {
	Redirect(url string)
	SendHTML(status int, body string)
	SendJSON(status int, v any)
}

// BangDict is the read side of the static bang dictionary.
type BangDict interface {
	Lookup(body string) (domain.BangDef, bool)
}

// BangStore is the slice of the relational store the engine needs.
type BangStore interface {
	FindCustomBang(ctx context.Context, userID int64, trigger string) (*domain.CustomBang, error)
	InsertCustomBang(ctx context.Context, bang domain.CustomBang) (*domain.CustomBang, error)
}

// Background enqueues deferred work. Implementations must never block and
// never fail synchronously; dropped work is logged, not surfaced.
type Background interface {
	TrackSearch(sessionID string)
	InsertBookmark(userID int64, url, title string)
	FetchActionTitle(actionID int64, url string)
	TouchBang(bangID int64)
}

// Request carries one search through the engine.
type Request struct {
	Res       Responder
	User      *domain.User // nil for anonymous searches
	Query     string
	SessionID string
}

// Engine resolves raw search queries into navigation targets.
type Engine struct {
	dict     BangDict
	store    BangStore
	sessions session.Store
	bg       Background
	log      logger.Logger

	// wait is swappable in tests so delayed searches don't slow the suite.
	wait func(ctx context.Context, d time.Duration) error
}

func NewEngine(dict BangDict, store BangStore, sessions session.Store, bg Background, log logger.Logger) *Engine {
	return &Engine{
		dict:     dict,
		store:    store,
		sessions: sessions,
		bg:       bg,
		log:      log,
		wait:     sleepCtx,
	}
}

// Resolve runs one query to completion, always answering through req.Res
// unless a downstream store fails, in which case the error propagates and
// the caller owns the response.
func (e *Engine) Resolve(ctx context.Context, req Request) error {
	query := strings.TrimSpace(req.Query)
	parsed := domain.ParseQuery(query)

	if req.User == nil {
		return e.resolveAnonymous(ctx, req, query, parsed)
	}
	return e.resolveUser(ctx, req, query, parsed)
}

func (e *Engine) resolveAnonymous(ctx context.Context, req Request, query string, parsed domain.ParsedQuery) error {
	st, err := e.sessions.Get(ctx, req.SessionID)
	if err != nil {
		// A limiter outage should not take search down with it; proceed
		// as if the session were fresh.
		e.log.Warn("session state unavailable, skipping rate limiting",
			logger.String("session", req.SessionID), logger.Error(err))
		st = session.State{}
	}

	// Counting happens off the request path.
	e.bg.TrackSearch(req.SessionID)

	if st.WarnOnThis() {
		msg := fmt.Sprintf("You have used %d out of %d searches. Log in for unlimited searches!", st.SearchCount+1, session.SearchLimit)
		if st.SearchesLeft() <= 0 {
			msg = "You've exceeded the search limit for unauthenticated users. Please log in for unlimited searches without delays."
		}
		target := domain.ProviderURL(domain.DefaultProvider, parsed.SearchTerm)
		req.Res.SendHTML(http.StatusOK, redirectScript(target, msg))
		return nil
	}

	var target string
	if parsed.HasTrigger() {
		if def, ok := e.dict.Lookup(parsed.TriggerBody); ok {
			if parsed.SearchTerm != "" {
				target = def.SearchURL(parsed.SearchTerm)
			} else {
				target = def.HomeURL()
			}
		}
	}
	if target == "" {
		// Unknown bangs fall through with the bang kept in the terms, so
		// the provider sees exactly what the user typed.
		target = domain.ProviderURL(domain.DefaultProvider, query)
	}

	if st.CumulativeDelay > 0 {
		if err := e.wait(ctx, st.CumulativeDelay); err != nil {
			return err
		}
		msg := fmt.Sprintf("This search was delayed by %g seconds due to rate limiting.", st.CumulativeDelay.Seconds())
		req.Res.SendHTML(http.StatusOK, redirectScript(target, msg))
		return nil
	}

	req.Res.Redirect(target)
	return nil
}

func (e *Engine) resolveUser(ctx context.Context, req Request, query string, parsed domain.ParsedQuery) error {
	if path, ok := domain.DirectCommands[query]; ok {
		req.Res.Redirect(path)
		return nil
	}

	switch parsed.Trigger {
	case "!bm":
		return e.addBookmark(req, query, parsed)
	case "!add":
		return e.addBang(ctx, req, query)
	}

	if parsed.HasTrigger() {
		custom, err := e.store.FindCustomBang(ctx, req.User.ID, parsed.Trigger)
		if err != nil {
			return fmt.Errorf("looking up custom bang: %w", err)
		}
		if custom != nil {
			e.bg.TouchBang(custom.ID)
			req.Res.Redirect(custom.RedirectURL(parsed.SearchTerm))
			return nil
		}

		if def, ok := e.dict.Lookup(parsed.TriggerBody); ok {
			var target string
			switch {
			case parsed.SearchTerm != "":
				target = def.SearchURL(parsed.SearchTerm)
			case strings.Contains(def.URLTemplate, domain.Placeholder):
				target = def.SearchURL("")
			default:
				target = def.HomeURL()
			}
			req.Res.Redirect(target)
			return nil
		}
	}

	term := parsed.SearchTerm
	if term == "" {
		if parsed.HasTrigger() {
			// A bare unknown bang still deserves results: search for its
			// body rather than the literal "!xyz".
			term = parsed.TriggerBody
		} else {
			term = query
		}
	}
	req.Res.Redirect(domain.ProviderURL(req.User.Provider(), term))
	return nil
}

func (e *Engine) addBookmark(req Request, query string, parsed domain.ParsedQuery) error {
	if parsed.EmbeddedURL == "" || !domain.IsValidURL(parsed.EmbeddedURL) {
		req.Res.SendHTML(http.StatusUnprocessableEntity, goBackScript("Invalid or missing URL"))
		return nil
	}

	title := bookmarkTitle(query, parsed.EmbeddedURL)
	e.bg.InsertBookmark(req.User.ID, parsed.EmbeddedURL, title)
	req.Res.Redirect(parsed.EmbeddedURL)
	return nil
}

// bookmarkTitle extracts the optional explicit title: everything between the
// !bm command and the first occurrence of the URL in the raw query.
func bookmarkTitle(query, url string) string {
	idx := strings.Index(query, url)
	if idx <= len("!bm") {
		return ""
	}
	return strings.TrimSpace(query[len("!bm"):idx])
}

func (e *Engine) addBang(ctx context.Context, req Request, query string) error {
	fields := strings.Fields(query)
	var rawTrigger, bangURL string
	if len(fields) > 1 {
		rawTrigger = fields[1]
	}
	if len(fields) > 2 {
		bangURL = fields[2]
	}
	if rawTrigger == "" || bangURL == "" {
		req.Res.SendHTML(http.StatusUnprocessableEntity, goBackScript("Invalid trigger or empty URL"))
		return nil
	}

	trigger := domain.NormalizeTrigger(rawTrigger)
	if domain.SystemBangs[trigger] {
		msg := fmt.Sprintf("%s is a bang's systems command. Please enter a new trigger:", trigger)
		req.Res.SendHTML(http.StatusUnprocessableEntity, promptScript(msg, bangURL))
		return nil
	}

	existing, err := e.store.FindCustomBang(ctx, req.User.ID, trigger)
	if err != nil {
		return fmt.Errorf("checking trigger: %w", err)
	}
	if existing != nil {
		msg := fmt.Sprintf("Trigger %s already exists. Please enter a new trigger:", trigger)
		req.Res.SendHTML(http.StatusUnprocessableEntity, promptScript(msg, bangURL))
		return nil
	}

	created, err := e.store.InsertCustomBang(ctx, domain.CustomBang{
		UserID:  req.User.ID,
		Trigger: trigger,
		Name:    domain.PendingTitle,
		URL:     bangURL,
		Kind:    domain.ActionRedirect,
	})
	if err != nil {
		// Concurrent inserts of the same trigger surface the unique
		// constraint here; let the caller answer with a generic failure.
		return fmt.Errorf("creating custom bang: %w", err)
	}

	e.bg.FetchActionTitle(created.ID, bangURL)
	req.Res.SendHTML(http.StatusOK, goBackOnlyScript())
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
