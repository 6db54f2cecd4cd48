// Package session wires the preference store, the recommendation
// deck, and the chat transcript to the backend client, and owns the
// per-session flow: chat turns, recommendation reloads, LinkedIn
// connection, and CV upload.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"careerpilot/internal/config"
	"careerpilot/internal/errors"
	"careerpilot/internal/prefs"
	"careerpilot/internal/recommend"
	"careerpilot/internal/types"
	"careerpilot/internal/utils"
)

// Fixed assistant texts. The error texts are deliberately generic:
// backend failures are not the user's problem to debug mid-chat.
const (
	greetingText      = "Hi! I'm your career planning assistant. How can I help you today?"
	chatErrorText     = "Sorry, I encountered an error. Please try again."
	linkedinErrorText = "Error connecting LinkedIn profile. Please try again."
	cvErrorText       = "Error uploading CV. Please try again."
	resetText         = "Filters reset to defaults. What would you like to explore?"
)

// BackendAPI is the slice of the backend client the controller needs.
type BackendAPI interface {
	Chat(ctx context.Context, message string, prefs types.Preferences) (string, error)
	Recommendations(ctx context.Context, prefs types.Preferences) (types.RecommendationSet, error)
	ConnectLinkedIn(ctx context.Context, linkedinURL string) (types.ConnectLinkedInResponse, error)
	UploadCV(ctx context.Context, path string) (types.UploadCVResponse, error)
}

// Metrics receives session-level counters. A nil Metrics disables
// recording.
type Metrics interface {
	RecordChatTurn(ctx context.Context, success bool)
	RecordChatTurnDuration(ctx context.Context, seconds float64, success bool)
	RecordReload(ctx context.Context, outcome string)
}

// Reload outcomes reported to Metrics.
const (
	ReloadApplied   = "applied"
	ReloadStale     = "stale"
	ReloadThrottled = "throttled"
	ReloadFailed    = "failed"
)

// Controller drives one assistant session.
type Controller struct {
	id         string
	store      *prefs.Store
	deck       *recommend.Deck
	transcript *recommend.Transcript
	api        BackendAPI
	limiter    *rate.Limiter
	logger     *errors.Logger
	metrics    Metrics

	cvMaxSize    int64
	cvExtensions []string

	// Reload sequencing: each reload takes a monotonic sequence
	// number before calling the backend, and a response applies only
	// if no later reload has applied first. Late replies from
	// superseded reloads are dropped instead of clobbering the deck.
	reloadSeq  atomic.Uint64
	applyMu    sync.Mutex
	appliedSeq uint64
}

// NewController builds a session controller. Preference changes
// trigger a recommendation reload through the store's observer, the
// same path explicit reload requests take.
func NewController(cfg *config.Config, api BackendAPI, logger *errors.Logger, metrics Metrics) *Controller {
	c := &Controller{
		id:           uuid.NewString(),
		store:        prefs.NewStore(),
		deck:         recommend.NewDeck(),
		transcript:   recommend.NewTranscript(),
		api:          api,
		logger:       logger,
		metrics:      metrics,
		cvMaxSize:    cfg.App.MaxCVSize,
		cvExtensions: cfg.App.CVExtensions,
	}

	if rl := cfg.Session.ReloadLimit; rl.Enabled {
		c.limiter = rate.NewLimiter(rate.Limit(rl.PerSecond), rl.Burst)
	}

	c.store.OnChange(func(prefs.Preferences) {
		if err := c.ReloadRecommendations(context.Background()); err != nil {
			c.logger.LogError(err, "Recommendation reload after preference change failed",
				"session_id", c.id)
		}
	})

	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// Store returns the session's preference store.
func (c *Controller) Store() *prefs.Store { return c.store }

// Deck returns the session's recommendation deck.
func (c *Controller) Deck() *recommend.Deck { return c.deck }

// Transcript returns the session's chat transcript.
func (c *Controller) Transcript() *recommend.Transcript { return c.transcript }

// Start seeds the session: the greeting goes into the transcript,
// and while the preferences still match the defaults the deck shows
// the built-in advancement set so the surface is never blank before
// the first backend reply lands.
func (c *Controller) Start(ctx context.Context) {
	c.transcript.Append(greetingText, recommend.RoleAssistant)

	if c.store.IsDefault() {
		c.deck.ApplyDefaults()
		c.deck.SetVisible(true)
	}

	if err := c.ReloadRecommendations(ctx); err != nil {
		c.logger.LogError(err, "Initial recommendation load failed", "session_id", c.id)
	}
}

// wirePrefs converts the store's state into the wire form.
func (c *Controller) wirePrefs() types.Preferences {
	p := c.store.Snapshot()
	return types.Preferences{
		Interests:         p.Interests,
		CareerLevel:       p.CareerLevel,
		Goal:              string(p.Goal),
		Industry:          p.Industry,
		Location:          p.Location,
		Experience:        p.Experience,
		LinkedInConnected: p.LinkedInConnected,
	}
}

// Send runs one chat turn: the user entry and a typing placeholder go
// into the transcript, the backend is asked for a reply, and the
// placeholder is replaced by either the reply or the fixed error
// text. The message also drives the keyword templates and a
// recommendation reload, matching what a successful turn shows.
func (c *Controller) Send(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", nil
	}

	c.transcript.Append(trimmed, recommend.RoleUser)
	typing := c.transcript.AppendTyping()

	start := time.Now()
	reply, err := c.api.Chat(ctx, trimmed, c.wirePrefs())
	elapsed := time.Since(start)
	c.transcript.Remove(typing)

	if err != nil {
		c.logger.LogError(err, "Chat request failed", "session_id", c.id)
		c.recordChatTurn(ctx, false, elapsed)
		c.transcript.Append(chatErrorText, recommend.RoleAssistant)
		return "", err
	}

	c.transcript.Append(reply, recommend.RoleAssistant)
	c.recordChatTurn(ctx, true, elapsed)

	if c.deck.ApplyQuery(trimmed) > 0 {
		c.deck.SetVisible(true)
	}

	if err := c.ReloadRecommendations(ctx); err != nil {
		c.logger.LogError(err, "Recommendation reload after chat turn failed",
			"session_id", c.id)
	}
	return reply, nil
}

// ReloadRecommendations fetches a fresh payload for the current
// preferences and applies it to the deck unless a later reload
// already has. Reloads beyond the configured rate are skipped.
func (c *Controller) ReloadRecommendations(ctx context.Context) error {
	if c.limiter != nil && !c.limiter.Allow() {
		c.logger.Debug("Recommendation reload throttled", "session_id", c.id)
		c.recordReload(ctx, ReloadThrottled)
		return nil
	}

	seq := c.reloadSeq.Add(1)

	set, err := c.api.Recommendations(ctx, c.wirePrefs())
	if err != nil {
		c.recordReload(ctx, ReloadFailed)
		return err
	}

	// The sequence check and the apply happen under the same lock, so
	// a payload that passed the check can never land after a newer one.
	c.applyMu.Lock()
	if seq <= c.appliedSeq {
		c.applyMu.Unlock()
		c.logger.Debug("Dropping superseded recommendation payload",
			"session_id", c.id, "seq", seq)
		c.recordReload(ctx, ReloadStale)
		return nil
	}
	c.appliedSeq = seq
	c.deck.ApplyPayload(set)
	c.deck.SetVisible(true)
	c.applyMu.Unlock()

	c.recordReload(ctx, ReloadApplied)
	return nil
}

// ConnectLinkedIn sends the profile URL to the backend and merges the
// returned preference updates into the store. The assistant's welcome
// for the connected profile lands in the transcript.
func (c *Controller) ConnectLinkedIn(ctx context.Context, linkedinURL string) (types.ConnectLinkedInResponse, error) {
	trimmed := strings.TrimSpace(linkedinURL)
	if trimmed == "" {
		return types.ConnectLinkedInResponse{}, errors.NewValidationError(
			errors.ErrCodeInvalidFormat, "LinkedIn profile URL cannot be empty", nil)
	}

	typing := c.transcript.AppendTyping()
	resp, err := c.api.ConnectLinkedIn(ctx, trimmed)
	c.transcript.Remove(typing)
	if err != nil {
		c.logger.LogError(err, "LinkedIn connect failed", "session_id", c.id)
		c.transcript.Append(linkedinErrorText, recommend.RoleAssistant)
		return types.ConnectLinkedInResponse{}, err
	}

	up := resp.UpdatedPreferences
	c.store.ApplyProfile(prefs.Profile{
		Interests:   up.Interests,
		CareerLevel: up.CareerLevel,
		Goal:        up.Goal,
		Industry:    up.Industry,
		Location:    up.Location,
		Experience:  up.Experience,
	})

	welcome := resp.Suggestions.WelcomeMessage
	if welcome == "" {
		welcome = fmt.Sprintf("LinkedIn profile connected! I've updated your preferences based on %s's profile.",
			resp.ProfileData.Name)
	}
	c.transcript.Append(welcome, recommend.RoleAssistant)

	return resp, nil
}

// UploadCV validates the file locally, uploads it, and appends the
// backend's analysis summary to the transcript. Validation failures
// surface directly without an error entry; the upload never started.
func (c *Controller) UploadCV(ctx context.Context, path string) (types.CVAnalysis, error) {
	if err := utils.ValidateCVFile(path, c.cvMaxSize, c.cvExtensions); err != nil {
		return types.CVAnalysis{}, err
	}

	typing := c.transcript.AppendTyping()
	resp, err := c.api.UploadCV(ctx, path)
	c.transcript.Remove(typing)
	if err != nil {
		c.logger.LogError(err, "CV upload failed", "session_id", c.id, "path", path)
		c.transcript.Append(cvErrorText, recommend.RoleAssistant)
		return types.CVAnalysis{}, err
	}

	message := resp.Message
	if message == "" {
		message = summarizeAnalysis(resp.Analysis)
	}
	c.transcript.Append(message, recommend.RoleAssistant)

	if err := c.ReloadRecommendations(ctx); err != nil {
		c.logger.LogError(err, "Recommendation reload after CV upload failed",
			"session_id", c.id)
	}
	return resp.Analysis, nil
}

// summarizeAnalysis renders the CV analysis into one assistant
// message when the backend did not supply its own.
func summarizeAnalysis(a types.CVAnalysis) string {
	var b strings.Builder
	b.WriteString("I've analyzed your CV.")
	if len(a.SkillsIdentified) > 0 {
		fmt.Fprintf(&b, " Skills identified: %s.", strings.Join(a.SkillsIdentified, ", "))
	}
	if a.ExperienceLevel != "" {
		fmt.Fprintf(&b, " Experience level: %s.", a.ExperienceLevel)
	}
	if len(a.RecommendedRoles) > 0 {
		fmt.Fprintf(&b, " Roles to consider: %s.", strings.Join(a.RecommendedRoles, ", "))
	}
	return b.String()
}

// ResetFilters restores the default preferences with the interest
// list cleared and confirms it in the transcript. The store observer
// triggers the reload.
func (c *Controller) ResetFilters() {
	c.store.Reset()
	c.transcript.Append(resetText, recommend.RoleAssistant)
}

// ResetConversation clears the transcript and re-seeds the greeting.
func (c *Controller) ResetConversation() {
	c.transcript.Clear()
	c.transcript.Append(greetingText, recommend.RoleAssistant)
}

func (c *Controller) recordChatTurn(ctx context.Context, success bool, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordChatTurn(ctx, success)
		c.metrics.RecordChatTurnDuration(ctx, elapsed.Seconds(), success)
	}
}

func (c *Controller) recordReload(ctx context.Context, outcome string) {
	if c.metrics != nil {
		c.metrics.RecordReload(ctx, outcome)
	}
}
