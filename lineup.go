// Dugout Lineup Game
//
// A random season and team are drawn from the appearance data, and the
// player tries to name the starting lineup at each position.
//
// Features:
// - GET /lineup creates a round and redirects to /lineup/:round
// - Each round is an isolated context holding its own roster
// - Guesses are submitted by form POST or over a websocket
// - Rounds are reaped after a configurable idle timeout
// - Random 8-char round IDs via crypto/rand, with server-side collision check
// - QR code for the round URL, so it can be continued on another device

package main

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/Seednode/dugout/games/lineup"
)

const (
	lineupPath = "/lineup"

	noActiveGame = "No active game found"

	maxGuessBody = 16 << 10
)

type round struct {
	id         string
	ctx        *lineup.RoundContext
	lastActive time.Time
}

// RoundManager holds the in-progress rounds keyed by round ID. Rounds never
// share state; the map itself is the only thing guarded by mu.
type RoundManager struct {
	mu          sync.Mutex
	rounds      map[string]*round
	data        *lineup.Dataset
	rng         lineup.Rand
	idleTimeout time.Duration
	metrics     *gameMetrics
	now         func() time.Time
}

func newRoundManager(data *lineup.Dataset, rng lineup.Rand, idleTimeout time.Duration, m *gameMetrics) *RoundManager {
	return &RoundManager{
		rounds:      make(map[string]*round),
		data:        data,
		rng:         rng,
		idleTimeout: idleTimeout,
		metrics:     m,
		now:         time.Now,
	}
}

// newRoundIDLocked generates a crypto-random round ID that is not in use.
// Callers must hold rm.mu.
func (rm *RoundManager) newRoundIDLocked() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		if _, exists := rm.rounds[id]; !exists {
			return id
		}
	}
}

func (rm *RoundManager) newRound() (*round, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	rc, err := lineup.NewRound(rm.data, rm.rng)
	if err != nil {
		return nil, err
	}

	r := &round{
		id:         rm.newRoundIDLocked(),
		ctx:        rc,
		lastActive: rm.now(),
	}
	rm.rounds[r.id] = r

	rm.metrics.roundStarted(len(rm.rounds))

	return r, nil
}

// get returns the round with the given ID and marks it active.
func (rm *RoundManager) get(id string) (*round, bool) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	r, ok := rm.rounds[id]
	if !ok {
		return nil, false
	}
	r.lastActive = rm.now()

	return r, true
}

func (rm *RoundManager) count() int {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	return len(rm.rounds)
}

// reap removes rounds that have been idle longer than idleTimeout.
func (rm *RoundManager) reap() int {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	cutoff := rm.now().Add(-rm.idleTimeout)

	removed := 0
	for id, r := range rm.rounds {
		if r.lastActive.Before(cutoff) {
			delete(rm.rounds, id)
			removed++
		}
	}

	if removed > 0 {
		rm.metrics.roundsRemoved(removed, len(rm.rounds))
	}

	return removed
}

func (rm *RoundManager) reaperLoop(ctx context.Context, cfg *Config, limiter *ipLimiter) {
	ticker := time.NewTicker(rm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rm.reap(); n > 0 {
				logf(cfg, "ROUND: Reaped %d idle rounds", n)
			}
			limiter.sweep(rm.now().Add(-rm.idleTimeout))
		}
	}
}

type positionInfo struct {
	Code lineup.Position `json:"code"`
	Name string          `json:"name"`
}

type roundState struct {
	Round     string         `json:"round"`
	Year      int            `json:"year"`
	Team      string         `json:"team"`
	HasDH     bool           `json:"has_dh"`
	Positions []positionInfo `json:"positions"`
}

func newRoundState(r *round) roundState {
	state := roundState{
		Round: r.id,
		Year:  r.ctx.Year,
		Team:  r.ctx.Team,
		HasDH: r.ctx.HasDesignatedHitter(),
	}

	for _, p := range r.ctx.Roster.Positions() {
		state.Positions = append(state.Positions, positionInfo{Code: p, Name: p.Name()})
	}

	return state
}

type scoreMessage struct {
	Type         string                                 `json:"type,omitempty"`
	Round        string                                 `json:"round"`
	Results      map[lineup.Position]lineup.GuessResult `json:"results"`
	CorrectCount int                                    `json:"correct_count"`
	NumPositions int                                    `json:"num_positions"`
	Percentage   float64                                `json:"percentage"`
	Year         int                                    `json:"year"`
	Team         string                                 `json:"team"`
}

func newScoreMessage(r *round, summary lineup.ScoreSummary) scoreMessage {
	return scoreMessage{
		Round:        r.id,
		Results:      summary.Results,
		CorrectCount: summary.CorrectCount,
		NumPositions: summary.NumPositions,
		Percentage:   math.Round(summary.Percentage*10) / 10,
		Year:         r.ctx.Year,
		Team:         r.ctx.Team,
	}
}

// Messages coming from websocket clients
type clientMessage struct {
	Type    string            `json:"type"`              // "submit"
	Guesses map[string]string `json:"guesses,omitempty"` // position code -> guess
}

type errorMessage struct {
	Type  string `json:"type,omitempty"`
	Error string `json:"error"`
}

// toGuessSet keeps recognized positions with non-blank guesses.
func toGuessSet(raw map[string]string) lineup.GuessSet {
	guesses := make(lineup.GuessSet, len(raw))
	for _, p := range lineup.Positions {
		if g := strings.TrimSpace(raw[string(p)]); g != "" {
			guesses[p] = g
		}
	}
	return guesses
}

func guessesFromRequest(w http.ResponseWriter, r *http.Request) (lineup.GuessSet, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxGuessBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		raw := make(map[string]string)
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return toGuessSet(raw), nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	raw := make(map[string]string, len(lineup.Positions))
	for _, p := range lineup.Positions {
		raw[string(p)] = r.PostForm.Get(string(p))
	}

	return toGuessSet(raw), nil
}

func writeJSON(cfg *Config, w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// redirectNewRound handles GET /path by creating a round and redirecting
// to /path/:round.
func redirectNewRound(cfg *Config, path string, rm *RoundManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		rd, err := rm.newRound()
		if err != nil {
			logf(cfg, "ROUND: Failed to create round: %v", err)

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			securityHeaders(cfg, w)
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, newPage(cfg, "No Data", "No appearance data is available. Please try again later."))

			return
		}

		logf(cfg, "ROUND: Created %s (%d %s, %d positions) for %s",
			rd.id, rd.ctx.Year, rd.ctx.Team, len(rd.ctx.Roster), realIP(r))

		w.Header().Set("Cache-Control", "no-store")
		http.Redirect(w, r, cfg.prefix+path+"/"+rd.id, http.StatusTemporaryRedirect)
	}
}

func serveRoundPage(cfg *Config, rm *RoundManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if _, ok := rm.get(ps.ByName("round")); !ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			securityHeaders(cfg, w)
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, newPage(cfg, "Round Not Found", "That round has ended. Click to start a new one."))

			return
		}

		data, err := assets.ReadFile("assets/lineup/index.html")
		if err != nil {
			panic(err)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		_, _ = w.Write(data)
	}
}

func serveRoundState(cfg *Config, rm *RoundManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		rd, ok := rm.get(ps.ByName("round"))
		if !ok {
			_ = writeJSON(cfg, w, http.StatusBadRequest, errorMessage{Error: noActiveGame})

			return
		}

		_ = writeJSON(cfg, w, http.StatusOK, newRoundState(rd))
	}
}

func serveGuesses(cfg *Config, rm *RoundManager, limiter *ipLimiter, m *gameMetrics) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !limiter.allow(clientIP(r)) {
			m.limited()
			w.Header().Set("Retry-After", "60")
			_ = writeJSON(cfg, w, http.StatusTooManyRequests, errorMessage{Error: "Too many guesses, please slow down"})

			return
		}

		rd, ok := rm.get(ps.ByName("round"))
		if !ok {
			_ = writeJSON(cfg, w, http.StatusBadRequest, errorMessage{Error: noActiveGame})

			return
		}

		guesses, err := guessesFromRequest(w, r)
		if err != nil {
			_ = writeJSON(cfg, w, http.StatusBadRequest, errorMessage{Error: "Invalid guesses: " + err.Error()})

			return
		}

		summary := rd.ctx.Score(guesses)
		m.scored("http", summary)

		logf(cfg, "SCORE: %s scored %d/%d (%.1f%%) for %s",
			rd.id, summary.CorrectCount, summary.NumPositions, summary.Percentage, realIP(r))

		_ = writeJSON(cfg, w, http.StatusOK, newScoreMessage(rd, summary))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// serveRoundWS scores guesses sent over a websocket. Each connection is
// bound to one round and answers each "submit" with a "score" message.
func serveRoundWS(cfg *Config, rm *RoundManager, limiter *ipLimiter, m *gameMetrics) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id := ps.ByName("round")
		if _, ok := rm.get(id); !ok {
			http.Error(w, noActiveGame, http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: websocket upgrade for %s: %v", id, err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(maxGuessBody)

		ip := clientIP(r)

		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}

			if msg.Type != "submit" {
				continue
			}

			if !limiter.allow(ip) {
				m.limited()
				if err := conn.WriteJSON(errorMessage{Type: "error", Error: "Too many guesses, please slow down"}); err != nil {
					return
				}
				continue
			}

			rd, ok := rm.get(id)
			if !ok {
				_ = conn.WriteJSON(errorMessage{Type: "error", Error: noActiveGame})
				return
			}

			summary := rd.ctx.Score(toGuessSet(msg.Guesses))
			m.scored("websocket", summary)

			logf(cfg, "SCORE: %s scored %d/%d (%.1f%%) for %s",
				rd.id, summary.CorrectCount, summary.NumPositions, summary.Percentage, realIP(r))

			reply := newScoreMessage(rd, summary)
			reply.Type = "score"

			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}
}

// QR handler: generates a PNG QR code for the current round URL using go-qrcode.
func qrHandler(rm *RoundManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if _, ok := rm.get(ps.ByName("round")); !ok {
			http.Error(w, noActiveGame, http.StatusNotFound)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
			scheme = proto
		}

		// We are at /.../:round/qr; strip trailing "/qr" to get the round URL.
		url := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

		const qrSize = 320
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(png)
	}
}

// registerLineupGame sets up routes so that:
//   - $path                  → redirects to a new round (8-char ID)
//   - $path/:round           → HTML client
//   - $path/:round/state     → year, team and positions as JSON
//   - $path/:round/guesses   → POST guesses, scored as JSON
//   - $path/:round/ws        → WebSocket for submitting guesses
//   - $path/:round/qr        → PNG QR code for the round URL
func registerLineupGame(cfg *Config, path string, mux *httprouter.Router, rm *RoundManager, limiter *ipLimiter, m *gameMetrics) {
	mux.GET(cfg.prefix+path, redirectNewRound(cfg, path, rm))

	mux.GET(cfg.prefix+path+"/:round", serveRoundPage(cfg, rm))

	mux.GET(cfg.prefix+path+"/:round/state", serveRoundState(cfg, rm))

	mux.POST(cfg.prefix+path+"/:round/guesses", serveGuesses(cfg, rm, limiter, m))

	mux.GET(cfg.prefix+path+"/:round/ws", serveRoundWS(cfg, rm, limiter, m))

	mux.GET(cfg.prefix+path+"/:round/qr", qrHandler(rm))
}
