package studio

import (
	"fmt"
	"sync"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// Status is the coarse production phase surfaced to clients.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPlanning  Status = "planning"
	StatusRendering Status = "rendering"
	StatusComplete  Status = "complete"
)

// Inputs is everything the operator configures before hitting produce.
// Assets are borrowed by reference; the session never mutates them.
type Inputs struct {
	Topic       string
	Language    string
	ScriptStyle string
	Mode        domain.ProductionMode
	Voice       string
	VideoTool   string
	HighQuality bool

	UGC   domain.UGCSettings
	TryOn domain.TryOnSettings

	Products   []*domain.Asset
	Model      *domain.Asset
	Background *domain.Asset
	Video      *domain.Asset
}

// Session holds one operator's production state. All mutation goes through
// methods that take the lock; shot updates additionally carry a generation
// token so a superseded render can never overwrite a fresh one.
type Session struct {
	ID string

	mu          sync.Mutex
	inputs      Inputs
	shots       []domain.Shot
	generations []uint64
	plan        *domain.CreativePlan
	consistency string
	trendReport string
	status      Status
	progress    string
	lastError   string
	busy        bool
}

func newSession(id string) *Session {
	return &Session{ID: id, status: StatusIdle}
}

// Snapshot is an immutable view of a session handed to the HTTP layer.
type Snapshot struct {
	ID                 string              `json:"id"`
	Status             Status              `json:"status"`
	Progress           string              `json:"progress,omitempty"`
	LastError          string              `json:"last_error,omitempty"`
	Shots              []domain.Shot       `json:"shots"`
	ConsistencyProfile string              `json:"consistency_profile,omitempty"`
	Script             string              `json:"script,omitempty"`
	Metadata           domain.PlanMetadata `json:"metadata"`
	TrendReport        string              `json:"trend_report,omitempty"`
}

// Snapshot deep-copies the mutable parts so callers can serialize without
// racing the render loop.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:                 s.ID,
		Status:             s.status,
		Progress:           s.progress,
		LastError:          s.lastError,
		Shots:              domain.CloneShots(s.shots),
		ConsistencyProfile: s.consistency,
		TrendReport:        s.trendReport,
	}
	if s.plan != nil {
		snap.Script = s.plan.Script
		snap.Metadata = s.plan.Metadata
	}
	return snap
}

// SetInputs replaces the operator configuration. Rejected while a
// production run is in flight.
func (s *Session) SetInputs(in Inputs) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return domain.ErrBusy
	}
	s.inputs = in
	return nil
}

// InputsCopy returns the current configuration. The asset pointers are
// shared on purpose; assets are immutable once attached.
func (s *Session) InputsCopy() Inputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.inputs
	in.Products = append([]*domain.Asset(nil), s.inputs.Products...)
	return in
}

// SetVideo attaches the processed trend video outside the busy gate, since
// uploads finish asynchronously from production runs.
func (s *Session) SetVideo(a *domain.Asset) {
	s.mu.Lock()
	s.inputs.Video = a
	s.mu.Unlock()
}

// SetTrendReport stores the raw analysis text. Parsing happens at the
// presentation boundary so a reparse never needs a new model call.
func (s *Session) SetTrendReport(raw string) {
	s.mu.Lock()
	s.trendReport = raw
	s.mu.Unlock()
}

// TrendReport returns the raw analysis text, empty until an analysis ran.
func (s *Session) TrendReport() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trendReport
}

// tryBegin moves the session into the planning phase, failing if a run is
// already in flight.
func (s *Session) tryBegin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return domain.ErrBusy
	}
	s.busy = true
	s.status = StatusPlanning
	s.progress = "Planning storyboard"
	s.lastError = ""
	return nil
}

// failRun aborts a production run before or during rendering.
func (s *Session) failRun(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	s.status = StatusIdle
	s.progress = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// beginRendering installs a fresh storyboard and resets every generation
// counter. Shots arrive already marked in-flight.
func (s *Session) beginRendering(plan *domain.CreativePlan, shots []domain.Shot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan
	if plan != nil {
		s.consistency = plan.ConsistencyProfile
	}
	s.shots = shots
	s.generations = make([]uint64, len(shots))
	s.status = StatusRendering
}

// finishRun marks the run complete and clears the busy gate.
func (s *Session) finishRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	s.status = StatusComplete
	s.progress = ""
}

func (s *Session) setProgress(text string) {
	s.mu.Lock()
	s.progress = text
	s.mu.Unlock()
}

// generation returns the current token for a shot. Renders started with an
// older token are discarded on completion.
func (s *Session) generation(i int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.generations) {
		return 0
	}
	return s.generations[i]
}

// completeShot lands a render result if the token is still current. Returns
// false when a newer generation superseded this render.
func (s *Session) completeShot(i int, gen uint64, image []byte, renderErr error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.shots) || s.generations[i] != gen {
		return false
	}
	shot := &s.shots[i]
	shot.InFlight = false
	if renderErr != nil {
		shot.Error = renderErr.Error()
		shot.Image = nil
		return true
	}
	shot.Error = ""
	shot.Image = image
	return true
}

// setShotAudio attaches narration audio when the token is still current.
func (s *Session) setShotAudio(i int, gen uint64, audio []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.shots) || s.generations[i] != gen {
		return false
	}
	s.shots[i].Audio = audio
	return true
}

// restartShot bumps the generation token and resets the shot to in-flight,
// returning the new token and a copy of the shot for prompt rebuilding.
func (s *Session) restartShot(i int) (uint64, domain.Shot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.shots) {
		return 0, domain.Shot{}, fmt.Errorf("%w: shot %d", domain.ErrNotFound, i)
	}
	s.generations[i]++
	shot := &s.shots[i]
	shot.InFlight = true
	shot.Image = nil
	shot.Error = ""
	return s.generations[i], shot.Clone(), nil
}

// setNarration replaces a shot's script and bumps the token so in-flight
// speech synthesis for the old script is discarded.
func (s *Session) setNarration(i int, script string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.shots) {
		return 0, fmt.Errorf("%w: shot %d", domain.ErrNotFound, i)
	}
	s.generations[i]++
	s.shots[i].Narration = script
	s.shots[i].Audio = nil
	return s.generations[i], nil
}

// consistencyProfile returns the persona paragraph reused across renders.
func (s *Session) consistencyProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consistency
}
