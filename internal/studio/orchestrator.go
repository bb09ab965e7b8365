package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/gateway"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/infra"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/promptbuild"
)

const (
	defaultShotCount       = 6
	defaultAnalysisTimeout = 120 * time.Second

	// Product rotation window for planned modes: each product anchors two
	// consecutive shots before the next one takes over.
	rotationWindow = 2
)

// Gateway is the slice of the AI client the pipeline needs. Narrow on
// purpose so tests can fake provider behavior per call.
type Gateway interface {
	Plan(ctx context.Context, req gateway.PlanRequest) (*domain.CreativePlan, error)
	Render(ctx context.Context, req gateway.RenderRequest) ([]byte, error)
	Analyze(ctx context.Context, req gateway.AnalyzeRequest) (string, error)
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
	DescribeProduct(ctx context.Context, asset *domain.Asset) (string, error)
	DraftCampaign(ctx context.Context, req gateway.DraftRequest) (string, error)
}

// Options tunes the orchestrator. Zero values take production defaults.
type Options struct {
	AnalysisTimeout time.Duration
	ShotCount       int
}

// Orchestrator drives the sequential shot pipeline over a session.
type Orchestrator struct {
	gw              Gateway
	store           *Store
	logger          *infra.Logger
	analysisTimeout time.Duration
	shotCount       int
}

func NewOrchestrator(gw Gateway, store *Store, logger *infra.Logger, opts Options) *Orchestrator {
	timeout := opts.AnalysisTimeout
	if timeout <= 0 {
		timeout = defaultAnalysisTimeout
	}
	shots := opts.ShotCount
	if shots <= 0 {
		shots = defaultShotCount
	}
	return &Orchestrator{gw: gw, store: store, logger: logger, analysisTimeout: timeout, shotCount: shots}
}

// Produce runs the planned pipeline: one planning call, then a sequential
// render loop. A plan failure aborts before any shot exists; a render
// failure marks only its own shot and the loop moves on. Trend engine mode
// feeds the stored analysis report into the planning call.
func (o *Orchestrator) Produce(ctx context.Context, sessionID string) error {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return err
	}
	in := sess.InputsCopy()
	if strings.TrimSpace(in.Topic) == "" {
		return fmt.Errorf("%w: production requires a topic", domain.ErrValidation)
	}
	if len(readyAssets(in.Products)) == 0 {
		return fmt.Errorf("%w: production requires at least one product image", domain.ErrValidation)
	}
	trendContext := ""
	if in.Mode == domain.ModeTrendEngine {
		trendContext = sess.TrendReport()
		if trendContext == "" {
			return fmt.Errorf("%w: trend engine requires an analyzed video", domain.ErrValidation)
		}
	}
	if err := sess.tryBegin(); err != nil {
		return err
	}

	refs := promptbuild.RefSet{
		HasProduct:    true,
		HasModel:      in.Model.Ready(),
		HasBackground: in.Background.Ready(),
	}
	plan, err := o.gw.Plan(ctx, gateway.PlanRequest{
		Topic:        in.Topic,
		Language:     in.Language,
		ScriptStyle:  in.ScriptStyle,
		Mode:         in.Mode,
		TrendContext: trendContext,
		Refs:         refs,
		References:   planReferences(in),
	})
	if err != nil {
		sess.failRun(err)
		return err
	}

	products := readyAssets(in.Products)
	shots := make([]domain.Shot, len(plan.ShotPrompts))
	for i := range shots {
		shots[i] = domain.Shot{
			Number:          i + 1,
			VisualPrompt:    plan.ShotPrompts[i],
			Narration:       plan.ScriptFor(i),
			InFlight:        true,
			ProductRefIndex: plannedRotation(i, len(products)),
		}
		if i < len(plan.PlatformPrompts) {
			shots[i].PlatformPrompts = plan.PlatformPrompts[i]
		}
	}
	sess.beginRendering(plan, shots)

	o.renderLoop(ctx, sess, in, shots)
	sess.finishRun()
	return nil
}

// ProduceTryOn synthesizes the storyboard locally instead of planning:
// products rotate round-robin and compliance frames cycle when enabled.
func (o *Orchestrator) ProduceTryOn(ctx context.Context, sessionID string) error {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return err
	}
	in := sess.InputsCopy()
	if !in.Model.Ready() {
		return fmt.Errorf("%w: try-on requires a model image", domain.ErrValidation)
	}
	products := readyAssets(in.Products)
	if len(products) == 0 {
		return fmt.Errorf("%w: try-on requires at least one product image", domain.ErrValidation)
	}
	if err := sess.tryBegin(); err != nil {
		return err
	}

	n := in.TryOn.Quantity
	if n <= 0 {
		n = o.shotCount
	}
	hasBG := in.Background.Ready() && in.TryOn.UploadedBG
	shots := make([]domain.Shot, n)
	for i := range shots {
		frameID := ""
		if in.TryOn.ComplianceMode && len(domain.ComplianceFrames) > 0 {
			frameID = domain.ComplianceFrames[i%len(domain.ComplianceFrames)].ID
		}
		shots[i] = domain.Shot{
			Number:          i + 1,
			VisualPrompt:    promptbuild.TryOn(in.TryOn, "", frameID, hasBG),
			InFlight:        true,
			ProductRefIndex: i % len(products),
			FrameType:       frameID,
		}
	}
	sess.beginRendering(nil, shots)

	o.renderLoop(ctx, sess, in, shots)
	sess.finishRun()
	return nil
}

// renderLoop renders shots strictly in order. Every shot is attempted; a
// failed render marks its shot and never touches its neighbors.
func (o *Orchestrator) renderLoop(ctx context.Context, sess *Session, in Inputs, shots []domain.Shot) {
	products := readyAssets(in.Products)
	for i := range shots {
		gen := sess.generation(i)
		sess.setProgress(fmt.Sprintf("Rendering shot %d of %d", i+1, len(shots)))

		image, err := o.gw.Render(ctx, o.renderRequest(sess, in, shots[i], products))
		sess.completeShot(i, gen, image, err)
		if err != nil {
			if o.logger != nil {
				o.logger.Warn().Err(err).Int("shot", i+1).Str("session", sess.ID).Msg("shot render failed")
			}
			continue
		}

		if narration := shots[i].Narration; narration != "" {
			audio, speechErr := o.gw.SynthesizeSpeech(ctx, narration, in.Voice)
			if speechErr == nil && audio != nil {
				sess.setShotAudio(i, gen, audio)
			}
		}
	}
}

// renderRequest assembles the prompt and ordered references for one shot:
// model as Image A, the rotated product as Image B, background as Image C.
func (o *Orchestrator) renderRequest(sess *Session, in Inputs, shot domain.Shot, products []*domain.Asset) gateway.RenderRequest {
	hasBG := in.Background.Ready()
	var prompt string
	if in.Mode == domain.ModeTryOn {
		prompt = shot.VisualPrompt
	} else {
		prompt = promptbuild.UGC(in.UGC, sess.consistencyProfile(), shot.VisualPrompt, hasBG)
	}

	var refs []*domain.Asset
	if in.Model.Ready() {
		refs = append(refs, in.Model)
	}
	if len(products) > 0 {
		refs = append(refs, products[shot.ProductRefIndex%len(products)])
	}
	if hasBG {
		refs = append(refs, in.Background)
	}
	return gateway.RenderRequest{Prompt: prompt, References: refs, HighQuality: in.HighQuality}
}

// RegenerateShot re-renders a single shot without disturbing the rest of
// the storyboard. A newer regeneration supersedes this one silently.
func (o *Orchestrator) RegenerateShot(ctx context.Context, sessionID string, index int) error {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return err
	}
	gen, shot, err := sess.restartShot(index)
	if err != nil {
		return err
	}
	in := sess.InputsCopy()

	image, renderErr := o.gw.Render(ctx, o.renderRequest(sess, in, shot, readyAssets(in.Products)))
	if !sess.completeShot(index, gen, image, renderErr) {
		if o.logger != nil {
			o.logger.Debug().Int("shot", index+1).Str("session", sess.ID).Msg("stale regeneration discarded")
		}
		return nil
	}
	return renderErr
}

// SyncNarration updates a shot's script and synthesizes fresh audio for it.
// Speech is best-effort; the script update always lands.
func (o *Orchestrator) SyncNarration(ctx context.Context, sessionID string, index int, script string) error {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return err
	}
	gen, err := sess.setNarration(index, script)
	if err != nil {
		return err
	}
	if strings.TrimSpace(script) == "" {
		return nil
	}
	in := sess.InputsCopy()
	audio, err := o.gw.SynthesizeSpeech(ctx, script, in.Voice)
	if err != nil {
		return err
	}
	if audio != nil {
		sess.setShotAudio(index, gen, audio)
	}
	return nil
}

// AnalyzeTrend runs the viral rebuild over the session's uploaded video
// under a wall-clock deadline and stores the raw report on the session.
func (o *Orchestrator) AnalyzeTrend(ctx context.Context, sessionID, targetStyle string) error {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return err
	}
	in := sess.InputsCopy()
	if !in.Video.Ready() {
		return fmt.Errorf("%w: analysis requires a processed video", domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, o.analysisTimeout)
	defer cancel()

	report, err := o.gw.Analyze(ctx, gateway.AnalyzeRequest{
		Video:       in.Video,
		TargetStyle: targetStyle,
		Identity:    in.Model,
		Product:     firstReady(in.Products),
		Background:  in.Background,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: analysis exceeded %s", domain.ErrAnalysisTimeout, o.analysisTimeout)
		}
		return err
	}
	sess.SetTrendReport(report)
	return nil
}

// DescribeProduct drafts a topic from the indexed product image.
func (o *Orchestrator) DescribeProduct(ctx context.Context, sessionID string, productIndex int) (string, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return "", err
	}
	in := sess.InputsCopy()
	if productIndex < 0 || productIndex >= len(in.Products) {
		return "", fmt.Errorf("%w: product %d", domain.ErrNotFound, productIndex)
	}
	return o.gw.DescribeProduct(ctx, in.Products[productIndex])
}

// DraftCampaign sketches a campaign around the session topic.
func (o *Orchestrator) DraftCampaign(ctx context.Context, sessionID, audience, goal string) (string, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return "", err
	}
	in := sess.InputsCopy()
	if strings.TrimSpace(in.Topic) == "" {
		return "", fmt.Errorf("%w: campaign draft requires a topic", domain.ErrValidation)
	}
	return o.gw.DraftCampaign(ctx, gateway.DraftRequest{Product: in.Topic, Audience: audience, Goal: goal})
}

// plannedRotation anchors each product for two consecutive shots.
func plannedRotation(shotIndex, numProducts int) int {
	if numProducts <= 0 {
		return 0
	}
	return (shotIndex / rotationWindow) % numProducts
}

func planReferences(in Inputs) []*domain.Asset {
	var refs []*domain.Asset
	if in.Model.Ready() {
		refs = append(refs, in.Model)
	}
	if p := firstReady(in.Products); p != nil {
		refs = append(refs, p)
	}
	return refs
}

func readyAssets(assets []*domain.Asset) []*domain.Asset {
	out := make([]*domain.Asset, 0, len(assets))
	for _, a := range assets {
		if a.Ready() {
			out = append(out, a)
		}
	}
	return out
}

func firstReady(assets []*domain.Asset) *domain.Asset {
	for _, a := range assets {
		if a.Ready() {
			return a
		}
	}
	return nil
}
