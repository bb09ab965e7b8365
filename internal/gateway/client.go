// Package gateway is the single integration point with the generative
// language API. It owns transport, retries, and response decoding; prompt
// text comes from promptbuild and orchestration stays in studio.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/infra"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/promptbuild"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com"
	defaultAPIVersion = "v1beta"

	defaultPlanModel      = "gemini-3-pro-preview"
	defaultRenderModel    = "gemini-2.5-flash-image"
	defaultRenderProModel = "gemini-3-pro-image-preview"
	defaultSpeechModel    = "gemini-2.5-flash-preview-tts"
	defaultAnalysisModel  = "gemini-3-flash-preview"

	defaultPollInterval = 3 * time.Second

	minAnalysisLength = 50
)

// Options controls how the gateway client is configured. Zero values fall
// back to production defaults; tests override HTTPClient and Sleep.
type Options struct {
	APIKey     string
	BaseURL    string
	APIVersion string

	PlanModel      string
	RenderModel    string
	RenderProModel string
	SpeechModel    string
	AnalysisModel  string

	HTTPClient   *http.Client
	Logger       *infra.Logger
	Retry        RetryPolicy
	PollInterval time.Duration
	Sleep        SleepFunc
}

// Client is a lightweight facade over the generative language HTTP API.
type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string

	planModel      string
	renderModel    string
	renderProModel string
	speechModel    string
	analysisModel  string

	httpClient   *http.Client
	logger       *infra.Logger
	retry        RetryPolicy
	pollInterval time.Duration
	sleep        SleepFunc
}

// NewClient constructs a gateway client with sane defaults. Callers may
// provide a nil HTTP client; a reusable one with a generous timeout is
// created, since render calls routinely run for tens of seconds.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%w: gateway requires an api key", domain.ErrValidation)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	retry := opts.Retry
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy()
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepWithContext
	}
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Client{
		apiKey:         opts.APIKey,
		baseURL:        strings.TrimSuffix(coalesce(opts.BaseURL, defaultBaseURL), "/"),
		apiVersion:     coalesce(opts.APIVersion, defaultAPIVersion),
		planModel:      coalesce(opts.PlanModel, defaultPlanModel),
		renderModel:    coalesce(opts.RenderModel, defaultRenderModel),
		renderProModel: coalesce(opts.RenderProModel, defaultRenderProModel),
		speechModel:    coalesce(opts.SpeechModel, defaultSpeechModel),
		analysisModel:  coalesce(opts.AnalysisModel, defaultAnalysisModel),
		httpClient:     httpClient,
		logger:         opts.Logger,
		retry:          retry,
		pollInterval:   pollInterval,
		sleep:          sleep,
	}, nil
}

// PlanRequest describes the upfront storyboard planning call. Mode selects
// the creative register; TrendContext, when set, pins the storyboard to an
// analyzed trend report.
type PlanRequest struct {
	Topic        string
	Language     string
	ScriptStyle  string
	Mode         domain.ProductionMode
	TrendContext string
	Refs         promptbuild.RefSet
	// References are attached after the brief, in Image A/B/C order.
	References []*domain.Asset
}

// Plan asks the planner model for a structured creative plan. The response
// is JSON-schema constrained; anything that still fails to decode surfaces
// as ErrPlanParse.
func (c *Client) Plan(ctx context.Context, req PlanRequest) (*domain.CreativePlan, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("%w: plan requires a topic", domain.ErrValidation)
	}

	parts := []part{{Text: promptbuild.PlanBrief(req.Topic, req.Language, req.ScriptStyle, req.TrendContext)}}
	parts = append(parts, assetParts(req.References)...)

	payload := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: parts}},
		SystemInstruction: &content{Parts: []part{{Text: promptbuild.PlanInstruction(req.Refs, req.Mode)}}},
		GenerationConfig: &generationConfig{
			Temperature:      0.7,
			ResponseMimeType: "application/json",
			ResponseSchema:   planSchema(),
		},
	}

	resp, err := c.generateWithRetry(ctx, c.planModel, payload)
	if err != nil {
		return nil, err
	}
	raw := firstText(resp)
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: planner returned no payload", domain.ErrPlanParse)
	}
	var plan domain.CreativePlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlanParse, err)
	}
	if len(plan.ShotPrompts) == 0 {
		return nil, fmt.Errorf("%w: plan has no shot prompts", domain.ErrPlanParse)
	}
	return &plan, nil
}

// RenderRequest describes one image render.
type RenderRequest struct {
	Prompt string
	// References ride ahead of the prompt text, in Image A/B/C order.
	References  []*domain.Asset
	HighQuality bool
}

// Render generates a single 9:16 image and returns the decoded bytes. The
// pro tier switches models and pins the 1K output size.
func (c *Client) Render(ctx context.Context, req RenderRequest) ([]byte, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: render requires a prompt", domain.ErrValidation)
	}

	model := c.renderModel
	imgCfg := &imageConfig{AspectRatio: "9:16"}
	if req.HighQuality {
		model = c.renderProModel
		imgCfg.ImageSize = "1K"
	}

	parts := assetParts(req.References)
	parts = append(parts, part{Text: req.Prompt})

	payload := generateContentRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        imgCfg,
		},
	}

	resp, err := c.generateWithRetry(ctx, model, payload)
	if err != nil {
		return nil, err
	}
	data := firstInlineData(resp)
	if data == "" {
		return nil, domain.ErrEmptyRender
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable image payload", domain.ErrEmptyRender)
	}
	return decoded, nil
}

// AnalyzeRequest describes a viral video analysis call. Auxiliary reference
// images are optional and attached with their role labels so the model can
// swap subjects.
type AnalyzeRequest struct {
	Video       *domain.Asset
	TargetStyle string
	Identity    *domain.Asset
	Product     *domain.Asset
	Background  *domain.Asset
}

// Analyze runs the trend rebuild over an uploaded video and returns the raw
// report text. Responses under 50 characters are refusals in disguise and
// map to ErrEmptyAnalysis.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (string, error) {
	if !req.Video.Ready() {
		return "", fmt.Errorf("%w: analysis requires a processed video", domain.ErrValidation)
	}

	refs := promptbuild.RefSet{
		HasModel:      req.Identity.Ready(),
		HasProduct:    req.Product.Ready(),
		HasBackground: req.Background.Ready(),
	}

	parts := []part{assetPart(req.Video), {Text: promptbuild.TrendBrief(req.TargetStyle)}}
	parts = appendLabeled(parts, "REFERENCE IMAGE A (IDENTITY):", req.Identity)
	parts = appendLabeled(parts, "REFERENCE IMAGE B (PRODUCT):", req.Product)
	parts = appendLabeled(parts, "REFERENCE IMAGE C (BACKGROUND):", req.Background)

	payload := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: parts}},
		SystemInstruction: &content{Parts: []part{{Text: promptbuild.TrendInstruction(refs)}}},
	}

	resp, err := c.generateWithRetry(ctx, c.analysisModel, payload)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(firstText(resp))
	if len(text) < minAnalysisLength {
		return "", fmt.Errorf("%w: got %d chars", domain.ErrEmptyAnalysis, len(text))
	}
	return text, nil
}

// SynthesizeSpeech narrates text with a prebuilt voice. Narration is a
// nice-to-have layered on top of finished shots, so provider refusals
// soft-fail to no audio; only context cancellation propagates.
func (c *Client) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if voice == "" && len(domain.VoiceOptions) > 0 {
		voice = domain.VoiceOptions[0].ID
	}

	payload := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: text}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: voice}},
			},
		},
	}

	resp, err := c.generateWithRetry(ctx, c.speechModel, payload)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if c.logger != nil {
			c.logger.Warn().Err(err).Msg("speech synthesis failed, continuing without audio")
		}
		return nil, nil
	}
	data := firstInlineData(resp)
	if data == "" {
		return nil, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, nil
	}
	return decoded, nil
}

func (c *Client) generateWithRetry(ctx context.Context, model string, payload generateContentRequest) (*generateContentResponse, error) {
	return doWithRetry(ctx, c.retry, c.sleep, func(ctx context.Context) (*generateContentResponse, error) {
		return c.generate(ctx, model, payload)
	})
}

func (c *Client) generate(ctx context.Context, model string, payload generateContentRequest) (*generateContentResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/models/%s:generateContent", c.baseURL, c.apiVersion, model)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", model, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// apiError carries the provider's HTTP status and message so the retry
// classifier can tell quota pressure from a bad key.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini status %d: %s", e.Status, e.Message)
}

func decodeAPIError(resp *http.Response) error {
	var body apiErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Error.Message
	if body.Error.Status != "" {
		msg = body.Error.Status + ": " + msg
	}
	if msg == "" {
		msg = resp.Status
	}
	return &apiError{Status: resp.StatusCode, Message: msg}
}

func assetPart(a *domain.Asset) part {
	if a.Remote() {
		return part{FileData: &fileData{MimeType: a.MimeType, FileURI: a.FileURI}}
	}
	return part{InlineData: &blob{MimeType: a.MimeType, Data: a.Data}}
}

func assetParts(assets []*domain.Asset) []part {
	parts := make([]part, 0, len(assets))
	for _, a := range assets {
		if a.Ready() {
			parts = append(parts, assetPart(a))
		}
	}
	return parts
}

func appendLabeled(parts []part, label string, a *domain.Asset) []part {
	if !a.Ready() {
		return parts
	}
	return append(parts, part{Text: label}, assetPart(a))
}

func firstText(resp *generateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}

func firstInlineData(resp *generateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data
			}
		}
	}
	return ""
}

func planSchema() *schema {
	stringList := &schema{Type: "ARRAY", Items: &schema{Type: "STRING"}}
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"tiktokScript":        {Type: "STRING"},
			"shotPrompts":         stringList,
			"shotScripts":         stringList,
			"consistency_profile": {Type: "STRING"},
			"tiktokMetadata": {
				Type: "OBJECT",
				Properties: map[string]*schema{
					"description": {Type: "STRING"},
					"keywords":    stringList,
				},
				Required: []string{"description", "keywords"},
			},
		},
		Required: []string{"tiktokScript", "shotPrompts", "shotScripts", "consistency_profile", "tiktokMetadata"},
	}
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
