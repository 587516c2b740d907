package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relhook/pkg/domain/interfaces"
	"github.com/m-mizutani/relhook/pkg/domain/model"
)

// maxWebhookBodySize matches GitHub's documented payload cap
const maxWebhookBodySize = 25 * 1024 * 1024

// WebhookHandler handles GitHub webhooks
type WebhookHandler struct {
	secret    string
	webhookUC interfaces.WebhookUseCase
	logger    *slog.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase, logger *slog.Logger) *WebhookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookHandler{
		secret:    secret,
		webhookUC: webhookUC,
		logger:    logger,
	}
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger

	// Read payload
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(logger, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Verify signature. X-Hub-Signature-256 is preferred when both are sent.
	signature := r.Header.Get(model.HeaderSignature256)
	if signature == "" {
		signature = r.Header.Get(model.HeaderSignature)
	}
	if signature == "" {
		logger.Warn("Missing webhook signature")
		writeError(logger, w, goerr.New("missing signature"), http.StatusUnauthorized)
		return
	}
	if err := github.ValidateSignature(signature, body, []byte(h.secret)); err != nil {
		logger.Warn("Invalid webhook signature", "error", err, "remote_addr", r.RemoteAddr)
		writeError(logger, w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	// Parse event using GitHub SDK
	eventType := github.WebHookType(r)
	if eventType == "" {
		writeError(logger, w, goerr.New("missing X-GitHub-Event header"), http.StatusBadRequest)
		return
	}
	payload, err := github.ParseWebHook(eventType, body)
	if err != nil {
		logger.Error("Failed to parse webhook payload", "error", err, "event_type", eventType)
		writeError(logger, w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}

	// Create webhook event
	event := &model.WebhookEvent{
		ID:         github.DeliveryID(r),
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	// Extract event-specific information using GitHub SDK types
	switch e := payload.(type) {
	case *github.ReleaseEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
		event.Release = extractReleaseInfo(e)
	default:
		event.Type = model.EventTypeUnknown
	}

	// Process event via UseCase
	if err := h.webhookUC.ProcessEvent(ctx, event); err != nil {
		logger.Error("Failed to process webhook event", "error", err)
		writeError(logger, w, err, http.StatusInternalServerError)
		return
	}

	// Success response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "success",
	}); err != nil {
		logger.Error("Failed to encode success response", "error", err)
	}
}

func extractReleaseInfo(e *github.ReleaseEvent) *model.ReleaseInfo {
	owner := e.GetRepo().GetOwner().GetLogin()
	repo := e.GetRepo().GetName()
	if owner == "" {
		owner, _, _ = strings.Cut(e.GetRepo().GetFullName(), "/")
	}

	rel := e.GetRelease()
	return &model.ReleaseInfo{
		Owner:       owner,
		Repo:        repo,
		Commitish:   rel.GetTargetCommitish(),
		TagName:     rel.GetTagName(),
		ReleaseName: rel.GetName(),
		PublishedAt: rel.GetPublishedAt().Time,
	}
}
