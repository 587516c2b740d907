package model

// Webhook header names used by GitHub
const (
	HeaderEvent        = "X-GitHub-Event"
	HeaderDelivery     = "X-GitHub-Delivery"
	HeaderSignature    = "X-Hub-Signature"
	HeaderSignature256 = "X-Hub-Signature-256"
)

// HookRequest is a signed webhook ready to be delivered
type HookRequest struct {
	Target     *Target
	Event      WebhookEventType
	DeliveryID string
	Signature  string
	Body       []byte
}

// HookResponse is the receiver's answer, with the body fully read
type HookResponse struct {
	StatusCode int
	Body       []byte
}

// Rejected reports whether the receiver refused the delivery
func (r *HookResponse) Rejected() bool {
	return r.StatusCode >= 400
}

// TriggerInput is the resolved configuration of one send
type TriggerInput struct {
	Secret  string
	URL     string
	Release ReleaseSpec
}
