package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Default identifiers of the synthetic release event
const (
	DefaultTagName    = "v1.0.1"
	DefaultCommitish  = "production"
	DefaultRepository = "AHMnesia/suma-ecommerce"

	ReleaseAction  = "published"
	ReleaseID      = 12345678
	ReleaseBody    = "Release notes here"
	RepositoryID   = 123456789
	OwnerID        = 123456
	OwnerType      = "User"
	InstallationID = 12345678
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// ReleaseSpec holds the configurable parts of a release event
type ReleaseSpec struct {
	TagName   string
	Commitish string
	FullName  string // owner/name
}

// DefaultReleaseSpec returns the identifiers used when nothing is configured
func DefaultReleaseSpec() ReleaseSpec {
	return ReleaseSpec{
		TagName:   DefaultTagName,
		Commitish: DefaultCommitish,
		FullName:  DefaultRepository,
	}
}

// Owner returns the owner part of FullName
func (s ReleaseSpec) Owner() string {
	owner, _, _ := strings.Cut(s.FullName, "/")
	return owner
}

// Name returns the repository part of FullName
func (s ReleaseSpec) Name() string {
	if _, name, ok := strings.Cut(s.FullName, "/"); ok {
		return name
	}
	return s.FullName
}

// ReleaseEvent is the payload of a GitHub "release" webhook. Field order is
// the wire key order.
type ReleaseEvent struct {
	Action       string       `json:"action"`
	Release      Release      `json:"release"`
	Repository   Repository   `json:"repository"`
	Sender       Account      `json:"sender"`
	Installation Installation `json:"installation"`
}

type Release struct {
	ID              int64  `json:"id"`
	TagName         string `json:"tag_name"`
	TargetCommitish string `json:"target_commitish"`
	Name            string `json:"name"`
	Body            string `json:"body"`
	Draft           bool   `json:"draft"`
	Prerelease      bool   `json:"prerelease"`
	CreatedAt       string `json:"created_at"`
	PublishedAt     string `json:"published_at"`
}

type Repository struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	Private  bool    `json:"private"`
	Owner    Account `json:"owner"`
}

type Account struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
	Type  string `json:"type"`
}

type Installation struct {
	ID int64 `json:"id"`
}

// NewReleaseEvent builds a release-published event. Only the timestamps
// depend on now.
func NewReleaseEvent(spec ReleaseSpec, now time.Time) *ReleaseEvent {
	ts := now.UTC().Format(TimestampFormat)
	owner := Account{
		Login: spec.Owner(),
		ID:    OwnerID,
		Type:  OwnerType,
	}

	return &ReleaseEvent{
		Action: ReleaseAction,
		Release: Release{
			ID:              ReleaseID,
			TagName:         spec.TagName,
			TargetCommitish: spec.Commitish,
			Name:            "Release " + spec.TagName,
			Body:            ReleaseBody,
			CreatedAt:       ts,
			PublishedAt:     ts,
		},
		Repository: Repository{
			ID:       RepositoryID,
			Name:     spec.Name(),
			FullName: spec.FullName,
			Owner:    owner,
		},
		Sender:       owner,
		Installation: Installation{ID: InstallationID},
	}
}

// Marshal returns the compact JSON body. The returned bytes must be signed
// and sent as-is.
func (e *ReleaseEvent) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, goerr.Wrap(err, "failed to marshal release event")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
