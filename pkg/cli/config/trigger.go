package config

import (
	"strings"

	"github.com/m-mizutani/relhook/pkg/domain/model"
)

// Settings of the sender. Defaults mirror the test environment the tool was
// written for.
var (
	SecretSetting    = Setting{Flag: "secret", EnvVar: "GITHUB_SECRET", Default: "mysecret"}
	URLSetting       = Setting{Flag: "url", EnvVar: "EL_URL", Default: "http://127.0.0.1:8080"}
	TagSetting       = Setting{Flag: "tag", EnvVar: "RELHOOK_TAG", Default: model.DefaultTagName}
	CommitishSetting = Setting{Flag: "commitish", EnvVar: "RELHOOK_COMMITISH", Default: model.DefaultCommitish}
	RepoSetting      = Setting{Flag: "repo", EnvVar: "RELHOOK_REPO", Default: model.DefaultRepository}
	InsecureSetting  = Setting{Flag: "insecure", EnvVar: "RELHOOK_INSECURE", Default: "false"}
	NoColorSetting   = Setting{Flag: "no-color", EnvVar: "RELHOOK_NO_COLOR", Default: "false"}
)

// Trigger holds sender configuration
type Trigger struct {
	Secret   string
	URL      string
	Release  model.ReleaseSpec
	Insecure bool
	NoColor  bool
}

// NewTrigger resolves sender configuration from parsed arguments and env
func NewTrigger(args Args, env LookupEnv) *Trigger {
	return &Trigger{
		Secret: args.Resolve(SecretSetting, env),
		URL:    strings.TrimSuffix(args.Resolve(URLSetting, env), "/"),
		Release: model.ReleaseSpec{
			TagName:   args.Resolve(TagSetting, env),
			Commitish: args.Resolve(CommitishSetting, env),
			FullName:  args.Resolve(RepoSetting, env),
		},
		Insecure: args.Switch(InsecureSetting, env),
		NoColor:  args.Switch(NoColorSetting, env),
	}
}

// Input converts the configuration into a use case input
func (c *Trigger) Input() *model.TriggerInput {
	return &model.TriggerInput{
		Secret:  c.Secret,
		URL:     c.URL,
		Release: c.Release,
	}
}
