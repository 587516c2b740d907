package config

import "github.com/urfave/cli/v3"

// GitHub holds webhook verification configuration for the listener
type GitHub struct {
	WebhookSecret string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        SecretSetting.Flag,
			Usage:       "GitHub webhook secret",
			Value:       SecretSetting.Default,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars(SecretSetting.EnvVar),
		},
	}
}
