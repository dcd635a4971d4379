package cli

import (
	"github.com/m-mizutani/mmhook/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Config struct {
	WebhookURL   string
	DryRun       bool
	IgnoreStatus bool
	Message      model.Message
}

// messageFlags maps flag names to the Message field they set
var messageFlags = []struct {
	name  string
	usage string
	field func(m *model.Message) **string
}{
	{"text", "Message body", func(m *model.Message) **string { return &m.Text }},
	{"channel", "Override the default channel", func(m *model.Message) **string { return &m.Channel }},
	{"username", "Override the display name", func(m *model.Message) **string { return &m.Username }},
	{"icon-url", "Override the profile picture with an image URL", func(m *model.Message) **string { return &m.IconURL }},
	{"icon-emoji", "Override the profile picture with an emoji", func(m *model.Message) **string { return &m.IconEmoji }},
	{"attachments", "Pre-formatted message attachments", func(m *model.Message) **string { return &m.Attachments }},
	{"type", "Post type recognized by the server", func(m *model.Message) **string { return &m.Type }},
	{"props", "Pre-formatted post properties", func(m *model.Message) **string { return &m.Props }},
}

func DefineMessageFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(messageFlags))
	for _, f := range messageFlags {
		flags = append(flags, &cli.StringFlag{
			Name:  f.name,
			Usage: f.usage,
		})
	}
	return flags
}

func DefineSendFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "url",
			Aliases:  []string{"u"},
			Usage:    "Incoming webhook URL",
			Sources:  cli.EnvVars("MMHOOK_WEBHOOK_URL"),
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the payload instead of sending it",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "ignore-status",
			Usage: "Do not fail when the webhook answers with a non-2xx status",
			Value: false,
		},
	}
}

// MessageFromCommand builds a Message from flags that were explicitly set
func MessageFromCommand(cmd *cli.Command) model.Message {
	msg := model.NewMessage()
	for _, f := range messageFlags {
		if cmd.IsSet(f.name) {
			*f.field(&msg) = model.String(cmd.String(f.name))
		}
	}
	return msg
}

func NewConfigFromCommand(cmd *cli.Command) *Config {
	return &Config{
		WebhookURL:   cmd.String("url"),
		DryRun:       cmd.Bool("dry-run"),
		IgnoreStatus: cmd.Bool("ignore-status"),
		Message:      MessageFromCommand(cmd),
	}
}
