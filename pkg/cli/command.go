package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "mmhook",
		Usage:   "Post messages to an incoming webhook",
		Version: "0.1.0",
		Description: `mmhook builds a webhook message from the given fields and posts it.

Only the fields given on the command line are included in the payload.
The webhook URL can be set with --url or MMHOOK_WEBHOOK_URL.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "send",
				Usage:  "Send a message to the webhook",
				Flags:  append(DefineSendFlags(), DefineMessageFlags()...),
				Action: RunSend,
			},
			{
				Name:   "payload",
				Usage:  "Print the JSON payload without sending it",
				Flags:  DefineMessageFlags(),
				Action: RunPayload,
			},
		},
	}
}
