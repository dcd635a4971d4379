package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mmhook/pkg/domain/interfaces"
	"github.com/m-mizutani/mmhook/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func setupLogger(cmd *cli.Command) {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func RunSend(ctx context.Context, cmd *cli.Command) error {
	setupLogger(cmd)
	config := NewConfigFromCommand(cmd)
	w := outputWriter(cmd)

	var notifier interfaces.Notifier
	if config.DryRun {
		notifier = usecase.NewDryRunNotifier(w)
	} else {
		notifier = usecase.NewWebhookNotifier(config.WebhookURL, usecase.NewSender())
	}

	status, err := notifier.Notify(ctx, config.Message)
	if err != nil {
		return err
	}
	if config.DryRun {
		return nil
	}

	printStatus(w, status)

	if !config.IgnoreStatus && !isSuccess(status) {
		return goerr.New(fmt.Sprintf("webhook returned status %d", status),
			goerr.V("status", status))
	}
	return nil
}

func RunPayload(ctx context.Context, cmd *cli.Command) error {
	setupLogger(cmd)

	body, err := MessageFromCommand(cmd).ToJSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(outputWriter(cmd), body)
	return err
}
