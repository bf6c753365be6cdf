package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/auth"
)

type TokenCmd struct {
	ConfigFile string `default:".BusinessFinder.toml" help:"Path to config file" short:"c"`
	Subject    string `arg:""                         help:"Administrator identity, usually an email address"`
}

func (t *TokenCmd) Run(ctx *Context) error {
	logger := developmentLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetAuthConfig(t.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	token, session, err := auth.NewAuthManager(*conf, logger).Issue(t.Subject)
	if err != nil {
		return err
	}

	logger.Info("issued session", zap.String("subject", session.Subject), zap.Time("expiresAt", session.ExpiresAt))
	fmt.Fprintln(os.Stdout, token)

	return nil
}
