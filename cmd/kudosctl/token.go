package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"radya-hi5/config"
	"radya-hi5/internal/auth"
	"radya-hi5/internal/notifier"
	"radya-hi5/internal/repository"
	"radya-hi5/internal/roster"
	"radya-hi5/internal/usecase"
	"radya-hi5/internal/usecase/domain"
	"radya-hi5/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	emailFlagName = "email"
	nameFlagName  = "name"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "sign in an account by email and print a session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString(emailFlagName)
			name, _ := cmd.Flags().GetString(nameFlagName)
			if email == "" {
				return errors.New("--email is required")
			}
			return issueToken(cmd, email, name)
		},
	}
	cmd.Flags().String(emailFlagName, "", "account email")
	cmd.Flags().String(nameFlagName, "", "display name used when the account is created")
	return cmd
}

func issueToken(cmd *cobra.Command, email, name string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log, err := logger.New("error")
	if err != nil {
		return err
	}

	dir, err := roster.Load(cfg.Roster.MembersFile, cfg.Roster.EmailsFile)
	if err != nil {
		return err
	}
	catalog, err := roster.LoadValues(cfg.Roster.ValuesFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		return err
	}
	defer func() { _ = repo.OnStop(context.Background()) }()

	uc := usecase.New(log, ctx, repo, dir, catalog, notifier.NewLogNotifier(log), domain.Options{
		Timeout:       cfg.HTTP.RequestTimeout,
		MessageMaxLen: cfg.Kudos.MessageMaxLen,
	})
	res, err := uc.SignIn(ctx, email, name, nil)
	if err != nil {
		return err
	}

	tokens := auth.NewTokenProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL)
	token, exp, err := tokens.Issue(res.Account.ID, res.Account.Email)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "account: %s linked: %t admin: %t\n", res.Account.ID, res.Linked, res.Account.IsAdmin)
	fmt.Fprintf(out, "expires: %s\n", exp.Format(time.RFC3339))
	fmt.Fprintln(out, token)
	return nil
}
