package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"

	"github.com/Jumpaku/go-survey/errors"
	"github.com/Jumpaku/go-survey/form"
	"github.com/Jumpaku/go-survey/internal/config"
)

var googleScopes = []string{
	forms.FormsBodyScope,
	forms.FormsResponsesReadonlyScope,
	drive.DriveFileScope,
}

// newFormClient returns a constructor for the Google client using the
// configured credentials file or application default credentials.
func newFormClient(cfg config.GoogleConfig) func(ctx context.Context) (*form.Client, error) {
	return func(ctx context.Context) (*form.Client, error) {
		creds, err := findCredentials(ctx, cfg.Credentials)
		if err != nil {
			return nil, err
		}
		formsService, err := forms.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, errors.NewAPIError("failed to create forms service", err)
		}
		driveService, err := drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, errors.NewAPIError("failed to create drive service", err)
		}
		return form.New(formsService, driveService), nil
	}
}

func findCredentials(ctx context.Context, path string) (*google.Credentials, error) {
	if path == "" {
		creds, err := google.FindDefaultCredentials(ctx, googleScopes...)
		if err != nil {
			return nil, errors.NewConfigError("no google credentials", err)
		}
		return creds, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read credentials %s", path), err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, googleScopes...)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("invalid credentials %s", path), err)
	}
	return creds, nil
}
