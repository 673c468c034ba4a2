package service

import (
	"github.com/climbreels/cli/pkg/client"
	"github.com/climbreels/cli/pkg/credentials"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/prompter"
)

// loadSession returns the stored session, or nil when there is none or it
// expired. A usable session's token is attached to the client.
func loadSession() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "err", err)
		return nil, err
	}
	if creds == nil || !creds.IsValid() {
		return nil, nil
	}
	client.SetAuthToken(creds.Token)
	return creds, nil
}

// requireSession is loadSession for actions that need a user. notice is
// the message shown when nobody is logged in.
func requireSession(notice string) (*credentials.Credentials, error) {
	creds, err := loadSession()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, clierrors.AuthError(notice)
	}
	return creds, nil
}

func orStd(p *prompter.Prompter) *prompter.Prompter {
	if p == nil {
		return prompter.Std()
	}
	return p
}
