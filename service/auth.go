package service

import (
	"errors"
	"time"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/service/i"
	"github.com/google/uuid"
)

const signInTokenTTL = 24 * time.Hour

// Auth registers benchmark accounts and signs them in with JWTs.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth backed by the given repository and tokenizer.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (i.Authenticator, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repo and a tokenizer")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}, nil
}

// Register creates a new account from a username and plain password.
func (a *Auth) Register(username, password string) error {
	userConfig := dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := dmn.NewUser(userConfig)
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn verifies credentials and issues a signed token.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	}, signInTokenTTL)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
