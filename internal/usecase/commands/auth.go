package commands

import (
	"context"

	"webhooknest/internal/domain/user"
	reqdto "webhooknest/internal/handler/dto/request"
	"webhooknest/internal/infra"
	"webhooknest/internal/pkg/errs"
	"webhooknest/internal/pkg/jwt"
	"webhooknest/internal/pkg/password"
	"webhooknest/internal/pkg/token"
	"webhooknest/internal/usecase/queries"
)

var (
	ErrEmailTaken         = errs.New("email already exists")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrValidation         = errs.New("validation failed")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AuthResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	apiKey, err := token.NewAPIKey()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate api key")
	}

	view, err := a.userRepo.Create(ctx, credentials.Email().Value(), credentials.Email().LocalPart(), hash, apiKey)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	tokenString, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: tokenString, User: view}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	tokenString, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: tokenString, User: view}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.UserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
