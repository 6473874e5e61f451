package services

import (
	"context"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/models"
)

// verifyEndpoints are probed in order; deployments expose different ones.
var verifyEndpoints = []string{"/auth/verify", "/auth/me", "/users/me", "/me"}

type Auth struct {
	client *api.Client
}

func NewAuth(client *api.Client) *Auth {
	return &Auth{client: client}
}

func (s *Auth) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.PostPublic(ctx, "/auth/login", req, &resp)
	return resp, err
}

func (s *Auth) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.PostPublic(ctx, "/auth/register", req, &resp)
	return resp, err
}

func (s *Auth) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/logout", nil, nil)
}

// VerifyToken reports whether the API still accepts token. A 401 from any
// endpoint is a definitive no; when no endpoint answers, or the API cannot be
// reached, the token is assumed valid.
func (s *Auth) VerifyToken(ctx context.Context, token string) bool {
	for _, endpoint := range verifyEndpoints {
		err := s.client.GetWithToken(ctx, endpoint, token)
		switch api.StatusOf(err) {
		case 0:
			// Success, or a transport failure we don't hold against the token.
			return true
		case 401:
			return false
		case 404:
			continue
		default:
			return true
		}
	}
	return true
}
