package murk

import (
	"context"

	"github.com/murkdev/gameclient/codec"
	"github.com/murkdev/gameclient/httpclient"
	"github.com/murkdev/gameclient/logger"
)

// Backend routes, relative to the client's base URL.
const (
	routeLogin       = "user/login"
	routeProfile     = "user/profile"
	routeSubmitScore = "score/submit"
)

// Service exposes the backend API operations over an authenticated client.
type Service struct {
	client *httpclient.Client
	log    *logger.Logger
}

// NewService creates a Service on top of an existing client.
func NewService(client *httpclient.Client, log *logger.Logger) *Service {
	return &Service{
		client: client,
		log:    log.WithComponent("murk"),
	}
}

// Login authenticates with the backend. On a valid response the returned
// hash becomes the credential for every subsequent request, then the decoded
// response is delivered to done. On any failure done receives a typed error
// and the credential is left untouched. done is invoked exactly once.
func (s *Service) Login(ctx context.Context, creds LoginRequest, done func(*LoginResponse, error)) {
	dispatch(s, ctx, httpclient.MethodPost, routeLogin, creds, func(resp *LoginResponse, err error) {
		if err != nil {
			done(nil, err)
			return
		}
		s.client.Credentials().Set(resp.Hash)
		s.log.Info("login succeeded", logger.Fields("id", resp.ID, "name", resp.Name))
		done(resp, nil)
	})
}

// Profile fetches the authenticated player's profile.
func (s *Service) Profile(ctx context.Context, done func(*ProfileResponse, error)) {
	dispatch(s, ctx, httpclient.MethodGet, routeProfile, struct{}{}, done)
}

// SubmitScore reports a finished run's score.
func (s *Service) SubmitScore(ctx context.Context, score ScoreRequest, done func(*ScoreResponse, error)) {
	dispatch(s, ctx, httpclient.MethodPost, routeSubmitScore, score, done)
}

// dispatch runs the template every operation shares: encode the payload,
// send the request, validate the outcome, decode the body. The handler
// closes over whatever caller context it needs; it is invoked exactly once,
// off the calling goroutine.
func dispatch[P any, R any](s *Service, ctx context.Context, method httpclient.Method, route string, payload P, done func(*R, error)) {
	var req httpclient.Request
	switch method {
	case httpclient.MethodGet:
		req = httpclient.NewGetRequest(route)
	default:
		body, err := codec.Encode(payload)
		if err != nil {
			done(nil, err)
			return
		}
		req = httpclient.NewPostRequest(route, body)
	}

	s.client.Send(ctx, req, func(o httpclient.Outcome) {
		if !s.client.ResponseIsValid(o) {
			done(nil, httpclient.OutcomeError(o))
			return
		}
		var resp R
		if err := codec.Decode(string(o.Body), &resp); err != nil {
			done(nil, httpclient.NewDecodeError(err))
			return
		}
		done(&resp, nil)
	})
}
