package public

import (
	"context"

	"github.com/mindpath/mindpath/internal/journalapi"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
)

// AuthClient is the subset of the journal service client used for accounts.
type AuthClient interface {
	SignUp(ctx context.Context, req journalapi.SignUpRequest) (journalapi.User, error)
	SignIn(ctx context.Context, req journalapi.SignInRequest) (journalapi.SignInResult, error)
}

type apiAuthGateway struct {
	client AuthClient
}

// NewAPIAuthGateway returns an AuthGateway backed by the journal service.
func NewAPIAuthGateway(client AuthClient) AuthGateway {
	if client == nil {
		return unavailableAuthGateway{}
	}
	return apiAuthGateway{client: client}
}

func (g apiAuthGateway) SignUp(ctx context.Context, email, username, password string) (journalapi.User, error) {
	user, err := g.client.SignUp(ctx, journalapi.SignUpRequest{Email: email, Username: username, Password: password})
	if err != nil {
		return journalapi.User{}, mapAuthError(err, journalapi.MessageSignUpFailed)
	}
	return user, nil
}

func (g apiAuthGateway) SignIn(ctx context.Context, email, password string) (journalapi.SignInResult, error) {
	result, err := g.client.SignIn(ctx, journalapi.SignInRequest{Email: email, Password: password})
	if err != nil {
		return journalapi.SignInResult{}, mapAuthError(err, journalapi.MessageSignInFailed)
	}
	return result, nil
}

// mapAuthError treats rejected credentials as invalid input so the form is
// re-rendered with the service message.
func mapAuthError(err error, fallback string) error {
	message := journalapi.Message(err, fallback)
	if journalapi.IsUnauthorized(err) {
		return apperrors.Wrap(apperrors.KindInvalidInput, message, err)
	}
	return apperrors.FromUpstream(journalapi.StatusCode(err), message, err)
}
