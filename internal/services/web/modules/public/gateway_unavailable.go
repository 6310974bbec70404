package public

import (
	"context"

	"github.com/mindpath/mindpath/internal/journalapi"
	apperrors "github.com/mindpath/mindpath/internal/services/web/platform/errors"
	"github.com/mindpath/mindpath/internal/services/web/storage"
)

type unavailableAuthGateway struct{}

func (unavailableAuthGateway) SignUp(context.Context, string, string, string) (journalapi.User, error) {
	return journalapi.User{}, apperrors.EK(apperrors.KindUnavailable, keyUnexpected, "journal service is not configured")
}

func (unavailableAuthGateway) SignIn(context.Context, string, string) (journalapi.SignInResult, error) {
	return journalapi.SignInResult{}, apperrors.EK(apperrors.KindUnavailable, keyUnexpected, "journal service is not configured")
}

type unavailableSessions struct{}

func (unavailableSessions) Create(context.Context, storage.Session) error {
	return apperrors.EK(apperrors.KindUnavailable, keyUnexpected, "session store is not configured")
}

func (unavailableSessions) Delete(context.Context, string) error {
	return nil
}
