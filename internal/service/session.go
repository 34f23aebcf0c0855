package service

import (
	"errors"

	"github.com/google/uuid"

	"moviechat/internal/models"
	"moviechat/internal/repository"
	"moviechat/internal/utils"
)

// SessionService resolves session tokens to anonymous identities.
type SessionService struct {
	identityRepo repository.IdentityRepository
	secret       string
}

func NewSessionService(identityRepo repository.IdentityRepository, secret string) *SessionService {
	return &SessionService{identityRepo: identityRepo, secret: secret}
}

// Resolve returns the identity behind the token. An absent, unparseable or
// unknown token is healed by provisioning a fresh identity; the caller must
// then remember the returned fresh token. freshToken is empty when the
// presented token resolved. The only error path is store failure.
func (s *SessionService) Resolve(token string) (ident *models.Identity, freshToken string, err error) {
	if token != "" {
		id, parseErr := utils.ParseSessionToken(token, s.secret)
		if parseErr == nil {
			ident, err = s.identityRepo.FindByID(id)
			if err == nil {
				return ident, "", nil
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, "", err
			}
			// Known-shape token but no row behind it (e.g. data loss):
			// fall through and re-provision.
		}
	}

	ident = &models.Identity{
		ID:     uuid.NewString(),
		Handle: utils.NewHandle(),
	}
	if err := s.identityRepo.Create(ident); err != nil {
		return nil, "", err
	}

	freshToken, err = utils.GenerateSessionToken(ident.ID, s.secret)
	if err != nil {
		return nil, "", err
	}
	return ident, freshToken, nil
}
