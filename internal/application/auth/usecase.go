package auth

import (
	"context"
	"time"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: intercambio de sesión contra el
// proveedor OAuth, validación de sesiones activas y logout (revocación).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	provider    SessionDataProvider
	sessionTTL  time.Duration
}

// NewAuthUseCase construye el caso de uso. sessionDays es la vigencia de las
// sesiones emitidas (típicamente 7).
func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	provider SessionDataProvider,
	sessionDays int,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		provider:    provider,
		sessionTTL:  time.Duration(sessionDays) * 24 * time.Hour,
	}
}

// ExchangeSession canjea el session_id del redirect OAuth por una sesión
// propia: obtiene los datos del proveedor, reutiliza el usuario por email o
// lo crea, y persiste la sesión con el token opaco del proveedor.
func (uc *AuthUseCase) ExchangeSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidInput
	}
	data, err := uc.provider.FetchSessionData(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}

	user, err := uc.userRepo.GetByEmail(data.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entity.User{
			ID:        entity.NewID("user"),
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := uc.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	session := &entity.Session{
		Token:     data.SessionToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.sessionTTL),
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		User:         *toUserResponse(user),
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// Authenticate resuelve un token de sesión al usuario dueño.
// Devuelve ErrUnauthorized si la sesión no existe y ErrSessionExpired si venció.
func (uc *AuthUseCase) Authenticate(token string) (*dto.UserResponse, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired(time.Now().UTC()) {
		return nil, domain.ErrSessionExpired
	}
	user, err := uc.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// Logout revoca la sesión. Un token inexistente no es un error.
func (uc *AuthUseCase) Logout(token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionRepo.DeleteByToken(token)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
	}
}
