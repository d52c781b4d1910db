package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/config"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/service"
	"parc-system/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.TokenPairDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, refreshToken string) error
	SendResetCode(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, payload dto.ResetPasswordDTO) error
	ChangePassword(ctx context.Context, payload dto.ChangePasswordDTO) error
	GetProfile(ctx context.Context) (*dto.ProfileDTO, error)
}

type AuthService struct {
	compteRepo repositories.CompteRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	jwtService service.JWTService
	authConfig config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	compteRepo repositories.CompteRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		compteRepo: compteRepo,
		cache:      cache,
		jwtService: jwtService,
		authConfig: authConfig,
		logger:     logger,
	}
}

func loginAttemptsKey(email string) string { return "auth:attempts:" + email }
func resetCodeKey(email string) string     { return "auth:reset:" + email }
func revokedTokenKey(token string) string  { return "auth:revoked:" + token }

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.TokenPairDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	compte := &entities.Compte{ID: id, Email: payload.Email, PasswordHash: string(hash)}
	profile := &entities.Profile{ID: id, Email: payload.Email, Prenom: payload.Prenom, Nom: payload.Nom}

	if err := s.compteRepo.CreateCompteWithProfile(ctx, compte, profile); err != nil {
		return nil, err
	}

	return s.generatePair(compte.ID)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	attemptsKey := loginAttemptsKey(payload.Email)
	if raw, err := s.cache.Get(ctx, attemptsKey); err == nil {
		if attempts, err := strconv.Atoi(raw); err == nil && attempts >= s.authConfig.MaxLoginAttempts {
			return nil, apperrors.ErrAccountLocked
		}
	}

	compte, err := s.compteRepo.FindCompteByEmail(ctx, payload.Email)
	if err != nil {
		// Même réponse qu'un mauvais mot de passe: ne pas révéler
		// l'existence du compte.
		s.recordFailedAttempt(ctx, attemptsKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(compte.PasswordHash), []byte(payload.Password)); err != nil {
		s.recordFailedAttempt(ctx, attemptsKey)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cache.Del(ctx, attemptsKey); err != nil {
		s.logger.Warn("échec de remise à zéro du compteur de connexions", zap.Error(err))
	}
	return s.generatePair(compte.ID)
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	attempts, err := s.cache.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("échec d'incrément du compteur de connexions", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cache.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("échec de pose du TTL sur le compteur de connexions", zap.Error(err))
		}
	}
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	if _, err := s.cache.Get(ctx, revokedTokenKey(refreshToken)); err == nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Le compte doit encore exister: un compte supprimé ne se rafraîchit pas.
	if _, err := s.compteRepo.FindCompte(ctx, claims.OwnerID); err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return s.generatePair(claims.OwnerID)
}

// Logout révoque le jeton de rafraîchissement: il est mis sur liste noire
// jusqu'à son expiration naturelle, le jeton d'accès expire de lui-même.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return err
	}
	if !claims.IsRefreshToken {
		return apperrors.ErrTokenIsNotRefresh
	}

	if err := s.cache.Set(ctx, revokedTokenKey(refreshToken), "1", s.jwtService.GetRefreshTokenTTL()); err != nil {
		return err
	}
	s.logger.Info("déconnexion", zap.String("owner_id", claims.OwnerID))
	return nil
}

func (s *AuthService) generatePair(ownerID string) (*dto.TokenPairDTO, error) {
	access, refresh, err := s.jwtService.GenerateTokens(ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) SendResetCode(ctx context.Context, email string) error {
	if _, err := s.compteRepo.FindCompteByEmail(ctx, email); err != nil {
		// Réponse identique qu'il existe ou non, pour ne pas permettre
		// l'énumération des comptes.
		return nil
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.cache.Set(ctx, resetCodeKey(email), code, s.authConfig.ResetTokenTTL); err != nil {
		return err
	}

	// TODO: brancher l'envoi SMTP; en attendant le code part dans les logs.
	s.logger.Info("code de réinitialisation généré",
		zap.String("email", email),
		zap.String("code", code),
	)
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, payload dto.ResetPasswordDTO) error {
	stored, err := s.cache.Get(ctx, resetCodeKey(payload.Email))
	if err != nil || stored != payload.Code {
		return apperrors.ErrInvalidCredentials
	}

	compte, err := s.compteRepo.FindCompteByEmail(ctx, payload.Email)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.compteRepo.UpdatePassword(ctx, compte.ID, string(hash)); err != nil {
		return err
	}

	if err := s.cache.Del(ctx, resetCodeKey(payload.Email)); err != nil {
		s.logger.Warn("échec de suppression du code de réinitialisation", zap.Error(err))
	}
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, payload dto.ChangePasswordDTO) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}

	compte, err := s.compteRepo.FindCompte(ctx, ownerID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(compte.PasswordHash), []byte(payload.OldPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.compteRepo.UpdatePassword(ctx, ownerID, string(hash))
}

func (s *AuthService) GetProfile(ctx context.Context) (*dto.ProfileDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.compteRepo.FindProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileDTO{
		ID:     profile.ID,
		Email:  profile.Email,
		Prenom: profile.Prenom,
		Nom:    profile.Nom,
	}, nil
}
