package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/examportal/practice-lambda/internal/auth"
	"github.com/examportal/practice-lambda/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	roleRefresh = "refresh"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("name, email and password are required")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	Login(ctx context.Context, dto LoginDTO) (*User, *TokenPair, error)
	GoogleLogin(ctx context.Context, dto GoogleLoginDTO) (*User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	googleOAuth *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		googleOAuth: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Name) == "" ||
		strings.TrimSpace(dto.Email) == "" ||
		dto.Password == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Erro ao verificar email")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         dto.Name,
		Email:        strings.ToLower(dto.Email),
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Erro ao criar usuário")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Usuário registrado com sucesso")
	return u, nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*User, *TokenPair, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(strings.ToLower(dto.Email))
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário")
		return nil, nil, err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Login realizado com sucesso")
	return u, tokens, nil
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin exchanges the authorization code, upserts the account and
// keeps the Google refresh token encrypted at rest.
func (s *userService) GoogleLogin(ctx context.Context, dto GoogleLoginDTO) (*User, *TokenPair, error) {
	log := config.WithContext(ctx)

	token, err := s.googleOAuth.Exchange(ctx, dto.Code)
	if err != nil {
		log.WithError(err).Warn("Falha ao trocar código OAuth do Google")
		return nil, nil, ErrInvalidCredentials
	}

	client := s.googleOAuth.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, nil, fmt.Errorf("failed to decode google userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(strings.ToLower(info.Email))
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		u = &User{
			Name:  info.Name,
			Email: strings.ToLower(info.Email),
			Role:  "user",
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Erro ao criar usuário via Google")
			return nil, nil, err
		}
	}

	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			return nil, nil, err
		}
		u.GoogleRefreshToken = &encrypted
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Erro ao salvar refresh token do Google")
			return nil, nil, err
		}
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return nil, nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Login via Google realizado com sucesso")
	return u, tokens, nil
}

// Refresh mints a new access token from a still-valid refresh token.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil || claims.Role != roleRefresh {
		return "", ErrInvalidCredentials
	}

	u, err := s.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateJWT(u.ID.String(), u.Role, accessTokenTTL)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.repo.FindByID(userID)
}

func (s *userService) issueTokens(u *User) (*TokenPair, error) {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), roleRefresh, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
