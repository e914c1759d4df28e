package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ojtportal/ojt-backend-go/internal/domain/auth"
	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/jwt"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	studentRepo   student.StudentRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(studentRepo student.StudentRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		studentRepo:   studentRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	stu, err := a.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, student.ErrStudentNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get student by email: %w", err)
	}

	if stu.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*stu.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !stu.Active {
		return auth.TokenResponse{}, student.ErrInactiveStudent
	}

	return a.issueTokens(stu)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(_ context.Context, userAgent string) (string, error) {
	state := a.googleService.GenerateState(userAgent)
	if state == "" {
		return "", fmt.Errorf("failed to generate oauth state")
	}
	return a.googleService.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	stu, err := a.studentRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, student.ErrStudentNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountUnknown
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get student by email: %w", err)
	}
	if !stu.Active {
		return auth.TokenResponse{}, student.ErrInactiveStudent
	}

	return a.issueTokens(stu)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	decoded, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := decoded.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	studentIDVal, ok := decoded.Get("student_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	studentID, ok := studentIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stu, err := a.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get student: %w", err)
	}

	// Rotate: the old refresh token dies with the exchange.
	a.jwtService.RevokeToken(refreshToken)
	return a.issueTokens(stu)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(stu student.Student) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(stu.ID, stu.Email, stu.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(stu.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return resp, nil
}
