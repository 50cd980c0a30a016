package application

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/craftly/craftly-api/config"
	"github.com/craftly/craftly-api/internal/domain/entity"
	"github.com/craftly/craftly-api/internal/domain/repository"
	"github.com/craftly/craftly-api/pkg/helpers"
	"github.com/craftly/craftly-api/pkg/mailer"
)

// Mailer sends a plain-text email and reports the result synchronously.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// Publisher enqueues a message for asynchronous processing.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService owns signup/login, session issuance and the password
// reset token lifecycle.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Mailer Mailer
	Queue  Publisher // optional; welcome mail is fire-and-forget
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, m Mailer, q Publisher, cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Mailer: m, Queue: q, Cfg: cfg, Logger: logger}
}

// Session is a signed token together with its expiry, attached to the
// response as an HTTP-only cookie and echoed in the body on auth routes.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) issueSession(u *entity.User) (Session, error) {
	tok, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return Session{}, err
	}
	return Session{Token: tok, ExpiresAt: exp}, nil
}

// Signup creates a user with a hashed password and issues a session.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*entity.User, Session, error) {
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, Session{}, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, Session{}, err
	}
	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, Session{}, err
	}

	sess, err := s.issueSession(u)
	if err != nil {
		return nil, Session{}, err
	}

	// Welcome mail goes through the queue; a broker hiccup must not
	// fail the signup.
	if s.Queue != nil && s.Cfg != nil && s.Cfg.MailSendEnabled {
		job := mailer.EmailJob{
			To:      u.Email,
			Subject: "Welcome to " + s.Cfg.AppName,
			Text:    fmt.Sprintf("Hi %s,\n\nYour account is ready. Happy shopping!\n", u.Name),
		}
		if err := s.Queue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("enqueue welcome email failed")
		}
	}

	return u, sess, nil
}

// Login validates email/password and issues a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, Session, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, Session{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, Session{}, ErrInvalidCredentials
	}
	sess, err := s.issueSession(u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}

// GetProfile returns the user for an authenticated session.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// hashResetToken derives the value stored server-side from the token
// handed to the user. Only the hash ever touches the database.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ForgotPassword issues a single-use reset token for the user, persists
// its hash with an expiry, and emails the plaintext token. If the email
// cannot be sent, the token fields are cleared again so a failed
// request never leaves a dangling valid token.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return ErrUserNotFound
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(s.Cfg.ResetTokenTTL)
	if err := s.Repo.SetResetToken(ctx, u.ID, hashResetToken(token), expiry); err != nil {
		return err
	}

	link := s.Cfg.ResetPasswordURL + "/" + token
	text := fmt.Sprintf(
		"Hi %s,\n\nClick the link below to reset your password. It expires in %s.\n\n%s\n\nIf you did not request this, you can ignore this email.\n",
		u.Name, s.Cfg.ResetTokenTTL, link,
	)
	if err := s.Mailer.Send(ctx, u.Email, "Reset your password", text); err != nil {
		if clearErr := s.Repo.ClearResetToken(ctx, u.ID); clearErr != nil && s.Logger != nil {
			s.Logger.WithError(clearErr).WithField("user_id", u.ID).Error("clear reset token after mail failure")
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("send reset email failed")
		}
		return ErrMailSend
	}
	return nil
}

// ResetPassword consumes a reset token: it looks the user up by the
// token's hash and a live expiry, replaces the password, clears the
// token fields and issues a fresh session. A token can be consumed at
// most once; a concurrent attempt loses the race and sees
// ErrInvalidOrExpiredToken.
func (s *AuthService) ResetPassword(ctx context.Context, token, password, confirm string) (*entity.User, Session, error) {
	u, err := s.Repo.GetByResetToken(ctx, hashResetToken(token), time.Now())
	if err != nil || u == nil {
		return nil, Session{}, ErrInvalidOrExpiredToken
	}
	if password != confirm {
		return nil, Session{}, ErrPasswordMismatch
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, Session{}, err
	}
	u.Password = hash
	u.ResetTokenHash = nil
	u.ResetTokenExpiresAt = nil
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, Session{}, err
	}

	sess, err := s.issueSession(u)
	if err != nil {
		return nil, Session{}, err
	}
	return u, sess, nil
}
