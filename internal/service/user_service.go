package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pshams/tradebook/internal/auth"
	"github.com/pshams/tradebook/internal/model"
	"github.com/pshams/tradebook/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials rejects a login without revealing whether the email
// or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles registration, login and profile maintenance. Every
// registered user gets a freshly allocated wallet.
type UserService struct {
	repo    repository.UserRepository
	wallets *WalletService
	tokens  *auth.Manager
}

func NewUserService(repo repository.UserRepository, wallets *WalletService, tokens *auth.Manager) *UserService {
	return &UserService{
		repo:    repo,
		wallets: wallets,
		tokens:  tokens,
	}
}

// Register creates a wallet and a user bound to it. The email must be unused
// and all fields are required; the password is stored bcrypt-hashed.
func (us *UserService) Register(name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, model.NewValidationError("name, email and password are required")
	}

	_, err := us.repo.FindByEmail(email)
	if err == nil {
		return nil, model.NewValidationError("email already exists")
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	wallet, err := us.wallets.Create()
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		WalletID:  wallet.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := us.repo.Create(user); err != nil {
		logrus.WithError(err).Error("failed to insert user")
		return nil, err
	}
	return us.repo.FindByID(user.ID)
}

// Login verifies the credentials and issues a JWT for the user.
func (us *UserService) Login(email, password string) (string, error) {
	user, err := us.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return us.tokens.CreateToken(user.ID)
}

// Update overwrites the profile fields and stamps UpdatedAt. The password is
// re-hashed on every update, so callers must resend it even when unchanged.
func (us *UserService) Update(id, name, email, walletID, password string) (*model.User, error) {
	user, err := us.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	user.WalletID = walletID
	user.Password = string(hashed)
	user.UpdatedAt = time.Now()

	if err := us.repo.Update(user); err != nil {
		logrus.WithError(err).WithField("user_id", id).Error("failed to update user")
		return nil, err
	}
	return us.repo.FindByID(id)
}

// Delete removes the user. Trades are left in place; there is no cascading
// cleanup.
func (us *UserService) Delete(id string) (bool, error) {
	if _, err := us.repo.FindByID(id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := us.repo.Delete(id); err != nil {
		logrus.WithError(err).WithField("user_id", id).Error("failed to delete user")
		return false, err
	}
	return true, nil
}

func (us *UserService) Get(id string) (*model.User, error) {
	return us.repo.FindByID(id)
}

func (us *UserService) List() ([]model.User, error) {
	return us.repo.List()
}
