// Package accounts 管理買家與藝術家的帳號
//
// 買家與藝術家分別存放於不同的資料表，密碼一律以 bcrypt 雜湊後儲存。
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gallery/models"
)

var (
	ErrUsernameTaken       = models.NewError(models.ErrInvalidInput, "username already exists")
	ErrInvalidRegistration = models.NewError(models.ErrInvalidInput, "full name, username and a password of at most 72 bytes are required")
	ErrInvalidCredentials  = models.NewError(models.ErrUnauthenticated, "invalid username or password")
)

// account 是 Customer 與 ArtistAccount 共用的欄位
type account interface {
	models.Customer | models.ArtistAccount
}

type Service struct {
	db     *gorm.DB
	cost   int
	logger *slog.Logger
}

type Option func(*Service)

// WithBcryptCost 設置密碼雜湊的成本
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost != 0 {
			s.cost = cost
		}
	}
}

// WithLogger 設置日誌記錄器
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:     db,
		cost:   bcrypt.DefaultCost,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("caller", "Accounts"))
	return s
}

func (s *Service) RegisterCustomer(ctx context.Context, fullName, username, password string) (models.Customer, error) {
	const op = "accounts.RegisterCustomer"
	customer, err := register(ctx, s, fullName, username, password, func(fullName, username, hash string) models.Customer {
		return models.Customer{FullName: fullName, Username: username, PasswordHash: hash}
	})
	if err != nil {
		return models.Customer{}, wrap(op, "register customer", err)
	}
	s.logger.Info("Customer registered", slog.Uint64("customerID", uint64(customer.ID)))
	return customer, nil
}

func (s *Service) RegisterArtist(ctx context.Context, fullName, username, password string) (models.ArtistAccount, error) {
	const op = "accounts.RegisterArtist"
	artist, err := register(ctx, s, fullName, username, password, func(fullName, username, hash string) models.ArtistAccount {
		return models.ArtistAccount{FullName: fullName, Username: username, PasswordHash: hash}
	})
	if err != nil {
		return models.ArtistAccount{}, wrap(op, "register artist", err)
	}
	s.logger.Info("Artist registered", slog.Uint64("artistID", uint64(artist.ID)))
	return artist, nil
}

func (s *Service) AuthenticateCustomer(ctx context.Context, username, password string) (models.Customer, error) {
	const op = "accounts.AuthenticateCustomer"
	customer, err := authenticate[models.Customer](ctx, s.db, username, password, func(c models.Customer) string {
		return c.PasswordHash
	})
	if err != nil {
		return models.Customer{}, wrap(op, "authenticate customer", err)
	}
	return customer, nil
}

func (s *Service) AuthenticateArtist(ctx context.Context, username, password string) (models.ArtistAccount, error) {
	const op = "accounts.AuthenticateArtist"
	artist, err := authenticate[models.ArtistAccount](ctx, s.db, username, password, func(a models.ArtistAccount) string {
		return a.PasswordHash
	})
	if err != nil {
		return models.ArtistAccount{}, wrap(op, "authenticate artist", err)
	}
	return artist, nil
}

// bcrypt 只接受 72 位元組以內的密碼
const maxPasswordBytes = 72

func register[T account](ctx context.Context, s *Service, fullName, username, password string, build func(fullName, username, hash string) T) (T, error) {
	var zero T
	fullName = strings.TrimSpace(fullName)
	username = strings.TrimSpace(username)
	if fullName == "" || username == "" || password == "" || len(password) > maxPasswordBytes {
		return zero, ErrInvalidRegistration
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("username = ?", username).Count(&count).Error; err != nil {
		return zero, fmt.Errorf("fail to check username, err=%w", models.Persistence(err))
	}
	if count > 0 {
		return zero, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return zero, ErrInvalidRegistration
	}
	if err != nil {
		return zero, fmt.Errorf("fail to hash password, err=%w", err)
	}
	record := build(fullName, username, string(hash))
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// 檢查與新增之間被搶先註冊
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return zero, ErrUsernameTaken
		}
		return zero, fmt.Errorf("fail to create account, err=%w", models.Persistence(err))
	}
	return record, nil
}

func authenticate[T account](ctx context.Context, db *gorm.DB, username, password string, hashOf func(T) string) (T, error) {
	var record T
	err := db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, ErrInvalidCredentials
	}
	if err != nil {
		return record, fmt.Errorf("fail to find account, err=%w", models.Persistence(err))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashOf(record)), []byte(password)); err != nil {
		var zero T
		return zero, ErrInvalidCredentials
	}
	return record, nil
}

func wrap(op, action string, err error) error {
	if _, ok := models.UserMessage(err); ok {
		return err
	}
	return fmt.Errorf("[%s] Fail to %s, err=%w", op, action, err)
}
