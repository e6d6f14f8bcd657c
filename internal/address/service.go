package address

import (
	"context"
	"time"

	"vesture-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, userID uint) ([]*Address, error)
	Get(ctx context.Context, userID uint, addressID string) (*Address, error)

	Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error)
	// Update replaces the address: the old row is deactivated and a new
	// one created, so orders that snapshotted the old id stay intact.
	Update(ctx context.Context, userID uint, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, userID uint, addressID string) error

	SetDefaultAddress(ctx context.Context, userID uint, addressID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateInput(name, phone, line1, city, state, pincode string) error {
	if name == "" || phone == "" || line1 == "" || city == "" || state == "" || pincode == "" {
		return ErrInvalidInput
	}
	return nil
}

func (s *service) List(ctx context.Context, userID uint) ([]*Address, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID uint, addressID string) (*Address, error) {
	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	// Never reveal another user's address, not even its existence
	if addr.UserID != userID {
		return nil, ErrAddressNotFound
	}
	return addr, nil
}

func (s *service) Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	if err := validateInput(input.Name, input.Phone, input.AddressLine1,
		input.City, input.State, input.Pincode); err != nil {
		return nil, err
	}

	addr := &Address{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         input.Name,
		Phone:        input.Phone,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		Landmark:     input.Landmark,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		AddressType:  input.AddressType,
		IsDefault:    input.SetAsDefault,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if input.SetAsDefault {
		_ = s.repo.ClearDefault(ctx, userID)
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID))
	return addr, nil
}

func (s *service) Update(ctx context.Context, userID uint, input UpdateAddressInput) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.Uint("user_id", userID),
	)

	if err := validateInput(input.Name, input.Phone, input.AddressLine1,
		input.City, input.State, input.Pincode); err != nil {
		return nil, err
	}

	oldAddr, err := s.repo.GetByID(ctx, input.AddressID)
	if err != nil {
		return nil, err
	}
	if oldAddr.UserID != userID {
		return nil, ErrAddressNotFound
	}

	// deactivate old address
	_ = s.repo.Deactivate(ctx, input.AddressID)

	newAddr := &Address{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         input.Name,
		Phone:        input.Phone,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		Landmark:     input.Landmark,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		AddressType:  input.AddressType,
		IsDefault:    input.SetAsDefault || oldAddr.IsDefault,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if input.SetAsDefault {
		_ = s.repo.ClearDefault(ctx, userID)
	}

	if err := s.repo.Create(ctx, newAddr); err != nil {
		log.Error("failed to update address", zap.Error(err))
		return nil, err
	}

	log.Info("address updated",
		zap.String("old_id", input.AddressID),
		zap.String("new_id", newAddr.ID),
	)
	return newAddr, nil
}

func (s *service) Delete(ctx context.Context, userID uint, addressID string) error {
	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if addr.UserID != userID {
		return ErrAddressNotFound
	}
	return s.repo.Deactivate(ctx, addressID)
}

func (s *service) SetDefaultAddress(ctx context.Context, userID uint, addressID string) error {
	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if addr.UserID != userID {
		return ErrAddressNotFound
	}

	if err := s.repo.ClearDefault(ctx, userID); err != nil {
		return err
	}
	return s.repo.SetDefault(ctx, userID, addressID)
}
