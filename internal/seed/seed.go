package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/app/repositories"
	"github.com/lmartinez/boletin-digital/internal/config"
	"github.com/lmartinez/boletin-digital/internal/pkg/auth"
	"github.com/lmartinez/boletin-digital/internal/pkg/logger"
)

// EnsureInitialAdmin creates the bootstrap administrator account when
// no admin user exists yet. Credentials come from the admin section of
// the configuration.
func EnsureInitialAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		logger.Debug().Msg("Admin user already exists, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
		FullName:     cfg.Admin.FullName,
		Email:        cfg.Admin.Email,
		DNI:          cfg.Admin.DNI,
		Role:         models.RoleAdmin,
		Status:       models.StatusApproved,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Int64("userID", id).Str("username", admin.Username).Msg("Initial admin user created")
	return nil
}
