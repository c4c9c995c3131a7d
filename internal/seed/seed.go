package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/bisplatform/bisbackend/internal/app/models"
	appRepos "github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/auth"
)

const defaultAdminEmail = "admin@bis.edu"

// CreateDefaultData seeds the role catalog and a default admin account if
// they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := appRepos.NewRoleRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (roles, admin account)...")
	var finalErr error

	roles := []appModels.Role{
		{Name: string(appModels.RoleAdmin), Description: "Full access to the whole system"},
		{Name: string(appModels.RoleFaculty), Description: "Instructors: schedules and attendance"},
		{Name: string(appModels.RoleStudent), Description: "Students: own schedule, attendance and notifications"},
	}
	for i := range roles {
		if _, err := roleRepo.Create(ctx, &roles[i]); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("role", roles[i].Name).Msg("Error creating role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")

	adminRole, err := roleRepo.GetByName(ctx, string(appModels.RoleAdmin))
	if err != nil {
		lgr.Error().Err(err).Msg("Error looking up admin role")
		return errors.Join(finalErr, err)
	}

	hashed, err := auth.HashPassword("Admin123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Name:       "System Administrator",
		Email:      defaultAdminEmail,
		Password:   hashed,
		Phone:      "01000000000",
		NationalNo: "00000000000000",
		RoleID:     adminRole.ID,
	}
	if _, err := userRepo.CreateTx(ctx, dbPool, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
