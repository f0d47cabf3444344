package migration

import (
	"context"

	"github.com/cardworks/cashcard-service/internal/domain/entity"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/persistence"
	"golang.org/x/crypto/bcrypt"
)

// seedUser is a demo credential created on first start
type seedUser struct {
	username string
	password string
	role     string
}

// Demo logins for local development and the documented test scenarios
var seedUsers = []seedUser{
	{username: "owner1", password: "12345", role: entity.RoleCardOwner},
	{username: "owner2", password: "22345", role: entity.RoleCardOwner},
	{username: "hank-owns-no-cards", password: "54321", role: entity.RoleNonCardOwner},
}

// SeedCredentials creates the demo credentials if they do not exist yet
func SeedCredentials(
	ctx context.Context,
	credentialRepo persistence.CredentialRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	bcryptCost int,
) error {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	for _, seed := range seedUsers {
		exists, err := credentialRepo.ExistsByUsername(ctx, seed.username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcryptCost)
		if err != nil {
			return err
		}

		credential, err := entity.NewCredential(seed.username, string(hash), seed.role, timeProvider)
		if err != nil {
			return err
		}

		if err := credentialRepo.Create(ctx, credential); err != nil {
			return err
		}

		logger.Info("Seeded credential", map[string]any{
			"username": seed.username,
			"role":     seed.role,
		})
	}

	return nil
}
