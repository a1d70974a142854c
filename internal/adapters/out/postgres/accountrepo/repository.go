package accountrepo

import (
	"context"
	"errors"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, user account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDAOError("add user", err)
	}
	return nil
}

// Get retrieves a user by its unique identifier.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (account.User, error) {
	if err := id.Validate(); err != nil {
		return account.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return account.User{}, errs.NewDAOError("get user", err)
	}

	return userToDomain(dto)
}

// GetByTaxID retrieves a user by its tax identification code.
func (r *GormUserRepository) GetByTaxID(ctx context.Context, taxID string) (account.User, error) {
	if taxID == "" {
		return account.User{}, errs.NewValueIsRequiredError("taxId")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "tax_id = ?", taxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.User{}, errs.NewObjectNotFoundError("user", taxID)
		}
		return account.User{}, errs.NewDAOError("get user by tax id", err)
	}

	return userToDomain(dto)
}

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GORM role repository.
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// Add saves the user's role record, replacing any previous one.
func (r *GormRoleRepository) Add(ctx context.Context, role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	dto := roleFromDomain(role)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind"}),
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewDAOError("add role", err)
	}
	return nil
}

// GetByUser retrieves the role of the given user, joined with the user row so
// the restored role wraps the full identity.
func (r *GormRoleRepository) GetByUser(ctx context.Context, userID kernel.UUID) (account.Role, error) {
	if err := userID.Validate(); err != nil {
		return account.Role{}, err
	}

	var roleDTO RoleDTO
	if err := r.db.WithContext(ctx).First(&roleDTO, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Role{}, errs.NewObjectNotFoundError("role", userID.String())
		}
		return account.Role{}, errs.NewDAOError("get role", err)
	}

	var userDTO UserDTO
	if err := r.db.WithContext(ctx).First(&userDTO, "id = ?", roleDTO.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Role{}, errs.NewObjectNotFoundError("user", userID.String())
		}
		return account.Role{}, errs.NewDAOError("get role user", err)
	}

	user, err := userToDomain(userDTO)
	if err != nil {
		return account.Role{}, err
	}

	return account.RestoreRole(account.RoleKind(roleDTO.Kind), user)
}
