// Package staff implementa la gestión del personal de tienda por el admin:
// altas con username generado y passcode centinela, renombres que regeneran el
// username, bajas y reset del passcode (vuelve a forzar rotación).
package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/credential"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
)

// Options parámetros de la gestión de staff.
type Options struct {
	DefaultPasscode string // centinela asignado en altas y resets; vacío -> credential.DefaultPasscode
}

// StaffUseCase casos de uso de gestión de staff.
type StaffUseCase struct {
	storeRepo repository.StoreRepository
	sentinel  string
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(storeRepo repository.StoreRepository, opts Options) *StaffUseCase {
	if opts.DefaultPasscode == "" {
		opts.DefaultPasscode = credential.DefaultPasscode
	}
	return &StaffUseCase{storeRepo: storeRepo, sentinel: opts.DefaultPasscode}
}

// validRole acota el rol a los dos que tienen lista de staff propia.
func validRole(role string) error {
	if role != entity.RoleManager && role != entity.RolePicker {
		return fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, role)
	}
	return nil
}

// List devuelve managers y pickers de la tienda, sin exponer passcodes.
func (uc *StaffUseCase) List(ctx context.Context, storeID string) (*dto.StoreStaffResponse, error) {
	store, err := uc.loadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &dto.StoreStaffResponse{
		StoreID:  store.ID,
		Managers: uc.toStaffResponses(store.Managers, entity.RoleManager),
		Pickers:  uc.toStaffResponses(store.Pickers, entity.RolePicker),
	}, nil
}

// Add crea un miembro del staff: username derivado del nombre y passcode
// centinela, que fuerza la rotación en el primer login. El username generado
// no se verifica contra colisiones.
func (uc *StaffUseCase) Add(ctx context.Context, storeID string, in dto.AddStaffRequest) (*dto.StaffMemberResponse, error) {
	if err := validRole(in.Role); err != nil {
		return nil, err
	}
	store, err := uc.loadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	member := entity.Principal{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Username:     credential.GenerateUsername(in.Name),
		PasscodeHash: uc.sentinel,
	}
	staff := append(store.StaffByRole(in.Role), member)
	if err := uc.storeRepo.ReplaceStaff(ctx, storeID, in.Role, staff); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	resp := uc.toStaffResponse(member, in.Role)
	return &resp, nil
}

// Rename cambia el nombre visible y regenera el username.
func (uc *StaffUseCase) Rename(ctx context.Context, storeID, role, principalID string, in dto.RenameStaffRequest) (*dto.StaffMemberResponse, error) {
	return uc.mutate(ctx, storeID, role, principalID, func(p *entity.Principal) {
		p.Name = in.Name
		p.Username = credential.GenerateUsername(in.Name)
	})
}

// ResetPasscode restablece el passcode al centinela: el próximo login del
// miembro vuelve a exigir rotación.
func (uc *StaffUseCase) ResetPasscode(ctx context.Context, storeID, role, principalID string) (*dto.StaffMemberResponse, error) {
	return uc.mutate(ctx, storeID, role, principalID, func(p *entity.Principal) {
		p.PasscodeHash = uc.sentinel
	})
}

// Remove elimina al miembro de la lista de su rol.
func (uc *StaffUseCase) Remove(ctx context.Context, storeID, role, principalID string) error {
	if err := validRole(role); err != nil {
		return err
	}
	store, err := uc.loadStore(ctx, storeID)
	if err != nil {
		return err
	}
	staff := store.StaffByRole(role)
	kept := make([]entity.Principal, 0, len(staff))
	found := false
	for _, p := range staff {
		if p.ID == principalID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := uc.storeRepo.ReplaceStaff(ctx, storeID, role, kept); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (uc *StaffUseCase) mutate(ctx context.Context, storeID, role, principalID string, apply func(*entity.Principal)) (*dto.StaffMemberResponse, error) {
	if err := validRole(role); err != nil {
		return nil, err
	}
	store, err := uc.loadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	staff := store.StaffByRole(role)
	for i := range staff {
		if staff[i].ID != principalID {
			continue
		}
		apply(&staff[i])
		if err := uc.storeRepo.ReplaceStaff(ctx, storeID, role, staff); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		resp := uc.toStaffResponse(staff[i], role)
		return &resp, nil
	}
	return nil, domain.ErrNotFound
}

func (uc *StaffUseCase) loadStore(ctx context.Context, storeID string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func (uc *StaffUseCase) toStaffResponse(p entity.Principal, role string) dto.StaffMemberResponse {
	return dto.StaffMemberResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Username:           p.Username,
		Role:               role,
		HasDefaultPasscode: p.PasscodeHash == uc.sentinel,
	}
}

func (uc *StaffUseCase) toStaffResponses(staff []entity.Principal, role string) []dto.StaffMemberResponse {
	out := make([]dto.StaffMemberResponse, 0, len(staff))
	for _, p := range staff {
		out = append(out, uc.toStaffResponse(p, role))
	}
	return out
}
