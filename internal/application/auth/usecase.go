package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/credential"
	"github.com/Jeremytpk/storall/internal/domain/entity"
	"github.com/Jeremytpk/storall/internal/domain/repository"
	"github.com/Jeremytpk/storall/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Options parámetros del flujo de credenciales.
type Options struct {
	MinPasscodeLength int
	MinPasswordLength int
	DefaultPasscode   string // centinela de primer login; vacío -> credential.DefaultPasscode
}

// AuthUseCase casos de uso de autenticación: cuentas de cliente/admin
// (email+password) y credenciales de staff (username+passcode con rotación
// forzada del centinela).
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	storeRepo   repository.StoreRepository
	jwtCfg      JWTConfig
	opts        Options
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, storeRepo repository.StoreRepository, jwtCfg JWTConfig, opts Options) *AuthUseCase {
	if opts.MinPasscodeLength <= 0 {
		opts.MinPasscodeLength = 6
	}
	if opts.MinPasswordLength <= 0 {
		opts.MinPasswordLength = 8
	}
	if opts.DefaultPasscode == "" {
		opts.DefaultPasscode = credential.DefaultPasscode
	}
	return &AuthUseCase{accountRepo: accountRepo, storeRepo: storeRepo, jwtCfg: jwtCfg, opts: opts}
}

// Register crea una cuenta de cliente: hashea el password con bcrypt y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if len(in.Password) < uc.opts.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	existing, _ := uc.accountRepo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.DisplayName
	if name == "" {
		name = in.Email
	}
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  name,
		Role:         entity.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifica email/password de una cuenta, genera JWT y retorna token + cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, "", account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Account: *toAccountResponse(account)}, nil
}

// UpdateProfile actualiza displayName y photoURL de la cuenta autenticada.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, accountID string, in dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.accountRepo.UpdateProfile(ctx, accountID, in.DisplayName, in.PhotoURL); err != nil {
		return nil, err
	}
	account.DisplayName = in.DisplayName
	account.PhotoURL = in.PhotoURL
	return toAccountResponse(account), nil
}

// StaffLogin resuelve la sesión de un manager o picker. Escanea los managers y
// pickers de todas las tiendas buscando el username exacto (escaneo lineal,
// como la fuente de datos no indexa el staff embebido):
//
//   - sin coincidencia -> ErrInvalidCredentials;
//   - coincidencia con el passcode centinela -> RotationRequired con el
//     PrincipalRef necesario para escribir la rotación;
//   - coincidencia normal -> sesión autenticada con token JWT.
//
// Si el mismo username existe en más de una tienda o rol, gana la primera
// coincidencia en orden de escaneo; el modelo de datos no lo impide.
func (uc *AuthUseCase) StaffLogin(ctx context.Context, in dto.StaffLoginRequest) (*dto.StaffLoginResponse, error) {
	stores, err := uc.storeRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	for _, store := range stores {
		for _, role := range []string{entity.RoleManager, entity.RolePicker} {
			for i, p := range store.StaffByRole(role) {
				if p.Username != in.Username || !credential.Matches(p.PasscodeHash, in.Passcode) {
					continue
				}
				if p.PasscodeHash == uc.opts.DefaultPasscode {
					return &dto.StaffLoginResponse{
						RotationRequired: true,
						PrincipalRef: &entity.PrincipalRef{
							StoreID:     store.ID,
							Role:        role,
							PrincipalID: p.ID,
							Index:       i,
						},
					}, nil
				}
				return uc.authenticatedResponse(p.Username, role, store.ID)
			}
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// RotatePasscode reemplaza el passcode centinela por el hash del nuevo y
// devuelve la sesión autenticada. Solo se reescribe la lista del rol tocado;
// si la escritura falla no queda ningún estado de sesión.
func (uc *AuthUseCase) RotatePasscode(ctx context.Context, in dto.RotatePasscodeRequest) (*dto.StaffLoginResponse, error) {
	if len(in.NewPasscode) < uc.opts.MinPasscodeLength {
		return nil, domain.ErrPasscodeTooShort
	}
	ref := in.PrincipalRef
	store, err := uc.storeRepo.GetByID(ctx, ref.StoreID)
	if err != nil {
		return nil, fmt.Errorf("cargar tienda: %w", err)
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	staff := store.StaffByRole(ref.Role)
	idx := findPrincipal(staff, ref)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	// La rotación es exactamente-una-vez: solo aplica sobre el centinela.
	if staff[idx].PasscodeHash != uc.opts.DefaultPasscode {
		return nil, domain.ErrForbidden
	}
	staff[idx].PasscodeHash = credential.HashPasscode(in.NewPasscode)
	if err := uc.storeRepo.ReplaceStaff(ctx, ref.StoreID, ref.Role, staff); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return uc.authenticatedResponse(staff[idx].Username, ref.Role, ref.StoreID)
}

// findPrincipal localiza la credencial referenciada: por ID si sigue presente,
// con el índice como verificación de que la lista no cambió debajo.
func findPrincipal(staff []entity.Principal, ref entity.PrincipalRef) int {
	for i, p := range staff {
		if p.ID == ref.PrincipalID {
			return i
		}
	}
	if ref.Index >= 0 && ref.Index < len(staff) {
		return ref.Index
	}
	return -1
}

func (uc *AuthUseCase) authenticatedResponse(username, role, storeID string) (*dto.StaffLoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, username, storeID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.StaffLoginResponse{
		Token: token,
		Session: &dto.SessionResponse{
			Username: username,
			Role:     role,
			StoreID:  storeID,
		},
	}, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		PhotoURL:    a.PhotoURL,
		Role:        a.Role,
		CreatedAt:   a.CreatedAt,
	}
}
