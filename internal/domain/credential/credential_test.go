package credential_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeremytpk/storall/internal/domain/credential"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests HashPasscode / Matches
// ──────────────────────────────────────────────────────────────────────────────

func TestHashPasscode_EsSHA256Hex(t *testing.T) {
	h := credential.HashPasscode("123456")
	assert.Len(t, h, 64, "el hash debe ser SHA-256 en hex (64 caracteres)")
	assert.Equal(t, h, credential.HashPasscode("123456"), "el hash debe ser determinista")
	assert.NotEqual(t, h, credential.HashPasscode("123457"))
}

func TestMatches_AceptaCrudoYHash(t *testing.T) {
	// Registro legacy: passcode almacenado en crudo.
	assert.True(t, credential.Matches("abc123", "abc123"),
		"valor crudo almacenado debe coincidir con el mismo valor enviado")

	// Registro rotado: solo se almacena el hash.
	stored := credential.HashPasscode("abc123")
	assert.True(t, credential.Matches(stored, "abc123"),
		"hash almacenado debe coincidir con el passcode en claro enviado")

	assert.False(t, credential.Matches(stored, "otro"),
		"un passcode distinto no debe coincidir")
}

func TestHashPasscode_ElCentinelaNoSobreviveAlHash(t *testing.T) {
	assert.NotEqual(t, credential.DefaultPasscode, credential.HashPasscode(credential.DefaultPasscode),
		"el hash del centinela no es el centinela: una credencial rotada nunca vuelve a forzar rotación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerateUsername
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateUsername_FormatoBasico(t *testing.T) {
	u := credential.GenerateUsername("Maria Lopez")
	require.LessOrEqual(t, len(u), 7, "el username nunca supera 7 caracteres")
	assert.True(t, strings.HasPrefix(u, "malo"),
		"debe usar dos letras del nombre y dos del apellido: %q", u)
	assert.Regexp(t, `^[a-z]+\d+$`, u, "letras en minúscula seguidas del sufijo numérico")
}

func TestGenerateUsername_SinApellido(t *testing.T) {
	u := credential.GenerateUsername("Ana")
	assert.True(t, strings.HasPrefix(u, "an"), "solo nombre: usa sus dos primeras letras: %q", u)
	assert.LessOrEqual(t, len(u), 7)
}

func TestGenerateUsername_QuitaAcentos(t *testing.T) {
	u := credential.GenerateUsername("Jérôme Ñandú")
	assert.True(t, strings.HasPrefix(u, "jena"),
		"los diacríticos deben eliminarse antes de construir la base: %q", u)
}

func TestGenerateUsername_NombreVacio(t *testing.T) {
	u := credential.GenerateUsername("   ")
	assert.Regexp(t, `^\d{3}$`, u, "sin nombre queda solo el sufijo de tres dígitos")
}
