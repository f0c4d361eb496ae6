// Package credential contiene las reglas puras de credenciales de staff:
// hash de passcode, detección del centinela de primer login y generación de
// usernames. Sin dependencias de persistencia ni de transporte.
package credential

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPasscode es el centinela que marca una credencial nunca rotada.
// Se almacena sin hashear; el primer login con él fuerza la rotación.
const DefaultPasscode = "S2025"

// HashPasscode devuelve el SHA-256 hex del passcode. Debe coincidir con el
// formato de los registros ya rotados en la base de datos.
func HashPasscode(passcode string) string {
	sum := sha256.Sum256([]byte(passcode))
	return hex.EncodeToString(sum[:])
}

// Matches compara el passcode enviado contra el valor almacenado. Acepta tanto
// el valor crudo como su hash: compatibilidad con registros legacy aún sin
// migrar.
func Matches(stored, submitted string) bool {
	return stored == submitted || stored == HashPasscode(submitted)
}

// GenerateUsername deriva un username a partir del nombre visible:
// dos primeras letras del nombre + dos del apellido, en minúscula y sin
// acentos, más un sufijo aleatorio de tres dígitos, truncado a 7 caracteres.
// No garantiza unicidad: no hay reintento ante colisión.
func GenerateUsername(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	var first, last string
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}
	base := strings.ToLower(firstN(stripAccents(first), 2) + firstN(stripAccents(last), 2))
	suffix := rand.IntN(900) + 100 // [100, 999]
	username := base + strconv.Itoa(suffix)
	if len(username) > 7 {
		username = username[:7]
	}
	return username
}

// stripAccents elimina marcas diacríticas ("Jérôme" -> "Jerome") para que el
// username quede en ASCII aun con nombres acentuados.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
