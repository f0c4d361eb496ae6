// Package logger configura el logging estructurado del servicio con zerolog.
// Devuelve un zerolog.Logger listo para inyectar; no hay wrapper propio porque
// la API de eventos de zerolog ya es la que usan los componentes.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env     string // development -> consola legible; cualquier otro -> JSON
	Level   string // trace, debug, info, warn, error; inválido o vacío -> info
	Service string // nombre del servicio, añadido como campo fijo
}

// New construye el logger raíz del servicio y lo deja también como logger
// global de zerolog, para las librerías que escriben por esa vía.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()

	log.Logger = zl
	return zl
}

// WithComponent deriva un sublogger etiquetado por componente, el patrón de
// inyección de los adaptadores de infraestructura.
func WithComponent(zl zerolog.Logger, component string) zerolog.Logger {
	return zl.With().Str("component", component).Logger()
}
