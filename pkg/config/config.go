package config

import (
	"fmt"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"postgres"`
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	Migrate         bool          `envconfig:"MIGRATE" default:"false"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt        *Jwt `envconfig:"JWT"`
	BcryptCost int  `envconfig:"BCRYPT_COST" default:"10"`
}

type Cors struct {
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[gestomoney]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"0.0.0.0"`
	Port   int    `envconfig:"PORT" default:"5002"`
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type App struct {
	Env    string  `envconfig:"APP_ENV" default:"development"`
	Server *Server `envconfig:"SERVER"`
	Log    *Log    `envconfig:"LOG"`
	DB     *DB     `envconfig:"DATABASE"`
	Auth   *Auth   `envconfig:"AUTH"`
	Cors   *Cors   `envconfig:"CORS"`
}

// IsDevelopment reports whether the app runs in development mode.
func (a *App) IsDevelopment() bool {
	return a.Env == "development"
}
