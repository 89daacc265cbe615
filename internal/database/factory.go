package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// registers the "odbc" driver used by the Access backend
	_ "github.com/alexbrainman/odbc"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/denwadesk/denwa-backend/internal/config"
)

// Kind is the configured database backend.
type Kind string

// Supported backend kinds
const (
	KindSQLite    Kind = "sqlite"
	KindSQLServer Kind = "sqlserver"
	KindAccess    Kind = "access"
)

// ParseKind resolves the configured backend name. An unrecognized name is a
// configuration error; callers fail fast before any work is done.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite":
		return KindSQLite, nil
	case "sqlserver", "mssql":
		return KindSQLServer, nil
	case "access":
		return KindAccess, nil
	default:
		return "", fmt.Errorf("unsupported database type: %q", s)
	}
}

// Stores holds the three logical store handles. The backend is resolved once
// from configuration at Open time; there is no runtime switching. Connection
// pooling and per-call scoping belong to the underlying database/sql pool.
type Stores struct {
	kind     Kind
	master   *gorm.DB
	history  *gorm.DB
	customer *gorm.DB
}

// Kind returns the backend the stores were opened with.
func (s *Stores) Kind() Kind { return s.kind }

// Master returns the config/master store handle.
func (s *Stores) Master() *gorm.DB { return s.master }

// History returns the inquiry history store handle.
func (s *Stores) History() *gorm.DB { return s.history }

// Customer returns the external customer store handle.
func (s *Stores) Customer() *gorm.DB { return s.customer }

// Close releases all three store handles.
func (s *Stores) Close() error {
	var firstErr error
	for _, db := range []*gorm.DB{s.master, s.history, s.customer} {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := sqlDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Open resolves the configured backend and opens the master, history and
// customer stores. Relative file paths are resolved against the application
// base directory here, not per call.
func Open(cfg config.DatabaseConfig) (*Stores, error) {
	kind, err := ParseKind(cfg.Type)
	if err != nil {
		return nil, err
	}

	open := func(store string) (*gorm.DB, error) {
		switch kind {
		case KindSQLite:
			return openSQLite(storePath(cfg.SQLite, store))
		case KindSQLServer:
			return openSQLServer(storeDSN(cfg.SQLServer, store))
		case KindAccess:
			return openAccess(storePath(cfg.Access, store))
		}
		return nil, fmt.Errorf("unsupported database type: %q", kind)
	}

	s := &Stores{kind: kind}
	for _, st := range []struct {
		name string
		dst  **gorm.DB
	}{
		{"master", &s.master},
		{"history", &s.history},
		{"customer", &s.customer},
	} {
		db, err := open(st.name)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open %s store: %w", st.name, err)
		}
		*st.dst = db
	}
	return s, nil
}

func storePath(p config.FileStorePaths, store string) string {
	switch store {
	case "history":
		return p.HistoryPath
	case "customer":
		return p.CustomerPath
	default:
		return p.MasterPath
	}
}

func storeDSN(c config.SQLServerConfig, store string) string {
	switch store {
	case "history":
		return c.HistoryDSN
	case "customer":
		return c.CustomerDSN
	default:
		return c.MasterDSN
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

func openSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(ResolvePath(path)), gormConfig())
}

func openSQLServer(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlserver DSN is empty")
	}
	return gorm.Open(sqlserver.Open(dsn), gormConfig())
}

// openAccess opens an .mdb/.accdb file through the system ODBC driver. The
// sqlserver dialector supplies SQL generation; the bracket-quoted statement
// shapes used by the repositories are accepted by the Jet engine.
func openAccess(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("access database path is empty")
	}
	dsn := fmt.Sprintf("Driver={Microsoft Access Driver (*.mdb, *.accdb)};Dbq=%s;", ResolvePath(path))
	conn, err := sql.Open("odbc", dsn)
	if err != nil {
		return nil, err
	}
	return gorm.Open(sqlserver.New(sqlserver.Config{Conn: conn}), gormConfig())
}

// ResolvePath turns a relative file path into an absolute one anchored at
// the application base directory. Absolute paths pass through unchanged.
func ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir(), path)
}

func baseDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}
