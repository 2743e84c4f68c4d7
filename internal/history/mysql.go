package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"ptd/internal/domain"
)

const createTableStmt = `CREATE TABLE IF NOT EXISTS ptd_runs (
	id INT AUTO_INCREMENT PRIMARY KEY,
	total_suites INT NOT NULL,
	total_methods INT NOT NULL,
	passed_methods INT NOT NULL,
	failed_methods INT NOT NULL,
	total_assertions INT NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	recorded_at VARCHAR(64) NOT NULL
)`

// MySQLRecorder stores run summaries in a MySQL table.
type MySQLRecorder struct {
	db *sql.DB
}

// NewRecorderFromEnv builds a Recorder from DB_* environment variables,
// loading the project's .env file first. When DB_DATABASE is not set the
// history feature is off and a NopRecorder is returned.
func NewRecorderFromEnv(projectPath string) (Recorder, error) {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(projectPath, ".env"))

	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		return NopRecorder{}, nil
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach history database: %w", err)
	}
	if _, err := db.Exec(createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare history table: %w", err)
	}

	return &MySQLRecorder{db: db}, nil
}

// Record inserts one run summary row.
func (r *MySQLRecorder) Record(meta domain.RunMeta) error {
	_, err := r.db.Exec(
		`INSERT INTO ptd_runs (total_suites, total_methods, passed_methods, failed_methods, total_assertions, duration_seconds, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.TotalSuites, meta.TotalMethods, meta.PassedMethods, meta.FailedMethods,
		meta.TotalAssertions, meta.DurationSeconds, meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the most recent run summaries, newest first.
func (r *MySQLRecorder) Recent(limit int) ([]domain.RunMeta, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(
		`SELECT total_suites, total_methods, passed_methods, failed_methods, total_assertions, duration_seconds, recorded_at
		 FROM ptd_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load run history: %w", err)
	}
	defer rows.Close()

	var metas []domain.RunMeta
	for rows.Next() {
		var meta domain.RunMeta
		if err := rows.Scan(
			&meta.TotalSuites, &meta.TotalMethods, &meta.PassedMethods, &meta.FailedMethods,
			&meta.TotalAssertions, &meta.DurationSeconds, &meta.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// Close releases the database connection.
func (r *MySQLRecorder) Close() error {
	return r.db.Close()
}
