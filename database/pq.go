package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/greenvalley-school/school-cms-api/config"
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{} // Returns *gorm.DB for GORMStore, *sql.DB for PostgreSQLStore
}

// PostgreSQLStore is a plain database/sql connection used for the read-only
// aggregate queries behind the admin dashboard. Writes go through GORMStore.
type PostgreSQLStore struct {
	db *sql.DB
}

func Start() (*PostgreSQLStore, error) {
	getEnv, err := config.Get()

	if err != nil {
		return nil, err
	}

	connectStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST, getEnv.DB_PORT, getEnv.DB_USER_NAME, getEnv.DB_PASSWORD, getEnv.DB_NAME, getEnv.DB_SSL_MODE)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		fmt.Println("Unable to Start PostgresSQL Databse.")
		return nil, err
	}

	log.Println("Successfully connected to PostgresSQL Database.")
	return &PostgreSQLStore{
		db: db,
	}, nil
}

func (s *PostgreSQLStore) Init() error {
	// Schema is owned by the GORM store; nothing to migrate here.
	return s.HealthCheck()
}

func (s *PostgreSQLStore) Close() error {
	log.Println("Closing PostgresSQL Database.")
	return s.db.Close()
}

// HealthCheck verifies the database connection is alive
func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

// GetDB returns the underlying *sql.DB
func (s *PostgreSQLStore) GetDB() interface{} {
	return s.db
}

// CollectionCounts returns the number of live records per content collection
func (s *PostgreSQLStore) CollectionCounts() (map[string]int64, error) {
	tables := []string{
		"notices",
		"banners",
		"faculty",
		"student_achievers",
		"campus_visit_enquiries",
		"admission_enquiries",
		"fees_enquiries",
		"contact_enquiries",
	}

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE deleted_at IS NULL", table)
		if err := s.db.QueryRow(query).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}

// EnquiryVolumeByDay returns per-day submission counts for an enquiry table
// over the trailing N days. The table name is checked against a fixed set to
// keep the query injection-safe.
func (s *PostgreSQLStore) EnquiryVolumeByDay(table string, days int) (map[string]int64, error) {
	allowed := map[string]bool{
		"campus_visit_enquiries": true,
		"admission_enquiries":    true,
		"fees_enquiries":         true,
		"contact_enquiries":      true,
	}
	if !allowed[table] {
		return nil, fmt.Errorf("unknown enquiry table %q", table)
	}

	query := fmt.Sprintf(`
		SELECT DATE(created_at) AS day, COUNT(*)
		FROM %s
		WHERE deleted_at IS NULL AND created_at > NOW() - ($1 || ' days')::interval
		GROUP BY day
		ORDER BY day`, table)

	rows, err := s.db.Query(query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	volumes := make(map[string]int64)
	for rows.Next() {
		var day string
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		volumes[day] = count
	}

	return volumes, rows.Err()
}
