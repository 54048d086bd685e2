package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"abrec/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every generated statement so the dry-run tests can
// assert on the SQL without a live database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) find(t *testing.T, substr string) string {
	t.Helper()
	for _, stmt := range r.statements {
		if strings.Contains(stmt, substr) {
			return stmt
		}
	}
	t.Fatalf("no recorded statement contains %q, got %v", substr, r.statements)
	return ""
}

func openDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=abrec dbname=abrec",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestPatientFindPageSQL(t *testing.T) {
	db, rec := openDryRunDB(t)
	repo := NewPatientRepository(db)

	filter := query.PatientFilter{
		Name:             "Ana",
		CPF:              "123.4",
		HealthIndicators: []string{"diabetic", "renal"},
	}
	_, _, err := repo.FindPage(filter, 2)
	require.NoError(t, err)

	stmt := rec.find(t, "ORDER BY")
	// Deterministic pagination needs the id tie-break
	assert.Contains(t, stmt, "ORDER BY name ASC, id ASC")
	assert.Contains(t, stmt, "LIMIT 15")
	assert.Contains(t, stmt, "OFFSET 15")
	assert.Contains(t, stmt, "name LIKE '%Ana%'")
	// The CPF filter matches on the digits-only form
	assert.Contains(t, stmt, "cpf LIKE '%1234%'")
	// Selected indicators combine with OR, grouped apart from the AND filters
	assert.Contains(t, stmt, "(is_diabetic = true OR has_kidney_problem = true)")

	// The count query applies the same predicate
	count := rec.find(t, "count(")
	assert.Contains(t, count, "name LIKE '%Ana%'")
	assert.Contains(t, count, "(is_diabetic = true OR has_kidney_problem = true)")
}

func TestPatientFindPageSQLUnknownIndicatorIgnored(t *testing.T) {
	db, rec := openDryRunDB(t)
	repo := NewPatientRepository(db)

	filter := query.PatientFilter{HealthIndicators: []string{"obesity", "bogus"}}
	_, _, err := repo.FindPage(filter, 1)
	require.NoError(t, err)

	stmt := rec.find(t, "ORDER BY")
	assert.Contains(t, stmt, "is_obese = true")
	assert.NotContains(t, stmt, "bogus")
}

func TestPatientFindAllFilteredSQL(t *testing.T) {
	db, rec := openDryRunDB(t)
	repo := NewPatientRepository(db)

	_, err := repo.FindAllFiltered(query.PatientFilter{})
	require.NoError(t, err)

	stmt := rec.find(t, "ORDER BY")
	// Export reads every row in list order, no page window
	assert.Contains(t, stmt, "ORDER BY name ASC, id ASC")
	assert.NotContains(t, stmt, "LIMIT")
	assert.NotContains(t, stmt, "WHERE")
}

func TestUserFindPageSQL(t *testing.T) {
	db, rec := openDryRunDB(t)
	repo := NewUserRepository(db)

	_, _, err := repo.FindPage(1)
	require.NoError(t, err)

	stmt := rec.find(t, "ORDER BY")
	assert.Contains(t, stmt, "ORDER BY name ASC, id ASC")
	assert.Contains(t, stmt, "LIMIT 15")
}
