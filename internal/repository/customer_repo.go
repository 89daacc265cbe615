package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/config"
	"github.com/denwadesk/denwa-backend/internal/domain"
)

// Well-known customer columns projected into search results. Everything
// else stays in the open record mapping.
const (
	colCustomerName = "customer_name"
	colTelNo        = "tel_no"
	colEmail        = "email"
)

// CustomerRepository external customer store access interface. This is the
// only component that touches the unmanaged customer schema.
type CustomerRepository interface {
	Search(ctx context.Context, req *domain.CustomerSearchRequest) ([]*domain.CustomerSearchResult, error)
	GetByKey(ctx context.Context, customerKey string) (*domain.CustomerSearchResult, error)
	FetchRecord(ctx context.Context, customerKey string) (*domain.CustomerRecord, error)
}

type customerRepository struct {
	db  *gorm.DB
	cfg config.CustomerMasterConfig
}

// NewCustomerRepository creates a new CustomerRepository against the
// customer store. Table, key column and searchable columns all come from
// configuration; nothing about the schema is assumed beyond them.
func NewCustomerRepository(db *gorm.DB, cfg config.CustomerMasterConfig) CustomerRepository {
	return &customerRepository{db: db, cfg: cfg}
}

// Search matches the requested values against the configured search columns
// and projects the allow-listed columns of each hit, ordered by key, capped
// at SearchLimit rows.
func (r *customerRepository) Search(ctx context.Context, req *domain.CustomerSearchRequest) ([]*domain.CustomerSearchResult, error) {
	var conditions []string
	var args []any
	if req != nil {
		for _, sc := range r.cfg.SearchColumns {
			value, ok := req.Conditions[sc.Column]
			if !ok || strings.TrimSpace(value) == "" {
				continue
			}
			if sc.Match == domain.MatchExact {
				conditions = append(conditions, sc.Column+" = ?")
				args = append(args, value)
			} else {
				conditions = append(conditions, sc.Column+" LIKE ?")
				args = append(args, "%"+value+"%")
			}
		}
	}

	sql := "SELECT * FROM " + r.cfg.TableName
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY %s LIMIT %d", r.cfg.KeyColumn, SearchLimit)

	rows, err := r.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*domain.CustomerSearchResult
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r.project(record))
	}
	return results, rows.Err()
}

// GetByKey returns the allow-listed projection of one customer;
// a missing row is (nil, nil).
func (r *customerRepository) GetByKey(ctx context.Context, customerKey string) (*domain.CustomerSearchResult, error) {
	record, err := r.FetchRecord(ctx, customerKey)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return r.project(record), nil
}

// FetchRecord returns the full customer row as an ordered open column
// mapping; a missing row is (nil, nil).
func (r *customerRepository) FetchRecord(ctx context.Context, customerKey string) (*domain.CustomerRecord, error) {
	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", r.cfg.TableName, r.cfg.KeyColumn)
	rows, err := r.db.WithContext(ctx).Raw(sql, customerKey).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	record, err := scanRecord(rows)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *customerRepository) project(record *domain.CustomerRecord) *domain.CustomerSearchResult {
	result := &domain.CustomerSearchResult{}
	if key, ok := record.GetString(r.cfg.KeyColumn); ok {
		result.CustomerKey = key
	}
	if name, ok := record.GetString(colCustomerName); ok {
		result.CustomerName = name
	}
	if tel, ok := record.GetString(colTelNo); ok {
		result.TelNo = &tel
	}
	if email, ok := record.GetString(colEmail); ok {
		result.Email = &email
	}
	return result
}

// rowScanner is the subset of *sql.Rows needed to read one open row.
type rowScanner interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
}

// scanRecord reads the current row through the driver's column enumerator
// into an open name→value mapping. No struct binding, no reflection on
// caller types: the schema is unknown by design.
func scanRecord(rows rowScanner) (*domain.CustomerRecord, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	record := &domain.CustomerRecord{
		Columns: cols,
		Values:  make(map[string]any, len(cols)),
	}
	for i, col := range cols {
		v := values[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		record.Values[col] = v
	}
	return record, nil
}
