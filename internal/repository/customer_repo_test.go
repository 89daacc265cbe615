package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/config"
	"github.com/denwadesk/denwa-backend/internal/domain"
)

func customerConfig() config.CustomerMasterConfig {
	return config.CustomerMasterConfig{
		Enabled:   true,
		TableName: "T_Customer",
		KeyColumn: "CustomerID",
		SearchColumns: []config.SearchColumn{
			{Column: "CustomerID", Label: "顧客ID", Match: domain.MatchExact},
			{Column: "customer_name", Label: "顧客名", Match: domain.MatchPartial},
			{Column: "tel_no", Label: "電話番号", Match: domain.MatchPartial},
		},
	}
}

func setupCustomerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)

	// the customer table is externally owned: created here by raw DDL, never
	// through entity migration
	require.NoError(t, db.Exec(`CREATE TABLE T_Customer (
		CustomerID TEXT PRIMARY KEY,
		customer_name TEXT,
		kana TEXT,
		tel_no TEXT,
		email TEXT,
		address TEXT,
		customer_rank TEXT
	)`).Error)

	seeds := []struct {
		id, name, kana, tel, email, address, rank string
	}{
		{"C0001", "田中 一郎", "タナカ イチロウ", "03-1234-5678", "tanaka@example.com", "東京都千代田区1-1", "A"},
		{"C0002", "田中 次郎", "タナカ ジロウ", "06-9876-5432", "jiro@example.com", "大阪府大阪市2-2", "B"},
		{"C0003", "高橋 三郎", "タカハシ サブロウ", "052-111-2222", "", "愛知県名古屋市3-3", ""},
	}
	for _, s := range seeds {
		require.NoError(t, db.Exec(
			"INSERT INTO T_Customer (CustomerID, customer_name, kana, tel_no, email, address, customer_rank) VALUES (?, ?, ?, ?, ?, ?, ?)",
			s.id, s.name, s.kana, s.tel, s.email, s.address, s.rank,
		).Error)
	}
	return db
}

func TestCustomerRepository_SearchPartial(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())

	results, err := repo.Search(context.Background(), &domain.CustomerSearchRequest{
		Conditions: map[string]string{"customer_name": "田中"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// ordered by key column
	assert.Equal(t, "C0001", results[0].CustomerKey)
	assert.Equal(t, "C0002", results[1].CustomerKey)
	assert.Equal(t, "田中 一郎", results[0].CustomerName)
	require.NotNil(t, results[0].TelNo)
	assert.Equal(t, "03-1234-5678", *results[0].TelNo)
}

func TestCustomerRepository_SearchExactKey(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())

	// the key column matches exactly, so a prefix finds nothing
	results, err := repo.Search(context.Background(), &domain.CustomerSearchRequest{
		Conditions: map[string]string{"CustomerID": "C000"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = repo.Search(context.Background(), &domain.CustomerSearchRequest{
		Conditions: map[string]string{"CustomerID": "C0003"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "高橋 三郎", results[0].CustomerName)
}

func TestCustomerRepository_SearchCombinesConditions(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())

	results, err := repo.Search(context.Background(), &domain.CustomerSearchRequest{
		Conditions: map[string]string{
			"customer_name": "田中",
			"tel_no":        "06-",
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "C0002", results[0].CustomerKey)
}

func TestCustomerRepository_SearchIgnoresBlankAndUnknownConditions(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())

	// blank values and columns outside the configured list do not filter
	results, err := repo.Search(context.Background(), &domain.CustomerSearchRequest{
		Conditions: map[string]string{
			"customer_name": "  ",
			"address":       "東京",
		},
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestCustomerRepository_GetByKey(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())
	ctx := context.Background()

	result, err := repo.GetByKey(ctx, "C0001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "C0001", result.CustomerKey)
	assert.Equal(t, "田中 一郎", result.CustomerName)

	missing, err := repo.GetByKey(ctx, "C9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepository_FetchRecord(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())

	record, err := repo.FetchRecord(context.Background(), "C0001")
	require.NoError(t, err)
	require.NotNil(t, record)

	// every column of the open schema comes back, in result-set order
	assert.Equal(t, []string{"CustomerID", "customer_name", "kana", "tel_no", "email", "address", "customer_rank"}, record.Columns)

	address, ok := record.GetString("address")
	assert.True(t, ok)
	assert.Equal(t, "東京都千代田区1-1", address)

	_, ok = record.GetString("no_such_column")
	assert.False(t, ok)
}

func TestCustomerRepository_FetchRecordMissing(t *testing.T) {
	repo := NewCustomerRepository(setupCustomerDB(t), customerConfig())

	record, err := repo.FetchRecord(context.Background(), "C9999")
	require.NoError(t, err)
	assert.Nil(t, record)
}
