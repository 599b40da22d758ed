package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village-admin-service/internal/domain/models"
)

func newTransaction(txType, description, amount, category, date string) *models.FinanceTransaction {
	return &models.FinanceTransaction{
		Type:        txType,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        date,
	}
}

func TestFinanceSummaryEmpty(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	summary, err := svc.GetFinanceSummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestFinanceSummaryAggregation(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	require.NoError(t, svc.CreateTransaction(newTransaction(
		models.TransactionTypeIncome, "Dana Desa tahap 1", "50000000.00", "dana_desa", "2024-01-15")))
	require.NoError(t, svc.CreateTransaction(newTransaction(
		models.TransactionTypeIncome, "Retribusi pasar", "2500000.00", "retribusi", "2024-02-01")))
	require.NoError(t, svc.CreateTransaction(newTransaction(
		models.TransactionTypeExpense, "Perbaikan jalan", "12000000.00", "infrastruktur", "2024-02-20")))

	summary, err := svc.GetFinanceSummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("52500000.00")),
		"total income: %s", summary.TotalIncome)
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("12000000.00")),
		"total expense: %s", summary.TotalExpense)
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("40500000.00")),
		"balance: %s", summary.Balance)
}

func TestFinanceSummaryBalanceIsDifference(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	require.NoError(t, svc.CreateTransaction(newTransaction(
		models.TransactionTypeIncome, "Hibah", "1000000.00", "hibah", "2024-03-01")))
	require.NoError(t, svc.CreateTransaction(newTransaction(
		models.TransactionTypeExpense, "ATK kantor desa", "250000.50", "operasional", "2024-03-02")))

	summary, err := svc.GetFinanceSummary()
	require.NoError(t, err)
	assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
}

func TestFinanceTransactionCRUD(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	tx := newTransaction(models.TransactionTypeExpense, "Honor posyandu", "750000.00", "kesehatan", "2024-04-05")
	require.NoError(t, svc.CreateTransaction(tx))
	assert.NotZero(t, tx.ID)

	got, err := svc.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.TransactionTypeExpense, got.Type)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("750000.00")))
	assert.Equal(t, "2024-04-05", got.Date)

	updated, err := svc.UpdateTransaction(tx.ID, map[string]interface{}{
		"amount":   decimal.RequireFromString("800000.00"),
		"category": "kesehatan_masyarakat",
	})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("800000.00")))
	assert.Equal(t, "kesehatan_masyarakat", updated.Category)
	assert.Equal(t, "Honor posyandu", updated.Description)
}

func TestFinanceUpdateNotFound(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	_, err := svc.UpdateTransaction(42, map[string]interface{}{"category": "lain"})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// Delete reports success whether or not the row existed; clients only see
// that the transaction is gone afterwards.
func TestFinanceDeleteAlwaysSucceeds(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	tx := newTransaction(models.TransactionTypeIncome, "Sumbangan", "100000.00", "lain", "2024-05-01")
	require.NoError(t, svc.CreateTransaction(tx))

	require.NoError(t, svc.DeleteTransaction(tx.ID))
	require.NoError(t, svc.DeleteTransaction(tx.ID))
	require.NoError(t, svc.DeleteTransaction(9999))

	got, err := svc.GetTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFinanceDeleteExcludesFromSummary(t *testing.T) {
	svc := NewFinanceService(newTestDB(t), testConfig())

	keep := newTransaction(models.TransactionTypeIncome, "Retribusi", "300000.00", "retribusi", "2024-06-01")
	drop := newTransaction(models.TransactionTypeIncome, "Salah input", "900000.00", "retribusi", "2024-06-02")
	require.NoError(t, svc.CreateTransaction(keep))
	require.NoError(t, svc.CreateTransaction(drop))

	require.NoError(t, svc.DeleteTransaction(drop.ID))

	summary, err := svc.GetFinanceSummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("300000.00")))
}
