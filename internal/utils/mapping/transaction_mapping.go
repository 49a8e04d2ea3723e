package mapping

import (
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		Date:            d.Date,
		Note:            d.Note,
		AccountID:       d.AccountID,
		CategoryID:      d.CategoryID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Tags are attached by the caller when the read joins them in.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Date:            m.Date,
		Note:            m.Note,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		DeletedAt:       m.DeletedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
