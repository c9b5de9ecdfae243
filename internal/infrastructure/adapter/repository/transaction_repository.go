package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/payment-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransactionRepository implements the persistence port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          txn.ID,
		LocalID:     txn.LocalID,
		ExternalRef: txn.ExternalRef,
		Amount:      txn.Amount,
		Currency:    txn.Currency,
		Status:      string(txn.Status),
		Metadata:    datatypes.JSONMap(txn.Metadata),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		LocalID:     m.LocalID,
		ExternalRef: m.ExternalRef,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Status:      entity.TransactionStatus(m.Status),
		Metadata:    map[string]any(m.Metadata),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create persists a new transaction record
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"local_id":     txn.LocalID,
		"external_ref": txn.ExternalRef,
	})

	transactionModel := entityToModel(txn)
	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			// Identifiers are minted/issued once, so a duplicate means the
			// same creation request was replayed against the store.
			r.logger.Warn("Duplicate transaction identifiers on create", map[string]any{
				"local_id":     txn.LocalID,
				"external_ref": txn.ExternalRef,
			})
		} else {
			r.logger.Error("Failed to create transaction", map[string]any{
				"local_id": txn.LocalID,
				"error":    result.Error.Error(),
			})
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = transactionModel.ID
	r.logger.Info("Transaction record created", map[string]any{
		"local_id":     txn.LocalID,
		"external_ref": txn.ExternalRef,
	})
	return nil
}

// keyColumn translates a record key into the WHERE clause column/value
// pair. The dual-key rule lives in the entity; this only maps it onto
// the schema.
func keyColumn(key entity.RecordKey) (column string, value string, err error) {
	switch {
	case key.LocalID != "":
		return "local_id", key.LocalID, nil
	case key.ExternalRef != "":
		return "external_ref", key.ExternalRef, nil
	default:
		return "", "", errs.ErrInvalidIdentifier
	}
}

// GetByKey retrieves a transaction by exactly one of its identifiers
func (r *TransactionRepository) GetByKey(ctx context.Context, key entity.RecordKey) (*entity.Transaction, error) {
	column, value, err := keyColumn(key)
	if err != nil {
		return nil, err
	}

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"lookup_column": column,
			"identifier":    value,
			"error":         result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return modelToEntity(&transactionModel), nil
}

// ListRecent returns up to limit transactions ordered newest first
func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		r.logger.Error("Failed to list recent transactions", map[string]any{
			"limit": limit,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, *modelToEntity(&models[i]))
	}
	return transactions, nil
}

// Transition applies status, updated_at and the metadata merge in one
// UPDATE statement. The row lock taken by the UPDATE is what serializes
// concurrent events against the same record; the jsonb concatenation
// keeps the merge commutative and idempotent per key.
func (r *TransactionRepository) Transition(
	ctx context.Context,
	key entity.RecordKey,
	status entity.TransactionStatus,
	delta map[string]any,
) (*entity.Transaction, error) {
	column, value, err := keyColumn(key)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"status":     string(status),
		"updated_at": r.timeProvider.Now().UTC().Truncate(time.Microsecond),
	}
	if len(delta) > 0 {
		updates["metadata"] = gorm.Expr(
			"COALESCE(metadata, '{}'::jsonb) || ?",
			datatypes.JSONMap(delta),
		)
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where(fmt.Sprintf("%s = ?", column), value).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("Failed to apply transition", map[string]any{
			"lookup_column": column,
			"identifier":    value,
			"status":        string(status),
			"error":         result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Transition target not found", map[string]any{
			"lookup_column": column,
			"identifier":    value,
			"status":        string(status),
		})
		return nil, errs.ErrTransactionNotFound
	}

	return r.GetByKey(ctx, key)
}
