package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createInTx вставляет value в отдельной транзакции: commit при успехе,
// rollback при любой ошибке; соединение возвращается в пул в обоих случаях.
func createInTx(ctx context.Context, db *gorm.DB, entity string, value interface{}, check func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if check != nil {
			if err := check(tx); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(value).Error
	})
	if err != nil {
		return &WriteError{Entity: entity, Err: err}
	}
	return nil
}
