// Package toggle implements the exactly-once flip used by notification and
// interest-category subscriptions: find the link row inside a transaction,
// delete it if present, insert it if absent.
package toggle

import (
	"campus-notice-backend/pkg/apperr"
	"campus-notice-backend/pkg/database"

	"gorm.io/gorm"
)

type Action string

const (
	Added   Action = "added"
	Removed Action = "removed"
)

// Flip runs exists/insert/remove as one atomic unit. Two concurrent flips on
// the same key cannot both insert: the loser's unique-constraint violation is
// translated to a Conflict instead of a raw store error.
func Flip(db *gorm.DB, exists func(tx *gorm.DB) (bool, error), insert func(tx *gorm.DB) error, remove func(tx *gorm.DB) error) (Action, error) {
	var action Action

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx)
		if err != nil {
			return err
		}

		if found {
			if err := remove(tx); err != nil {
				return err
			}
			action = Removed
			return nil
		}

		if err := insert(tx); err != nil {
			if database.IsDuplicateKey(err) {
				return apperr.Wrap(apperr.Conflict, "already added", err)
			}
			return err
		}
		action = Added
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}
