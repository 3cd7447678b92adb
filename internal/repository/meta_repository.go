package repository

import (
	"encoding/json"
	"errors"
	"strings"

	"life_score_backend/internal/model"
	"life_score_backend/internal/util"

	"gorm.io/gorm"
)

// MetaRepository is the per-user attribute store: opaque JSON values under
// string keys, one row per (user, key). It is the only place engine state is
// persisted. Versioned batch writes approximate atomicity across keys, since
// MySQL gives no useful transaction guarantee to the read side here — a
// concurrent pass may have read stale values long before our transaction
// opens, which is exactly what the version check catches.
type MetaRepository struct {
	DB *gorm.DB
}

func NewMetaRepository(db *gorm.DB) *MetaRepository {
	return &MetaRepository{DB: db}
}

// Get returns the raw value and version for one key. A missing key is not an
// error: it returns (nil, 0, nil).
func (r *MetaRepository) Get(userID uint, key string) (json.RawMessage, int, error) {
	var meta model.UserMeta
	err := r.DB.Where("user_id = ? AND meta_key = ?", userID, key).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return meta.MetaValue, meta.Version, nil
}

// GetJSON unmarshals the value for one key into dest and returns its
// version. dest is left untouched for a missing key.
func (r *MetaRepository) GetJSON(userID uint, key string, dest interface{}) (int, error) {
	raw, version, err := r.Get(userID, key)
	if err != nil || raw == nil {
		return version, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return 0, err
	}
	return version, nil
}

// WriteBatch applies all writes in one transaction, each guarded by the
// version observed at read time. Any mismatch rolls the whole batch back
// with ErrConcurrentUpdate so the caller can re-read and retry.
func (r *MetaRepository) WriteBatch(userID uint, writes []model.MetaWrite) error {
	if len(writes) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, w := range writes {
			if w.ExpectedVersion == 0 {
				meta := model.UserMeta{
					UserID:    userID,
					MetaKey:   w.Key,
					MetaValue: w.Value,
					Version:   1,
				}
				if err := tx.Create(&meta).Error; err != nil {
					// A concurrent pass inserted the key first.
					if isDuplicateKey(err) {
						return util.ErrConcurrentUpdate
					}
					return err
				}
				continue
			}

			res := tx.Model(&model.UserMeta{}).
				Where("user_id = ? AND meta_key = ? AND version = ?", userID, w.Key, w.ExpectedVersion).
				Updates(map[string]interface{}{
					"meta_value": w.Value,
					"version":    w.ExpectedVersion + 1,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return util.ErrConcurrentUpdate
			}
		}
		return nil
	})
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
