package localstore

import (
	"encoding/binary"
	"sort"
	"time"

	"korvo/internal/pkg/errs"

	bolt "go.etcd.io/bbolt"
)

var bucketFavorites = []byte("favorites")

// FavoritesStore persists the user's favorite-business set to a local
// bbolt file. It replaces the ambient localStorage set of the UI
// prototype with explicit open/close lifecycle owned by the app
// bootstrap.
type FavoritesStore struct {
	db *bolt.DB
}

func Open(path string) (*FavoritesStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open favorites store")
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFavorites)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "failed to initialize favorites bucket")
	}
	return &FavoritesStore{db: db}, nil
}

func (s *FavoritesStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Toggle flips membership for the business id and reports the new
// state: true when the business is now a favorite.
func (s *FavoritesStore) Toggle(businessID int64) (bool, error) {
	var favorite bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketFavorites)
		key := encodeID(businessID)
		if bucket.Get(key) != nil {
			return bucket.Delete(key)
		}
		favorite = true
		return bucket.Put(key, []byte{1})
	})
	if err != nil {
		return false, errs.Wrap(err, "failed to toggle favorite")
	}
	return favorite, nil
}

func (s *FavoritesStore) IsFavorite(businessID int64) (bool, error) {
	var favorite bool
	err := s.db.View(func(tx *bolt.Tx) error {
		favorite = tx.Bucket(bucketFavorites).Get(encodeID(businessID)) != nil
		return nil
	})
	if err != nil {
		return false, errs.Wrap(err, "failed to read favorite")
	}
	return favorite, nil
}

func (s *FavoritesStore) All() ([]int64, error) {
	var ids []int64
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFavorites).ForEach(func(k, _ []byte) error {
			ids = append(ids, decodeID(k))
			return nil
		})
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list favorites")
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func encodeID(id int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

func decodeID(key []byte) int64 {
	return int64(binary.BigEndian.Uint64(key))
}
