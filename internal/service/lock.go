package service

import (
	"LabSite/internal/repo"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

const (
	recordLockTTL   = 10 * time.Second
	recordLockTries = 3
)

// lockRecord serializes mutations of one record so two interleaved updates
// cannot delete an image the other still references. Locking is best-effort:
// without Redis, or when the lock stays busy, the mutation proceeds
// unserialized (last write wins, as the database already allows).
func lockRecord(ctx context.Context, entity string, id uint64) *repo.RedisLock {
	if repo.Redis == nil {
		return nil
	}
	key := fmt.Sprintf("lab:lock:%s:%d", entity, id)
	lock := repo.NewRedisLock(repo.Redis, key, recordLockTTL)
	for i := 0; i < recordLockTries; i++ {
		err := lock.Lock(ctx)
		if err == nil {
			return lock
		}
		if !errors.Is(err, repo.ErrLockBusy) {
			log.Printf("record lock %s: %v", key, err)
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Printf("record lock %s busy, proceeding without lock", key)
	return nil
}

func unlockRecord(ctx context.Context, lock *repo.RedisLock) {
	if lock == nil {
		return
	}
	if err := lock.Unlock(ctx); err != nil {
		log.Printf("record unlock failed: %v", err)
	}
}
