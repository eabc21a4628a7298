package service

import (
	"LabSite/config"
	"LabSite/internal/storage"
	"LabSite/internal/task"
	"log"

	"golang.org/x/net/context"
)

// enqueueCleanup is swapped out in tests.
var enqueueCleanup = task.EnqueueCleanup

// CleanupImages deletes objects referenced by oldRefs but no longer by
// newRefs. Strictly best-effort: URLs that do not point into our bucket are
// skipped, delete failures are logged and handed to the retry queue, and
// nothing here ever fails the surrounding record mutation.
func CleanupImages(ctx context.Context, oldRefs, newRefs []string) {
	stale := diffRefs(oldRefs, newRefs)
	if len(stale) == 0 {
		return
	}

	failed := make([]string, 0)
	for _, url := range stale {
		key, ok := storage.KeyFromURL(url)
		if !ok {
			log.Printf("cleanup: skip foreign url %q", url)
			continue
		}
		if storage.Default == nil {
			failed = append(failed, key)
			continue
		}
		if err := storage.Default.RemoveObject(ctx, config.AppConfig.BucketName, key); err != nil {
			log.Printf("cleanup: remove %s failed: %v", key, err)
			failed = append(failed, key)
		}
	}

	if len(failed) > 0 {
		if err := enqueueCleanup(ctx, failed); err != nil {
			log.Printf("cleanup: enqueue retry failed: %v", err)
		}
	}
}

// diffRefs returns the URLs present in oldRefs but absent from newRefs,
// preserving oldRefs order. Empty strings do not count as references.
func diffRefs(oldRefs, newRefs []string) []string {
	kept := make(map[string]struct{}, len(newRefs))
	for _, ref := range newRefs {
		if ref != "" {
			kept[ref] = struct{}{}
		}
	}
	stale := make([]string, 0)
	seen := make(map[string]struct{})
	for _, ref := range oldRefs {
		if ref == "" {
			continue
		}
		if _, ok := kept[ref]; ok {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		stale = append(stale, ref)
	}
	return stale
}

// imageRefs collects the non-empty URLs from single-image fields.
func imageRefs(urls ...string) []string {
	refs := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" {
			refs = append(refs, u)
		}
	}
	return refs
}
