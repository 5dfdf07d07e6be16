//go:build !windows

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockHost(t *testing.T) *nativeHost {
	t.Helper()
	return &nativeHost{lockFile: filepath.Join(t.TempDir(), "runner.lock")}
}

func TestLockFile_FirstInstanceHoldsLock(t *testing.T) {
	h := newLockHost(t)

	lock, existed, err := h.CreateInstanceMutex(instanceMutex)
	require.NoError(t, err)
	assert.False(t, existed)
	require.NotNil(t, lock)
	require.NotNil(t, lock.file)
	assert.True(t, lock.file.Locked())
	t.Cleanup(func() { lock.file.Unlock() })

	data, err := os.ReadFile(h.lockFile)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
}

func TestLockFile_SecondInstanceIsDuplicate(t *testing.T) {
	first := newLockHost(t)
	lock, _, err := first.CreateInstanceMutex(instanceMutex)
	require.NoError(t, err)
	t.Cleanup(func() { lock.file.Unlock() })

	second := &nativeHost{lockFile: first.lockFile}
	dup, existed, err := second.CreateInstanceMutex(instanceMutex)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Nil(t, dup)
}

func TestLockFile_ReleasedLockIsTakenOver(t *testing.T) {
	h := newLockHost(t)
	lock, _, err := h.CreateInstanceMutex(instanceMutex)
	require.NoError(t, err)
	// Same as the holder exiting: the kernel drops the lock.
	require.NoError(t, lock.file.Unlock())

	next, existed, err := h.CreateInstanceMutex(instanceMutex)
	require.NoError(t, err)
	assert.False(t, existed)
	require.NotNil(t, next)
	next.file.Unlock()
}

func TestLockFile_LeftoverFileWithoutLockIsFree(t *testing.T) {
	h := newLockHost(t)
	require.NoError(t, os.WriteFile(h.lockFile, []byte("99999999\n"), 0600))

	lock, existed, err := h.CreateInstanceMutex(instanceMutex)
	require.NoError(t, err)
	assert.False(t, existed)
	lock.file.Unlock()
}

func TestLockFile_ConcurrentLaunchesHaveOneWinner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.lock")
	const launches = 16

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*instanceLock
		dups    int
	)
	for i := 0; i < launches; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := &nativeHost{lockFile: path}
			lock, existed, err := h.CreateInstanceMutex(instanceMutex)
			mu.Lock()
			defer mu.Unlock()
			if assert.NoError(t, err) {
				if existed {
					dups++
				} else {
					winners = append(winners, lock)
				}
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, launches-1, dups)
	winners[0].file.Unlock()
}
