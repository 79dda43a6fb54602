// internal/service/notifier_test.go
package service

import (
	"sync"
	"testing"
	"time"

	"go_4_streak_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishStatus(t *testing.T) {
	n := NewNotifier()
	tenantID := uuid.New()
	otherTenantID := uuid.New()

	ch, cancel := n.SubscribeStatus(tenantID)
	defer cancel()
	otherCh, otherCancel := n.SubscribeStatus(otherTenantID)
	defer otherCancel()

	n.PublishStatus(tenantID, &model.StreakStatus{CurrentStreak: 3})

	got := <-ch
	assert.Equal(t, 3, got.CurrentStreak)

	// 別テナントの購読には届かない
	select {
	case status := <-otherCh:
		t.Fatalf("unexpected delivery to other tenant: %+v", status)
	default:
	}
}

// 購読者が追いついていない場合は古い値を捨てて最新だけを残す
func TestNotifier_LatestWins(t *testing.T) {
	n := NewNotifier()
	tenantID := uuid.New()

	ch, cancel := n.SubscribeStatus(tenantID)
	defer cancel()

	n.PublishStatus(tenantID, &model.StreakStatus{CurrentStreak: 1})
	n.PublishStatus(tenantID, &model.StreakStatus{CurrentStreak: 2})
	n.PublishStatus(tenantID, &model.StreakStatus{CurrentStreak: 3})

	got := <-ch
	assert.Equal(t, 3, got.CurrentStreak)

	select {
	case status := <-ch:
		t.Fatalf("expected single latest value, got extra: %+v", status)
	default:
	}
}

func TestNotifier_CancelClosesChannel(t *testing.T) {
	n := NewNotifier()
	tenantID := uuid.New()

	ch, cancel := n.SubscribeStatus(tenantID)
	assert.True(t, n.HasSubscribers(tenantID))

	cancel()
	cancel() // 二重解除は安全

	_, open := <-ch
	assert.False(t, open)
	assert.False(t, n.HasSubscribers(tenantID))

	// 解除後の配信はパニックしない
	n.PublishStatus(tenantID, &model.StreakStatus{CurrentStreak: 1})
}

// 配信と解除が並行しても close 済みチャネルへの送信が起きないこと
func TestNotifier_ConcurrentPublishAndCancel(t *testing.T) {
	n := NewNotifier()
	tenantID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		ch, cancel := n.SubscribeStatus(tenantID)
		wg.Add(2)
		go func() {
			defer wg.Done()
			n.PublishStatus(tenantID, &model.StreakStatus{CurrentStreak: 1})
		}()
		go func() {
			defer wg.Done()
			cancel()
		}()
		// 購読者側はチャネルが閉じるまで読み捨てる
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range ch {
			}
		}()
	}
	wg.Wait()
	assert.False(t, n.HasSubscribers(tenantID))
}

func TestNotifier_ActiveStatusTenants(t *testing.T) {
	n := NewNotifier()
	tenantA := uuid.New()
	tenantB := uuid.New()

	assert.Empty(t, n.ActiveStatusTenants())

	_, cancelA := n.SubscribeStatus(tenantA)
	_, cancelB := n.SubscribeStatus(tenantB)
	defer cancelB()

	tenants := n.ActiveStatusTenants()
	assert.ElementsMatch(t, []uuid.UUID{tenantA, tenantB}, tenants)

	cancelA()
	tenants = n.ActiveStatusTenants()
	assert.ElementsMatch(t, []uuid.UUID{tenantB}, tenants)
}

func TestNotifier_PublishToday_NilRecord(t *testing.T) {
	n := NewNotifier()
	tenantID := uuid.New()

	ch, cancel := n.SubscribeToday(tenantID)
	defer cancel()

	// クリア後の「レコード無し」は nil として配信される
	n.PublishToday(tenantID, nil)

	got, open := <-ch
	require.True(t, open)
	assert.Nil(t, got)
}

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	locks := newKeyedMutex()

	var mu sync.Mutex
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("tenant-a/2025-03-10")
			defer unlock()
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	locks := newKeyedMutex()

	// 別キーのロックを保持したままでも取得できる
	unlockA := locks.Lock("tenant-a/2025-03-10")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("tenant-b/2025-03-10")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("independent key should not block")
	}
}
