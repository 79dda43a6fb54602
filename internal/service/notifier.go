// internal/service/notifier.go
package service

import (
	"sync"

	"go_4_streak_keep/internal/model"

	"github.com/google/uuid"
)

// Notifier はテナントごとの購読者へステータス/当日レコードの変更を配信します。
// チャネルはバッファ1の latest-wins: 購読者が追いついていなければ古い値を
// 捨てて最新値だけを残すため、配信側がブロックすることはありません。
type Notifier struct {
	mu         sync.Mutex
	statusSubs map[uuid.UUID]map[chan *model.StreakStatus]struct{}
	todaySubs  map[uuid.UUID]map[chan *model.DailyActivityRecord]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{
		statusSubs: make(map[uuid.UUID]map[chan *model.StreakStatus]struct{}),
		todaySubs:  make(map[uuid.UUID]map[chan *model.DailyActivityRecord]struct{}),
	}
}

// SubscribeStatus はステータス購読チャネルと購読解除関数を返します。
// 解除後のチャネルは close されます。
func (n *Notifier) SubscribeStatus(tenantID uuid.UUID) (<-chan *model.StreakStatus, func()) {
	ch := make(chan *model.StreakStatus, 1)

	n.mu.Lock()
	subs, ok := n.statusSubs[tenantID]
	if !ok {
		subs = make(map[chan *model.StreakStatus]struct{})
		n.statusSubs[tenantID] = subs
	}
	subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			if subs, ok := n.statusSubs[tenantID]; ok {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(n.statusSubs, tenantID)
				}
			}
			// 配信はロック下で行われるため、ここでの close と送信は競合しない
			close(ch)
			n.mu.Unlock()
		})
	}
	return ch, cancel
}

func (n *Notifier) PublishStatus(tenantID uuid.UUID, status *model.StreakStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.statusSubs[tenantID] {
		sendLatestStatus(ch, status)
	}
}

// SubscribeToday は当日レコード購読チャネルと購読解除関数を返します。
// クリア操作の後は nil (レコード無し) が配信されます。
func (n *Notifier) SubscribeToday(tenantID uuid.UUID) (<-chan *model.DailyActivityRecord, func()) {
	ch := make(chan *model.DailyActivityRecord, 1)

	n.mu.Lock()
	subs, ok := n.todaySubs[tenantID]
	if !ok {
		subs = make(map[chan *model.DailyActivityRecord]struct{})
		n.todaySubs[tenantID] = subs
	}
	subs[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			if subs, ok := n.todaySubs[tenantID]; ok {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(n.todaySubs, tenantID)
				}
			}
			close(ch)
			n.mu.Unlock()
		})
	}
	return ch, cancel
}

func (n *Notifier) PublishToday(tenantID uuid.UUID, record *model.DailyActivityRecord) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.todaySubs[tenantID] {
		sendLatestToday(ch, record)
	}
}

// HasSubscribers は該当テナントに生きた購読があるかを返します。
// 購読者ゼロのテナントのために書き込みのたびにステータスを再導出するのを避けるための判定です。
func (n *Notifier) HasSubscribers(tenantID uuid.UUID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.statusSubs[tenantID]) > 0 || len(n.todaySubs[tenantID]) > 0
}

// ActiveStatusTenants はステータス購読を持つテナントの一覧を返します。
// 日付切り替わり時の再配信ジョブが対象を列挙するのに使います。
func (n *Notifier) ActiveStatusTenants() []uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	tenants := make([]uuid.UUID, 0, len(n.statusSubs))
	for id := range n.statusSubs {
		tenants = append(tenants, id)
	}
	return tenants
}

func sendLatestStatus(ch chan *model.StreakStatus, status *model.StreakStatus) {
	select {
	case ch <- status:
	default:
		// 満杯なら古い値を1つ捨てて最新を入れる
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- status:
		default:
		}
	}
}

func sendLatestToday(ch chan *model.DailyActivityRecord, record *model.DailyActivityRecord) {
	select {
	case ch <- record:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- record:
		default:
		}
	}
}
