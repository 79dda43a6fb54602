// internal/service/locks.go
package service

import "sync"

// keyedMutex はキー単位の排他を提供します。
// 同一 (テナント, 日付) への read-modify-write を直列化し、
// 同日の並行インクリメントが互いに上書きし合わないようにします。
// エントリは参照カウントで管理し、未使用になったら破棄します。
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*lockEntry)}
}

// Lock はキーの排他を取得し、解放関数を返します。
func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
