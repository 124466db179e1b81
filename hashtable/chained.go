package hashtable

import (
	"sync"

	"hashtable-instruction/lib/sync/atomic"
)

// ChainedHashTable 是线程安全的链式哈希表，桶的数量在创建后固定不变
type ChainedHashTable struct {
	buckets    []*entry
	count      int
	copyValues bool
	mutex      sync.Mutex
	released   atomic.Boolean
}

type entry struct {
	key  string
	val  []byte
	next *entry
}

// NewChainedHashTable 创建哈希表。size 为桶的数量，必须不小于 1；
// copyValues 为 true 时表内保存值的深拷贝，否则只保存调用方提供的引用
func NewChainedHashTable(size int, copyValues bool) *ChainedHashTable {
	if size < 1 {
		panic("Non-positive bucket count")
	}
	return &ChainedHashTable{
		buckets:    make([]*entry, size),
		copyValues: copyValues,
	}
}

func (t *ChainedHashTable) Size() int {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.count
}

func (t *ChainedHashTable) Put(key string, value []byte) {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	index := t.keyIndex(key)
	var last *entry
	for curr := t.buckets[index]; curr != nil; curr = curr.next {
		if curr.key == key {
			curr.val = t.storedValue(value)
			return
		}
		last = curr
	}
	e := &entry{key: key, val: t.storedValue(value)}
	// 新表项挂在链尾，同一个桶内保持插入顺序
	if last == nil {
		t.buckets[index] = e
	} else {
		last.next = e
	}
	t.count++
}

func (t *ChainedHashTable) Get(key string) (value []byte, ok bool) {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for curr := t.buckets[t.keyIndex(key)]; curr != nil; curr = curr.next {
		if curr.key == key {
			return curr.val, true
		}
	}
	return nil, false
}

func (t *ChainedHashTable) HasKey(key string) bool {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for curr := t.buckets[t.keyIndex(key)]; curr != nil; curr = curr.next {
		if curr.key == key {
			return true
		}
	}
	return false
}

// Remove 把表项从表中摘除并把值返还给调用方，
// 无论 copyValues 如何，返还的值之后都归调用方所有
func (t *ChainedHashTable) Remove(key string) (value []byte, ok bool) {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	index := t.keyIndex(key)
	var last *entry
	for curr := t.buckets[index]; curr != nil; curr = curr.next {
		if curr.key == key {
			if last == nil {
				t.buckets[index] = curr.next
			} else {
				last.next = curr.next
			}
			t.count--
			return curr.val, true
		}
		last = curr
	}
	return nil, false
}

func (t *ChainedHashTable) ForEach(p Processor) {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	for _, head := range t.buckets {
		for curr := head; curr != nil; curr = curr.next {
			if !p(curr.key, curr.val) {
				return
			}
		}
	}
}

func (t *ChainedHashTable) Keys() []string {
	if t == nil {
		panic("Nil ChainedHashTable")
	}
	if t.released.Get() {
		panic("Released ChainedHashTable")
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.count == 0 {
		return nil
	}
	keys := make([]string, 0, t.count)
	for _, head := range t.buckets {
		for curr := head; curr != nil; curr = curr.next {
			keys = append(keys, curr.key)
		}
	}
	return keys
}

// Release 释放哈希表，调用之后不允许再使用这张表
func (t *ChainedHashTable) Release() {
	if t == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.released.Get() {
		return
	}
	t.released.Set(true)
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.buckets = nil
	t.count = 0
}

// storedValue 根据 copyValues 决定保存拷贝还是调用方的引用，
// 空值（nil 或长度为 0）总是按原样保存
func (t *ChainedHashTable) storedValue(value []byte) []byte {
	if !t.copyValues || len(value) == 0 {
		return value
	}
	owned := make([]byte, len(value))
	copy(owned, value)
	return owned
}

// keyIndex 根据哈希函数的结果，得到相应桶的下标
func (t *ChainedHashTable) keyIndex(key string) uint {
	return djb2(key) % uint(len(t.buckets))
}

// djb2 是一个哈希函数，种子 5381，乘数 33
func djb2(key string) uint {
	hash := uint(5381)
	// 此处不用 for range 是因为不应考虑字符而是只考虑字节
	for i := 0; i < len(key); i++ {
		hash = hash<<5 + hash + uint(key[i])
	}
	return hash
}
