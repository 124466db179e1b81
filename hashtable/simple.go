package hashtable

// SimpleHashTable 不是线程安全的，只保存调用方提供的引用
type SimpleHashTable struct {
	data map[string][]byte
}

func NewSimpleHashTable() *SimpleHashTable {
	return &SimpleHashTable{data: make(map[string][]byte)}
}

func (t *SimpleHashTable) Size() int {
	if t.data == nil {
		panic("Nil map")
	}
	return len(t.data)
}

func (t *SimpleHashTable) Put(key string, value []byte) {
	if t.data == nil {
		panic("Nil map")
	}
	t.data[key] = value
}

func (t *SimpleHashTable) Get(key string) (value []byte, ok bool) {
	if t.data == nil {
		panic("Nil map")
	}
	value, ok = t.data[key]
	return
}

func (t *SimpleHashTable) HasKey(key string) bool {
	if t.data == nil {
		panic("Nil map")
	}
	_, exists := t.data[key]
	return exists
}

func (t *SimpleHashTable) Remove(key string) (value []byte, ok bool) {
	if t.data == nil {
		panic("Nil map")
	}
	value, ok = t.data[key]
	if ok {
		delete(t.data, key)
	}
	return
}

func (t *SimpleHashTable) ForEach(p Processor) {
	if t.data == nil {
		panic("Nil map")
	}
	for k, v := range t.data {
		if !p(k, v) {
			break
		}
	}
}

func (t *SimpleHashTable) Keys() []string {
	if t.data == nil {
		panic("Nil map")
	}
	if len(t.data) == 0 {
		return nil
	}
	res := make([]string, 0, len(t.data))
	for key := range t.data {
		res = append(res, key)
	}
	return res
}

func (t *SimpleHashTable) Release() {
	if t == nil {
		return
	}
	t.data = nil
}
