package hashtable

type Processor func(string, []byte) bool

type HashTable interface {
	Size() int
	Put(key string, value []byte)
	Get(key string) (value []byte, ok bool)
	HasKey(key string) bool
	Remove(key string) (value []byte, ok bool)
	ForEach(p Processor)
	Keys() []string
	Release()
}
