package kvstore

// MemoryStore 内存实现（游客会话与测试用，不落盘）
type MemoryStore struct {
	entries map[string]string
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get 读取键值
func (s *MemoryStore) Get(key string) (string, bool, error) {
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set 写入键值
func (s *MemoryStore) Set(key, value string) error {
	s.entries[key] = value
	return nil
}

// Delete 删除键
func (s *MemoryStore) Delete(key string) error {
	delete(s.entries, key)
	return nil
}
