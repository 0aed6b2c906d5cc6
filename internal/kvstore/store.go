// Package kvstore 提供会话状态的同步键值存储适配层。
// 购物车、收藏等按身份命名空间持久化的状态都以整值覆盖方式写入这里。
package kvstore

import "encoding/json"

// Store 键值存储接口（同步读写，整值覆盖）
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// LoadJSON 读取并反序列化指定键；键不存在时返回 false 且不修改 dest
func LoadJSON(s Store, key string, dest interface{}) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SaveJSON 序列化并整值写入指定键
func SaveJSON(s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
