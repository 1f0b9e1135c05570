package session

import (
	"context"
	"fmt"
)

// sessionImpl 實作 ISession 介面，用於管理使用者會話
type sessionImpl struct {
	id       string            // session ID
	ctx      context.Context   // 操作上下文
	data     map[string]string // session 資料
	store    IStore            // session 儲存接口
	modified bool              // 載入後是否被修改過
}

// NewSession 建立新的 session 實例
func NewSession(ctx context.Context, id string, store IStore) ISession {
	if ctx == nil {
		ctx = context.Background()
	}
	return &sessionImpl{
		id:    id,
		ctx:   ctx,
		store: store,
	}
}

// Load 從儲存層載入 session 資料，只會載入一次
func (s *sessionImpl) Load() error {
	const op = "session.Load"
	if s.data != nil {
		return nil
	}

	data, err := s.store.Load(s.ctx, s.id)
	if err != nil {
		return fmt.Errorf("[%s] Fail to load session, err=%w", op, err)
	}
	s.data = data
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return nil
}

// Get 取得指定 key 的值
func (s *sessionImpl) Get(key string) string {
	if s.data == nil {
		return ""
	}
	return s.data[key]
}

// Set 設定 key-value 對
func (s *sessionImpl) Set(key string, value string) {
	if s.data == nil {
		s.data = make(map[string]string)
	}
	s.data[key] = value
	s.modified = true
}

// Delete 刪除指定 key 的值
func (s *sessionImpl) Delete(key string) {
	if s.data == nil {
		return
	}
	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.modified = true
	}
}

// Clear 清空 session 資料
func (s *sessionImpl) Clear() {
	s.data = make(map[string]string)
	s.modified = true
}

// Save 保存 session 資料到儲存層，沒有修改時不做任何事
func (s *sessionImpl) Save() error {
	const op = "session.Save"
	if s.data == nil || !s.modified {
		return nil
	}
	if err := s.store.Save(s.ctx, s.id, s.data); err != nil {
		return fmt.Errorf("[%s] Fail to save session, err=%w", op, err)
	}
	s.modified = false
	return nil
}
