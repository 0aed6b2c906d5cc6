package storefront

import (
	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/kvstore"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/models"
)

// Listener 身份切换监听者（购物车、收藏夹等按身份命名空间的状态实现此接口）
type Listener interface {
	IdentityChanged(key string)
}

// Authenticator 凭据校验入口（由 service.AuthService 实现）
type Authenticator interface {
	Login(email, password string) (*models.User, error)
	Register(name, email, password string) (*models.User, error)
}

// Identity 当前登录身份提供者。
// 身份切换同步通知所有监听者，通知完成前不处理下一条命令，
// 因此依赖方的加载/复位对变更命令是原子的。
type Identity struct {
	store     kvstore.Store
	auth      Authenticator
	current   *models.User
	listeners []Listener
}

// NewIdentity 创建身份提供者
func NewIdentity(store kvstore.Store, auth Authenticator) *Identity {
	return &Identity{store: store, auth: auth}
}

// Subscribe 注册身份切换监听者
func (p *Identity) Subscribe(l Listener) {
	p.listeners = append(p.listeners, l)
}

// Current 返回当前登录用户（未登录为 nil）
func (p *Identity) Current() *models.User {
	return p.current
}

// SignIn 将指定用户设为当前身份并通知监听者加载其命名空间
func (p *Identity) SignIn(user *models.User) {
	p.current = user
	if err := kvstore.SaveJSON(p.store, constants.StorageKeyUser, user); err != nil {
		logger.Warnw("identity_persist_failed", "error", err)
	}
	p.notify(user.IdentityKey())
}

// SignOut 登出：复位为游客身份。监听者清空内存状态，
// 其持久数据保留，下次登录时原样恢复。
func (p *Identity) SignOut() {
	p.current = nil
	if err := p.store.Delete(constants.StorageKeyUser); err != nil {
		logger.Warnw("identity_clear_failed", "error", err)
	}
	p.notify("")
}

// Login 校验凭据并登录
func (p *Identity) Login(email, password string) (*models.User, error) {
	user, err := p.auth.Login(email, password)
	if err != nil {
		return nil, err
	}
	p.SignIn(user)
	return user, nil
}

// Register 注册并自动登录
func (p *Identity) Register(name, email, password string) (*models.User, error) {
	user, err := p.auth.Register(name, email, password)
	if err != nil {
		return nil, err
	}
	p.SignIn(user)
	return user, nil
}

// Resume 从存储恢复上次会话的登录身份（存在时返回 true）
func (p *Identity) Resume() bool {
	var user models.User
	ok, err := kvstore.LoadJSON(p.store, constants.StorageKeyUser, &user)
	if err != nil {
		logger.Warnw("identity_resume_failed", "error", err)
		return false
	}
	if !ok {
		return false
	}
	p.current = &user
	p.notify(user.IdentityKey())
	return true
}

func (p *Identity) notify(key string) {
	for _, l := range p.listeners {
		l.IdentityChanged(key)
	}
}
