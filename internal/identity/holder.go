// Package identity tracks who is using the hub. An identity is an opaque
// string, usually an email; nothing is authenticated.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrEmptyIdentity = errors.New("identity must not be empty")
	ErrNoIdentity    = errors.New("no identity is logged in")
	ErrEmptyAvatar   = errors.New("avatar must not be empty")
)

// ChangeFunc is called after the current identity changes. identity is
// empty after logout.
type ChangeFunc func(ctx context.Context, identity string)

// Holder owns the current identity and its avatar.
type Holder struct {
	kv kvstore.Store

	mu        sync.RWMutex
	current   string
	avatar    string
	listeners []ChangeFunc
}

func NewHolder(kv kvstore.Store) *Holder {
	return &Holder{kv: kv}
}

// OnChange registers fn to run after every login and logout.
func (h *Holder) OnChange(fn ChangeFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Restore resumes the session recorded under the fixed key, if any.
func (h *Holder) Restore(ctx context.Context) error {
	stored, ok, err := h.kv.Get(ctx, kvstore.CurrentUserKey)
	if err != nil {
		return fmt.Errorf("read current identity: %w", err)
	}
	if !ok || strings.TrimSpace(stored) == "" {
		return nil
	}
	return h.activate(ctx, stored)
}

// Login makes id the current identity. Any non-blank string is accepted.
func (h *Holder) Login(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyIdentity
	}
	if err := h.kv.Set(ctx, kvstore.CurrentUserKey, id); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	return h.activate(ctx, id)
}

func (h *Holder) activate(ctx context.Context, id string) error {
	avatar, _, err := h.kv.Get(ctx, kvstore.AvatarKey(id))
	if err != nil {
		return fmt.Errorf("read avatar: %w", err)
	}

	h.mu.Lock()
	h.current = id
	h.avatar = avatar
	listeners := append([]ChangeFunc(nil), h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, id)
	}
	return nil
}

// Logout forgets the current identity. The stored avatar is kept.
func (h *Holder) Logout(ctx context.Context) error {
	if err := h.kv.Delete(ctx, kvstore.CurrentUserKey); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}

	h.mu.Lock()
	h.current = ""
	h.avatar = ""
	listeners := append([]ChangeFunc(nil), h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(ctx, "")
	}
	return nil
}

// SetAvatar stores a data URI image for the current identity.
func (h *Holder) SetAvatar(ctx context.Context, dataURI string) error {
	if dataURI == "" {
		return ErrEmptyAvatar
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == "" {
		return ErrNoIdentity
	}
	if err := h.kv.Set(ctx, kvstore.AvatarKey(h.current), dataURI); err != nil {
		return fmt.Errorf("persist avatar: %w", err)
	}
	h.avatar = dataURI
	return nil
}

func (h *Holder) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

func (h *Holder) Avatar() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.avatar
}

func (h *Holder) LoggedIn() bool {
	return h.Current() != ""
}

// DisplayName is the part of the identity before '@' with its first letter
// upper-cased.
func (h *Holder) DisplayName() string {
	return DisplayName(h.Current())
}

var upper = cases.Upper(language.Und)

func DisplayName(id string) string {
	if id == "" {
		return ""
	}
	local, _, _ := strings.Cut(id, "@")
	r, size := utf8.DecodeRuneInString(local)
	if r == utf8.RuneError {
		return local
	}
	return upper.String(string(r)) + local[size:]
}
