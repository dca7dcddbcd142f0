package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store abstrai o armazenamento de sessões para os middlewares e testes.
type Store interface {
	Create(ctx context.Context, id, usuarioSlug string) error
	Get(ctx context.Context, id string) (*Sessao, error)
	Delete(ctx context.Context, id string) error
	RevokeAllForUsuario(ctx context.Context, usuarioSlug string) error
}

type Sessao struct {
	UsuarioSlug string `json:"usr"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}

// AppSessionStore guarda sessões no Redis, com um set por usuário para
// permitir revogar tudo quando o usuário é deletado.
type AppSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAppSessionStore(rdb *redis.Client, ttl time.Duration) *AppSessionStore {
	return &AppSessionStore{rdb: rdb, ttl: ttl}
}

func key(id string) string          { return fmt.Sprintf("pth:sess:%s", id) }
func userSetKey(slug string) string { return fmt.Sprintf("pth:user_sessions:%s", slug) }

func (s *AppSessionStore) Create(ctx context.Context, id, usuarioSlug string) error {
	now := time.Now()
	b, _ := json.Marshal(Sessao{
		UsuarioSlug: usuarioSlug,
		IssuedAt:    now.Unix(),
		ExpiresAt:   now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key(id), b, s.ttl)
	pipe.SAdd(ctx, userSetKey(usuarioSlug), id)
	pipe.Expire(ctx, userSetKey(usuarioSlug), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *AppSessionStore) Get(ctx context.Context, id string) (*Sessao, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var sess Sessao
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *AppSessionStore) Delete(ctx context.Context, id string) error {
	sess, _ := s.Get(ctx, id) // ignora falha, ainda dá pra apagar a chave
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key(id))
	if sess != nil {
		pipe.SRem(ctx, userSetKey(sess.UsuarioSlug), id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForUsuario apaga todas as sessões abertas do usuário.
func (s *AppSessionStore) RevokeAllForUsuario(ctx context.Context, usuarioSlug string) error {
	ids, err := s.rdb.SMembers(ctx, userSetKey(usuarioSlug)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, sid := range ids {
		pipe.Del(ctx, key(sid))
	}
	pipe.Del(ctx, userSetKey(usuarioSlug))
	_, err = pipe.Exec(ctx)
	return err
}
