package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrNotFound indica token desconhecido ou sessão já expirada.
var ErrNotFound = errors.New("session not found")

// Session é o estado autenticado de uma requisição: quem é o usuário e
// até quando o token vale. A expiração é absoluta, contada da emissão.
type Session struct {
	Token     string    `json:"token"`
	UsuarioID uint      `json:"usuario_id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Store interface {
	Create(ctx context.Context, usuarioID uint, email, nome string) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore guarda sessões serializadas em Redis sob um token opaco.
// O TTL da chave coincide com a expiração absoluta da sessão, então o
// Redis descarta sessões vencidas sozinho.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, usuarioID uint, email, nome string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		Token:     uuid.NewString(),
		UsuarioID: usuarioID,
		Email:     email,
		Nome:      nome,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	key := sessionKeyPrefix + sess.Token
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	key := sessionKeyPrefix + token

	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	// expiração absoluta, independente do TTL da chave
	if time.Now().After(sess.ExpiresAt) {
		_ = s.client.Del(ctx, key).Err()
		return nil, ErrNotFound
	}

	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
