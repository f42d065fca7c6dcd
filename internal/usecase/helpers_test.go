package usecase

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"property-backoffice/config"
	"property-backoffice/internal/domain/entity"
	"property-backoffice/internal/infrastructure/database"
	"property-backoffice/internal/repository"
	"property-backoffice/internal/service"
	"property-backoffice/pkg/jwt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:", "test")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func seedClient(t *testing.T, db *gorm.DB, name, cpf string) *entity.Client {
	t.Helper()
	client := &entity.Client{
		Name:       name,
		Email:      cpf + "@clientes.com",
		Password:   "hash",
		NationalID: cpf,
		BirthDate:  datatypes.Date(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)),
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func seedStaff(t *testing.T, db *gorm.DB, name, specialty string) *entity.Staff {
	t.Helper()
	staff := &entity.Staff{
		Name:      name,
		Email:     name + "@imobiliaria.com",
		Specialty: specialty,
	}
	if err := db.Create(staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return staff
}

func seedProperty(t *testing.T, db *gorm.DB, name string) *entity.Property {
	t.Helper()
	property := &entity.Property{
		Name:    name,
		Address: "Rua das Flores, 100",
		Value:   decimal.RequireFromString("350000.00"),
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return property
}

func seedSecretary(t *testing.T, db *gorm.DB, email, password string) *entity.Secretary {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	secretary := &entity.Secretary{Name: "Ana", Email: email, Password: string(hash)}
	if err := db.Create(secretary).Error; err != nil {
		t.Fatalf("seed secretary: %v", err)
	}
	return secretary
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:           "test-secret",
		AccessExpiry:     15 * time.Minute,
		RefreshExpiry:    24 * time.Hour,
		RememberMeExpiry: 30 * 24 * time.Hour,
	})
}

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]time.Duration)}
}

func memoryTokenKey(tokenType jwt.TokenType, secretaryID uint, tokenID string) string {
	return string(tokenType) + ":" + strconv.FormatUint(uint64(secretaryID), 10) + ":" + tokenID
}

func (s *memoryTokenStore) Save(_ context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[memoryTokenKey(tokenType, secretaryID, tokenID)] = ttl
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[memoryTokenKey(tokenType, secretaryID, tokenID)]
	return ok, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, tokenType jwt.TokenType, secretaryID uint, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, memoryTokenKey(tokenType, secretaryID, tokenID))
	return nil
}

func (s *memoryTokenStore) RevokeAll(_ context.Context, secretaryID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefixes := []string{
		string(jwt.AccessToken) + ":" + strconv.FormatUint(uint64(secretaryID), 10) + ":",
		string(jwt.RefreshToken) + ":" + strconv.FormatUint(uint64(secretaryID), 10) + ":",
	}
	for key := range s.tokens {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(s.tokens, key)
			}
		}
	}
	return nil
}

func (s *memoryTokenStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
