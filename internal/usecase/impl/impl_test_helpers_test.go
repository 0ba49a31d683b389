package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"console/internal/domain/entity"
	"console/internal/domain/service"
	"console/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testSnapshot() *entity.Snapshot {
	placed := time.Date(2026, 8, 20, 18, 30, 0, 0, time.UTC)

	return &entity.Snapshot{
		Orders: []*entity.Order{
			{
				ID:           "ORD-1001",
				CustomerName: "Dana Reyes",
				Items:        []entity.LineItem{{Name: "Margherita", Quantity: 1, UnitPrice: 12.5}},
				Status:       entity.OrderPreparing,
				PlacedAt:     placed,
			},
			{
				ID:           "ORD-1002",
				CustomerName: "Sam Okafor",
				Items:        []entity.LineItem{{Name: "Carbonara", Quantity: 1, UnitPrice: 14.0}},
				Status:       entity.OrderReady,
				PlacedAt:     placed.Add(5 * time.Minute),
			},
		},
		Reservations: []*entity.Reservation{
			{ID: "RSV-201", CustomerName: "Dana Reyes", Date: "2026-08-30", Time: "19:00", PartySize: 2, Status: entity.ReservationPending},
		},
		Tables: []*entity.Table{
			{ID: 1, SeatCount: 2, Status: entity.TableAvailable},
			{ID: 4, SeatCount: 4, Status: entity.TableReserved},
		},
		Roster: []*entity.StaffMember{
			{Name: "Ana", Email: "ana@example.com", RoleLabel: "Server", OnDuty: entity.DutyActive, Shift: "evening"},
		},
	}
}

// mockAccountRepository is a testify mock for repository.AccountRepository.
type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

// stubHasher accepts exactly one password/hash pair.
type stubHasher struct {
	password string
	hash     string
}

func (h *stubHasher) Hash(password string) (string, error) {
	return h.hash, nil
}

func (h *stubHasher) Check(password, hash string) bool {
	return password == h.password && hash == h.hash
}

// stubTokenService issues deterministic tokens and validates only the ones it
// issued.
type stubTokenService struct {
	principal *entity.Principal
	failIssue error
}

func (s *stubTokenService) GenerateTokens(principal *entity.Principal) (string, string, error) {
	if s.failIssue != nil {
		return "", "", s.failIssue
	}
	s.principal = principal

	return "access-token", "refresh-token", nil
}

func (s *stubTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	if tokenString != "access-token" || s.principal == nil {
		return nil, errors.New("invalid token")
	}

	return claimsFor(s.principal, "access"), nil
}

func (s *stubTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	if tokenString != "refresh-token" || s.principal == nil {
		return nil, errors.New("invalid token")
	}

	return claimsFor(s.principal, "refresh"), nil
}

func (s *stubTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour
}

func claimsFor(p *entity.Principal, tokenType string) *service.Claims {
	return &service.Claims{
		PrincipalID: p.ID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Role:        p.Role,
		TokenType:   tokenType,
	}
}

// stubQRCodeService returns a fixed payload.
type stubQRCodeService struct {
	png []byte
	err error
}

func (s *stubQRCodeService) GenerateTableQR(tableID int) ([]byte, error) {
	return s.png, s.err
}

func (s *stubQRCodeService) ParseTableQR(qrData string) (int, error) {
	return 0, s.err
}

// stubFeed serves canned notifications.
type stubFeed struct {
	notifications []service.Notification
}

func (s *stubFeed) Recent(limit int) []service.Notification {
	if limit > len(s.notifications) {
		limit = len(s.notifications)
	}

	return s.notifications[:limit]
}
