package domain

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"radya-hi5/internal/entities"
	"radya-hi5/internal/notifier"
	"radya-hi5/internal/repository"
	"radya-hi5/internal/roster"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) accountResult(args mock.Arguments) (*entities.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *repoMock) GetAccount(ctx context.Context, accountID string) (*entities.Account, error) {
	return m.accountResult(m.Called(ctx, accountID))
}

func (m *repoMock) GetAccountByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return m.accountResult(m.Called(ctx, email))
}

func (m *repoMock) GetAccountByRosterID(ctx context.Context, rosterID string) (*entities.Account, error) {
	return m.accountResult(m.Called(ctx, rosterID))
}

func (m *repoMock) CreateAccount(ctx context.Context, acc entities.NewAccount) (*entities.Account, error) {
	return m.accountResult(m.Called(ctx, acc))
}

func (m *repoMock) LinkRoster(ctx context.Context, accountID, rosterID string) (*entities.Account, error) {
	return m.accountResult(m.Called(ctx, accountID, rosterID))
}

func (m *repoMock) FillName(ctx context.Context, accountID, name string) (*entities.Account, error) {
	return m.accountResult(m.Called(ctx, accountID, name))
}

func (m *repoMock) ExistingAccountIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func (m *repoMock) ListAccounts(ctx context.Context) ([]entities.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Account), args.Error(1)
}

func (m *repoMock) CreateKudos(ctx context.Context, k entities.NewKudos) (*entities.Kudos, error) {
	args := m.Called(ctx, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Kudos), args.Error(1)
}

func (m *repoMock) MarkEmailSent(ctx context.Context, kudosID string) error {
	return m.Called(ctx, kudosID).Error(0)
}

func (m *repoMock) ListSentKudos(ctx context.Context, senderID string, limit, offset int) (entities.KudosPage, error) {
	args := m.Called(ctx, senderID, limit, offset)
	return args.Get(0).(entities.KudosPage), args.Error(1)
}

func (m *repoMock) Dashboard(ctx context.Context, window entities.StatsWindow) (entities.Dashboard, error) {
	args := m.Called(ctx, window)
	return args.Get(0).(entities.Dashboard), args.Error(1)
}

// memStore is an in-memory repository with the same uniqueness rules as the database.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]entities.Account
	byEmail  map[string]string
	byRoster map[string]string
	kudos    []entities.Kudos
	creates  atomic.Int32

	// missBarrier, when set, holds the first misses of GetAccountByEmail until
	// all of them arrived, forcing concurrent callers into the create path.
	missBarrier *sync.WaitGroup
	misses      atomic.Int32
	missLimit   int32
}

var _ repository.Repository = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]entities.Account{},
		byEmail:  map[string]string{},
		byRoster: map[string]string{},
	}
}

func (s *memStore) OnStart(_ context.Context) error { return nil }
func (s *memStore) OnStop(_ context.Context) error  { return nil }

func (s *memStore) GetAccount(_ context.Context, accountID string) (*entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, entities.ErrAccountNotFound
	}
	return &acc, nil
}

func (s *memStore) GetAccountByEmail(_ context.Context, email string) (*entities.Account, error) {
	s.mu.Lock()
	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	acc := s.accounts[id]
	s.mu.Unlock()
	if ok {
		return &acc, nil
	}
	if s.missBarrier != nil && s.misses.Add(1) <= s.missLimit {
		s.missBarrier.Done()
		s.missBarrier.Wait()
	}
	return nil, entities.ErrAccountNotFound
}

func (s *memStore) GetAccountByRosterID(_ context.Context, rosterID string) (*entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byRoster[rosterID]
	if !ok {
		return nil, entities.ErrAccountNotFound
	}
	acc := s.accounts[id]
	return &acc, nil
}

func (s *memStore) CreateAccount(_ context.Context, na entities.NewAccount) (*entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(na.Email))
	if _, ok := s.byEmail[email]; ok {
		return nil, entities.ErrAccountExists
	}
	if na.LinkedRosterID != nil {
		if _, ok := s.byRoster[*na.LinkedRosterID]; ok {
			return nil, entities.ErrRosterAlreadyLinked
		}
	}
	acc := entities.Account{
		ID:             uuid.NewString(),
		Email:          email,
		Name:           na.Name,
		Image:          na.Image,
		LinkedRosterID: na.LinkedRosterID,
		CreatedAt:      time.Now(),
	}
	s.accounts[acc.ID] = acc
	s.byEmail[email] = acc.ID
	if acc.LinkedRosterID != nil {
		s.byRoster[*acc.LinkedRosterID] = acc.ID
	}
	s.creates.Add(1)
	return &acc, nil
}

func (s *memStore) LinkRoster(_ context.Context, accountID, rosterID string) (*entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, entities.ErrAccountNotFound
	}
	if acc.IsLinked() {
		return &acc, nil
	}
	if _, ok := s.byRoster[rosterID]; ok {
		return nil, entities.ErrRosterAlreadyLinked
	}
	acc.LinkedRosterID = &rosterID
	s.accounts[accountID] = acc
	s.byRoster[rosterID] = accountID
	return &acc, nil
}

func (s *memStore) FillName(_ context.Context, accountID, name string) (*entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, entities.ErrAccountNotFound
	}
	if acc.Name == "" {
		acc.Name = name
		s.accounts[accountID] = acc
	}
	return &acc, nil
}

func (s *memStore) ExistingAccountIDs(_ context.Context, ids []string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]struct{}{}
	for _, id := range ids {
		if _, ok := s.accounts[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (s *memStore) ListAccounts(_ context.Context) ([]entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) CreateKudos(_ context.Context, nk entities.NewKudos) (*entities.Kudos, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sender, ok := s.accounts[nk.SenderID]
	if !ok {
		return nil, errors.New("sender fk violation")
	}
	k := entities.Kudos{ID: uuid.NewString(), Value: nk.Value, Message: nk.Message, Sender: sender, CreatedAt: time.Now()}
	for _, id := range nk.RecipientIDs {
		acc, ok := s.accounts[id]
		if !ok {
			return nil, errors.New("recipient fk violation")
		}
		k.Recipients = append(k.Recipients, entities.KudosRecipient{KudosID: k.ID, Account: acc, CreatedAt: k.CreatedAt})
	}
	s.kudos = append(s.kudos, k)
	return &k, nil
}

func (s *memStore) MarkEmailSent(_ context.Context, kudosID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.kudos {
		if s.kudos[i].ID == kudosID {
			s.kudos[i].EmailSent = true
			return nil
		}
	}
	return entities.ErrKudosNotFound
}

func (s *memStore) ListSentKudos(_ context.Context, senderID string, limit, offset int) (entities.KudosPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var page entities.KudosPage
	for i := len(s.kudos) - 1; i >= 0; i-- {
		if s.kudos[i].Sender.ID != senderID {
			continue
		}
		if page.Total >= int64(offset) && len(page.Kudos) < limit {
			page.Kudos = append(page.Kudos, s.kudos[i])
		}
		page.Total++
	}
	return page, nil
}

func (s *memStore) Dashboard(_ context.Context, _ entities.StatsWindow) (entities.Dashboard, error) {
	return entities.Dashboard{}, nil
}

func (s *memStore) accountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

func (s *memStore) kudosByID(id string) entities.Kudos {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.kudos {
		if k.ID == id {
			return k
		}
	}
	return entities.Kudos{}
}

// mailbox records sent messages and fails for configured addresses.
type mailbox struct {
	mu   sync.Mutex
	sent []notifier.Message
	fail map[string]bool
}

func (m *mailbox) Send(_ context.Context, msg notifier.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[msg.To] {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mailbox) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		out = append(out, msg.To)
	}
	sort.Strings(out)
	return out
}

func strPtr(s string) *string { return &s }

func testDirectory(t *testing.T) *roster.Directory {
	t.Helper()
	dir, err := roster.New([]entities.RosterMember{
		{ID: "r1", Name: "Ana", Email: "ana@co.com"},
		{ID: "r2", Name: "Budi", Email: "budi@co.com", Department: strPtr("Engineering")},
		{ID: "r3", Name: "Citra", Email: "citra"},
		{ID: "r4", Name: "Dewi", Email: "dewi"},
	}, roster.FallbackEmail{ID: "r3", Email: "citra.lestari@co.com"})
	require.NoError(t, err)
	return dir
}

func testCatalog(t *testing.T) *roster.Catalog {
	t.Helper()
	cat, err := roster.NewCatalog([]entities.ValueTag{
		{ID: "teamwork", Name: "Teamwork", Description: "Lifts others"},
		{ID: "ownership", Name: "Ownership", Description: "End to end"},
	})
	require.NoError(t, err)
	return cat
}

func newTestUsecase(t *testing.T, repo repository.Repository, mailer notifier.Notifier) *Usecase {
	t.Helper()
	if mailer == nil {
		mailer = &mailbox{}
	}
	return New(zap.NewNop().Sugar(), context.Background(), repo, testDirectory(t), testCatalog(t), mailer, Options{
		Timeout:         time.Second,
		MessageMaxLen:   20,
		MailTimeout:     time.Second,
		MailConcurrency: 2,
		AppURL:          "http://localhost:3000",
	})
}

func seedAccount(t *testing.T, s *memStore, email, name string, rosterID *string) *entities.Account {
	t.Helper()
	acc, err := s.CreateAccount(context.Background(), entities.NewAccount{Email: email, Name: name, LinkedRosterID: rosterID})
	require.NoError(t, err)
	return acc
}
