package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"gocloud.dev/blob/memblob"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/service"
	"outreach/internal/infra/persistence/blobstore"
	"outreach/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *blobstore.RecordStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blobstore.New(bucket, discardLogger())
}

// fakeReplica is a hand-rolled RemoteReplica capturing subscriptions and
// pushes so tests can drive snapshot deliveries and assert outbound writes.
type fakeReplica struct {
	mu sync.Mutex

	usersSubscribed    int
	patientsSubscribed int
	usersSubCtx        context.Context
	patientsSubCtx     context.Context
	onUsersSnapshot    func([]entity.UserAccount)
	onPatientsSnapshot func([]entity.PatientRecord)

	putUsers        []entity.UserAccount
	putPatients     []entity.PatientRecord
	deletedPatients []string

	subscribeErr error
	putErr       error
}

func (f *fakeReplica) SubscribeUsers(ctx context.Context, onSnapshot func([]entity.UserAccount), _ func(error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribeErr != nil {
		return f.subscribeErr
	}
	f.usersSubscribed++
	f.usersSubCtx = ctx
	f.onUsersSnapshot = onSnapshot

	return nil
}

func (f *fakeReplica) SubscribePatients(ctx context.Context, onSnapshot func([]entity.PatientRecord), _ func(error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribeErr != nil {
		return f.subscribeErr
	}
	f.patientsSubscribed++
	f.patientsSubCtx = ctx
	f.onPatientsSnapshot = onSnapshot

	return nil
}

func (f *fakeReplica) PutUser(_ context.Context, account entity.UserAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return f.putErr
	}
	f.putUsers = append(f.putUsers, account)

	return nil
}

func (f *fakeReplica) PutPatient(_ context.Context, patient entity.PatientRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return f.putErr
	}
	f.putPatients = append(f.putPatients, patient)

	return nil
}

func (f *fakeReplica) DeletePatient(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return f.putErr
	}
	f.deletedPatients = append(f.deletedPatients, id)

	return nil
}

func (f *fakeReplica) Close() error { return nil }

func (f *fakeReplica) deliverUsers(snapshot []entity.UserAccount) {
	f.mu.Lock()
	onSnapshot := f.onUsersSnapshot
	f.mu.Unlock()
	onSnapshot(snapshot)
}

func (f *fakeReplica) deliverPatients(snapshot []entity.PatientRecord) {
	f.mu.Lock()
	onSnapshot := f.onPatientsSnapshot
	f.mu.Unlock()
	onSnapshot(snapshot)
}

func (f *fakeReplica) subscribeContexts() (users, patients context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.usersSubCtx, f.patientsSubCtx
}

func (f *fakeReplica) putUserCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.putUsers)
}

func (f *fakeReplica) putPatientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.putPatients)
}

func (f *fakeReplica) deletedPatientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.deletedPatients)
}

// countingListener records notification deliveries.
type countingListener struct {
	mu       sync.Mutex
	users    int
	patients int
}

func (l *countingListener) OnUsersChanged() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.users++
}

func (l *countingListener) OnPatientsChanged() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.patients++
}

func (l *countingListener) counts() (users, patients int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.users, l.patients
}

// fakeSync records fire-and-forget pushes from the collection services.
type fakeSync struct {
	mu              sync.Mutex
	pushedUsers     []entity.UserAccount
	pushedPatients  []entity.PatientRecord
	removedPatients []string
}

func (f *fakeSync) Start(context.Context) error { return nil }
func (f *fakeSync) Online() bool                { return true }

func (f *fakeSync) PushUser(account entity.UserAccount) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushedUsers = append(f.pushedUsers, account)
}

func (f *fakeSync) PushPatient(patient entity.PatientRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushedPatients = append(f.pushedPatients, patient)
}

func (f *fakeSync) RemovePatient(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removedPatients = append(f.removedPatients, id)
}

func (f *fakeSync) RefreshFromRemote(context.Context) error  { return nil }
func (f *fakeSync) RefreshFromLocalStore(context.Context)    {}
func (f *fakeSync) GetStorageInfo(context.Context) *usecase.StorageInfo {
	return &usecase.StorageInfo{}
}

// fakeHasher keeps secrets readable in assertions.
type fakeHasher struct{}

func (fakeHasher) Hash(secret string) (string, error) { return "hashed:" + secret, nil }
func (fakeHasher) Check(secret, hash string) bool     { return "hashed:"+secret == hash }

// capturingPublisher records collection events.
type capturingPublisher struct {
	mu     sync.Mutex
	events []service.CollectionEvent
	err    error
}

func (p *capturingPublisher) PublishCollectionEvent(_ context.Context, event *service.CollectionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, *event)

	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) captured() []service.CollectionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]service.CollectionEvent, len(p.events))
	copy(out, p.events)

	return out
}
