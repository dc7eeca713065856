package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aksuu-app/aksuu-server/internal/errs"
	"github.com/aksuu-app/aksuu-server/internal/models"
)

type fakeCreds struct {
	byEmail map[string]*models.User
}

var _ CredentialRepo = (*fakeCreds)(nil)

func newFakeCreds() *fakeCreds {
	return &fakeCreds{byEmail: map[string]*models.User{}}
}

func (f *fakeCreds) Get(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *u
	return &cpy, nil
}

func (f *fakeCreds) Save(_ context.Context, u *models.User) error {
	cpy := *u
	if prev, ok := f.byEmail[u.Email]; ok {
		cpy.ID = prev.ID
		cpy.CreatedAt = prev.CreatedAt
	}
	f.byEmail[u.Email] = &cpy
	return nil
}

func (f *fakeCreds) UpdatePassword(_ context.Context, email, passwordHash string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return errs.ErrNotFound
	}
	u.Password = passwordHash
	return nil
}

func (f *fakeCreds) Delete(_ context.Context, email string) error {
	delete(f.byEmail, email)
	return nil
}

type fakeResets struct {
	byEmail map[string]*models.PasswordReset
}

var _ ResetRepo = (*fakeResets)(nil)

func newFakeResets() *fakeResets {
	return &fakeResets{byEmail: map[string]*models.PasswordReset{}}
}

func (f *fakeResets) Get(_ context.Context, email string) (*models.PasswordReset, error) {
	t, ok := f.byEmail[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *t
	return &cpy, nil
}

func (f *fakeResets) Save(_ context.Context, t *models.PasswordReset) error {
	cpy := *t
	f.byEmail[t.Email] = &cpy
	return nil
}

func (f *fakeResets) Delete(_ context.Context, email string) error {
	delete(f.byEmail, email)
	return nil
}

type fakeSettings struct {
	deleted []string
}

var _ SettingsRepo = (*fakeSettings)(nil)

func (f *fakeSettings) Delete(_ context.Context, email string) error {
	f.deleted = append(f.deleted, email)
	return nil
}

const strongPassword = "Aa1!aaaaaaaa"

func newTestService() (*Service, *fakeCreds, *fakeResets, *fakeSettings) {
	creds := newFakeCreds()
	resets := newFakeResets()
	settings := &fakeSettings{}
	return NewService(creds, resets, settings), creds, resets, settings
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, creds, _, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "  A@B.com ", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "Пользователь", u.Name)
	assert.Equal(t, "ru", u.Language)
	assert.InDelta(t, 4.8, u.Rating, 0.001)
	assert.False(t, u.IsAdmin)

	stored := creds.byEmail["a@b.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, strongPassword, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(strongPassword)))
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", strongPassword)
	assert.ErrorIs(t, err, errs.ErrInvalidEmail)

	_, err = svc.Register(ctx, "a@b.com", "short")
	var policyErr *errs.PasswordPolicyError
	assert.ErrorAs(t, err, &policyErr)
}

func TestRegisterReplacesExistingRecord(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)

	const second = "Bb2?bbbbbbbb"
	_, err = svc.Register(ctx, "a@b.com", second)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.com", strongPassword)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "a@b.com", second)
	assert.NoError(t, err)
}

func TestRegisterAdminDomain(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Dev@AKSUU.dev", strongPassword)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
}

func TestLoginErrors(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "a@b.com", strongPassword)
	assert.ErrorIs(t, err, errs.ErrNotRegistered)

	_, err = svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.com", "Wrong1!wrongwrong")
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

	u, err := svc.Login(ctx, " A@B.COM ", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)
}

func TestResetRoundTrip(t *testing.T) {
	svc, _, resets, _ := newTestService()
	ctx := context.Background()

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)

	_, err = svc.RequestReset(ctx, "missing@b.com")
	assert.ErrorIs(t, err, errs.ErrNotRegistered)

	code, err := svc.RequestReset(ctx, "a@b.com")
	require.NoError(t, err)
	require.Regexp(t, `^\d{6}$`, code)

	ticket := resets.byEmail["a@b.com"]
	require.NotNil(t, ticket)
	assert.Equal(t, t0.Add(10*time.Minute), ticket.ExpiresAt)

	// Verification is idempotent and non-consuming.
	assert.NoError(t, svc.VerifyResetCode(ctx, "a@b.com", code))
	assert.NoError(t, svc.VerifyResetCode(ctx, "a@b.com", " "+code+" "))

	assert.ErrorIs(t, svc.VerifyResetCode(ctx, "a@b.com", "000000"), errs.ErrInvalidResetCode)

	// A ticket is valid up to and including its expiry instant.
	svc.now = func() time.Time { return t0.Add(10 * time.Minute) }
	assert.NoError(t, svc.VerifyResetCode(ctx, "a@b.com", code))

	svc.now = func() time.Time { return t0.Add(10*time.Minute + time.Second) }
	assert.ErrorIs(t, svc.VerifyResetCode(ctx, "a@b.com", code), errs.ErrResetExpired)
}

func TestRequestResetOverwritesPriorTicket(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	codes := []string{"111111", "222222"}
	svc.newCode = func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)

	first, err := svc.RequestReset(ctx, "a@b.com")
	require.NoError(t, err)
	second, err := svc.RequestReset(ctx, "a@b.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyResetCode(ctx, "a@b.com", first), errs.ErrInvalidResetCode)
	assert.NoError(t, svc.VerifyResetCode(ctx, "a@b.com", second))
}

func TestSetNewPasswordConsumesTicket(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)

	code, err := svc.RequestReset(ctx, "a@b.com")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyResetCode(ctx, "a@b.com", code))

	const newPassword = "Cc3$cccccccc"
	require.NoError(t, svc.SetNewPassword(ctx, "a@b.com", newPassword))

	// The ticket is gone once the reset completes.
	assert.ErrorIs(t, svc.VerifyResetCode(ctx, "a@b.com", code), errs.ErrNoPendingReset)
	assert.ErrorIs(t, svc.SetNewPassword(ctx, "a@b.com", newPassword), errs.ErrNoPendingReset)

	_, err = svc.Login(ctx, "a@b.com", strongPassword)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@b.com", newPassword)
	assert.NoError(t, err)
}

func TestSetNewPasswordValidatesFirst(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)
	_, err = svc.RequestReset(ctx, "a@b.com")
	require.NoError(t, err)

	var policyErr *errs.PasswordPolicyError
	err = svc.SetNewPassword(ctx, "a@b.com", "weak")
	require.ErrorAs(t, err, &policyErr)

	// The weak attempt must not consume the ticket.
	assert.NoError(t, svc.SetNewPassword(ctx, "a@b.com", "Dd4%dddddddd"))
}

func TestUpdateProfileMergesPatch(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)

	name := "Aigerim"
	phone := "+996700123456"
	u, err := svc.UpdateProfile(ctx, "a@b.com", models.ProfilePatch{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Aigerim", u.Name)
	assert.Equal(t, "+996700123456", u.Phone)
	assert.Equal(t, "ru", u.Language) // untouched

	lang := "en"
	u, err = svc.UpdateProfile(ctx, "a@b.com", models.ProfilePatch{Language: &lang})
	require.NoError(t, err)
	assert.Equal(t, "Aigerim", u.Name) // untouched
	assert.Equal(t, "en", u.Language)
}

func TestGoogleFlows(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GoogleLogin(ctx, "g@b.com")
	assert.ErrorIs(t, err, errs.ErrNotRegistered)

	u, err := svc.GoogleRegister(ctx, "G@B.com", "Gulzat", "https://example.com/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, "g@b.com", u.Email)
	assert.Equal(t, "Gulzat", u.Name)
	assert.Empty(t, u.Password)

	_, err = svc.GoogleRegister(ctx, "g@b.com", "Gulzat", "")
	assert.ErrorIs(t, err, errs.ErrAlreadyRegistered)

	got, err := svc.GoogleLogin(ctx, "g@b.com")
	require.NoError(t, err)
	assert.Equal(t, "g@b.com", got.Email)
}

func TestDeleteAccountClearsEverythingButEvents(t *testing.T) {
	svc, creds, resets, settings := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", strongPassword)
	require.NoError(t, err)
	_, err = svc.RequestReset(ctx, "a@b.com")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, "a@b.com"))

	assert.Empty(t, creds.byEmail)
	assert.Empty(t, resets.byEmail)
	assert.Equal(t, []string{"a@b.com"}, settings.deleted)

	_, err = svc.Login(ctx, "a@b.com", strongPassword)
	assert.ErrorIs(t, err, errs.ErrNotRegistered)
}
