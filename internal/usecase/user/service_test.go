package user

import (
	"context"
	"os"
	"restaurant-platform/internal/config"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/internal/logger"
	"restaurant-platform/pkg/utils"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// --- In-memory fakes for the credential store ---

type fakeUserRepo struct {
	users map[uuid.UUID]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domainUser.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domainUser.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domainUser.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*domainUser.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domainUser.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domainUser.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return domainUser.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return nil
}

type fakeVerificationRepo struct {
	userRepo      *fakeUserRepo
	verifications map[uuid.UUID]*domainUser.Verification
}

func newFakeVerificationRepo(userRepo *fakeUserRepo) *fakeVerificationRepo {
	return &fakeVerificationRepo{
		userRepo:      userRepo,
		verifications: make(map[uuid.UUID]*domainUser.Verification),
	}
}

func (r *fakeVerificationRepo) Create(_ context.Context, v *domainUser.Verification) error {
	for id, existing := range r.verifications {
		if existing.UserID == v.UserID {
			delete(r.verifications, id)
		}
	}
	v.ID = uuid.New()
	r.verifications[v.ID] = v
	return nil
}

func (r *fakeVerificationRepo) GetByCode(_ context.Context, code string) (*domainUser.Verification, error) {
	for _, v := range r.verifications {
		if v.Code == code {
			v.User = r.userRepo.users[v.UserID]
			return v, nil
		}
	}
	return nil, domainUser.ErrVerificationNotFound
}

func (r *fakeVerificationRepo) Delete(_ context.Context, verificationID uuid.UUID) error {
	if _, ok := r.verifications[verificationID]; !ok {
		return domainUser.ErrVerificationNotFound
	}
	delete(r.verifications, verificationID)
	return nil
}

type mailerSpy struct {
	codes []string
	to    []string
}

func (m *mailerSpy) SendVerificationEmail(to, code string) error {
	m.to = append(m.to, to)
	m.codes = append(m.codes, code)
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeVerificationRepo, *mailerSpy) {
	userRepo := newFakeUserRepo()
	verificationRepo := newFakeVerificationRepo(userRepo)
	mailer := &mailerSpy{}
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
	return NewService(userRepo, verificationRepo, mailer, cfg), userRepo, verificationRepo, mailer
}

// --- Tests ---

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)

	existing, err := userRepo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	hashBefore := existing.PasswordHashed

	_, err = svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "otherpass1", Role: "owner",
	})
	assert.EqualError(t, err, "There is a user with that email already")

	// The existing row is left unmodified.
	after, err := userRepo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, hashBefore, after.PasswordHashed)
	assert.Equal(t, domainUser.RoleClient, after.Role)
}

func TestCreateAccountHashesPassword(t *testing.T) {
	svc, userRepo, _, mailer := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)

	stored, err := userRepo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", stored.PasswordHashed)
	assert.True(t, utils.CheckPassword(stored.PasswordHashed, "password1"))
	assert.False(t, stored.Verified)

	// A verification mail was dispatched, keyed by the generated code.
	require.Len(t, mailer.codes, 1)
	assert.Equal(t, []string{"a@x.com"}, mailer.to)
	assert.NotEmpty(t, mailer.codes[0])
}

func TestCreateAccountInvalidRole(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateAccount(context.Background(), &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "superuser",
	})
	assert.Error(t, err)
}

func TestLoginAfterCreateAccount(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "nope-nope1"})
	assert.EqualError(t, err, "Wrong password")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "ghost@x.com", Password: "password1"})
	assert.EqualError(t, err, "User Not Found")
}

func TestVerifyEmailUnknownCode(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.VerifyEmail(context.Background(), "never-issued")
	assert.EqualError(t, err, "Verification not found.")
}

func TestVerifyEmailOneShot(t *testing.T) {
	svc, userRepo, _, mailer := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)
	require.Len(t, mailer.codes, 1)
	code := mailer.codes[0]

	require.NoError(t, svc.VerifyEmail(ctx, code))

	verified, err := userRepo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	// Replaying a consumed code hits the same outcome as a never-issued one.
	err = svc.VerifyEmail(ctx, code)
	assert.EqualError(t, err, "Verification not found.")
}

func TestEditProfileEmailChangeResetsVerification(t *testing.T) {
	svc, userRepo, _, mailer := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)
	firstCode := mailer.codes[0]

	created, err := userRepo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, firstCode))

	newEmail := "b@x.com"
	profile, err := svc.EditProfile(ctx, created.ID, &EditProfileRequest{Email: &newEmail})
	require.NoError(t, err)

	assert.Equal(t, "b@x.com", profile.Email)
	assert.False(t, profile.Verified)

	// A fresh, distinct code was issued for the new address.
	require.Len(t, mailer.codes, 2)
	assert.NotEqual(t, firstCode, mailer.codes[1])
	assert.Equal(t, "b@x.com", mailer.to[1])
}

func TestEditProfilePasswordRehash(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)

	me, err := svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	claims, err := utils.ValidateToken(me.Token, "test-secret")
	require.NoError(t, err)

	newPassword := "password2"
	_, err = svc.EditProfile(ctx, claims.UserID, &EditProfileRequest{Password: &newPassword})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "password1"})
	assert.EqualError(t, err, "Wrong password")

	resp, err := svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "password2"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestFindByIDUnknown(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.FindByID(context.Background(), uuid.New())
	assert.EqualError(t, err, "User Not Found")
}

func TestAccountLifecycleScenario(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, &LoginRequest{Email: "a@x.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "a@x.com", Password: "password1", Role: "client",
	})
	assert.EqualError(t, err, "There is a user with that email already")

	newEmail := "b@x.com"
	_, err = svc.EditProfile(ctx, created.ID, &EditProfileRequest{Email: &newEmail})
	require.NoError(t, err)

	me, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", me.Email)
	assert.False(t, me.Verified)
}
