package auth

import (
	"context"
	"testing"

	"trainerbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	nextID int64
	users  map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegisterTrainer_AndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeJWT{})

	res, err := svc.RegisterTrainer(context.Background(), RegisterRequest{
		Email:    "Marat@Example.com",
		Password: "s3cret-pass",
		Name:     "Marat",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTrainer, res.User.Role)
	assert.Equal(t, "marat@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "marat@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterTrainer_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeJWT{})

	req := RegisterRequest{Email: "a@b.com", Password: "s3cret-pass", Name: "A"}

	_, err := svc.RegisterTrainer(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterTrainer(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeJWT{})

	_, err := svc.RegisterTrainer(context.Background(), RegisterRequest{
		Email: "a@b.com", Password: "s3cret-pass", Name: "A",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeJWT{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@b.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
