package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/services"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInputs answers text prompts from texts in order and the password
// prompt with password.
func stubInputs(t *testing.T, password []byte, texts ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	regEmail, regName string
	regPass           []byte
	regErr            error

	loginEmail string
	loginPass  []byte
	loginErr   error

	logoutCalled bool
	logoutErr    error
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Register(_ context.Context, email string, pass []byte, name string) (models.User, error) {
	f.regEmail, f.regName, f.regPass = email, name, append([]byte(nil), pass...)
	return models.User{ID: "1", Email: email, Name: name}, f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) (models.User, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	return models.User{ID: "1", Email: email, Name: "Ann"}, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) CurrentUser(context.Context) *models.User { return nil }
func (f *fakeAuth) IsLoggedIn(context.Context) bool          { return false }

func newAuthApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		authService: f,
		search:      services.NewSearchOrchestrator(nil, nil, nil, logging.Nop()),
		out:         &out,
	}, &out
}

func TestRegister_PassesInputsAndWipesPassword(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)

	pw := []byte("secret")
	stubInputs(t, pw, "alice@example.org", "Alice")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "alice@example.org", f.regEmail)
	assert.Equal(t, "Alice", f.regName)
	assert.Equal(t, "secret", string(f.regPass))
	assert.Equal(t, make([]byte, 6), pw, "password buffer must be wiped")
	assert.Contains(t, out.String(), "Welcome, Alice!")
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{regErr: errors.New("nope")}
	a, _ := newAuthApp(f)
	stubInputs(t, []byte("secret"), "alice@example.org", "Alice")

	require.Error(t, a.Register(context.Background()))
}

func TestLogin(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)
	stubInputs(t, []byte("password123"), "a@b.com")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "a@b.com", f.loginEmail)
	assert.Equal(t, "password123", string(f.loginPass))
	assert.Contains(t, out.String(), "Welcome back, Ann!")
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a, out := newAuthApp(f)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.Contains(t, out.String(), "Logged out.")
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{logoutErr: errors.New("clean-fail")}
	a, _ := newAuthApp(f)
	require.Error(t, a.Logout(context.Background()))
}
