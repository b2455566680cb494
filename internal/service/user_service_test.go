package service

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceRegisterHashesPassword(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	user, err := svc.Register(RegisterInput{Username: " mluukkai ", Name: "Matti Luukkainen", Password: "salainen"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Username != "mluukkai" {
		t.Fatalf("expected trimmed username, got %q", user.Username)
	}
	if user.PasswordHash == "salainen" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("salainen")); err != nil {
		t.Fatalf("hash does not match: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(user.PasswordHash)); err != nil || cost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d (%v)", cost, err)
	}
}

func TestUserServiceRegisterRejectsDuplicateUsername(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Register(RegisterInput{Username: "root", Password: "sekret"}); err != nil {
		t.Fatalf("register root: %v", err)
	}

	_, err := svc.Register(RegisterInput{Username: "root", Name: "Superuser", Password: "salainen"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserServiceRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{name: "missing username", input: RegisterInput{Password: "secret"}, message: "Username is required"},
		{name: "short username", input: RegisterInput{Username: "ro", Password: "secret"}, message: "Username must be at least 3 characters long"},
		{name: "missing password", input: RegisterInput{Username: "root"}, message: "Password is required"},
		{name: "short password", input: RegisterInput{Username: "root", Password: "sa"}, message: "Password must be at least 3 characters long"},
	}

	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, verr.Message)
			}
		})
	}
}

func TestUserServiceRegisterStripsMarkupFromName(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	user, err := svc.Register(RegisterInput{Username: "html", Name: "<b>Bold</b> & Co", Password: "secret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Name != "Bold & Co" {
		t.Fatalf("expected sanitized name, got %q", user.Name)
	}
}

func TestUserServiceListIncludesBlogs(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	root := seedUser(t, gdb, "root")
	seedUser(t, gdb, "empty")
	seedBlog(t, gdb, root.ID, "First", "A", 1)
	seedBlog(t, gdb, root.ID, "Second", "B", 2)

	users, err := svc.List()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if len(users[0].Blogs) != 2 || users[0].Blogs[0].Title != "First" {
		t.Fatalf("unexpected blogs for root: %+v", users[0].Blogs)
	}
	if users[1].Blogs == nil || len(users[1].Blogs) != 0 {
		t.Fatalf("expected empty non-nil blogs, got %#v", users[1].Blogs)
	}
}

func TestUserServiceGetMissing(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Get(42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserServiceFindSkipsBlogs(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	root := seedUser(t, gdb, "root")
	seedBlog(t, gdb, root.ID, "First", "A", 1)

	user, err := svc.Find(root.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if user.Username != "root" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Blogs != nil {
		t.Fatalf("expected blogs not to be loaded, got %+v", user.Blogs)
	}

	if _, err := svc.Find(42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewUserService(gdb)

	if _, err := svc.Register(RegisterInput{Username: "root", Password: "sekret"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate("root", "sekret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "root" {
		t.Fatalf("unexpected user %q", user.Username)
	}

	if _, err := svc.Authenticate("root", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate("nobody", "sekret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
